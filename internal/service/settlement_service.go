package service

import (
	"context"
	"fmt"
	"math/big"
	"sort"

	"github.com/RuslanName/P2PBot-sub000/config"
	"github.com/RuslanName/P2PBot-sub000/internal/core/domain"
	"github.com/RuslanName/P2PBot-sub000/internal/core/ports"
	"github.com/RuslanName/P2PBot-sub000/pkg/apperror"
	"github.com/RuslanName/P2PBot-sub000/pkg/metrics"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// payout names who pays and where the crypto goes for one deal.
type payout struct {
	PayerID     int64
	Destination string
}

// settlementOutput is one planned transfer of the settlement, tagged with
// the leg it belongs to. Amounts stay decimal until the chain boundary:
// satoshi int64 for UTXO outputs, big base units for account transfers,
// where an int64 would wrap for 18-decimal tokens.
type settlementOutput struct {
	Kind    domain.SettlementLegKind
	Address string
	Amount  decimal.Decimal
}

// settlementService moves real funds for an approved deal. Pre-broadcast
// failures mutate nothing; account-family settlements journal each leg so a
// retry never pays the same leg twice.
type settlementService struct {
	walletRepo      ports.WalletRepository
	legRepo         ports.SettlementLegRepository
	chains          ports.ChainClients
	currencies      domain.CurrencyRegistry
	vault           ports.KeyVault
	balanceSvc      ports.BalanceService
	complianceSvc   ports.ComplianceService
	platformPercent decimal.Decimal
	referralPercent decimal.Decimal
	platformWallets map[string]string
	log             zerolog.Logger
}

// NewSettlementService creates the settlement executor.
func NewSettlementService(
	walletRepo ports.WalletRepository,
	legRepo ports.SettlementLegRepository,
	chains ports.ChainClients,
	currencies domain.CurrencyRegistry,
	vault ports.KeyVault,
	balanceSvc ports.BalanceService,
	complianceSvc ports.ComplianceService,
	fees config.FeeConfig,
	log zerolog.Logger,
) (ports.SettlementService, error) {
	platformPercent, err := decimal.NewFromString(fees.PlatformPercent)
	if err != nil {
		return nil, fmt.Errorf("parse platform percent: %w", err)
	}
	referralPercent, err := decimal.NewFromString(fees.ReferralPercent)
	if err != nil {
		return nil, fmt.Errorf("parse referral percent: %w", err)
	}
	return &settlementService{
		walletRepo:      walletRepo,
		legRepo:         legRepo,
		chains:          chains,
		currencies:      currencies,
		vault:           vault,
		balanceSvc:      balanceSvc,
		complianceSvc:   complianceSvc,
		platformPercent: platformPercent,
		referralPercent: referralPercent,
		platformWallets: fees.PlatformWallets,
		log:             log.With().Str("component", "settlement_service").Logger(),
	}, nil
}

// Settle executes the payout for the deal and returns the external
// transaction id together with the referral fee actually attributed.
func (s *settlementService) Settle(ctx context.Context, req ports.SettlementRequest) (*ports.SettlementResult, error) {
	deal, offer := req.Deal, req.Offer

	cur, ok := s.currencies.Get(offer.Currency)
	if !ok {
		return nil, apperror.ErrUnknownCurrency(offer.Currency)
	}

	pay, err := s.resolvePayout(ctx, deal, offer)
	if err != nil {
		return nil, err
	}

	payerWallet, err := s.walletRepo.GetByOwner(ctx, pay.PayerID, cur.Code)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if payerWallet == nil {
		return nil, apperror.ErrNotFound("payer wallet")
	}

	// Forced refresh first: stale numbers must never clear a spend.
	balance, err := s.balanceSvc.GetBalance(ctx, pay.PayerID, cur.Code, true)
	if err != nil {
		return nil, err
	}

	// The destination recheck runs at the last responsible moment, with the
	// address that is actually about to receive funds.
	blocked, err := s.complianceSvc.EvaluateDestination(ctx, pay.PayerID, pay.Destination)
	if err != nil {
		return nil, err
	}
	if blocked {
		metrics.SettlementFailures.WithLabelValues("compliance").Inc()
		return nil, apperror.ErrComplianceHold()
	}

	gross := deal.GrossAmount()
	platformFee := deal.Amount.Mul(s.platformPercent).Div(decimal.NewFromInt(100))
	referralFee := decimal.Zero
	if req.ReferrerID != 0 {
		referralFee = platformFee.Mul(s.referralPercent).Div(decimal.NewFromInt(100))
	}

	outputs, err := s.splitOutputs(ctx, cur, pay, gross, platformFee, referralFee, req.ReferrerID)
	if err != nil {
		return nil, err
	}

	var txID string
	switch cur.Family {
	case domain.FamilyUTXO:
		txID, err = s.settleUTXO(ctx, cur, payerWallet, outputs)
	default:
		txID, err = s.settleAccount(ctx, cur, deal, payerWallet, balance, gross, outputs)
	}
	if err != nil {
		return nil, err
	}

	if err := s.complianceSvc.RecordTransferSettled(ctx, pay.PayerID, pay.Destination); err != nil {
		s.log.Warn().Err(err).Int64("deal_id", deal.ID).Msg("settled-transfer record failed")
	}
	metrics.DealsSettled.WithLabelValues(string(cur.Family)).Inc()
	s.log.Info().
		Int64("deal_id", deal.ID).
		Str("tx_id", txID).
		Str("gross", gross.String()).
		Str("platform_fee", platformFee.String()).
		Str("referral_fee", referralFee.String()).
		Msg("deal settled")

	return &ports.SettlementResult{TxID: txID, ReferralFee: referralFee}, nil
}

// resolvePayout works the payout sides out of the offer direction. On a buy
// offer the issuer pays out to the counterparty's external destination; on a
// sell offer the counterparty pays out into the issuer's custodial address.
func (s *settlementService) resolvePayout(ctx context.Context, deal *domain.Deal, offer *domain.Offer) (payout, error) {
	switch offer.Direction {
	case domain.OfferDirectionBuy:
		if deal.CounterpartyDetails == "" {
			return payout{}, apperror.ErrMissingDestination()
		}
		return payout{PayerID: offer.IssuerID, Destination: deal.CounterpartyDetails}, nil
	case domain.OfferDirectionSell:
		wallet, err := s.walletRepo.GetByOwner(ctx, offer.IssuerID, offer.Currency)
		if err != nil {
			return payout{}, apperror.InternalError(err)
		}
		if wallet == nil {
			return payout{}, apperror.ErrNotFound("issuer wallet")
		}
		return payout{PayerID: deal.CounterpartyID, Destination: wallet.Address}, nil
	default:
		return payout{}, apperror.ErrNoPayoutSide()
	}
}

// splitOutputs turns the fee math into concrete destinations. The recipient
// receives gross minus the platform fee; the referrer's cut comes out of the
// platform's share, never the recipient's.
func (s *settlementService) splitOutputs(ctx context.Context, cur domain.Currency, pay payout, gross, platformFee, referralFee decimal.Decimal, referrerID int64) ([]settlementOutput, error) {
	recipientAmount := gross.Sub(platformFee)
	if !recipientAmount.IsPositive() {
		return nil, apperror.Validation("platform fee exceeds deal amount")
	}

	outputs := []settlementOutput{{
		Kind:    domain.LegRecipient,
		Address: pay.Destination,
		Amount:  recipientAmount,
	}}

	platformShare := platformFee.Sub(referralFee)
	if platformShare.IsPositive() {
		addr, ok := s.platformWallets[cur.Code]
		if !ok {
			return nil, apperror.InternalError(fmt.Errorf("no platform wallet configured for %s", cur.Code))
		}
		outputs = append(outputs, settlementOutput{Kind: domain.LegPlatform, Address: addr, Amount: platformShare})
	}

	if referralFee.IsPositive() {
		refWallet, err := s.walletRepo.GetByOwner(ctx, referrerID, cur.Code)
		if err != nil {
			return nil, apperror.InternalError(err)
		}
		if refWallet == nil {
			return nil, apperror.ErrNotFound("referrer wallet")
		}
		outputs = append(outputs, settlementOutput{Kind: domain.LegReferral, Address: refWallet.Address, Amount: referralFee})
	}
	return outputs, nil
}

func (s *settlementService) settleUTXO(ctx context.Context, cur domain.Currency, payerWallet *domain.Wallet, outputs []settlementOutput) (string, error) {
	client, err := s.chains.UTXOFor(cur.Code)
	if err != nil {
		return "", apperror.InternalError(err)
	}

	feeRate, err := client.FeeRate(ctx, ports.FeeTierStandard)
	if err != nil {
		s.log.Warn().Err(err).Str("currency", cur.Code).Msg("fee quote failed, using fallback rate")
		feeRate = cur.FallbackRate
	}

	utxos, err := client.ListUnspent(ctx, payerWallet.Address)
	if err != nil {
		metrics.SettlementFailures.WithLabelValues("list_unspent").Inc()
		return "", apperror.ErrChainUnavailable(err)
	}

	txOuts := make([]domain.TxOutput, 0, len(outputs)+1)
	var totalOut int64
	for _, out := range outputs {
		sats := cur.ToBase(out.Amount)
		txOuts = append(txOuts, domain.TxOutput{Address: out.Address, Amount: sats})
		totalOut += sats
	}

	inputs, change, err := selectUnspent(utxos, totalOut, len(txOuts), feeRate)
	if err != nil {
		metrics.SettlementFailures.WithLabelValues("funds").Inc()
		return "", err
	}
	if change > 0 {
		txOuts = append(txOuts, domain.TxOutput{Address: payerWallet.Address, Amount: change})
	}

	secret, err := s.vault.Decrypt(payerWallet.KeyCiphertext)
	if err != nil {
		metrics.SettlementFailures.WithLabelValues("vault").Inc()
		return "", apperror.ErrKeyVaultFailure(err)
	}

	txID, err := client.SignAndBroadcast(ctx, inputs, txOuts, secret)
	if err != nil {
		metrics.SettlementFailures.WithLabelValues("broadcast").Inc()
		return "", apperror.ErrBroadcastFailed(err)
	}
	return txID, nil
}

// estimateTxSize approximates a P2PKH-shaped transaction in bytes. Close
// enough for fee purposes; the node rejects anything truly underpaid.
func estimateTxSize(inputs, outputs int) int64 {
	return int64(inputs*148 + outputs*34 + 10)
}

// selectUnspent picks inputs greedily from the largest down until they cover
// the outputs plus the fee for the transaction being built. The fee grows
// with each added input, so coverage is re-checked per step. Change below
// the dust floor is burned into the fee instead of creating an output.
func selectUnspent(utxos []domain.UnspentOutput, totalOut int64, outputCount int, feeRate int64) ([]domain.UnspentOutput, int64, error) {
	const dustFloor = 546

	sorted := make([]domain.UnspentOutput, len(utxos))
	copy(sorted, utxos)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Amount > sorted[j].Amount })

	var inputs []domain.UnspentOutput
	var totalIn int64
	for _, u := range sorted {
		inputs = append(inputs, u)
		totalIn += u.Amount

		// +1 output for potential change.
		fee := estimateTxSize(len(inputs), outputCount+1) * feeRate
		if totalIn >= totalOut+fee {
			change := totalIn - totalOut - fee
			if change < dustFloor {
				change = 0
			}
			return inputs, change, nil
		}
	}
	return nil, 0, apperror.ErrInsufficientFunds()
}

func (s *settlementService) settleAccount(ctx context.Context, cur domain.Currency, deal *domain.Deal, payerWallet *domain.Wallet, balance domain.Balance, gross decimal.Decimal, outputs []settlementOutput) (string, error) {
	client, err := s.chains.AccountFor(cur.Code)
	if err != nil {
		return "", apperror.InternalError(err)
	}

	// Flat network fee comes out of the payer on top of the gross amount.
	needed := gross.Add(cur.FixedFee)
	if balance.Confirmed.Sub(balance.Unconfirmed).LessThan(needed) {
		metrics.SettlementFailures.WithLabelValues("funds").Inc()
		return "", apperror.ErrInsufficientFunds()
	}

	if err := s.ensureGas(ctx, client, payerWallet.Address, len(outputs)); err != nil {
		return "", err
	}

	secret, err := s.vault.Decrypt(payerWallet.KeyCiphertext)
	if err != nil {
		metrics.SettlementFailures.WithLabelValues("vault").Inc()
		return "", apperror.ErrKeyVaultFailure(err)
	}

	var recipientTxID string
	for _, out := range outputs {
		leg := &domain.SettlementLeg{
			DealID:         deal.ID,
			Kind:           out.Kind,
			IdempotencyKey: domain.LegIdempotencyKey(deal.ID, out.Kind),
			Destination:    out.Address,
			Amount:         out.Amount,
			Status:         domain.LegStatusPending,
		}
		stored, err := s.legRepo.Ensure(ctx, leg)
		if err != nil {
			metrics.SettlementFailures.WithLabelValues("journal").Inc()
			return "", apperror.InternalError(err)
		}
		if stored.Status == domain.LegStatusConfirmed {
			// A previous attempt already paid this leg.
			if out.Kind == domain.LegRecipient && stored.TxID != nil {
				recipientTxID = *stored.TxID
			}
			continue
		}

		txID, err := client.Transfer(ctx, secret, out.Address, cur.ToBaseBig(out.Amount))
		if err != nil {
			metrics.SettlementFailures.WithLabelValues("broadcast").Inc()
			return "", apperror.ErrBroadcastFailed(err)
		}
		if err := s.legRepo.MarkConfirmed(ctx, stored.ID, txID); err != nil {
			// The transfer is out; losing the journal write would let a
			// retry double-pay this leg, so surface it loudly.
			s.log.Error().Err(err).Int64("leg_id", stored.ID).Str("tx_id", txID).Msg("leg confirmation write failed")
			return "", apperror.InternalError(err)
		}
		if out.Kind == domain.LegRecipient {
			recipientTxID = txID
		}
	}
	return recipientTxID, nil
}

// ensureGas tops the payer up from the treasury when its native balance
// cannot cover the sequence of transfers about to run.
func (s *settlementService) ensureGas(ctx context.Context, client ports.AccountChain, payerAddress string, transfers int) error {
	gasBalance, err := client.GasBalance(ctx, payerAddress)
	if err != nil {
		metrics.SettlementFailures.WithLabelValues("gas").Inc()
		return apperror.ErrChainUnavailable(err)
	}
	perTransfer, err := client.TransferGasCost(ctx)
	if err != nil {
		metrics.SettlementFailures.WithLabelValues("gas").Inc()
		return apperror.ErrChainUnavailable(err)
	}

	needed := new(big.Int).Mul(perTransfer, big.NewInt(int64(transfers)))
	if gasBalance.Cmp(needed) >= 0 {
		return nil
	}

	deficit := new(big.Int).Sub(needed, gasBalance)
	if err := client.SwapForGas(ctx, payerAddress, deficit); err != nil {
		metrics.SettlementFailures.WithLabelValues("gas").Inc()
		return apperror.ErrChainUnavailable(err)
	}
	return nil
}
