package service

import (
	"context"
	"math/big"
	"time"

	"github.com/RuslanName/P2PBot-sub000/internal/core/domain"
	"github.com/RuslanName/P2PBot-sub000/internal/core/ports"
	"github.com/RuslanName/P2PBot-sub000/pkg/apperror"

	"github.com/rs/zerolog"
)

// balanceService is the balance oracle: the external ledger is the source of
// truth, the wallets table is a cache with a freshness window.
type balanceService struct {
	walletRepo ports.WalletRepository
	chains     ports.ChainClients
	currencies domain.CurrencyRegistry
	freshness  time.Duration
	now        func() time.Time
	log        zerolog.Logger
}

// NewBalanceService creates the balance oracle.
func NewBalanceService(
	walletRepo ports.WalletRepository,
	chains ports.ChainClients,
	currencies domain.CurrencyRegistry,
	freshness time.Duration,
	log zerolog.Logger,
) ports.BalanceService {
	return &balanceService{
		walletRepo: walletRepo,
		chains:     chains,
		currencies: currencies,
		freshness:  freshness,
		now:        time.Now,
		log:        log.With().Str("component", "balance_service").Logger(),
	}
}

// GetBalance returns the wallet's confirmed/unconfirmed pair. A cache within
// the freshness window is served as-is unless forceRefresh is set. A failed
// external query degrades to the cached value: the caller still gets an
// answer, just a conservative one.
func (s *balanceService) GetBalance(ctx context.Context, ownerID int64, currency string, forceRefresh bool) (domain.Balance, error) {
	wallet, err := s.walletRepo.GetByOwner(ctx, ownerID, currency)
	if err != nil {
		return domain.Balance{}, apperror.InternalError(err)
	}
	if wallet == nil {
		return domain.Balance{}, apperror.ErrNotFound("wallet")
	}

	cached := domain.Balance{Confirmed: wallet.Confirmed, Unconfirmed: wallet.Unconfirmed}
	if !forceRefresh && !wallet.Stale(s.freshness, s.now()) {
		return cached, nil
	}

	fresh, err := s.queryChain(ctx, wallet)
	if err != nil {
		s.log.Warn().Err(err).
			Int64("wallet_id", wallet.ID).
			Str("currency", currency).
			Msg("ledger query failed, serving cached balance")
		return cached, nil
	}

	if err := s.walletRepo.UpdateBalances(ctx, wallet.ID, fresh.Confirmed, fresh.Unconfirmed, s.now()); err != nil {
		// The fresh numbers are still correct even if caching them failed.
		s.log.Error().Err(err).Int64("wallet_id", wallet.ID).Msg("balance cache update failed")
	}
	return fresh, nil
}

func (s *balanceService) queryChain(ctx context.Context, wallet *domain.Wallet) (domain.Balance, error) {
	cur, ok := s.currencies.Get(wallet.Currency)
	if !ok {
		return domain.Balance{}, apperror.ErrUnknownCurrency(wallet.Currency)
	}

	switch cur.Family {
	case domain.FamilyUTXO:
		client, err := s.chains.UTXOFor(cur.Code)
		if err != nil {
			return domain.Balance{}, err
		}
		confirmed, unconfirmed, err := client.AddressBalance(ctx, wallet.Address)
		if err != nil {
			return domain.Balance{}, err
		}
		return domain.Balance{
			Confirmed:   cur.FromBase(confirmed),
			Unconfirmed: cur.FromBase(unconfirmed),
		}, nil
	default:
		client, err := s.chains.AccountFor(cur.Code)
		if err != nil {
			return domain.Balance{}, err
		}
		confirmed, pending, err := client.TokenBalance(ctx, wallet.Address)
		if err != nil {
			return domain.Balance{}, err
		}
		// Outgoing value still in flight shows up as pending < confirmed;
		// that delta is what must not be spendable. Incoming pending value
		// never adds headroom.
		outgoing := new(big.Int).Sub(confirmed, pending)
		if outgoing.Sign() < 0 {
			outgoing.SetInt64(0)
		}
		return domain.Balance{
			Confirmed:   cur.FromBaseBig(confirmed),
			Unconfirmed: cur.FromBaseBig(outgoing),
		}, nil
	}
}
