package service

import (
	"context"
	"fmt"
	"time"

	"github.com/RuslanName/P2PBot-sub000/internal/core/domain"
	"github.com/RuslanName/P2PBot-sub000/internal/core/ports"
	"github.com/RuslanName/P2PBot-sub000/internal/lock"
	"github.com/RuslanName/P2PBot-sub000/pkg/apperror"
	"github.com/RuslanName/P2PBot-sub000/pkg/metrics"

	"github.com/rs/zerolog"
)

// dealService is the deal lifecycle state machine and the only writer of
// deal status. Every transition is a conditional write against the status
// the caller observed, so concurrent actors resolve to exactly one winner.
type dealService struct {
	dbtx           ports.DBTransactor
	dealRepo       ports.DealRepository
	offerRepo      ports.OfferRepository
	walletRepo     ports.WalletRepository
	balanceSvc     ports.BalanceService
	reservationSvc ports.ReservationService
	complianceSvc  ports.ComplianceService
	settlementSvc  ports.SettlementService
	notifier       ports.Notifier
	locks          *lock.Arena
	dealTTL        time.Duration
	now            func() time.Time
	log            zerolog.Logger
}

// NewDealService creates the deal state machine.
func NewDealService(
	dbtx ports.DBTransactor,
	dealRepo ports.DealRepository,
	offerRepo ports.OfferRepository,
	walletRepo ports.WalletRepository,
	balanceSvc ports.BalanceService,
	reservationSvc ports.ReservationService,
	complianceSvc ports.ComplianceService,
	settlementSvc ports.SettlementService,
	notifier ports.Notifier,
	locks *lock.Arena,
	dealTTL time.Duration,
	log zerolog.Logger,
) ports.DealService {
	return &dealService{
		dbtx:           dbtx,
		dealRepo:       dealRepo,
		offerRepo:      offerRepo,
		walletRepo:     walletRepo,
		balanceSvc:     balanceSvc,
		reservationSvc: reservationSvc,
		complianceSvc:  complianceSvc,
		settlementSvc:  settlementSvc,
		notifier:       notifier,
		locks:          locks,
		dealTTL:        dealTTL,
		now:            time.Now,
		log:            log.With().Str("component", "deal_service").Logger(),
	}
}

// payerID returns the side that eventually pays out crypto: the issuer on a
// buy offer, the counterparty on a sell offer.
func payerID(offer *domain.Offer, counterpartyID int64) int64 {
	if offer.Direction == domain.OfferDirectionBuy {
		return offer.IssuerID
	}
	return counterpartyID
}

// Create admits a new deal against an open offer. Admission serializes per
// payer wallet so two concurrent deals cannot both clear against the same
// uncommitted funds.
func (s *dealService) Create(ctx context.Context, req ports.CreateDealRequest) (*domain.Deal, error) {
	offer, err := s.offerRepo.GetByID(ctx, req.OfferID)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if offer == nil {
		return nil, apperror.ErrNotFound("offer")
	}
	if !offer.IsOpen() {
		return nil, apperror.ErrOfferNotOpen()
	}
	if !offer.AcceptsAmount(req.Amount) {
		return nil, apperror.ErrAmountOutOfBounds()
	}
	if _, ok := offer.PaymentDetailFor(req.FiatCurrency); !ok {
		return nil, apperror.ErrFiatNotAccepted()
	}

	blocked, err := s.complianceSvc.Evaluate(ctx, req.CounterpartyID)
	if err != nil {
		return nil, err
	}
	if blocked {
		return nil, apperror.ErrComplianceHold()
	}

	payer := payerID(offer, req.CounterpartyID)
	wallet, err := s.walletRepo.GetByOwner(ctx, payer, offer.Currency)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("payer wallet")
	}

	// Balance and held amount are read together under the wallet lock so the
	// admission decision is made against a consistent snapshot.
	s.locks.Lock(wallet.ID)
	defer s.locks.Unlock(wallet.ID)

	balance, err := s.balanceSvc.GetBalance(ctx, payer, offer.Currency, true)
	if err != nil {
		return nil, err
	}
	held, err := s.reservationSvc.HeldAmount(ctx, payer, offer.Currency)
	if err != nil {
		return nil, err
	}

	gross := domain.GrossAmount(req.Amount, offer.MarkupPercent)
	if balance.Available(held).LessThan(gross) {
		return nil, apperror.ErrInsufficientFunds()
	}

	now := s.now()
	deal := &domain.Deal{
		OfferID:        offer.ID,
		CounterpartyID: req.CounterpartyID,
		ReferrerID:     req.ReferrerID,
		Amount:         req.Amount,
		FiatCurrency:   req.FiatCurrency,
		MarkupPercent:  offer.MarkupPercent,
		Status:         domain.DealStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	tx, err := s.dbtx.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	defer tx.Rollback(ctx)

	if err := s.dealRepo.Create(ctx, tx, deal); err != nil {
		return nil, apperror.InternalError(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(err)
	}

	if err := s.complianceSvc.RecordDealInitiated(ctx, req.CounterpartyID); err != nil {
		s.log.Warn().Err(err).Int64("deal_id", deal.ID).Msg("deal-initiated record failed")
	}
	s.notify(ctx, offer.IssuerID, fmt.Sprintf("New deal #%d for %s %s on your offer #%d",
		deal.ID, deal.Amount.String(), offer.Currency, offer.ID))

	metrics.DealsCreated.WithLabelValues(string(offer.Direction)).Inc()
	s.log.Info().
		Int64("deal_id", deal.ID).
		Int64("offer_id", offer.ID).
		Str("amount", deal.Amount.String()).
		Msg("deal created")
	return deal, nil
}

// CounterpartyConfirm marks the counterparty's payment confirmation. The
// call is idempotent once confirmed; a deal past its deadline is expired on
// the spot rather than confirmed late.
func (s *dealService) CounterpartyConfirm(ctx context.Context, dealID, userID int64) (*domain.Deal, error) {
	deal, err := s.getDeal(ctx, dealID)
	if err != nil {
		return nil, err
	}
	if deal.CounterpartyID != userID {
		return nil, apperror.ErrUnauthorizedActor()
	}
	if deal.Status != domain.DealStatusPending {
		return nil, rejectByStatus(deal.Status)
	}
	if deal.ClientConfirmed {
		return deal, nil
	}

	if s.now().After(deal.ExpiresAt(s.dealTTL)) {
		expired, err := s.dealRepo.ExpireIfUnconfirmed(ctx, deal.ID, s.now().Add(-s.dealTTL))
		if err != nil {
			return nil, apperror.InternalError(err)
		}
		if expired {
			metrics.DealsExpired.Inc()
		}
		return nil, apperror.ErrDealTimeExpired()
	}

	confirmed, err := s.dealRepo.SetClientConfirmed(ctx, deal.ID)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if !confirmed {
		// The deal left PENDING between the read and the write.
		fresh, err := s.getDeal(ctx, dealID)
		if err != nil {
			return nil, err
		}
		return nil, rejectByStatus(fresh.Status)
	}
	deal.ClientConfirmed = true

	offer, err := s.getOffer(ctx, deal.OfferID)
	if err == nil {
		s.notify(ctx, offer.IssuerID, fmt.Sprintf("Counterparty confirmed payment on deal #%d", deal.ID))
	}
	return deal, nil
}

// SetCounterpartyDetails records the counterparty's payout destination or
// fiat account for the deal.
func (s *dealService) SetCounterpartyDetails(ctx context.Context, dealID, userID int64, details string) error {
	if details == "" {
		return apperror.Validation("details must not be empty")
	}
	deal, err := s.getDeal(ctx, dealID)
	if err != nil {
		return err
	}
	if deal.CounterpartyID != userID {
		return apperror.ErrUnauthorizedActor()
	}
	if deal.Status != domain.DealStatusPending {
		return rejectByStatus(deal.Status)
	}
	if err := s.dealRepo.SetCounterpartyDetails(ctx, deal.ID, details); err != nil {
		return apperror.InternalError(err)
	}
	return nil
}

// IssuerAcknowledge confirms receipt on the issuer side and runs settlement.
// On settlement failure the deal stays pending and the call is retryable.
func (s *dealService) IssuerAcknowledge(ctx context.Context, dealID, issuerID int64) (*domain.Deal, error) {
	deal, err := s.getDeal(ctx, dealID)
	if err != nil {
		return nil, err
	}
	offer, err := s.getOffer(ctx, deal.OfferID)
	if err != nil {
		return nil, err
	}
	if offer.IssuerID != issuerID {
		return nil, apperror.ErrUnauthorizedActor()
	}
	if deal.Status != domain.DealStatusPending {
		return nil, rejectByStatus(deal.Status)
	}
	if !deal.ClientConfirmed {
		return nil, apperror.ErrNotConfirmed()
	}

	return s.settleAndComplete(ctx, deal, offer, domain.DealStatusPending)
}

// settleAndComplete runs the settlement executor and stamps completion with
// the transaction id and referral fee in one conditional write.
func (s *dealService) settleAndComplete(ctx context.Context, deal *domain.Deal, offer *domain.Offer, from domain.DealStatus) (*domain.Deal, error) {
	// Serialize settlement per payer wallet; a concurrent acknowledge for
	// the same payer waits here and then fails the status recheck.
	wallet, err := s.walletRepo.GetByOwner(ctx, payerID(offer, deal.CounterpartyID), offer.Currency)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("wallet")
	}
	s.locks.Lock(wallet.ID)
	defer s.locks.Unlock(wallet.ID)

	deal, err = s.getDeal(ctx, deal.ID)
	if err != nil {
		return nil, err
	}
	if deal.Status != from {
		return nil, rejectByStatus(deal.Status)
	}

	result, err := s.settlementSvc.Settle(ctx, ports.SettlementRequest{
		Deal:       deal,
		Offer:      offer,
		ReferrerID: deal.ReferrerID,
	})
	if err != nil {
		s.log.Warn().Err(err).Int64("deal_id", deal.ID).Msg("settlement failed, deal stays retryable")
		return nil, err
	}

	completed, err := s.dealRepo.Complete(ctx, nil, deal.ID, from, result.TxID, result.ReferralFee)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if !completed {
		// Funds moved but the row left its prior status concurrently. The
		// settlement journal still holds the payout; surface the conflict.
		s.log.Error().Int64("deal_id", deal.ID).Str("tx_id", result.TxID).Msg("completion raced after settlement")
		fresh, err := s.getDeal(ctx, deal.ID)
		if err != nil {
			return nil, err
		}
		return nil, rejectByStatus(fresh.Status)
	}

	deal.Status = domain.DealStatusCompleted
	deal.SettlementTxID = &result.TxID
	if result.ReferralFee.IsPositive() {
		fee := result.ReferralFee
		deal.ReferralFee = &fee
	}

	s.notify(ctx, deal.CounterpartyID, fmt.Sprintf("Deal #%d completed, transaction %s", deal.ID, result.TxID))
	return deal, nil
}

// Cancel voids a pending deal before the counterparty has confirmed. Either
// party may cancel.
func (s *dealService) Cancel(ctx context.Context, dealID, actorID int64) (*domain.Deal, error) {
	deal, err := s.getDeal(ctx, dealID)
	if err != nil {
		return nil, err
	}
	offer, err := s.getOffer(ctx, deal.OfferID)
	if err != nil {
		return nil, err
	}
	if actorID != deal.CounterpartyID && actorID != offer.IssuerID {
		return nil, apperror.ErrUnauthorizedActor()
	}
	if deal.Status != domain.DealStatusPending {
		return nil, rejectByStatus(deal.Status)
	}
	if deal.ClientConfirmed {
		return nil, apperror.Validation("a confirmed deal can no longer be cancelled")
	}

	changed, err := s.dealRepo.UpdateStatusIf(ctx, nil, deal.ID, domain.DealStatusPending, domain.DealStatusCancelled)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if !changed {
		fresh, err := s.getDeal(ctx, dealID)
		if err != nil {
			return nil, err
		}
		return nil, rejectByStatus(fresh.Status)
	}
	deal.Status = domain.DealStatusCancelled

	other := deal.CounterpartyID
	if actorID == deal.CounterpartyID {
		other = offer.IssuerID
	}
	s.notify(ctx, other, fmt.Sprintf("Deal #%d was cancelled", deal.ID))
	return deal, nil
}

// AdminBlock freezes a pending deal. Idempotent when already blocked.
func (s *dealService) AdminBlock(ctx context.Context, dealID int64) (*domain.Deal, error) {
	deal, err := s.getDeal(ctx, dealID)
	if err != nil {
		return nil, err
	}
	if deal.Status == domain.DealStatusBlocked {
		return deal, nil
	}
	if deal.Status != domain.DealStatusPending {
		return nil, apperror.ErrIllegalTransition(string(deal.Status), string(domain.DealStatusBlocked))
	}

	changed, err := s.dealRepo.UpdateStatusIf(ctx, nil, deal.ID, domain.DealStatusPending, domain.DealStatusBlocked)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if !changed {
		return nil, apperror.ErrIllegalTransition(string(deal.Status), string(domain.DealStatusBlocked))
	}
	deal.Status = domain.DealStatusBlocked

	s.notify(ctx, deal.CounterpartyID, fmt.Sprintf("Deal #%d is under review and temporarily blocked", deal.ID))
	return deal, nil
}

// AdminUnblock returns a blocked deal to pending.
func (s *dealService) AdminUnblock(ctx context.Context, dealID int64) (*domain.Deal, error) {
	deal, err := s.getDeal(ctx, dealID)
	if err != nil {
		return nil, err
	}
	if deal.Status == domain.DealStatusPending {
		return deal, nil
	}
	if deal.Status != domain.DealStatusBlocked {
		return nil, apperror.ErrIllegalTransition(string(deal.Status), string(domain.DealStatusPending))
	}

	changed, err := s.dealRepo.UpdateStatusIf(ctx, nil, deal.ID, domain.DealStatusBlocked, domain.DealStatusPending)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if !changed {
		return nil, apperror.ErrIllegalTransition(string(deal.Status), string(domain.DealStatusPending))
	}
	deal.Status = domain.DealStatusPending

	s.notify(ctx, deal.CounterpartyID, fmt.Sprintf("Deal #%d was unblocked and is active again", deal.ID))
	return deal, nil
}

// AdminBlockIssuer freezes the issuer's open offers and pending deals in one
// transaction, so no deal can slip through against a half-blocked book.
func (s *dealService) AdminBlockIssuer(ctx context.Context, issuerID int64) error {
	return s.cascadeIssuer(ctx, issuerID,
		domain.OfferStatusOpen, domain.OfferStatusBlocked,
		domain.DealStatusPending, domain.DealStatusBlocked,
		"Your offers and active deals were blocked pending review")
}

// AdminUnblockIssuer reverses the block cascade.
func (s *dealService) AdminUnblockIssuer(ctx context.Context, issuerID int64) error {
	return s.cascadeIssuer(ctx, issuerID,
		domain.OfferStatusBlocked, domain.OfferStatusOpen,
		domain.DealStatusBlocked, domain.DealStatusPending,
		"Your offers and deals were unblocked")
}

func (s *dealService) cascadeIssuer(ctx context.Context, issuerID int64, offerFrom, offerTo domain.OfferStatus, dealFrom, dealTo domain.DealStatus, message string) error {
	tx, err := s.dbtx.Begin(ctx)
	if err != nil {
		return apperror.InternalError(err)
	}
	defer tx.Rollback(ctx)

	offers, err := s.offerRepo.UpdateStatusByIssuer(ctx, tx, issuerID, offerFrom, offerTo)
	if err != nil {
		return apperror.InternalError(err)
	}
	deals, err := s.dealRepo.UpdateStatusByIssuer(ctx, tx, issuerID, dealFrom, dealTo)
	if err != nil {
		return apperror.InternalError(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return apperror.InternalError(err)
	}

	s.log.Info().
		Int64("issuer_id", issuerID).
		Int64("offers", offers).
		Int64("deals", deals).
		Str("deal_status", string(dealTo)).
		Msg("issuer cascade applied")
	s.notify(ctx, issuerID, message)
	return nil
}

// AdminForceComplete settles a blocked deal through the same guards as
// issuer acknowledgement. Only valid from BLOCKED.
func (s *dealService) AdminForceComplete(ctx context.Context, dealID int64) (*domain.Deal, error) {
	deal, err := s.getDeal(ctx, dealID)
	if err != nil {
		return nil, err
	}
	if deal.Status != domain.DealStatusBlocked {
		return nil, apperror.ErrForceCompleteNotBlocked()
	}
	if !deal.ClientConfirmed {
		return nil, apperror.ErrNotConfirmed()
	}
	offer, err := s.getOffer(ctx, deal.OfferID)
	if err != nil {
		return nil, err
	}
	return s.settleAndComplete(ctx, deal, offer, domain.DealStatusBlocked)
}

// Expire moves an unconfirmed deal past its deadline to EXPIRED. The write
// re-checks every condition, so running concurrently with a confirmation is
// safe. Called by the sweeper.
func (s *dealService) Expire(ctx context.Context, dealID int64) (bool, error) {
	expired, err := s.dealRepo.ExpireIfUnconfirmed(ctx, dealID, s.now().Add(-s.dealTTL))
	if err != nil {
		return false, apperror.InternalError(err)
	}
	if expired {
		metrics.DealsExpired.Inc()
	}
	return expired, nil
}

func (s *dealService) getDeal(ctx context.Context, id int64) (*domain.Deal, error) {
	deal, err := s.dealRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if deal == nil {
		return nil, apperror.ErrNotFound("deal")
	}
	return deal, nil
}

func (s *dealService) getOffer(ctx context.Context, id int64) (*domain.Offer, error) {
	offer, err := s.offerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if offer == nil {
		return nil, apperror.ErrNotFound("offer")
	}
	return offer, nil
}

// rejectByStatus maps a non-pending status to its user-visible rejection.
func rejectByStatus(status domain.DealStatus) error {
	switch status {
	case domain.DealStatusExpired:
		return apperror.ErrDealTimeExpired()
	case domain.DealStatusBlocked:
		return apperror.ErrDealBlocked()
	default:
		return apperror.ErrIllegalTransition(string(status), string(domain.DealStatusPending))
	}
}

func (s *dealService) notify(ctx context.Context, recipientID int64, message string, actions ...string) {
	if err := s.notifier.Notify(ctx, recipientID, message, actions...); err != nil {
		s.log.Warn().Err(err).Int64("recipient_id", recipientID).Msg("notification failed")
	}
}
