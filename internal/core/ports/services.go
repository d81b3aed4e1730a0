package ports

import (
	"context"

	"github.com/RuslanName/P2PBot-sub000/internal/core/domain"

	"github.com/shopspring/decimal"
)

// BalanceService is the balance oracle: cached external-ledger balances with
// a freshness window.
type BalanceService interface {
	// GetBalance returns the confirmed/unconfirmed pair for the owner's
	// wallet. forceRefresh bypasses the cache; a failed external query
	// degrades to the cached value instead of failing the caller.
	GetBalance(ctx context.Context, ownerID int64, currency string, forceRefresh bool) (domain.Balance, error)
}

// ReservationService computes held amounts: funds already promised to open
// deals but not yet settled.
type ReservationService interface {
	// HeldAmount sums the user's pending sell-offer deals as counterparty
	// plus pending deals against the user's buy offers as issuer, each at
	// its gross (marked-up) amount. Pure read, no side effects.
	HeldAmount(ctx context.Context, userID int64, currency string) (decimal.Decimal, error)
}

// ComplianceService is the AML gate: rolling-window activity counters with
// per-window thresholds, backing an open-case block.
type ComplianceService interface {
	// Evaluate returns true when the user is blocked from settling, either
	// because a case is already open or because a threshold fired just now
	// (which opens a case as a side effect).
	Evaluate(ctx context.Context, userID int64) (bool, error)
	// EvaluateDestination re-runs the gate at the moment a payout address
	// becomes known, counting the destination toward the distinct-address
	// rule before deciding.
	EvaluateDestination(ctx context.Context, userID int64, destination string) (bool, error)
	// RecordDealInitiated bumps the rolling deal counters.
	RecordDealInitiated(ctx context.Context, userID int64) error
	// RecordTransferSettled bumps the settled-transfer counters and the
	// distinct-destination sets.
	RecordTransferSettled(ctx context.Context, userID int64, destination string) error
	// Resolve closes an open case: approve marks it completed (permanently
	// exempting the user), otherwise rejected.
	Resolve(ctx context.Context, caseID int64, approve bool) error
	// Resubmit opens a fresh case carrying new evidence for a user whose
	// previous case was rejected.
	Resubmit(ctx context.Context, userID int64, evidence []string) (*domain.ComplianceCase, error)
}

// DealService owns the deal lifecycle state machine. It is the single
// authority permitted to change a deal's status.
type DealService interface {
	Create(ctx context.Context, req CreateDealRequest) (*domain.Deal, error)
	// CounterpartyConfirm flips clientConfirmed; idempotent when already
	// confirmed, rejected with distinct reasons when expired or blocked.
	CounterpartyConfirm(ctx context.Context, dealID, userID int64) (*domain.Deal, error)
	// SetCounterpartyDetails records the counterparty's payout destination
	// or fiat account, gathered during the conversation.
	SetCounterpartyDetails(ctx context.Context, dealID, userID int64, details string) error
	// IssuerAcknowledge confirms receipt and triggers settlement. On
	// settlement failure the deal stays pending and the call is retryable.
	IssuerAcknowledge(ctx context.Context, dealID, issuerID int64) (*domain.Deal, error)
	// Cancel voids a pending deal before settlement; either party may
	// cancel while the counterparty has not confirmed.
	Cancel(ctx context.Context, dealID, actorID int64) (*domain.Deal, error)
	AdminBlock(ctx context.Context, dealID int64) (*domain.Deal, error)
	AdminUnblock(ctx context.Context, dealID int64) (*domain.Deal, error)
	// AdminBlockIssuer blocks the issuer's open offers and pending deals
	// in one atomic cascade; AdminUnblockIssuer reverses it.
	AdminBlockIssuer(ctx context.Context, issuerID int64) error
	AdminUnblockIssuer(ctx context.Context, issuerID int64) error
	// AdminForceComplete settles a blocked deal through the same guards as
	// IssuerAcknowledge. Only valid from BLOCKED.
	AdminForceComplete(ctx context.Context, dealID int64) (*domain.Deal, error)
	// Expire force-expires an unconfirmed deal past its deadline. Called
	// by the sweeper only.
	Expire(ctx context.Context, dealID int64) (bool, error)
}

// CreateDealRequest carries everything deal admission needs; the core never
// reaches into conversation state.
type CreateDealRequest struct {
	OfferID        int64
	CounterpartyID int64
	Amount         decimal.Decimal
	FiatCurrency   string
	// ReferrerID is the counterparty's referrer, zero when absent.
	ReferrerID int64
}

// SettlementService moves real funds for an approved deal.
type SettlementService interface {
	// Settle selects spendable funds, recomputes fees, builds the payout
	// and submits it, returning the external transaction id. Failures
	// before broadcast mutate nothing. Only the deal state machine calls
	// this.
	Settle(ctx context.Context, req SettlementRequest) (*SettlementResult, error)
}

// SettlementRequest is the fully-formed settlement instruction.
type SettlementRequest struct {
	Deal  *domain.Deal
	Offer *domain.Offer
	// ReferrerID receives the referral cut when nonzero.
	ReferrerID int64
}

// SettlementResult reports a successful payout.
type SettlementResult struct {
	TxID        string
	ReferralFee decimal.Decimal
}

// OfferService is the thin offer book.
type OfferService interface {
	Create(ctx context.Context, offer *domain.Offer) (*domain.Offer, error)
	Get(ctx context.Context, id int64) (*domain.Offer, error)
	// Edit mutates an open offer's fields; markup changes never propagate
	// to existing deals.
	Edit(ctx context.Context, issuerID int64, offer *domain.Offer) (*domain.Offer, error)
	Close(ctx context.Context, issuerID, offerID int64) error
	ListOpen(ctx context.Context, direction domain.OfferDirection, currency, fiat string) ([]domain.Offer, error)
	// Quote returns the offer's effective fiat price per crypto unit:
	// market price marked up by the offer's percentage.
	Quote(ctx context.Context, offerID int64, fiat string) (decimal.Decimal, error)
}
