package ports

import (
	"context"
	"time"

	"github.com/RuslanName/P2PBot-sub000/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// OfferRepository defines persistence operations for standing offers.
type OfferRepository interface {
	Create(ctx context.Context, offer *domain.Offer) error
	GetByID(ctx context.Context, id int64) (*domain.Offer, error)
	Update(ctx context.Context, offer *domain.Offer) error
	ListOpen(ctx context.Context, direction domain.OfferDirection, currency, fiat string) ([]domain.Offer, error)
	ListByIssuer(ctx context.Context, issuerID int64) ([]domain.Offer, error)
	// UpdateStatusByIssuer flips every offer of an issuer currently in
	// fromStatus to toStatus. Used by the administrative block cascade;
	// must run inside the caller's transaction.
	UpdateStatusByIssuer(ctx context.Context, tx pgx.Tx, issuerID int64, from, to domain.OfferStatus) (int64, error)
}

// DealRepository defines persistence operations for deals.
// Methods accepting pgx.Tx run inside transaction blocks.
type DealRepository interface {
	Create(ctx context.Context, tx pgx.Tx, deal *domain.Deal) error
	GetByID(ctx context.Context, id int64) (*domain.Deal, error)
	// UpdateStatusIf compare-and-sets the status; returns false when the
	// row was not in the expected prior status. Races between the sweeper
	// and live transitions resolve through this single conditional write.
	UpdateStatusIf(ctx context.Context, tx pgx.Tx, id int64, from, to domain.DealStatus) (bool, error)
	// SetClientConfirmed marks the counterparty confirmation; only flips
	// false -> true and only while the deal is pending.
	SetClientConfirmed(ctx context.Context, id int64) (bool, error)
	SetCounterpartyDetails(ctx context.Context, id int64, details string) error
	// Complete sets COMPLETED, the settlement transaction id and, when
	// nonzero, the attributable referral fee, atomically.
	Complete(ctx context.Context, tx pgx.Tx, id int64, from domain.DealStatus, txID string, referralFee decimal.Decimal) (bool, error)
	// HeldAsCounterparty sums gross amounts of a user's pending deals on
	// sell-type offers (the counterparty is the eventual payer).
	HeldAsCounterparty(ctx context.Context, userID int64, currency string) (decimal.Decimal, error)
	// HeldAsIssuer sums gross amounts of pending deals against an
	// issuer's buy-type offers (the issuer is the eventual payer).
	HeldAsIssuer(ctx context.Context, issuerID int64, currency string) (decimal.Decimal, error)
	// ListExpirable returns pending, unconfirmed deals created before the
	// cutoff, for the sweeper.
	ListExpirable(ctx context.Context, cutoff time.Time) ([]domain.Deal, error)
	// ExpireIfUnconfirmed moves the deal to EXPIRED only while it is still
	// pending, unconfirmed and past the cutoff. The extra conditions close
	// the race against a confirmation landing between list and expire.
	ExpireIfUnconfirmed(ctx context.Context, id int64, cutoff time.Time) (bool, error)
	// UpdateStatusByIssuer cascades an administrative block/unblock over
	// the issuer's deals; must run inside the caller's transaction.
	UpdateStatusByIssuer(ctx context.Context, tx pgx.Tx, issuerID int64, from, to domain.DealStatus) (int64, error)
}

// WalletRepository defines persistence operations for custodial wallets.
type WalletRepository interface {
	Create(ctx context.Context, wallet *domain.Wallet) error
	GetByID(ctx context.Context, id int64) (*domain.Wallet, error)
	GetByOwner(ctx context.Context, ownerID int64, currency string) (*domain.Wallet, error)
	// UpdateBalances persists a fresh ledger query result with its
	// checked-at timestamp.
	UpdateBalances(ctx context.Context, walletID int64, confirmed, unconfirmed decimal.Decimal, checkedAt time.Time) error
}

// ComplianceRepository defines persistence for compliance cases.
type ComplianceRepository interface {
	Create(ctx context.Context, c *domain.ComplianceCase) error
	GetByID(ctx context.Context, id int64) (*domain.ComplianceCase, error)
	GetOpenByUser(ctx context.Context, userID int64) (*domain.ComplianceCase, error)
	// HasCompletedByUser reports whether the user ever passed a full
	// review; a completed case suppresses automatic triggers permanently.
	HasCompletedByUser(ctx context.Context, userID int64) (bool, error)
	// HasRejectedByUser reports whether the user has a rejected case,
	// which is what makes them eligible to resubmit evidence.
	HasRejectedByUser(ctx context.Context, userID int64) (bool, error)
	UpdateStatusIf(ctx context.Context, id int64, from, to domain.CaseStatus) (bool, error)
	// ListExpirable returns open cases created before the cutoff, for the
	// sweeper's auto-reject pass.
	ListExpirable(ctx context.Context, cutoff time.Time) ([]domain.ComplianceCase, error)
}

// SettlementLegRepository journals the legs of account-based settlements.
type SettlementLegRepository interface {
	// Ensure inserts the leg if no row with its idempotency key exists and
	// returns the stored row either way.
	Ensure(ctx context.Context, leg *domain.SettlementLeg) (*domain.SettlementLeg, error)
	ListByDeal(ctx context.Context, dealID int64) ([]domain.SettlementLeg, error)
	MarkConfirmed(ctx context.Context, id int64, txID string) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
