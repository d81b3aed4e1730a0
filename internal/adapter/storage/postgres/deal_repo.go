package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RuslanName/P2PBot-sub000/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// DealRepo implements ports.DealRepository.
type DealRepo struct {
	pool Pool
}

// NewDealRepo creates a new DealRepo.
func NewDealRepo(pool Pool) *DealRepo {
	return &DealRepo{pool: pool}
}

const dealColumns = `id, offer_id, counterparty_id, referrer_id, amount::text, fiat_currency, markup_percent::text,
	counterparty_details, client_confirmed, settlement_tx_id, referral_fee::text, status, created_at, updated_at`

func scanDeal(row pgx.Row) (*domain.Deal, error) {
	d := &domain.Deal{}
	var amountStr, markupStr string
	var referralStr *string
	err := row.Scan(
		&d.ID, &d.OfferID, &d.CounterpartyID, &d.ReferrerID, &amountStr, &d.FiatCurrency, &markupStr,
		&d.CounterpartyDetails, &d.ClientConfirmed, &d.SettlementTxID, &referralStr,
		&d.Status, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if d.Amount, err = decimal.NewFromString(amountStr); err != nil {
		return nil, fmt.Errorf("parse deal amount: %w", err)
	}
	if d.MarkupPercent, err = decimal.NewFromString(markupStr); err != nil {
		return nil, fmt.Errorf("parse deal markup: %w", err)
	}
	if referralStr != nil {
		fee, err := decimal.NewFromString(*referralStr)
		if err != nil {
			return nil, fmt.Errorf("parse referral fee: %w", err)
		}
		d.ReferralFee = &fee
	}
	return d, nil
}

// Create inserts a new deal inside the admission transaction and fills in
// its assigned id.
func (r *DealRepo) Create(ctx context.Context, tx pgx.Tx, d *domain.Deal) error {
	query := `INSERT INTO deals
		(offer_id, counterparty_id, referrer_id, amount, fiat_currency, markup_percent,
		 counterparty_details, client_confirmed, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	err := tx.QueryRow(ctx, query,
		d.OfferID, d.CounterpartyID, d.ReferrerID, d.Amount.String(), d.FiatCurrency, d.MarkupPercent.String(),
		d.CounterpartyDetails, d.ClientConfirmed, d.Status, d.CreatedAt, d.UpdatedAt,
	).Scan(&d.ID)
	if err != nil {
		return fmt.Errorf("insert deal: %w", err)
	}
	return nil
}

// GetByID fetches a deal by id. Returns nil, nil when absent.
func (r *DealRepo) GetByID(ctx context.Context, id int64) (*domain.Deal, error) {
	query := `SELECT ` + dealColumns + ` FROM deals WHERE id = $1`

	d, err := scanDeal(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get deal by id: %w", err)
	}
	return d, nil
}

// UpdateStatusIf compare-and-sets the deal status. The conditional WHERE is
// what makes concurrent sweeper/confirm/admin races resolve to exactly one
// winner.
func (r *DealRepo) UpdateStatusIf(ctx context.Context, tx pgx.Tx, id int64, from, to domain.DealStatus) (bool, error) {
	query := `UPDATE deals SET status = $3, updated_at = now() WHERE id = $1 AND status = $2`

	var tag interface{ RowsAffected() int64 }
	var err error
	if tx != nil {
		tag, err = tx.Exec(ctx, query, id, from, to)
	} else {
		tag, err = r.pool.Exec(ctx, query, id, from, to)
	}
	if err != nil {
		return false, fmt.Errorf("update deal status: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// SetClientConfirmed flips the confirmation flag; only effective while the
// deal is still pending.
func (r *DealRepo) SetClientConfirmed(ctx context.Context, id int64) (bool, error) {
	query := `UPDATE deals SET client_confirmed = TRUE, updated_at = now()
		WHERE id = $1 AND status = $2`

	tag, err := r.pool.Exec(ctx, query, id, domain.DealStatusPending)
	if err != nil {
		return false, fmt.Errorf("set client confirmed: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// SetCounterpartyDetails records the counterparty's payout destination.
func (r *DealRepo) SetCounterpartyDetails(ctx context.Context, id int64, details string) error {
	query := `UPDATE deals SET counterparty_details = $2, updated_at = now() WHERE id = $1`

	if _, err := r.pool.Exec(ctx, query, id, details); err != nil {
		return fmt.Errorf("set counterparty details: %w", err)
	}
	return nil
}

// Complete transitions the deal to COMPLETED with its settlement transaction
// id and, when nonzero, the referral fee, in one conditional write.
func (r *DealRepo) Complete(ctx context.Context, tx pgx.Tx, id int64, from domain.DealStatus, txID string, referralFee decimal.Decimal) (bool, error) {
	query := `UPDATE deals SET status = $3, settlement_tx_id = $4, referral_fee = $5, updated_at = now()
		WHERE id = $1 AND status = $2`

	var fee *string
	if referralFee.IsPositive() {
		s := referralFee.String()
		fee = &s
	}
	var tag interface{ RowsAffected() int64 }
	var err error
	if tx != nil {
		tag, err = tx.Exec(ctx, query, id, from, domain.DealStatusCompleted, txID, fee)
	} else {
		tag, err = r.pool.Exec(ctx, query, id, from, domain.DealStatusCompleted, txID, fee)
	}
	if err != nil {
		return false, fmt.Errorf("complete deal: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// HeldAsCounterparty sums gross amounts over the user's pending deals on
// sell-type offers: the counterparty is the eventual crypto payer there.
func (r *DealRepo) HeldAsCounterparty(ctx context.Context, userID int64, currency string) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(d.amount * (1 + d.markup_percent / 100)), 0)::text
		FROM deals d JOIN offers o ON o.id = d.offer_id
		WHERE d.counterparty_id = $1 AND d.status = $2 AND o.direction = $3 AND o.currency = $4`

	return r.heldQuery(ctx, query, userID, domain.DealStatusPending, domain.OfferDirectionSell, currency)
}

// HeldAsIssuer sums gross amounts over pending deals against the issuer's
// buy-type offers: the issuer is the eventual crypto payer there.
func (r *DealRepo) HeldAsIssuer(ctx context.Context, issuerID int64, currency string) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(d.amount * (1 + d.markup_percent / 100)), 0)::text
		FROM deals d JOIN offers o ON o.id = d.offer_id
		WHERE o.issuer_id = $1 AND d.status = $2 AND o.direction = $3 AND o.currency = $4`

	return r.heldQuery(ctx, query, issuerID, domain.DealStatusPending, domain.OfferDirectionBuy, currency)
}

func (r *DealRepo) heldQuery(ctx context.Context, query string, args ...any) (decimal.Decimal, error) {
	var sumStr string
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&sumStr); err != nil {
		return decimal.Zero, fmt.Errorf("held amount query: %w", err)
	}
	held, err := decimal.NewFromString(sumStr)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse held amount: %w", err)
	}
	return held, nil
}

// ListExpirable returns pending, unconfirmed deals created before the cutoff.
func (r *DealRepo) ListExpirable(ctx context.Context, cutoff time.Time) ([]domain.Deal, error) {
	query := `SELECT ` + dealColumns + ` FROM deals
		WHERE status = $1 AND client_confirmed = FALSE AND created_at < $2
		ORDER BY id ASC`

	rows, err := r.pool.Query(ctx, query, domain.DealStatusPending, cutoff)
	if err != nil {
		return nil, fmt.Errorf("list expirable deals: %w", err)
	}
	defer rows.Close()

	var deals []domain.Deal
	for rows.Next() {
		d, err := scanDeal(rows)
		if err != nil {
			return nil, fmt.Errorf("scan deal: %w", err)
		}
		deals = append(deals, *d)
	}
	return deals, rows.Err()
}

// ExpireIfUnconfirmed transitions the deal to EXPIRED only while it is still
// pending, unconfirmed and past the cutoff. Re-checking the flag here closes
// the race against a confirmation landing after the sweeper's list pass.
func (r *DealRepo) ExpireIfUnconfirmed(ctx context.Context, id int64, cutoff time.Time) (bool, error) {
	query := `UPDATE deals SET status = $2, updated_at = now()
		WHERE id = $1 AND status = $3 AND client_confirmed = FALSE AND created_at < $4`

	tag, err := r.pool.Exec(ctx, query, id, domain.DealStatusExpired, domain.DealStatusPending, cutoff)
	if err != nil {
		return false, fmt.Errorf("expire deal: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// UpdateStatusByIssuer cascades an administrative block or unblock over the
// issuer's deals. Must run inside the caller's transaction together with the
// matching offer cascade.
func (r *DealRepo) UpdateStatusByIssuer(ctx context.Context, tx pgx.Tx, issuerID int64, from, to domain.DealStatus) (int64, error) {
	query := `UPDATE deals SET status = $3, updated_at = now()
		WHERE status = $2 AND offer_id IN (SELECT id FROM offers WHERE issuer_id = $1)`

	tag, err := tx.Exec(ctx, query, issuerID, from, to)
	if err != nil {
		return 0, fmt.Errorf("cascade deal status: %w", err)
	}
	return tag.RowsAffected(), nil
}
