package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/RuslanName/P2PBot-sub000/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// OfferRepo implements ports.OfferRepository.
type OfferRepo struct {
	pool Pool
}

// NewOfferRepo creates a new OfferRepo.
func NewOfferRepo(pool Pool) *OfferRepo {
	return &OfferRepo{pool: pool}
}

const offerColumns = `id, issuer_id, direction, currency, fiat_currencies, payment_details,
	min_deal_amount::text, max_deal_amount::text, markup_percent::text, status, created_at, updated_at`

func scanOffer(row pgx.Row) (*domain.Offer, error) {
	o := &domain.Offer{}
	var minStr, maxStr, markupStr string
	err := row.Scan(
		&o.ID, &o.IssuerID, &o.Direction, &o.Currency, &o.FiatCurrencies, &o.PaymentDetails,
		&minStr, &maxStr, &markupStr, &o.Status, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if o.MinDealAmount, err = decimal.NewFromString(minStr); err != nil {
		return nil, fmt.Errorf("parse min deal amount: %w", err)
	}
	if o.MaxDealAmount, err = decimal.NewFromString(maxStr); err != nil {
		return nil, fmt.Errorf("parse max deal amount: %w", err)
	}
	if o.MarkupPercent, err = decimal.NewFromString(markupStr); err != nil {
		return nil, fmt.Errorf("parse markup percent: %w", err)
	}
	return o, nil
}

// Create inserts a new offer and fills in its assigned id.
func (r *OfferRepo) Create(ctx context.Context, o *domain.Offer) error {
	query := `INSERT INTO offers
		(issuer_id, direction, currency, fiat_currencies, payment_details,
		 min_deal_amount, max_deal_amount, markup_percent, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	err := r.pool.QueryRow(ctx, query,
		o.IssuerID, o.Direction, o.Currency, o.FiatCurrencies, o.PaymentDetails,
		o.MinDealAmount.String(), o.MaxDealAmount.String(), o.MarkupPercent.String(),
		o.Status, o.CreatedAt, o.UpdatedAt,
	).Scan(&o.ID)
	if err != nil {
		return fmt.Errorf("insert offer: %w", err)
	}
	return nil
}

// GetByID fetches an offer by id. Returns nil, nil when absent.
func (r *OfferRepo) GetByID(ctx context.Context, id int64) (*domain.Offer, error) {
	query := `SELECT ` + offerColumns + ` FROM offers WHERE id = $1`

	o, err := scanOffer(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get offer by id: %w", err)
	}
	return o, nil
}

// Update persists the mutable fields of an offer.
func (r *OfferRepo) Update(ctx context.Context, o *domain.Offer) error {
	query := `UPDATE offers SET
		fiat_currencies = $2, payment_details = $3, min_deal_amount = $4,
		max_deal_amount = $5, markup_percent = $6, status = $7, updated_at = $8
		WHERE id = $1`

	_, err := r.pool.Exec(ctx, query,
		o.ID, o.FiatCurrencies, o.PaymentDetails,
		o.MinDealAmount.String(), o.MaxDealAmount.String(), o.MarkupPercent.String(),
		o.Status, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update offer: %w", err)
	}
	return nil
}

// ListOpen returns open offers matching direction, currency and accepted fiat.
func (r *OfferRepo) ListOpen(ctx context.Context, direction domain.OfferDirection, currency, fiat string) ([]domain.Offer, error) {
	query := `SELECT ` + offerColumns + ` FROM offers
		WHERE status = $1 AND direction = $2 AND currency = $3 AND $4 = ANY(fiat_currencies)
		ORDER BY markup_percent ASC, id ASC`

	rows, err := r.pool.Query(ctx, query, domain.OfferStatusOpen, direction, currency, fiat)
	if err != nil {
		return nil, fmt.Errorf("list open offers: %w", err)
	}
	defer rows.Close()

	var offers []domain.Offer
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan offer: %w", err)
		}
		offers = append(offers, *o)
	}
	return offers, rows.Err()
}

// ListByIssuer returns every offer of an issuer, newest first.
func (r *OfferRepo) ListByIssuer(ctx context.Context, issuerID int64) ([]domain.Offer, error) {
	query := `SELECT ` + offerColumns + ` FROM offers WHERE issuer_id = $1 ORDER BY id DESC`

	rows, err := r.pool.Query(ctx, query, issuerID)
	if err != nil {
		return nil, fmt.Errorf("list offers by issuer: %w", err)
	}
	defer rows.Close()

	var offers []domain.Offer
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan offer: %w", err)
		}
		offers = append(offers, *o)
	}
	return offers, rows.Err()
}

// UpdateStatusByIssuer flips all of the issuer's offers in `from` status to
// `to`. Runs inside the caller's transaction so the block cascade over offers
// and deals commits or rolls back as one.
func (r *OfferRepo) UpdateStatusByIssuer(ctx context.Context, tx pgx.Tx, issuerID int64, from, to domain.OfferStatus) (int64, error) {
	query := `UPDATE offers SET status = $3, updated_at = now() WHERE issuer_id = $1 AND status = $2`

	tag, err := tx.Exec(ctx, query, issuerID, from, to)
	if err != nil {
		return 0, fmt.Errorf("cascade offer status: %w", err)
	}
	return tag.RowsAffected(), nil
}
