package postgres

import (
	"context"
	"fmt"

	"github.com/RuslanName/P2PBot-sub000/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// SettlementLegRepo implements ports.SettlementLegRepository: the journal
// that makes account-based settlement sagas resumable.
type SettlementLegRepo struct {
	pool Pool
}

// NewSettlementLegRepo creates a new SettlementLegRepo.
func NewSettlementLegRepo(pool Pool) *SettlementLegRepo {
	return &SettlementLegRepo{pool: pool}
}

const legColumns = `id, deal_id, kind, idempotency_key, destination, amount::text, tx_id, status, created_at`

func scanLeg(row pgx.Row) (*domain.SettlementLeg, error) {
	l := &domain.SettlementLeg{}
	var amountStr string
	err := row.Scan(
		&l.ID, &l.DealID, &l.Kind, &l.IdempotencyKey, &l.Destination,
		&amountStr, &l.TxID, &l.Status, &l.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if l.Amount, err = decimal.NewFromString(amountStr); err != nil {
		return nil, fmt.Errorf("parse leg amount: %w", err)
	}
	return l, nil
}

// Ensure inserts the leg unless a row with its idempotency key already
// exists, and returns the stored row either way. The unique index on
// idempotency_key is what makes a retried saga address the exact transfer it
// may already have issued.
func (r *SettlementLegRepo) Ensure(ctx context.Context, leg *domain.SettlementLeg) (*domain.SettlementLeg, error) {
	query := `INSERT INTO settlement_legs
		(deal_id, kind, idempotency_key, destination, amount, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (idempotency_key) DO UPDATE SET destination = settlement_legs.destination
		RETURNING ` + legColumns

	stored, err := scanLeg(r.pool.QueryRow(ctx, query,
		leg.DealID, leg.Kind, leg.IdempotencyKey, leg.Destination,
		leg.Amount.String(), leg.Status, leg.CreatedAt,
	))
	if err != nil {
		return nil, fmt.Errorf("ensure settlement leg: %w", err)
	}
	return stored, nil
}

// ListByDeal returns the deal's legs in insertion order.
func (r *SettlementLegRepo) ListByDeal(ctx context.Context, dealID int64) ([]domain.SettlementLeg, error) {
	query := `SELECT ` + legColumns + ` FROM settlement_legs WHERE deal_id = $1 ORDER BY id ASC`

	rows, err := r.pool.Query(ctx, query, dealID)
	if err != nil {
		return nil, fmt.Errorf("list settlement legs: %w", err)
	}
	defer rows.Close()

	var legs []domain.SettlementLeg
	for rows.Next() {
		l, err := scanLeg(rows)
		if err != nil {
			return nil, fmt.Errorf("scan settlement leg: %w", err)
		}
		legs = append(legs, *l)
	}
	return legs, rows.Err()
}

// MarkConfirmed records the external transaction id and confirms the leg.
func (r *SettlementLegRepo) MarkConfirmed(ctx context.Context, id int64, txID string) error {
	query := `UPDATE settlement_legs SET status = $2, tx_id = $3 WHERE id = $1`

	_, err := r.pool.Exec(ctx, query, id, domain.LegStatusConfirmed, txID)
	if err != nil {
		return fmt.Errorf("confirm settlement leg: %w", err)
	}
	return nil
}
