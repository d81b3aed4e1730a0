package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RuslanName/P2PBot-sub000/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// ComplianceRepo implements ports.ComplianceRepository.
type ComplianceRepo struct {
	pool Pool
}

// NewComplianceRepo creates a new ComplianceRepo.
func NewComplianceRepo(pool Pool) *ComplianceRepo {
	return &ComplianceRepo{pool: pool}
}

const caseColumns = `id, user_id, reason, evidence, status, created_at, updated_at`

func scanCase(row pgx.Row) (*domain.ComplianceCase, error) {
	c := &domain.ComplianceCase{}
	err := row.Scan(&c.ID, &c.UserID, &c.Reason, &c.Evidence, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Create inserts a new case and fills in its assigned id.
func (r *ComplianceRepo) Create(ctx context.Context, c *domain.ComplianceCase) error {
	query := `INSERT INTO compliance_cases (user_id, reason, evidence, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	err := r.pool.QueryRow(ctx, query,
		c.UserID, c.Reason, c.Evidence, c.Status, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("insert compliance case: %w", err)
	}
	return nil
}

// GetByID fetches a case by id. Returns nil, nil when absent.
func (r *ComplianceRepo) GetByID(ctx context.Context, id int64) (*domain.ComplianceCase, error) {
	query := `SELECT ` + caseColumns + ` FROM compliance_cases WHERE id = $1`

	c, err := scanCase(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get case by id: %w", err)
	}
	return c, nil
}

// GetOpenByUser returns the user's open case, if any.
func (r *ComplianceRepo) GetOpenByUser(ctx context.Context, userID int64) (*domain.ComplianceCase, error) {
	query := `SELECT ` + caseColumns + ` FROM compliance_cases
		WHERE user_id = $1 AND status = $2 ORDER BY id DESC LIMIT 1`

	c, err := scanCase(r.pool.QueryRow(ctx, query, userID, domain.CaseStatusOpen))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get open case by user: %w", err)
	}
	return c, nil
}

// HasCompletedByUser reports whether the user ever passed a full review.
func (r *ComplianceRepo) HasCompletedByUser(ctx context.Context, userID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM compliance_cases WHERE user_id = $1 AND status = $2)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, userID, domain.CaseStatusCompleted).Scan(&exists); err != nil {
		return false, fmt.Errorf("check completed case: %w", err)
	}
	return exists, nil
}

// HasRejectedByUser reports whether the user has a rejected case on record.
func (r *ComplianceRepo) HasRejectedByUser(ctx context.Context, userID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM compliance_cases WHERE user_id = $1 AND status = $2)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, userID, domain.CaseStatusRejected).Scan(&exists); err != nil {
		return false, fmt.Errorf("check rejected case: %w", err)
	}
	return exists, nil
}

// UpdateStatusIf compare-and-sets the case status.
func (r *ComplianceRepo) UpdateStatusIf(ctx context.Context, id int64, from, to domain.CaseStatus) (bool, error) {
	query := `UPDATE compliance_cases SET status = $3, updated_at = now() WHERE id = $1 AND status = $2`

	tag, err := r.pool.Exec(ctx, query, id, from, to)
	if err != nil {
		return false, fmt.Errorf("update case status: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// ListExpirable returns open cases created before the cutoff.
func (r *ComplianceRepo) ListExpirable(ctx context.Context, cutoff time.Time) ([]domain.ComplianceCase, error) {
	query := `SELECT ` + caseColumns + ` FROM compliance_cases
		WHERE status = $1 AND created_at < $2 ORDER BY id ASC`

	rows, err := r.pool.Query(ctx, query, domain.CaseStatusOpen, cutoff)
	if err != nil {
		return nil, fmt.Errorf("list expirable cases: %w", err)
	}
	defer rows.Close()

	var cases []domain.ComplianceCase
	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			return nil, fmt.Errorf("scan case: %w", err)
		}
		cases = append(cases, *c)
	}
	return cases, rows.Err()
}
