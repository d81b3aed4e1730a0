package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Transactor hands out pgx transactions so services can group writes
// without depending on the pool type.
type Transactor struct {
	pool Pool
}

func NewTransactor(pool Pool) *Transactor {
	return &Transactor{pool: pool}
}

// Begin opens a transaction; the caller owns commit and rollback.
func (t *Transactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return t.pool.Begin(ctx)
}
