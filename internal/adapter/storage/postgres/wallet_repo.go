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

// WalletRepo implements ports.WalletRepository.
type WalletRepo struct {
	pool Pool
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(pool Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

const walletColumns = `id, owner_id, currency, address, confirmed::text, unconfirmed::text,
	key_ciphertext, checked_at, created_at`

func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	w := &domain.Wallet{}
	var confStr, unconfStr string
	err := row.Scan(
		&w.ID, &w.OwnerID, &w.Currency, &w.Address, &confStr, &unconfStr,
		&w.KeyCiphertext, &w.CheckedAt, &w.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if w.Confirmed, err = decimal.NewFromString(confStr); err != nil {
		return nil, fmt.Errorf("parse confirmed balance: %w", err)
	}
	if w.Unconfirmed, err = decimal.NewFromString(unconfStr); err != nil {
		return nil, fmt.Errorf("parse unconfirmed balance: %w", err)
	}
	return w, nil
}

// Create inserts a new wallet and fills in its assigned id.
func (r *WalletRepo) Create(ctx context.Context, w *domain.Wallet) error {
	query := `INSERT INTO wallets
		(owner_id, currency, address, confirmed, unconfirmed, key_ciphertext, checked_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	err := r.pool.QueryRow(ctx, query,
		w.OwnerID, w.Currency, w.Address, w.Confirmed.String(), w.Unconfirmed.String(),
		w.KeyCiphertext, w.CheckedAt, w.CreatedAt,
	).Scan(&w.ID)
	if err != nil {
		return fmt.Errorf("insert wallet: %w", err)
	}
	return nil
}

// GetByID fetches a wallet by id. Returns nil, nil when absent.
func (r *WalletRepo) GetByID(ctx context.Context, id int64) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE id = $1`

	w, err := scanWallet(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet by id: %w", err)
	}
	return w, nil
}

// GetByOwner fetches the owner's wallet for a currency. Returns nil, nil
// when absent.
func (r *WalletRepo) GetByOwner(ctx context.Context, ownerID int64, currency string) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE owner_id = $1 AND currency = $2`

	w, err := scanWallet(r.pool.QueryRow(ctx, query, ownerID, currency))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet by owner: %w", err)
	}
	return w, nil
}

// UpdateBalances persists a fresh ledger query result.
func (r *WalletRepo) UpdateBalances(ctx context.Context, walletID int64, confirmed, unconfirmed decimal.Decimal, checkedAt time.Time) error {
	query := `UPDATE wallets SET confirmed = $2, unconfirmed = $3, checked_at = $4 WHERE id = $1`

	_, err := r.pool.Exec(ctx, query, walletID, confirmed.String(), unconfirmed.String(), checkedAt)
	if err != nil {
		return fmt.Errorf("update wallet balances: %w", err)
	}
	return nil
}
