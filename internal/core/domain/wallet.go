package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wallet is a platform-custodied address for one owner and currency. The
// cached balances are advisory: the external ledger is the source of truth,
// and a cache older than the freshness window must be re-queried before any
// operation that spends funds.
type Wallet struct {
	ID          int64           `json:"id"`
	OwnerID     int64           `json:"owner_id"`
	Currency    string          `json:"currency"`
	Address     string          `json:"address"`
	Confirmed   decimal.Decimal `json:"confirmed"`
	Unconfirmed decimal.Decimal `json:"unconfirmed"`
	// KeyCiphertext is the encrypted signing secret. It is only ever
	// decrypted through the key vault for the duration of a signing call.
	KeyCiphertext string    `json:"-"`
	CheckedAt     time.Time `json:"checked_at"`
	CreatedAt     time.Time `json:"created_at"`
}

// Stale reports whether the cached balance is older than the freshness window.
func (w *Wallet) Stale(window time.Duration, now time.Time) bool {
	return now.Sub(w.CheckedAt) > window
}

// Balance is a confirmed/unconfirmed pair in decimal units.
type Balance struct {
	Confirmed   decimal.Decimal `json:"confirmed"`
	Unconfirmed decimal.Decimal `json:"unconfirmed"`
}

// Available returns the spendable headroom once held funds are subtracted:
// confirmed - unconfirmed - held.
func (b Balance) Available(held decimal.Decimal) decimal.Decimal {
	return b.Confirmed.Sub(b.Unconfirmed).Sub(held)
}
