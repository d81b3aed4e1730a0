package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Sentinel errors for domain-level invariant violations.
var (
	errInvalidDirection    = errors.New("offer direction must be BUY or SELL")
	errNoFiatCurrencies    = errors.New("offer must accept at least one fiat currency")
	errPaymentDetailParity = errors.New("buy offer requires one payment detail per fiat currency")
	errSellOfferDetails    = errors.New("sell offer must not carry payment details")
	errInvalidDealBounds   = errors.New("deal bounds must satisfy 0 < min <= max")

	// ErrIllegalTransition is returned when a status change is not an edge
	// of the deal lifecycle graph.
	ErrIllegalTransition = errors.New("illegal deal status transition")
)

// DealStatus represents the lifecycle state of a deal.
type DealStatus string

const (
	DealStatusPending   DealStatus = "PENDING"
	DealStatusCompleted DealStatus = "COMPLETED"
	DealStatusBlocked   DealStatus = "BLOCKED"
	DealStatusExpired   DealStatus = "EXPIRED"
	DealStatusCancelled DealStatus = "CANCELLED"
)

// dealTransitions is the complete lifecycle graph. PENDING fans out to every
// other state; BLOCKED can return to PENDING (administrative unblock) or move
// to COMPLETED (administrative force-complete). Everything else is terminal.
var dealTransitions = map[DealStatus][]DealStatus{
	DealStatusPending:   {DealStatusCompleted, DealStatusBlocked, DealStatusExpired, DealStatusCancelled},
	DealStatusBlocked:   {DealStatusPending, DealStatusCompleted},
	DealStatusCompleted: {},
	DealStatusExpired:   {},
	DealStatusCancelled: {},
}

// CanTransition reports whether from -> to is an edge of the lifecycle graph.
func CanTransition(from, to DealStatus) bool {
	for _, next := range dealTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Deal is a single accepted trade against an offer, tracked through
// settlement. Deals are never deleted.
type Deal struct {
	ID              int64           `json:"id"`
	OfferID         int64           `json:"offer_id"`
	CounterpartyID  int64           `json:"counterparty_id"`
	// ReferrerID is the counterparty's referrer, captured at creation so the
	// settlement can attribute the referral cut. Zero when absent.
	ReferrerID   int64           `json:"referrer_id,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	FiatCurrency string          `json:"fiat_currency"`
	// MarkupPercent is copied from the offer at creation and never changes,
	// even if the offer is edited afterwards.
	MarkupPercent       decimal.Decimal  `json:"markup_percent"`
	CounterpartyDetails string           `json:"counterparty_details,omitempty"`
	ClientConfirmed     bool             `json:"client_confirmed"`
	SettlementTxID      *string          `json:"settlement_tx_id,omitempty"`
	ReferralFee         *decimal.Decimal `json:"referral_fee,omitempty"`
	Status              DealStatus       `json:"status"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
}

// IsTerminal returns true if the deal is in a final state.
func (d *Deal) IsTerminal() bool {
	return d.Status == DealStatusCompleted ||
		d.Status == DealStatusExpired ||
		d.Status == DealStatusCancelled
}

// GrossAmount is the crypto total the paying side commits to the deal:
// amount marked up by the offer's percentage at creation time. The same
// formula feeds held-amount accounting and the settlement payout.
func (d *Deal) GrossAmount() decimal.Decimal {
	return GrossAmount(d.Amount, d.MarkupPercent)
}

// GrossAmount computes amount x (1 + markupPercent/100).
func GrossAmount(amount, markupPercent decimal.Decimal) decimal.Decimal {
	factor := decimal.NewFromInt(1).Add(markupPercent.Div(decimal.NewFromInt(100)))
	return amount.Mul(factor)
}

// ExpiresAt returns the moment an unconfirmed deal becomes sweepable.
func (d *Deal) ExpiresAt(ttl time.Duration) time.Time {
	return d.CreatedAt.Add(ttl)
}
