package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OfferDirection is the side of the trade from the counterparty's view:
// on a BUY offer the counterparty buys crypto (the issuer pays out), on a
// SELL offer the counterparty sells crypto (the counterparty pays out).
type OfferDirection string

const (
	OfferDirectionBuy  OfferDirection = "BUY"
	OfferDirectionSell OfferDirection = "SELL"
)

// OfferStatus represents the lifecycle state of a standing offer.
type OfferStatus string

const (
	OfferStatusOpen    OfferStatus = "OPEN"
	OfferStatusClosed  OfferStatus = "CLOSED"
	OfferStatusBlocked OfferStatus = "BLOCKED"
)

// Offer is a standing quote posted by an issuer. Offers are never deleted,
// only soft-closed.
type Offer struct {
	ID             int64           `json:"id"`
	IssuerID       int64           `json:"issuer_id"`
	Direction      OfferDirection  `json:"direction"`
	Currency       string          `json:"currency"`
	FiatCurrencies []string        `json:"fiat_currencies"`
	PaymentDetails []string        `json:"payment_details,omitempty"` // buy offers only, one per fiat currency
	MinDealAmount  decimal.Decimal `json:"min_deal_amount"`
	MaxDealAmount  decimal.Decimal `json:"max_deal_amount"`
	MarkupPercent  decimal.Decimal `json:"markup_percent"`
	Status         OfferStatus     `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// IsOpen returns true if the offer accepts new deals.
func (o *Offer) IsOpen() bool {
	return o.Status == OfferStatusOpen
}

// AcceptsAmount returns true if amount is within the offer's deal bounds.
func (o *Offer) AcceptsAmount(amount decimal.Decimal) bool {
	return amount.GreaterThanOrEqual(o.MinDealAmount) && amount.LessThanOrEqual(o.MaxDealAmount)
}

// PaymentDetailFor returns the issuer's payment detail string for the given
// fiat currency on a buy offer. Returns false if the fiat is not accepted.
func (o *Offer) PaymentDetailFor(fiat string) (string, bool) {
	for i, f := range o.FiatCurrencies {
		if f == fiat {
			if o.Direction == OfferDirectionBuy && i < len(o.PaymentDetails) {
				return o.PaymentDetails[i], true
			}
			return "", true
		}
	}
	return "", false
}

// Validate checks the structural invariants of an offer: buy offers carry
// exactly one payment detail per fiat currency, sell offers carry none.
func (o *Offer) Validate() error {
	if o.Direction != OfferDirectionBuy && o.Direction != OfferDirectionSell {
		return errInvalidDirection
	}
	if len(o.FiatCurrencies) == 0 {
		return errNoFiatCurrencies
	}
	if o.Direction == OfferDirectionBuy && len(o.PaymentDetails) != len(o.FiatCurrencies) {
		return errPaymentDetailParity
	}
	if o.Direction == OfferDirectionSell && len(o.PaymentDetails) != 0 {
		return errSellOfferDetails
	}
	if o.MinDealAmount.LessThanOrEqual(decimal.Zero) || o.MaxDealAmount.LessThan(o.MinDealAmount) {
		return errInvalidDealBounds
	}
	return nil
}
