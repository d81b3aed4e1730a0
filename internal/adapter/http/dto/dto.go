package dto

import (
	"github.com/shopspring/decimal"
)

// CreateOfferRequest is the request body for posting a new offer.
type CreateOfferRequest struct {
	Direction      string          `json:"direction" binding:"required,oneof=BUY SELL"`
	Currency       string          `json:"currency" binding:"required,currency_code"`
	FiatCurrencies []string        `json:"fiat_currencies" binding:"required,min=1,dive,currency_code"`
	PaymentDetails []string        `json:"payment_details,omitempty"`
	MinDealAmount  decimal.Decimal `json:"min_deal_amount" binding:"required"`
	MaxDealAmount  decimal.Decimal `json:"max_deal_amount" binding:"required"`
	MarkupPercent  decimal.Decimal `json:"markup_percent"`
}

// EditOfferRequest carries the mutable fields of an open offer.
type EditOfferRequest struct {
	FiatCurrencies []string        `json:"fiat_currencies" binding:"required,min=1,dive,currency_code"`
	PaymentDetails []string        `json:"payment_details,omitempty"`
	MinDealAmount  decimal.Decimal `json:"min_deal_amount" binding:"required"`
	MaxDealAmount  decimal.Decimal `json:"max_deal_amount" binding:"required"`
	MarkupPercent  decimal.Decimal `json:"markup_percent"`
}

// CreateDealRequest is the request body for accepting an offer.
type CreateDealRequest struct {
	OfferID      int64           `json:"offer_id" binding:"required,gt=0"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	FiatCurrency string          `json:"fiat_currency" binding:"required,currency_code"`
	ReferrerID   int64           `json:"referrer_id,omitempty"`
}

// DealDetailsRequest records the counterparty's payout destination or
// fiat account for the deal.
type DealDetailsRequest struct {
	Details string `json:"details" binding:"required,max=256"`
}

// ResolveCaseRequest is the admin verdict on an open compliance case.
type ResolveCaseRequest struct {
	Approve bool `json:"approve"`
}

// ResubmitCaseRequest reopens review with fresh evidence after a rejection.
type ResubmitCaseRequest struct {
	Evidence []string `json:"evidence" binding:"required,min=1,dive,max=512"`
}

// BalanceResponse is the response for a balance query: the cached
// external-ledger pair plus the derived held and available amounts.
type BalanceResponse struct {
	Currency    string          `json:"currency"`
	Confirmed   decimal.Decimal `json:"confirmed"`
	Unconfirmed decimal.Decimal `json:"unconfirmed"`
	Held        decimal.Decimal `json:"held"`
	Available   decimal.Decimal `json:"available"`
}

// QuoteResponse is the effective fiat price per crypto unit for an offer.
type QuoteResponse struct {
	OfferID int64           `json:"offer_id"`
	Fiat    string          `json:"fiat"`
	Price   decimal.Decimal `json:"price"`
}
