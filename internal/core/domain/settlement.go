package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SettlementLegKind identifies one transfer of an account-based settlement
// saga. Legs execute in declaration order.
type SettlementLegKind string

const (
	LegRecipient SettlementLegKind = "RECIPIENT"
	LegPlatform  SettlementLegKind = "PLATFORM"
	LegReferral  SettlementLegKind = "REFERRAL"
)

// LegStatus is the execution state of a settlement leg.
type LegStatus string

const (
	LegStatusPending   LegStatus = "PENDING"
	LegStatusConfirmed LegStatus = "CONFIRMED"
)

// legKeyNamespace scopes deterministic leg idempotency keys.
var legKeyNamespace = uuid.MustParse("5f0f21a6-9c15-4a3b-8a7e-3dd41c6e90b2")

// SettlementLeg journals one transfer of an account-based settlement so a
// retried attempt never pays the same leg twice.
type SettlementLeg struct {
	ID             int64             `json:"id"`
	DealID         int64             `json:"deal_id"`
	Kind           SettlementLegKind `json:"kind"`
	IdempotencyKey uuid.UUID         `json:"idempotency_key"`
	Destination    string            `json:"destination"`
	Amount         decimal.Decimal   `json:"amount"`
	TxID           *string           `json:"tx_id,omitempty"`
	Status         LegStatus         `json:"status"`
	CreatedAt      time.Time         `json:"created_at"`
}

// LegIdempotencyKey derives the stable key for a deal's leg. The same deal
// and leg always map to the same key, so a resumed saga addresses the exact
// transfer it may have already issued.
func LegIdempotencyKey(dealID int64, kind SettlementLegKind) uuid.UUID {
	return uuid.NewSHA1(legKeyNamespace, []byte(fmt.Sprintf("deal:%d:leg:%s", dealID, kind)))
}

// UnspentOutput is a spendable output reported by a UTXO-chain explorer,
// amounts in base units.
type UnspentOutput struct {
	TxID   string `json:"tx_id"`
	Vout   uint32 `json:"vout"`
	Amount int64  `json:"amount"`
}

// TxOutput is one output of a payout under construction, amount in base units.
type TxOutput struct {
	Address string `json:"address"`
	Amount  int64  `json:"amount"`
}
