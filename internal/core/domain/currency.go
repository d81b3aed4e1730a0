package domain

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// CurrencyFamily distinguishes how a currency settles on-chain.
type CurrencyFamily string

const (
	// FamilyUTXO settles through unspent-output selection and a single
	// multi-output transaction (BTC-like chains).
	FamilyUTXO CurrencyFamily = "UTXO"
	// FamilyAccount settles through sequential token transfers on an
	// account-based chain (ERC-20-like tokens).
	FamilyAccount CurrencyFamily = "ACCOUNT"
)

// Currency describes a supported crypto currency and its chain parameters.
type Currency struct {
	Code          string
	Family        CurrencyFamily
	BaseDivisor   int64 // base units per whole unit (1e8 for BTC, 1e6 for USDT)
	FixedFee      decimal.Decimal // flat network fee for account-family currencies
	FallbackRate  int64           // sat/byte fallback when the fee quote is down
	TokenContract string          // contract address, account family only
}

// FromBase converts an integer base-unit amount to a decimal amount.
func (c Currency) FromBase(base int64) decimal.Decimal {
	return decimal.NewFromInt(base).Div(decimal.NewFromInt(c.BaseDivisor))
}

// ToBase converts a decimal amount to integer base units, truncating
// sub-base precision. Safe for satoshi-scale divisors only; 18-decimal
// token amounts exceed int64 and must go through ToBaseBig.
func (c Currency) ToBase(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(c.BaseDivisor)).IntPart()
}

// ToBaseBig converts a decimal amount to base units as a big integer, for
// account-chain calls that exceed int64 token precision.
func (c Currency) ToBaseBig(amount decimal.Decimal) *big.Int {
	return amount.Mul(decimal.NewFromInt(c.BaseDivisor)).BigInt()
}

// FromBaseBig converts a big-integer base-unit amount to a decimal amount.
func (c Currency) FromBaseBig(base *big.Int) decimal.Decimal {
	return decimal.NewFromBigInt(base, 0).Div(decimal.NewFromInt(c.BaseDivisor))
}

// CurrencyRegistry is the static set of supported currencies, seeded from
// configuration at startup.
type CurrencyRegistry map[string]Currency

// Get looks a currency up by code.
func (r CurrencyRegistry) Get(code string) (Currency, bool) {
	c, ok := r[code]
	return c, ok
}
