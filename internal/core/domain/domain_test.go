package domain

import (
	"math/big"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// TestDealTransitionTable asserts every edge of the lifecycle graph, allowed
// and disallowed, exhaustively.
func TestDealTransitionTable(t *testing.T) {
	all := []DealStatus{
		DealStatusPending, DealStatusCompleted, DealStatusBlocked,
		DealStatusExpired, DealStatusCancelled,
	}

	allowed := map[DealStatus]map[DealStatus]bool{
		DealStatusPending: {
			DealStatusCompleted: true,
			DealStatusBlocked:   true,
			DealStatusExpired:   true,
			DealStatusCancelled: true,
		},
		DealStatusBlocked: {
			DealStatusPending:   true,
			DealStatusCompleted: true,
		},
	}

	for _, from := range all {
		for _, to := range all {
			want := allowed[from][to]
			assert.Equalf(t, want, CanTransition(from, to), "transition %s -> %s", from, to)
		}
	}
}

func TestDealIsTerminal(t *testing.T) {
	terminal := map[DealStatus]bool{
		DealStatusPending:   false,
		DealStatusBlocked:   false,
		DealStatusCompleted: true,
		DealStatusExpired:   true,
		DealStatusCancelled: true,
	}
	for status, want := range terminal {
		d := &Deal{Status: status}
		assert.Equalf(t, want, d.IsTerminal(), "status %s", status)
	}
}

func TestGrossAmount(t *testing.T) {
	// amount=50 at 5% markup commits 52.5 units before the network fee.
	got := GrossAmount(dec("50"), dec("5"))
	assert.True(t, got.Equal(dec("52.5")), "got %s", got)

	// zero markup is the identity
	assert.True(t, GrossAmount(dec("10"), decimal.Zero).Equal(dec("10")))
}

func TestOfferValidate(t *testing.T) {
	valid := func() *Offer {
		return &Offer{
			IssuerID:       1,
			Direction:      OfferDirectionBuy,
			Currency:       "BTC",
			FiatCurrencies: []string{"USD", "EUR"},
			PaymentDetails: []string{"acct-usd", "acct-eur"},
			MinDealAmount:  dec("0.01"),
			MaxDealAmount:  dec("1"),
			MarkupPercent:  dec("5"),
		}
	}

	require.NoError(t, valid().Validate())

	t.Run("payment detail parity", func(t *testing.T) {
		o := valid()
		o.PaymentDetails = o.PaymentDetails[:1]
		assert.ErrorIs(t, o.Validate(), errPaymentDetailParity)
	})

	t.Run("sell offer carries no details", func(t *testing.T) {
		o := valid()
		o.Direction = OfferDirectionSell
		assert.ErrorIs(t, o.Validate(), errSellOfferDetails)
		o.PaymentDetails = nil
		assert.NoError(t, o.Validate())
	})

	t.Run("deal bounds", func(t *testing.T) {
		o := valid()
		o.MaxDealAmount = dec("0.001")
		assert.ErrorIs(t, o.Validate(), errInvalidDealBounds)
	})

	t.Run("no fiat currencies", func(t *testing.T) {
		o := valid()
		o.FiatCurrencies = nil
		o.PaymentDetails = nil
		assert.ErrorIs(t, o.Validate(), errNoFiatCurrencies)
	})
}

func TestOfferAcceptsAmount(t *testing.T) {
	o := &Offer{MinDealAmount: dec("10"), MaxDealAmount: dec("100")}
	assert.True(t, o.AcceptsAmount(dec("10")))
	assert.True(t, o.AcceptsAmount(dec("100")))
	assert.True(t, o.AcceptsAmount(dec("50")))
	assert.False(t, o.AcceptsAmount(dec("9.999")))
	assert.False(t, o.AcceptsAmount(dec("100.001")))
}

func TestWalletStale(t *testing.T) {
	now := time.Now().UTC()
	w := &Wallet{CheckedAt: now.Add(-299 * time.Second)}
	assert.False(t, w.Stale(300*time.Second, now))
	w.CheckedAt = now.Add(-301 * time.Second)
	assert.True(t, w.Stale(300*time.Second, now))
}

func TestBalanceAvailable(t *testing.T) {
	b := Balance{Confirmed: dec("10"), Unconfirmed: dec("2")}
	assert.True(t, b.Available(dec("3")).Equal(dec("5")))
}

func TestLegIdempotencyKeyDeterministic(t *testing.T) {
	a := LegIdempotencyKey(42, LegRecipient)
	b := LegIdempotencyKey(42, LegRecipient)
	assert.Equal(t, a, b)

	assert.NotEqual(t, a, LegIdempotencyKey(42, LegPlatform))
	assert.NotEqual(t, a, LegIdempotencyKey(43, LegRecipient))
}

func TestCurrencyBaseConversion(t *testing.T) {
	btc := Currency{Code: "BTC", Family: FamilyUTXO, BaseDivisor: 1e8}
	assert.True(t, btc.FromBase(52_500_000).Equal(dec("0.525")))
	assert.Equal(t, int64(52_500_000), btc.ToBase(dec("0.525")))
}

func TestCurrencyBaseConversionBig(t *testing.T) {
	dai := Currency{Code: "DAI", Family: FamilyAccount, BaseDivisor: 1e18}

	// 10 whole units exceed int64 in base units; the big path must carry
	// the full value.
	want, ok := new(big.Int).SetString("10000000000000000000", 10)
	require.True(t, ok)
	assert.Zero(t, dai.ToBaseBig(dec("10")).Cmp(want))
	assert.True(t, dai.FromBaseBig(want).Equal(dec("10")))
}
