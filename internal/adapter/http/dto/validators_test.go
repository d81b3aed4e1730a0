package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrencyCodePattern(t *testing.T) {
	valid := []string{"BTC", "USDT", "USD", "RUB", "BTC2"}
	for _, code := range valid {
		assert.True(t, currencyCodeRe.MatchString(code), code)
	}

	invalid := []string{"", "btc", "B", "TOOLONGCODE", "US D", "BTC;"}
	for _, code := range invalid {
		assert.False(t, currencyCodeRe.MatchString(code), code)
	}
}
