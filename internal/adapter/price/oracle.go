// Package price implements the upstream fiat price oracle against a
// ticker-style REST endpoint.
package price

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
)

// Oracle quotes (currency, fiat) pairs from an exchange ticker endpoint.
// Wrap it in the redis PriceCache before handing it to services.
type Oracle struct {
	baseURL string
	http    *http.Client
}

// NewOracle creates an oracle against the exchange at baseURL.
func NewOracle(baseURL string) *Oracle {
	return &Oracle{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Price fetches the last traded price for the pair.
func (o *Oracle) Price(ctx context.Context, currency, fiat string) (decimal.Decimal, error) {
	endpoint := fmt.Sprintf("%s/api/v3/ticker/price?symbol=%s", o.baseURL,
		url.QueryEscape(currency+fiat))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("build price request: %w", err)
	}

	resp, err := o.http.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("fetch price %s/%s: %w", currency, fiat, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return decimal.Zero, fmt.Errorf("read price response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("price endpoint returned %d for %s/%s", resp.StatusCode, currency, fiat)
	}

	var ticker struct {
		Symbol string `json:"symbol"`
		Price  string `json:"price"`
	}
	if err := json.Unmarshal(body, &ticker); err != nil {
		return decimal.Zero, fmt.Errorf("decode price response: %w", err)
	}

	price, err := decimal.NewFromString(ticker.Price)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse price %q: %w", ticker.Price, err)
	}
	if !price.IsPositive() {
		return decimal.Zero, fmt.Errorf("non-positive price for %s/%s", currency, fiat)
	}
	return price, nil
}
