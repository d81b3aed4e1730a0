package price

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOracle_Price(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("symbol") {
		case "BTCUSD":
			w.Write([]byte(`{"symbol":"BTCUSD","price":"64123.50"}`))
		case "XXXUSD":
			http.Error(w, `{"code":-1121,"msg":"Invalid symbol."}`, http.StatusBadRequest)
		default:
			w.Write([]byte(`{"symbol":"?","price":"bogus"}`))
		}
	}))
	defer srv.Close()

	oracle := NewOracle(srv.URL)
	ctx := context.Background()

	t.Run("quotes a listed pair", func(t *testing.T) {
		p, err := oracle.Price(ctx, "BTC", "USD")
		require.NoError(t, err)
		assert.True(t, p.Equal(decimal.RequireFromString("64123.50")))
	})

	t.Run("unknown symbol fails", func(t *testing.T) {
		_, err := oracle.Price(ctx, "XXX", "USD")
		assert.Error(t, err)
	})

	t.Run("unparseable price fails", func(t *testing.T) {
		_, err := oracle.Price(ctx, "LTC", "USD")
		assert.Error(t, err)
	})
}
