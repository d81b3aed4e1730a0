package chain

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RuslanName/P2PBot-sub000/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeNode serves the three-call sign-and-broadcast sequence and records
// the output map handed to createrawtransaction.
type fakeNode struct {
	createOutputs map[string]float64
}

func (n *fakeNode) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID     int64 `json:"id"`
			Method string
			Params []json.RawMessage
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		var result string
		switch req.Method {
		case "createrawtransaction":
			n.createOutputs = map[string]float64{}
			if err := json.Unmarshal(req.Params[1], &n.createOutputs); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			result = `"rawhex"`
		case "signrawtransactionwithkey":
			result = `{"hex":"signedhex","complete":true}`
		case "sendrawtransaction":
			result = `"txid_1"`
		default:
			http.Error(w, "unexpected method "+req.Method, http.StatusBadRequest)
			return
		}
		fmt.Fprintf(w, `{"result":%s,"error":null,"id":%d}`, result, req.ID)
	}
}

func TestUTXOClient_SignAndBroadcast(t *testing.T) {
	node := &fakeNode{}
	srv := httptest.NewServer(node.handler())
	defer srv.Close()

	client := NewUTXOClient(srv.URL, "", "", 5, zerolog.Nop())
	inputs := []domain.UnspentOutput{{TxID: "prev", Vout: 0, Amount: 100_000_000}}

	t.Run("distinct addresses map one to one", func(t *testing.T) {
		txID, err := client.SignAndBroadcast(context.Background(), inputs, []domain.TxOutput{
			{Address: "addrA", Amount: 52_000_000},
			{Address: "addrB", Amount: 500_000},
		}, "wif")
		require.NoError(t, err)
		assert.Equal(t, "txid_1", txID)
		require.Len(t, node.createOutputs, 2)
		assert.InDelta(t, 0.52, node.createOutputs["addrA"], 1e-9)
		assert.InDelta(t, 0.005, node.createOutputs["addrB"], 1e-9)
	})

	t.Run("outputs sharing an address are summed", func(t *testing.T) {
		// A referrer whose wallet is the recipient address: both legs must
		// reach it, not just the last one written.
		_, err := client.SignAndBroadcast(context.Background(), inputs, []domain.TxOutput{
			{Address: "addrA", Amount: 52_000_000},
			{Address: "addrPlatform", Amount: 400_000},
			{Address: "addrA", Amount: 100_000},
		}, "wif")
		require.NoError(t, err)
		require.Len(t, node.createOutputs, 2)
		assert.InDelta(t, 0.521, node.createOutputs["addrA"], 1e-9)
		assert.InDelta(t, 0.004, node.createOutputs["addrPlatform"], 1e-9)
	})
}
