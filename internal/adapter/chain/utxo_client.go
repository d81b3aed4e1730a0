package chain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/RuslanName/P2PBot-sub000/internal/core/domain"

	"github.com/btcsuite/btcutil"
	"github.com/rs/zerolog"
)

// Confirmation-target block counts per fee urgency tier.
var feeTierTargets = map[string]int{
	"economy":  12,
	"standard": 6,
	"priority": 2,
}

// UTXOClient talks JSON-RPC to an address-indexed BTC-family node. It
// implements ports.UTXOChain; all amounts crossing it are satoshi-like
// base units.
type UTXOClient struct {
	url          string
	user         string
	password     string
	http         *http.Client
	fallbackRate int64
	log          zerolog.Logger
	reqID        atomic.Int64
}

// NewUTXOClient creates a JSON-RPC client for the node at url.
// fallbackRate is the base-units-per-byte rate used when the node declines
// to produce a fee estimate.
func NewUTXOClient(url, user, password string, fallbackRate int64, log zerolog.Logger) *UTXOClient {
	return &UTXOClient{
		url:          url,
		user:         user,
		password:     password,
		http:         &http.Client{Timeout: 30 * time.Second},
		fallbackRate: fallbackRate,
		log:          log.With().Str("component", "utxo_client").Logger(),
	}
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int64  `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

func (c *UTXOClient) call(ctx context.Context, method string, params []any, result any) error {
	body, err := json.Marshal(rpcRequest{
		JSONRPC: "1.0",
		ID:      c.reqID.Add(1),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return fmt.Errorf("marshal rpc request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build rpc request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.user != "" {
		req.SetBasicAuth(c.user, c.password)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("rpc %s: %w", method, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("rpc %s: read body: %w", method, err)
	}

	var rpcResp rpcResponse
	if err := json.Unmarshal(raw, &rpcResp); err != nil {
		return fmt.Errorf("rpc %s: decode response (status %d): %w", method, resp.StatusCode, err)
	}
	if rpcResp.Error != nil {
		return fmt.Errorf("rpc %s: %w", method, rpcResp.Error)
	}
	if result != nil {
		if err := json.Unmarshal(rpcResp.Result, result); err != nil {
			return fmt.Errorf("rpc %s: decode result: %w", method, err)
		}
	}
	return nil
}

// AddressBalance returns the confirmed balance and the net mempool delta for
// the address, both in base units.
func (c *UTXOClient) AddressBalance(ctx context.Context, address string) (int64, int64, error) {
	addrs := map[string][]string{"addresses": {address}}

	var balance struct {
		Balance int64 `json:"balance"`
	}
	if err := c.call(ctx, "getaddressbalance", []any{addrs}, &balance); err != nil {
		return 0, 0, err
	}

	var mempool []struct {
		Satoshis int64 `json:"satoshis"`
	}
	if err := c.call(ctx, "getaddressmempool", []any{addrs}, &mempool); err != nil {
		return 0, 0, err
	}
	var unconfirmed int64
	for _, entry := range mempool {
		unconfirmed += entry.Satoshis
	}
	return balance.Balance, unconfirmed, nil
}

// ListUnspent returns the address's spendable outputs.
func (c *UTXOClient) ListUnspent(ctx context.Context, address string) ([]domain.UnspentOutput, error) {
	addrs := map[string][]string{"addresses": {address}}

	var utxos []struct {
		TxID        string `json:"txid"`
		OutputIndex uint32 `json:"outputIndex"`
		Satoshis    int64  `json:"satoshis"`
	}
	if err := c.call(ctx, "getaddressutxos", []any{addrs}, &utxos); err != nil {
		return nil, err
	}

	out := make([]domain.UnspentOutput, 0, len(utxos))
	for _, u := range utxos {
		out = append(out, domain.UnspentOutput{
			TxID:   u.TxID,
			Vout:   u.OutputIndex,
			Amount: u.Satoshis,
		})
	}
	return out, nil
}

// FeeRate quotes the current rate in base units per byte for the tier.
// Falls back to the configured rate when the node has no estimate yet.
func (c *UTXOClient) FeeRate(ctx context.Context, tier string) (int64, error) {
	target, ok := feeTierTargets[tier]
	if !ok {
		target = feeTierTargets["standard"]
	}

	var estimate struct {
		FeeRate float64  `json:"feerate"`
		Errors  []string `json:"errors"`
	}
	if err := c.call(ctx, "estimatesmartfee", []any{target}, &estimate); err != nil {
		return 0, err
	}
	if estimate.FeeRate <= 0 {
		c.log.Warn().
			Strs("errors", estimate.Errors).
			Int64("fallback", c.fallbackRate).
			Msg("node produced no fee estimate, using fallback rate")
		return c.fallbackRate, nil
	}

	// estimatesmartfee answers in whole coins per kilobyte.
	perKB, err := btcutil.NewAmount(estimate.FeeRate)
	if err != nil {
		return 0, fmt.Errorf("convert fee estimate: %w", err)
	}
	perByte := int64(perKB) / 1000
	if perByte < 1 {
		perByte = 1
	}
	return perByte, nil
}

// SignAndBroadcast builds a raw transaction over the inputs and outputs,
// has the node sign it with the payer's key and submits it. The key only
// lives for the duration of the two calls.
func (c *UTXOClient) SignAndBroadcast(ctx context.Context, inputs []domain.UnspentOutput, outputs []domain.TxOutput, signingSecret string) (string, error) {
	rawInputs := make([]map[string]any, 0, len(inputs))
	for _, in := range inputs {
		rawInputs = append(rawInputs, map[string]any{"txid": in.TxID, "vout": in.Vout})
	}
	// The node takes one entry per address, so outputs sharing an address
	// (a referrer paying out to the recipient's wallet) are summed in base
	// units first. Overwriting instead would leak the difference to miners.
	perAddress := make(map[string]int64, len(outputs))
	for _, out := range outputs {
		perAddress[out.Address] += out.Amount
	}
	rawOutputs := make(map[string]float64, len(perAddress))
	for addr, sats := range perAddress {
		rawOutputs[addr] = btcutil.Amount(sats).ToBTC()
	}

	var rawTx string
	if err := c.call(ctx, "createrawtransaction", []any{rawInputs, rawOutputs}, &rawTx); err != nil {
		return "", err
	}

	var signed struct {
		Hex      string `json:"hex"`
		Complete bool   `json:"complete"`
	}
	if err := c.call(ctx, "signrawtransactionwithkey", []any{rawTx, []string{signingSecret}}, &signed); err != nil {
		return "", err
	}
	if !signed.Complete {
		return "", fmt.Errorf("transaction signing incomplete")
	}

	var txID string
	if err := c.call(ctx, "sendrawtransaction", []any{signed.Hex}, &txID); err != nil {
		return "", err
	}
	c.log.Info().Str("tx_id", txID).Int("inputs", len(inputs)).Int("outputs", len(outputs)).Msg("transaction broadcast")
	return txID, nil
}
