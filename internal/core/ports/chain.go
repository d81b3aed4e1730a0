package ports

import (
	"context"
	"fmt"
	"math/big"

	"github.com/RuslanName/P2PBot-sub000/internal/core/domain"

	"github.com/shopspring/decimal"
)

// Fee-rate urgency tiers passed to the fee quote.
const (
	FeeTierEconomy  = "economy"
	FeeTierStandard = "standard"
	FeeTierPriority = "priority"
)

// UTXOChain is the boundary to a BTC-like node/explorer. Amounts are base
// units (satoshi-like integers); signing happens node-side so decrypted key
// material only ever crosses this interface for the duration of one call.
type UTXOChain interface {
	// AddressBalance returns confirmed and unconfirmed base-unit amounts.
	AddressBalance(ctx context.Context, address string) (confirmed, unconfirmed int64, err error)
	ListUnspent(ctx context.Context, address string) ([]domain.UnspentOutput, error)
	// FeeRate quotes the current fee rate in base units per byte for the
	// given urgency tier.
	FeeRate(ctx context.Context, tier string) (int64, error)
	// SignAndBroadcast signs every input with the payer's secret, submits
	// the fully-signed transaction and returns its id.
	SignAndBroadcast(ctx context.Context, inputs []domain.UnspentOutput, outputs []domain.TxOutput, signingSecret string) (string, error)
}

// AccountChain is the boundary to an account-based chain carrying a token
// contract (ERC-20-like). Amounts are the token's smallest unit.
type AccountChain interface {
	// TokenBalance returns the confirmed and pending token balances.
	TokenBalance(ctx context.Context, address string) (confirmed, pending *big.Int, err error)
	// GasBalance returns the native-coin balance funding transfer gas.
	GasBalance(ctx context.Context, address string) (*big.Int, error)
	// TransferGasCost estimates the native cost of one token transfer.
	TransferGasCost(ctx context.Context) (*big.Int, error)
	// Transfer issues a signed token transfer and returns its id.
	Transfer(ctx context.Context, signingSecret, to string, amount *big.Int) (string, error)
	// SwapForGas tops up the payer's native gas from the platform-custodied
	// treasury. The payer has no gas to sign anything at this point, so the
	// treasury fronts it and the platform fee leg recoups the value.
	SwapForGas(ctx context.Context, payerAddress string, gas *big.Int) error
}

// ChainClients resolves the chain adapter for a currency. A currency is
// registered on exactly one of the two maps, matching its family.
type ChainClients struct {
	UTXO    map[string]UTXOChain
	Account map[string]AccountChain
}

// UTXOFor returns the UTXO client for the currency.
func (c ChainClients) UTXOFor(currency string) (UTXOChain, error) {
	client, ok := c.UTXO[currency]
	if !ok {
		return nil, fmt.Errorf("no UTXO chain client for %s", currency)
	}
	return client, nil
}

// AccountFor returns the account-chain client for the currency.
func (c ChainClients) AccountFor(currency string) (AccountChain, error) {
	client, ok := c.Account[currency]
	if !ok {
		return nil, fmt.Errorf("no account chain client for %s", currency)
	}
	return client, nil
}

// PriceOracle quotes fiat prices; implementations cache per (currency, fiat)
// pair with a short TTL.
type PriceOracle interface {
	Price(ctx context.Context, currency, fiat string) (decimal.Decimal, error)
}

// KeyVault decrypts stored key material. Callers must never persist the
// decrypted secret.
type KeyVault interface {
	Decrypt(ciphertext string) (string, error)
}

// Notifier delivers user-facing events. Fire-and-forget from the core's
// perspective: delivery failures are logged, never propagated.
type Notifier interface {
	Notify(ctx context.Context, recipientID int64, message string, actions ...string) error
}
