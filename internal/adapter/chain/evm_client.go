package chain

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	gethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/rs/zerolog"
)

// transferGasLimit covers a standard ERC-20 transfer.
const transferGasLimit = 65000

var transferMethodID = gethcrypto.Keccak256([]byte("transfer(address,uint256)"))[:4]

// EVMBackend is the subset of the Ethereum RPC the adapter uses.
type EVMBackend interface {
	CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	PendingCallContract(ctx context.Context, call ethereum.CallMsg) ([]byte, error)
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SendTransaction(ctx context.Context, tx *gethtypes.Transaction) error
}

// DialEVMBackend initialises an EVM RPC client for the endpoint.
func DialEVMBackend(endpoint string) (*ethclient.Client, error) {
	trimmed := strings.TrimSpace(endpoint)
	if trimmed == "" {
		return nil, fmt.Errorf("evm endpoint required")
	}
	return ethclient.Dial(trimmed)
}

// EVMClient implements ports.AccountChain for one token contract on an
// account-based chain. Token amounts are the contract's smallest unit,
// gas amounts are wei.
type EVMClient struct {
	backend     EVMBackend
	chainID     *big.Int
	token       common.Address
	treasuryKey string
	log         zerolog.Logger
}

// NewEVMClient creates an account-chain adapter for the token contract.
// treasuryKey is the hex-encoded key of the platform gas treasury funding
// SwapForGas top-ups.
func NewEVMClient(backend EVMBackend, chainID *big.Int, tokenContract, treasuryKey string, log zerolog.Logger) *EVMClient {
	return &EVMClient{
		backend:     backend,
		chainID:     chainID,
		token:       common.HexToAddress(tokenContract),
		treasuryKey: treasuryKey,
		log:         log.With().Str("component", "evm_client").Logger(),
	}
}

func balanceOfCalldata(owner common.Address) []byte {
	methodID := gethcrypto.Keccak256([]byte("balanceOf(address)"))[:4]
	return append(methodID, common.LeftPadBytes(owner.Bytes(), 32)...)
}

func transferCalldata(to common.Address, amount *big.Int) []byte {
	data := make([]byte, 0, 4+32+32)
	data = append(data, transferMethodID...)
	data = append(data, common.LeftPadBytes(to.Bytes(), 32)...)
	data = append(data, common.LeftPadBytes(amount.Bytes(), 32)...)
	return data
}

// TokenBalance returns the confirmed (latest block) and pending token
// balances of the address.
func (c *EVMClient) TokenBalance(ctx context.Context, address string) (*big.Int, *big.Int, error) {
	call := ethereum.CallMsg{
		To:   &c.token,
		Data: balanceOfCalldata(common.HexToAddress(address)),
	}

	confirmedRaw, err := c.backend.CallContract(ctx, call, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("token balance call: %w", err)
	}
	pendingRaw, err := c.backend.PendingCallContract(ctx, call)
	if err != nil {
		return nil, nil, fmt.Errorf("pending token balance call: %w", err)
	}
	return new(big.Int).SetBytes(confirmedRaw), new(big.Int).SetBytes(pendingRaw), nil
}

// GasBalance returns the native-coin balance of the address.
func (c *EVMClient) GasBalance(ctx context.Context, address string) (*big.Int, error) {
	balance, err := c.backend.BalanceAt(ctx, common.HexToAddress(address), nil)
	if err != nil {
		return nil, fmt.Errorf("gas balance: %w", err)
	}
	return balance, nil
}

// TransferGasCost estimates the native cost of one token transfer at the
// currently suggested gas price.
func (c *EVMClient) TransferGasCost(ctx context.Context) (*big.Int, error) {
	price, err := c.backend.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("suggest gas price: %w", err)
	}
	return new(big.Int).Mul(price, big.NewInt(transferGasLimit)), nil
}

// Transfer issues a signed token transfer from the key's address.
func (c *EVMClient) Transfer(ctx context.Context, signingSecret, to string, amount *big.Int) (string, error) {
	key, err := gethcrypto.HexToECDSA(strings.TrimPrefix(signingSecret, "0x"))
	if err != nil {
		return "", fmt.Errorf("parse signing key: %w", err)
	}
	from := gethcrypto.PubkeyToAddress(key.PublicKey)

	nonce, err := c.backend.PendingNonceAt(ctx, from)
	if err != nil {
		return "", fmt.Errorf("pending nonce: %w", err)
	}
	price, err := c.backend.SuggestGasPrice(ctx)
	if err != nil {
		return "", fmt.Errorf("suggest gas price: %w", err)
	}

	tx := gethtypes.NewTx(&gethtypes.LegacyTx{
		Nonce:    nonce,
		To:       &c.token,
		Gas:      transferGasLimit,
		GasPrice: price,
		Data:     transferCalldata(common.HexToAddress(to), amount),
	})
	signed, err := gethtypes.SignTx(tx, gethtypes.LatestSignerForChainID(c.chainID), key)
	if err != nil {
		return "", fmt.Errorf("sign transfer: %w", err)
	}
	if err := c.backend.SendTransaction(ctx, signed); err != nil {
		return "", fmt.Errorf("send transfer: %w", err)
	}

	txID := signed.Hash().Hex()
	c.log.Info().Str("tx_id", txID).Str("to", to).Msg("token transfer broadcast")
	return txID, nil
}

// SwapForGas tops up the payer's native balance from the platform treasury.
// The payer cannot sign anything without gas, so the treasury fronts the
// native amount and the platform fee leg recoups the value.
func (c *EVMClient) SwapForGas(ctx context.Context, payerAddress string, gas *big.Int) error {
	key, err := gethcrypto.HexToECDSA(strings.TrimPrefix(c.treasuryKey, "0x"))
	if err != nil {
		return fmt.Errorf("parse treasury key: %w", err)
	}
	from := gethcrypto.PubkeyToAddress(key.PublicKey)

	nonce, err := c.backend.PendingNonceAt(ctx, from)
	if err != nil {
		return fmt.Errorf("pending nonce: %w", err)
	}
	price, err := c.backend.SuggestGasPrice(ctx)
	if err != nil {
		return fmt.Errorf("suggest gas price: %w", err)
	}

	to := common.HexToAddress(payerAddress)
	tx := gethtypes.NewTx(&gethtypes.LegacyTx{
		Nonce:    nonce,
		To:       &to,
		Value:    gas,
		Gas:      21000,
		GasPrice: price,
	})
	signed, err := gethtypes.SignTx(tx, gethtypes.LatestSignerForChainID(c.chainID), key)
	if err != nil {
		return fmt.Errorf("sign gas top-up: %w", err)
	}
	if err := c.backend.SendTransaction(ctx, signed); err != nil {
		return fmt.Errorf("send gas top-up: %w", err)
	}

	c.log.Info().Str("payer", payerAddress).Str("wei", gas.String()).Msg("gas top-up sent")
	return nil
}
