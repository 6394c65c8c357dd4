package evm

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/scaffold/sdk"
	"github.com/smartcontractkit/scaffold/types"
)

// ErrReadOnlyContract is returned by Write on a contract handle attached without a signer.
var ErrReadOnlyContract = errors.New("contract handle has no signer")

var _ sdk.Contract = (*Contract)(nil)

// Contract is a deployed EVM contract addressed by ABI method name.
type Contract struct {
	address   common.Address
	abi       *abi.ABI
	bound     *bind.BoundContract
	signer    *Signer
	confirmer Confirmer
}

// NewContract binds address with the given ABI. signer may be nil for a read only handle.
func NewContract(
	address common.Address, parsed *abi.ABI, client ContractDeployBackend, signer *Signer, confirmer Confirmer,
) *Contract {
	return &Contract{
		address:   address,
		abi:       parsed,
		bound:     bind.NewBoundContract(address, *parsed, client, client, client),
		signer:    signer,
		confirmer: confirmer,
	}
}

// Address returns the hex address of the contract.
func (c *Contract) Address() string {
	return c.address.Hex()
}

// Read calls a view method at the latest block.
func (c *Contract) Read(ctx context.Context, method string, args ...any) ([]any, error) {
	params, err := c.params(method, args)
	if err != nil {
		return nil, err
	}

	opts := &bind.CallOpts{Context: ctx}
	if c.signer != nil {
		opts.From = c.signer.opts.From
	}

	var out []any
	if err := c.bound.Call(opts, &out, method, params...); err != nil {
		return nil, fmt.Errorf("failed to call %s: %w", method, err)
	}

	return out, nil
}

// Write sends a transaction calling method and waits for it to be confirmed.
func (c *Contract) Write(ctx context.Context, method string, args ...any) (types.TransactionResult, error) {
	if c.signer == nil {
		return types.TransactionResult{}, ErrReadOnlyContract
	}

	params, err := c.params(method, args)
	if err != nil {
		return types.TransactionResult{}, err
	}

	tx, err := c.bound.Transact(c.signer.TransactOpts(ctx), method, params...)
	if err != nil {
		return types.TransactionResult{}, fmt.Errorf("failed to send %s: %w", method, err)
	}

	receipt, err := c.confirmer.Confirm(ctx, tx)
	if err != nil {
		return types.TransactionResult{}, err
	}

	return newTransactionResult(receipt), nil
}

func (c *Contract) params(method string, args []any) ([]any, error) {
	m, ok := c.abi.Methods[method]
	if !ok {
		return nil, fmt.Errorf("method %q not found in contract ABI", method)
	}

	return coerceArgs(m.Inputs, args)
}
