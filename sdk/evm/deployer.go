package evm

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/scaffold/sdk"
	"github.com/smartcontractkit/scaffold/sdk/evm/bindings"
	"github.com/smartcontractkit/scaffold/types"
)

var _ sdk.ContractDeployer = (*Deployer)(nil)

// Deployer deploys contract artifacts from the bindings registry.
type Deployer struct {
	client    ContractDeployBackend
	confirmer Confirmer
}

// NewDeployer creates a Deployer sending transactions through client and waiting on confirmer.
func NewDeployer(client ContractDeployBackend, confirmer Confirmer) *Deployer {
	return &Deployer{client: client, confirmer: confirmer}
}

// Deploy deploys artifact and returns a handle once the contract code is on chain. String
// arguments are converted to the constructor input types.
func (d *Deployer) Deploy(
	ctx context.Context, signer sdk.Signer, artifact string, args ...any,
) (sdk.Contract, types.TransactionResult, error) {
	evmSigner, err := toEVMSigner(signer)
	if err != nil {
		return nil, types.TransactionResult{}, err
	}

	meta, err := bindings.ArtifactByName(artifact)
	if err != nil {
		return nil, types.TransactionResult{}, err
	}

	parsed, err := meta.GetAbi()
	if err != nil {
		return nil, types.TransactionResult{}, err
	}

	params, err := coerceArgs(parsed.Constructor.Inputs, args)
	if err != nil {
		return nil, types.TransactionResult{}, fmt.Errorf("invalid constructor arguments for %s: %w", artifact, err)
	}

	address, tx, _, err := bind.DeployContract(
		evmSigner.TransactOpts(ctx), *parsed, common.FromHex(meta.Bin), d.client, params...,
	)
	if err != nil {
		return nil, types.TransactionResult{}, fmt.Errorf("failed to send %s deployment: %w", artifact, err)
	}

	receipt, err := d.confirmer.Confirm(ctx, tx)
	if err != nil {
		return nil, types.TransactionResult{}, err
	}

	code, err := d.client.CodeAt(ctx, address, nil)
	if err != nil {
		return nil, types.TransactionResult{}, err
	}
	if len(code) == 0 {
		return nil, types.TransactionResult{}, bind.ErrNoCodeAfterDeploy
	}

	return NewContract(address, parsed, d.client, evmSigner, d.confirmer), newTransactionResult(receipt), nil
}

// Attach returns a handle to a deployed instance of artifact. signer may be nil for a read only
// handle.
func (d *Deployer) Attach(signer sdk.Signer, artifact string, address string) (sdk.Contract, error) {
	var evmSigner *Signer
	if signer != nil {
		s, err := toEVMSigner(signer)
		if err != nil {
			return nil, err
		}
		evmSigner = s
	}

	if !common.IsHexAddress(address) {
		return nil, fmt.Errorf("invalid address %q", address)
	}

	meta, err := bindings.ArtifactByName(artifact)
	if err != nil {
		return nil, err
	}

	parsed, err := meta.GetAbi()
	if err != nil {
		return nil, err
	}

	return NewContract(common.HexToAddress(address), parsed, d.client, evmSigner, d.confirmer), nil
}

func toEVMSigner(signer sdk.Signer) (*Signer, error) {
	s, ok := signer.(*Signer)
	if !ok {
		return nil, fmt.Errorf("signer %T is not an EVM signer", signer)
	}

	return s, nil
}
