package evm

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/core/types"
	chainsel "github.com/smartcontractkit/chain-selectors"

	mtypes "github.com/smartcontractkit/scaffold/types"
)

const (
	// SimulatedEVMChainID is the chain ID used for simulated chains.
	SimulatedEVMChainID = 1337
)

type ContractDeployBackend interface {
	bind.ContractBackend
	bind.DeployBackend
}

// ChainIDReader is implemented by clients able to report the chain id they are connected to.
type ChainIDReader interface {
	ChainID(ctx context.Context) (*big.Int, error)
}

// ChainInfo identifies the chain a client is connected to.
type ChainInfo struct {
	ChainID  *big.Int
	Selector mtypes.ChainSelector
	Name     string
}

// GetChainInfo asks the client for its chain id and resolves the chain selector. Chains which are
// not registered in chain-selectors, such as local development nodes, are reported with a zero
// selector and a name derived from the chain id.
func GetChainInfo(ctx context.Context, client ChainIDReader) (ChainInfo, error) {
	chainID, err := client.ChainID(ctx)
	if err != nil {
		return ChainInfo{}, fmt.Errorf("failed to get chain id: %w", err)
	}
	if !chainID.IsUint64() {
		return ChainInfo{}, fmt.Errorf("chain id %s out of range", chainID)
	}

	sel, name, err := mtypes.ChainSelectorFromEVMChainID(chainID.Uint64())
	if err != nil {
		if !errors.Is(err, mtypes.ErrChainNotFound) {
			return ChainInfo{}, err
		}

		return ChainInfo{ChainID: chainID, Name: fmt.Sprintf("evm-%s", chainID)}, nil
	}

	return ChainInfo{ChainID: chainID, Selector: sel, Name: name}, nil
}

func newTransactionResult(receipt *types.Receipt) mtypes.TransactionResult {
	result := mtypes.TransactionResult{
		Hash:        receipt.TxHash.Hex(),
		ChainFamily: chainsel.FamilyEVM,
		RawData:     receipt,
	}
	if receipt.BlockNumber != nil {
		result.BlockNumber = receipt.BlockNumber.Uint64()
	}

	return result
}
