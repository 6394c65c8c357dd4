package evm

import (
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/smartcontractkit/scaffold/pkg/contract"
	"github.com/smartcontractkit/scaffold/sdk/evm/bindings"
)

// DeployResult is the outcome of sending a contract deployment through a typed binding.
type DeployResult[T any] struct {
	Address common.Address
	Tx      *types.Transaction
	Binding T
}

func newDeployResult[T any](addr common.Address, tx *types.Transaction, binding T) DeployResult[T] {
	return DeployResult[T]{Address: addr, Tx: tx, Binding: binding}
}

// YourContractDeployment returns a DeployFunc that deploys YourContract owned by owner.
func YourContractDeployment(
	auth *bind.TransactOpts, backend bind.ContractBackend, owner common.Address,
) contract.DeployFunc[DeployResult[*bindings.YourContract]] {
	return func() (DeployResult[*bindings.YourContract], error) {
		addr, tx, binding, err := bindings.DeployYourContract(auth, backend, owner)

		return newDeployResult(addr, tx, binding), err
	}
}

// YourContractSelfOwnedDeployment returns a DeployFunc that deploys YourContract owned by the
// deployer.
func YourContractSelfOwnedDeployment(
	auth *bind.TransactOpts, backend bind.ContractBackend,
) contract.DeployFunc[DeployResult[*bindings.YourContract]] {
	return func() (DeployResult[*bindings.YourContract], error) {
		addr, tx, binding, err := bindings.DeployYourContractSelfOwned(auth, backend)

		return newDeployResult(addr, tx, binding), err
	}
}
