// package evmsim implements a simulated EVM chain for testing purposes.
package evmsim

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	gethTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/scaffold/pkg/contract"
	"github.com/smartcontractkit/scaffold/sdk/evm"
	"github.com/smartcontractkit/scaffold/sdk/evm/bindings"
)

const (
	// DefaultGasLimit is the default gas limit for each transaction in the simulated chain
	DefaultGasLimit = uint64(8000000)

	// DefaultBalance is the default balance for each account in the simulated chain
	DefaultBalance = 1e18

	// SimulatedChainID is the chain ID used for the simulated chain. EVM Simulated chains always use 1337
	//
	// https://pkg.go.dev/github.com/ethereum/go-ethereum/ethclient/simulated#NewBackend
	SimulatedChainID = 1337
)

// SimulatedChain represents a simulated chain with a backend and a list of signers.
type SimulatedChain struct {
	Backend *simulated.Backend
	Signers []*Signer
}

// Signer represents a signer with a private key.
type Signer struct {
	PrivateKey *ecdsa.PrivateKey
}

// NewTransactOpts creates a new transact options with the signer's private key and sets default
// values.
func (s *Signer) NewTransactOpts(t *testing.T) *bind.TransactOpts {
	t.Helper()

	auth, err := bind.NewKeyedTransactorWithChainID(s.PrivateKey, big.NewInt(SimulatedChainID))
	require.NoError(t, err)

	// Set default values
	auth.GasLimit = DefaultGasLimit

	return auth
}

// Address extracts the address from the signer's private key.
func (s *Signer) Address(t *testing.T) common.Address {
	t.Helper()

	publicKeyECDSA, ok := s.PrivateKey.Public().(*ecdsa.PublicKey)
	if !ok {
		t.Fatal("error casting public key from crypto to ecdsa")
	}

	return crypto.PubkeyToAddress(*publicKeyECDSA)
}

// NewSimulatedChain creates a new simulated chain with the given number of funded signers. The
// backend is closed when the test finishes.
func NewSimulatedChain(t *testing.T, numSigners uint64) SimulatedChain {
	t.Helper()

	// Generate a private key
	signers := make([]*Signer, 0, numSigners)
	for range numSigners {
		key, err := crypto.GenerateKey()
		require.NoError(t, err)

		signers = append(signers, &Signer{PrivateKey: key})
	}

	// Setup the simulated backend
	genesisAlloc := gethTypes.GenesisAlloc{}
	for _, s := range signers {
		genesisAlloc[s.Address(t)] = gethTypes.Account{
			Balance: big.NewInt(DefaultBalance),
		}
	}

	sim := simulated.NewBackend(genesisAlloc,
		simulated.WithBlockGasLimit(DefaultGasLimit),
	)
	t.Cleanup(func() {
		_ = sim.Close()
	})

	return SimulatedChain{
		Backend: sim,
		Signers: signers,
	}
}

// Client returns the backend client, which satisfies evm.ContractDeployBackend.
func (s *SimulatedChain) Client() simulated.Client {
	return s.Backend.Client()
}

// AutoMiningClient is a client of the simulated chain which mines a block for every transaction
// it sends, like a local development node.
type AutoMiningClient struct {
	simulated.Client

	backend *simulated.Backend
}

// SendTransaction sends tx and mines it.
func (c *AutoMiningClient) SendTransaction(ctx context.Context, tx *gethTypes.Transaction) error {
	if err := c.Client.SendTransaction(ctx, tx); err != nil {
		return err
	}
	c.backend.Commit()

	return nil
}

// AutoMiningClient returns a client which mines every transaction it sends.
func (s *SimulatedChain) AutoMiningClient() *AutoMiningClient {
	return &AutoMiningClient{Client: s.Backend.Client(), backend: s.Backend}
}

var _ evm.Confirmer = (*SimulatedChain)(nil)

// Confirm mines a block and returns the receipt of tx. Nothing is mined on the simulated chain
// until a block is committed, so this stands in for waiting on a live network.
func (s *SimulatedChain) Confirm(ctx context.Context, tx *gethTypes.Transaction) (*gethTypes.Receipt, error) {
	s.Backend.Commit()

	return evm.NewReceiptConfirmer(s.Backend.Client(), 0).Confirm(ctx, tx)
}

// SignerProvider returns a signer provider over all of the chain's signers, in order.
func (s *SimulatedChain) SignerProvider() *evm.PrivateKeySignerProvider {
	keys := make([]*ecdsa.PrivateKey, 0, len(s.Signers))
	for _, signer := range s.Signers {
		keys = append(keys, signer.PrivateKey)
	}

	return evm.NewPrivateKeySignerProvider(big.NewInt(SimulatedChainID), keys...)
}

// Deployer returns a contract deployer that commits a block for every confirmation.
func (s *SimulatedChain) Deployer() *evm.Deployer {
	return evm.NewDeployer(s.Backend.Client(), s)
}

// DeployYourContract deploys a YourContract owned by owner with the signer.
func (s *SimulatedChain) DeployYourContract(
	t *testing.T, signer *Signer, owner common.Address,
) (*bindings.YourContract, *gethTypes.Transaction) {
	t.Helper()

	result, err := contract.Deploy(evm.YourContractDeployment(signer.NewTransactOpts(t), s.Backend.Client(), owner))
	require.NoError(t, err)

	// Mine a block
	s.Backend.Commit()

	return result.Binding, result.Tx
}

// DeployYourContractSelfOwned deploys a YourContract owned by the deploying signer.
func (s *SimulatedChain) DeployYourContractSelfOwned(
	t *testing.T, signer *Signer,
) (*bindings.YourContract, *gethTypes.Transaction) {
	t.Helper()

	result, err := contract.Deploy(evm.YourContractSelfOwnedDeployment(signer.NewTransactOpts(t), s.Backend.Client()))
	require.NoError(t, err)

	// Mine a block
	s.Backend.Commit()

	return result.Binding, result.Tx
}
