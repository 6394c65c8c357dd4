package bindings_test

import (
	"context"
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	gethTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/scaffold/internal/testutils/evmsim"
	"github.com/smartcontractkit/scaffold/sdk/evm/bindings"
)

func TestYourContract_Deploy(t *testing.T) {
	t.Parallel()

	sim := evmsim.NewSimulatedChain(t, 2)
	deployer, other := sim.Signers[0], sim.Signers[1]

	contract, _ := sim.DeployYourContract(t, deployer, other.Address(t))

	greeting, err := contract.Greeting(&bind.CallOpts{})
	require.NoError(t, err)
	assert.Equal(t, bindings.DefaultGreeting, greeting)

	owner, err := contract.Owner(&bind.CallOpts{})
	require.NoError(t, err)
	assert.Equal(t, other.Address(t), owner)

	counter, err := contract.TotalCounter(&bind.CallOpts{})
	require.NoError(t, err)
	assert.Zero(t, counter.Sign())

	premium, err := contract.Premium(&bind.CallOpts{})
	require.NoError(t, err)
	assert.False(t, premium)
}

func TestYourContract_DeploySelfOwned(t *testing.T) {
	t.Parallel()

	sim := evmsim.NewSimulatedChain(t, 1)
	deployer := sim.Signers[0]

	contract, _ := sim.DeployYourContractSelfOwned(t, deployer)

	owner, err := contract.Owner(&bind.CallOpts{})
	require.NoError(t, err)
	assert.Equal(t, deployer.Address(t), owner)

	greeting, err := contract.Greeting(&bind.CallOpts{})
	require.NoError(t, err)
	assert.Equal(t, bindings.DefaultGreeting, greeting)
}

func TestYourContract_SetGreeting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		give string
	}{
		{name: "short", give: "Learn Scaffold-ETH 2! :)"},
		{name: "empty", give: ""},
		{name: "exactly one word", give: strings.Repeat("a", 32)},
		{name: "multiple words", give: strings.Repeat("0123456789", 10) + "!"},
		{name: "utf8", give: "héllo wörld ✓"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sim := evmsim.NewSimulatedChain(t, 1)
			signer := sim.Signers[0]
			contract, _ := sim.DeployYourContract(t, signer, signer.Address(t))

			_, err := contract.SetGreeting(signer.NewTransactOpts(t), tt.give)
			require.NoError(t, err)
			sim.Backend.Commit()

			got, err := contract.Greeting(&bind.CallOpts{})
			require.NoError(t, err)
			assert.Equal(t, tt.give, got)
		})
	}
}

func TestYourContract_ShorterGreetingAfterLonger(t *testing.T) {
	t.Parallel()

	sim := evmsim.NewSimulatedChain(t, 1)
	signer := sim.Signers[0]
	contract, _ := sim.DeployYourContract(t, signer, signer.Address(t))

	for _, g := range []string{strings.Repeat("x", 70), "short"} {
		_, err := contract.SetGreeting(signer.NewTransactOpts(t), g)
		require.NoError(t, err)
		sim.Backend.Commit()
	}

	got, err := contract.Greeting(&bind.CallOpts{})
	require.NoError(t, err)
	assert.Equal(t, "short", got)

	counter, err := contract.TotalCounter(&bind.CallOpts{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), counter.Int64())
}

func TestYourContract_PremiumAndEvents(t *testing.T) {
	t.Parallel()

	sim := evmsim.NewSimulatedChain(t, 2)
	alice, bob := sim.Signers[0], sim.Signers[1]
	contract, _ := sim.DeployYourContract(t, alice, alice.Address(t))

	_, err := contract.SetGreeting(alice.NewTransactOpts(t), "free")
	require.NoError(t, err)
	sim.Backend.Commit()

	paid := bob.NewTransactOpts(t)
	paid.Value = big.NewInt(1000)
	_, err = contract.SetGreeting(paid, "paid")
	require.NoError(t, err)
	sim.Backend.Commit()

	premium, err := contract.Premium(&bind.CallOpts{})
	require.NoError(t, err)
	assert.True(t, premium)

	events, err := contract.FilterGreetingChange(&bind.FilterOpts{Context: context.Background()}, nil)
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, alice.Address(t), events[0].GreetingSetter)
	assert.Equal(t, "free", events[0].NewGreeting)
	assert.False(t, events[0].Premium)
	assert.Zero(t, events[0].Value.Sign())

	assert.Equal(t, bob.Address(t), events[1].GreetingSetter)
	assert.Equal(t, "paid", events[1].NewGreeting)
	assert.True(t, events[1].Premium)
	assert.Equal(t, int64(1000), events[1].Value.Int64())

	bobs, err := contract.FilterGreetingChange(nil, []common.Address{bob.Address(t)})
	require.NoError(t, err)
	require.Len(t, bobs, 1)
	assert.Equal(t, "paid", bobs[0].NewGreeting)
}

func TestYourContract_Withdraw(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	sim := evmsim.NewSimulatedChain(t, 2)
	owner, stranger := sim.Signers[0], sim.Signers[1]
	contract, _ := sim.DeployYourContract(t, owner, owner.Address(t))

	paid := stranger.NewTransactOpts(t)
	paid.Value = big.NewInt(5000)
	_, err := contract.SetGreeting(paid, "tip")
	require.NoError(t, err)
	sim.Backend.Commit()

	balance, err := sim.Client().BalanceAt(ctx, contract.Address(), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), balance.Int64())

	// Only the owner may withdraw
	notOwner := stranger.NewTransactOpts(t)
	notOwner.GasLimit = 0
	_, err = contract.Withdraw(notOwner)
	require.Error(t, err)

	tx, err := contract.Withdraw(owner.NewTransactOpts(t))
	require.NoError(t, err)
	sim.Backend.Commit()

	receipt, err := sim.Client().TransactionReceipt(ctx, tx.Hash())
	require.NoError(t, err)
	assert.Equal(t, gethTypes.ReceiptStatusSuccessful, receipt.Status)

	balance, err = sim.Client().BalanceAt(ctx, contract.Address(), nil)
	require.NoError(t, err)
	assert.Zero(t, balance.Sign())
}

func TestYourContract_UnknownSelectorReverts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	sim := evmsim.NewSimulatedChain(t, 1)
	signer := sim.Signers[0]
	contract, _ := sim.DeployYourContract(t, signer, signer.Address(t))

	opts := signer.NewTransactOpts(t)
	opts.GasLimit = 0
	raw := bind.NewBoundContract(contract.Address(), mustABI(t), sim.Client(), sim.Client(), sim.Client())
	_, err := raw.RawTransact(opts, []byte{0xde, 0xad, 0xbe, 0xef})
	require.Error(t, err)

	// Plain transfers are accepted
	_, err = raw.RawTransact(signer.NewTransactOpts(t), nil)
	require.NoError(t, err)
	sim.Backend.Commit()

	code, err := sim.Client().CodeAt(ctx, contract.Address(), nil)
	require.NoError(t, err)
	assert.NotEmpty(t, code)
}

func mustABI(t *testing.T) abi.ABI {
	t.Helper()

	parsed, err := bindings.YourContractMetaData.GetAbi()
	require.NoError(t, err)

	return *parsed
}

func TestArtifactByName(t *testing.T) {
	t.Parallel()

	meta, err := bindings.ArtifactByName(bindings.YourContractName)
	require.NoError(t, err)
	assert.Same(t, bindings.YourContractMetaData, meta)

	_, err = bindings.ArtifactByName("Missing")
	require.ErrorContains(t, err, `unknown contract artifact "Missing"`)

	assert.Equal(t, []string{"YourContract", "YourContractSelfOwned"}, bindings.ArtifactNames())
}
