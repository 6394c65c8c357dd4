package evm_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/scaffold/sdk/evm"
)

// Well known development keys of local nodes.
const (
	devKey0     = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	devAddress0 = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	devKey1     = "59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690d"
	devAddress1 = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
)

func TestPrivateKeySignerProvider_Signers(t *testing.T) {
	t.Parallel()

	provider, err := evm.NewPrivateKeySignerProviderFromHex(big.NewInt(evm.SimulatedEVMChainID), devKey0, " "+devKey1+" ")
	require.NoError(t, err)

	signers, err := provider.Signers(context.Background())
	require.NoError(t, err)
	require.Len(t, signers, 2)
	assert.Equal(t, devAddress0, signers[0].Address())
	assert.Equal(t, devAddress1, signers[1].Address())
}

func TestNewPrivateKeySignerProviderFromHex_Invalid(t *testing.T) {
	t.Parallel()

	_, err := evm.NewPrivateKeySignerProviderFromHex(big.NewInt(1), devKey0, "0xzz")
	require.ErrorContains(t, err, "invalid private key at index 1")
}

func TestSigner_TransactOpts(t *testing.T) {
	t.Parallel()

	provider, err := evm.NewPrivateKeySignerProviderFromHex(big.NewInt(evm.SimulatedEVMChainID), devKey0)
	require.NoError(t, err)

	signers, err := provider.Signers(context.Background())
	require.NoError(t, err)

	signer, ok := signers[0].(*evm.Signer)
	require.True(t, ok)

	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "v")
	opts := signer.TransactOpts(ctx)
	assert.Equal(t, ctx, opts.Context)
	assert.Equal(t, common.HexToAddress(devAddress0), opts.From)

	// Mutating the copy leaves the signer untouched
	opts.GasLimit = 21000
	assert.Zero(t, signer.TransactOpts(ctx).GasLimit)

	tx := types.NewTx(&types.LegacyTx{Nonce: 0, GasPrice: big.NewInt(1), Gas: 21000})
	signed, err := opts.Signer(opts.From, tx)
	require.NoError(t, err)

	sender, err := types.Sender(types.LatestSignerForChainID(big.NewInt(evm.SimulatedEVMChainID)), signed)
	require.NoError(t, err)
	assert.Equal(t, opts.From, sender)
}

func TestKeystoreSignerProvider_Signers(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ks := keystore.NewKeyStore(dir, keystore.LightScryptN, keystore.LightScryptP)
	acct, err := ks.NewAccount("secret")
	require.NoError(t, err)

	provider := evm.NewKeystoreSignerProvider(dir, "secret", big.NewInt(evm.SimulatedEVMChainID))
	signers, err := provider.Signers(context.Background())
	require.NoError(t, err)
	require.Len(t, signers, 1)
	assert.Equal(t, acct.Address.Hex(), signers[0].Address())

	wrong := evm.NewKeystoreSignerProvider(dir, "wrong", big.NewInt(evm.SimulatedEVMChainID))
	_, err = wrong.Signers(context.Background())
	require.ErrorContains(t, err, "failed to unlock keystore account "+acct.Address.Hex())
}

func TestParseDerivationPaths(t *testing.T) {
	t.Parallel()

	got, err := evm.ParseDerivationPaths([]string{"m/44'/60'/0'/0/0", " m/44'/60'/0'/0/1"})
	require.NoError(t, err)
	assert.Equal(t, []accounts.DerivationPath{
		{0x80000000 + 44, 0x80000000 + 60, 0x80000000, 0, 0},
		{0x80000000 + 44, 0x80000000 + 60, 0x80000000, 0, 1},
	}, got)

	_, err = evm.ParseDerivationPaths([]string{"not/a/path"})
	require.ErrorContains(t, err, `failed to parse derivation path "not/a/path"`)
}
