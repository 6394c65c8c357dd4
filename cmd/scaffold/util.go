package scaffold

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/smartcontractkit/scaffold"
	"github.com/smartcontractkit/scaffold/pkg/config"
	"github.com/smartcontractkit/scaffold/pkg/deployment"
	"github.com/smartcontractkit/scaffold/sdk"
	"github.com/smartcontractkit/scaffold/sdk/evm"
	"github.com/smartcontractkit/scaffold/sdk/evm/bindings"
)

// Client is the chain client the commands need.
type Client interface {
	evm.ContractDeployBackend
	evm.ChainIDReader
}

// DialFunc connects to the RPC endpoint at rawURL. The returned function releases the
// connection.
type DialFunc func(ctx context.Context, rawURL string) (Client, func(), error)

func dialEthClient(ctx context.Context, rawURL string) (Client, func(), error) {
	client, err := ethclient.DialContext(ctx, rawURL)
	if err != nil {
		return nil, nil, err
	}

	return client, client.Close, nil
}

// environment holds everything a command needs to talk to the configured network.
type environment struct {
	cfg      *config.Config
	chain    evm.ChainInfo
	client   Client
	signers  sdk.SignerProvider
	deployer *evm.Deployer
	closers  []func()
}

func loadEnvironment(ctx context.Context, o *options, envFile string) (*environment, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, err
	}

	client, closeClient, err := o.dial(ctx, cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.RPCURL, err)
	}
	env := &environment{cfg: cfg, client: client, closers: []func(){closeClient}}

	env.chain, err = evm.GetChainInfo(ctx, client)
	if err != nil {
		env.Close()
		return nil, err
	}
	sdk.LoggerFrom(ctx).Infof("Connected to network %s (%s, chain id %s)", cfg.Network, env.chain.Name, env.chain.ChainID)

	signers, closeSigners, err := newSignerProvider(cfg, env.chain.ChainID)
	if err != nil {
		env.Close()
		return nil, err
	}
	env.signers = signers
	env.closers = append(env.closers, closeSigners)

	env.deployer = evm.NewDeployer(client, evm.NewReceiptConfirmer(client, cfg.ConfirmTimeout))

	return env, nil
}

// Close releases the client and signer devices.
func (e *environment) Close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		e.closers[i]()
	}
}

func newSignerProvider(cfg *config.Config, chainID *big.Int) (sdk.SignerProvider, func(), error) {
	switch cfg.SignerSource() {
	case config.SignerSourceLedger:
		paths, err := evm.ParseDerivationPaths(cfg.LedgerDerivationPaths)
		if err != nil {
			return nil, nil, err
		}
		provider := evm.NewLedgerSignerProvider(chainID, paths...)

		return provider, func() { _ = provider.Close() }, nil
	case config.SignerSourceKeystore:
		return evm.NewKeystoreSignerProvider(cfg.KeystoreDir, cfg.KeystorePassphrase, chainID), func() {}, nil
	case config.SignerSourcePrivateKeys:
		provider, err := evm.NewPrivateKeySignerProviderFromHex(chainID, cfg.PrivateKeys...)
		if err != nil {
			return nil, nil, err
		}

		return provider, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unsupported signer source %q", cfg.SignerSource())
	}
}

// contractAddress returns address, or the recorded address of the configured artifact when
// address is empty.
func (e *environment) contractAddress(address string) (string, error) {
	if address != "" {
		return address, nil
	}
	if e.cfg.DeploymentsDir == "" {
		return "", errors.New("no contract address given and deployment records are disabled")
	}

	rec, err := deployment.NewStore(e.cfg.DeploymentsDir).Load(e.cfg.Network, e.cfg.DeployArtifact)
	if err != nil {
		return "", fmt.Errorf("no contract address given: %w", err)
	}

	return rec.Address, nil
}

var _ scaffold.Recorder = (*deploymentRecorder)(nil)

// deploymentRecorder saves confirmed deployments to the deployment record store.
type deploymentRecorder struct {
	store   *deployment.Store
	network string
	chain   evm.ChainInfo
}

func (r *deploymentRecorder) Record(ctx context.Context, result scaffold.DeployResult) error {
	meta, err := bindings.ArtifactByName(result.Artifact)
	if err != nil {
		return err
	}

	rec, err := r.store.Save(deployment.Record{
		Network:       r.network,
		ChainID:       r.chain.ChainID.Uint64(),
		ChainSelector: r.chain.Selector,
		ChainName:     r.chain.Name,
		ContractName:  result.Artifact,
		Address:       result.Contract.Address(),
		Deployer:      result.Signer,
		TxHash:        result.Tx.Hash,
		BlockNumber:   result.Tx.BlockNumber,
		ABI:           json.RawMessage(meta.ABI),
	})
	if err != nil {
		return err
	}
	sdk.LoggerFrom(ctx).Infof("Saved deployment %s to %s", rec.ID, r.store.Path(rec.Network, rec.ContractName))

	return nil
}
