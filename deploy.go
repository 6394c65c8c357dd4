package scaffold

import (
	"context"
	"fmt"

	"github.com/smartcontractkit/scaffold/sdk"
	"github.com/smartcontractkit/scaffold/types"
)

// DeployResult describes a confirmed deployment.
type DeployResult struct {
	Artifact string
	Signer   string
	Contract sdk.Contract
	Tx       types.TransactionResult
}

// Recorder persists a confirmed deployment.
type Recorder interface {
	Record(ctx context.Context, result DeployResult) error
}

// DeployRunner deploys a single contract artifact with the first available signer.
type DeployRunner struct {
	signers  sdk.SignerProvider
	deployer sdk.ContractDeployer
	artifact string
	args     []any
	recorder Recorder
}

// DeployOption configures a DeployRunner.
type DeployOption func(*DeployRunner)

// WithArgs sets the constructor arguments of the deployed artifact.
func WithArgs(args ...any) DeployOption {
	return func(r *DeployRunner) {
		r.args = args
	}
}

// WithRecorder records every successful deployment with rec.
func WithRecorder(rec Recorder) DeployOption {
	return func(r *DeployRunner) {
		r.recorder = rec
	}
}

// NewDeployRunner creates a DeployRunner deploying artifact.
func NewDeployRunner(
	signers sdk.SignerProvider, deployer sdk.ContractDeployer, artifact string, opts ...DeployOption,
) *DeployRunner {
	r := &DeployRunner{
		signers:  signers,
		deployer: deployer,
		artifact: artifact,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run deploys the artifact and blocks until the deployment is confirmed. There are no retries:
// the first failure is returned.
func (r *DeployRunner) Run(ctx context.Context) (result DeployResult, err error) {
	defer func() {
		if p := recover(); p != nil {
			result, err = DeployResult{}, &UnexpectedError{Cause: p}
		}
	}()

	lggr := sdk.LoggerFrom(ctx)

	signer, err := firstSigner(ctx, r.signers)
	if err != nil {
		return DeployResult{}, err
	}
	lggr.Infof("Deploying contracts with the account: %s", signer.Address())

	contract, tx, err := r.deployer.Deploy(ctx, signer, r.artifact, r.args...)
	if err != nil {
		return DeployResult{}, NewDeploymentFailureError(r.artifact, err)
	}
	lggr.Infof("%s deployed at %s", r.artifact, contract.Address())

	result = DeployResult{
		Artifact: r.artifact,
		Signer:   signer.Address(),
		Contract: contract,
		Tx:       tx,
	}

	if r.recorder != nil {
		if err := r.recorder.Record(ctx, result); err != nil {
			return result, &UnexpectedError{Cause: fmt.Errorf("failed to record deployment: %w", err)}
		}
	}

	return result, nil
}

// firstSigner returns the first signer of the provider.
func firstSigner(ctx context.Context, provider sdk.SignerProvider) (sdk.Signer, error) {
	signers, err := provider.Signers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoSignerAvailable, err)
	}
	if len(signers) == 0 {
		return nil, ErrNoSignerAvailable
	}

	return signers[0], nil
}
