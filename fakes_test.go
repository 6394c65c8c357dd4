package scaffold

import (
	"context"
	"math/big"

	"github.com/smartcontractkit/scaffold/sdk"
	"github.com/smartcontractkit/scaffold/types"
)

// fakeSigner is a signing identity with a fixed address.
type fakeSigner string

func (s fakeSigner) Address() string { return string(s) }

// fakeSignerProvider returns the configured signers or error.
type fakeSignerProvider struct {
	signers []sdk.Signer
	err     error
}

func newFakeSignerProvider(addrs ...string) *fakeSignerProvider {
	signers := make([]sdk.Signer, 0, len(addrs))
	for _, a := range addrs {
		signers = append(signers, fakeSigner(a))
	}

	return &fakeSignerProvider{signers: signers}
}

func (p *fakeSignerProvider) Signers(context.Context) ([]sdk.Signer, error) {
	return p.signers, p.err
}

// fakeContract is an in-memory YourContract. Greeting writes are stored unless a transform is
// set, in which case the transformed value is stored instead.
type fakeContract struct {
	address   string
	owner     string
	greeting  string
	counter   int64
	transform func(string) string
	readErr   error
	writeErr  error
	panicOn   string
}

func (c *fakeContract) Address() string { return c.address }

func (c *fakeContract) Read(_ context.Context, method string, _ ...any) ([]any, error) {
	if method == c.panicOn {
		panic("read " + method)
	}
	if c.readErr != nil {
		return nil, c.readErr
	}

	switch method {
	case "greeting":
		return []any{c.greeting}, nil
	case "owner":
		return []any{c.owner}, nil
	case "premium":
		return []any{false}, nil
	case "totalCounter":
		return []any{big.NewInt(c.counter)}, nil
	default:
		return []any{}, nil
	}
}

func (c *fakeContract) Write(_ context.Context, method string, args ...any) (types.TransactionResult, error) {
	if c.writeErr != nil {
		return types.TransactionResult{}, c.writeErr
	}
	if method == "setGreeting" {
		g, _ := args[0].(string)
		if c.transform != nil {
			g = c.transform(g)
		}
		c.greeting = g
		c.counter++
	}

	return types.TransactionResult{Hash: "0xfeed", BlockNumber: 2, ChainFamily: "evm"}, nil
}

// fakeDeployer deploys fakeContracts, or fails with err, or panics when panicMsg is set.
type fakeDeployer struct {
	contract *fakeContract
	err      error
	panicMsg string

	calls []deployCall
}

type deployCall struct {
	signer   string
	artifact string
	args     []any
}

func (d *fakeDeployer) Deploy(
	_ context.Context, signer sdk.Signer, artifact string, args ...any,
) (sdk.Contract, types.TransactionResult, error) {
	d.calls = append(d.calls, deployCall{signer: signer.Address(), artifact: artifact, args: args})

	if d.panicMsg != "" {
		panic(d.panicMsg)
	}
	if d.err != nil {
		return nil, types.TransactionResult{}, d.err
	}

	return d.contract, types.TransactionResult{Hash: "0xbeef", BlockNumber: 1, ChainFamily: "evm"}, nil
}

func (d *fakeDeployer) Attach(_ sdk.Signer, _ string, _ string) (sdk.Contract, error) {
	return d.contract, nil
}

// fakeRecorder collects recorded deployments.
type fakeRecorder struct {
	records []DeployResult
	err     error
}

func (r *fakeRecorder) Record(_ context.Context, result DeployResult) error {
	r.records = append(r.records, result)

	return r.err
}
