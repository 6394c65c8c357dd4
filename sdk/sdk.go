package sdk

import (
	"context"

	"github.com/smartcontractkit/scaffold/types"
)

// Signer is an account capable of authorizing state changing chain operations. Chain
// implementations attach their own signing material; callers only see the address.
type Signer interface {
	Address() string
}

// SignerProvider lists the signing identities available to a flow, in priority order.
type SignerProvider interface {
	Signers(ctx context.Context) ([]Signer, error)
}

// Contract is a handle to a deployed contract instance. A Contract is only handed out after
// its deployment has been confirmed.
type Contract interface {
	// Address returns the address assigned at deployment time.
	Address() string

	// Read calls a view method and returns its decoded outputs.
	Read(ctx context.Context, method string, args ...any) ([]any, error)

	// Write sends a transaction invoking method and blocks until it is confirmed.
	Write(ctx context.Context, method string, args ...any) (types.TransactionResult, error)
}

// ContractDeployer deploys named contract artifacts.
type ContractDeployer interface {
	// Deploy deploys the artifact with the given constructor arguments, signed by signer, and
	// blocks until the deployment is confirmed.
	Deploy(ctx context.Context, signer Signer, artifact string, args ...any) (Contract, types.TransactionResult, error)

	// Attach returns a handle to an already deployed instance of artifact. A nil signer yields a
	// read only handle.
	Attach(signer Signer, artifact string, address string) (Contract, error)
}
