package scaffold

import (
	"context"
	"fmt"
	"math/big"

	"github.com/spf13/cast"

	"github.com/smartcontractkit/scaffold/sdk"
	"github.com/smartcontractkit/scaffold/types"
)

// Greeter is a typed view of a deployed YourContract.
type Greeter struct {
	contract sdk.Contract
}

// NewGreeter wraps a YourContract handle.
func NewGreeter(contract sdk.Contract) *Greeter {
	return &Greeter{contract: contract}
}

// Address returns the address of the contract.
func (g *Greeter) Address() string {
	return g.contract.Address()
}

// Greeting reads the current greeting.
func (g *Greeter) Greeting(ctx context.Context) (string, error) {
	return readOne[string](ctx, g.contract, "greeting")
}

// SetGreeting writes a new greeting and waits for the transaction to be confirmed.
func (g *Greeter) SetGreeting(ctx context.Context, greeting string) (types.TransactionResult, error) {
	return g.contract.Write(ctx, "setGreeting", greeting)
}

// Owner returns the address of the contract owner.
func (g *Greeter) Owner(ctx context.Context) (string, error) {
	out, err := readOne[any](ctx, g.contract, "owner")
	if err != nil {
		return "", err
	}

	return cast.ToStringE(out)
}

// Premium reports whether the last greeting was paid for.
func (g *Greeter) Premium(ctx context.Context) (bool, error) {
	return readOne[bool](ctx, g.contract, "premium")
}

// TotalCounter returns the number of greetings set since deployment.
func (g *Greeter) TotalCounter(ctx context.Context) (*big.Int, error) {
	return readOne[*big.Int](ctx, g.contract, "totalCounter")
}

func readOne[T any](ctx context.Context, contract sdk.Contract, method string) (T, error) {
	var zero T

	out, err := contract.Read(ctx, method)
	if err != nil {
		return zero, err
	}
	if len(out) != 1 {
		return zero, fmt.Errorf("%s returned %d values, expected 1", method, len(out))
	}

	v, ok := out[0].(T)
	if !ok {
		return zero, fmt.Errorf("%s returned %T, expected %T", method, out[0], zero)
	}

	return v, nil
}
