package scaffold

import (
	"context"
	"errors"
	"fmt"

	"github.com/smartcontractkit/scaffold/sdk"
)

const (
	// VerificationArtifact is the contract deployed by the verifier. Its constructor takes the
	// owner address.
	VerificationArtifact = "YourContract"

	// InitialGreeting is the greeting a freshly deployed contract must return.
	InitialGreeting = "Building Unstoppable Apps!!!"

	// UpdatedGreeting is the greeting written by the update check.
	UpdatedGreeting = "Learn Scaffold-ETH 2! :)"
)

// Check names, in execution order.
const (
	CheckInitialGreeting = "initial greeting"
	CheckUpdateGreeting  = "update greeting"
)

// VerifierState is the lifecycle state of a Verifier.
type VerifierState int

const (
	NotDeployed VerifierState = iota
	Deployed
	Checked
)

func (s VerifierState) String() string {
	switch s {
	case NotDeployed:
		return "not deployed"
	case Deployed:
		return "deployed"
	case Checked:
		return "checked"
	default:
		return fmt.Sprintf("VerifierState(%d)", int(s))
	}
}

// CheckResult is the outcome of one check. Err is nil when the check passed.
type CheckResult struct {
	Name string
	Err  error
}

// Passed reports whether the check passed.
func (r CheckResult) Passed() bool {
	return r.Err == nil
}

// VerificationReport holds the results of every check, in execution order.
type VerificationReport struct {
	ContractAddress string
	Results         []CheckResult
}

// Passed reports whether all checks passed.
func (r VerificationReport) Passed() bool {
	for _, res := range r.Results {
		if !res.Passed() {
			return false
		}
	}

	return true
}

// Verifier deploys YourContract with the signer as owner and checks its greeting behaviour.
// A Verifier moves from NotDeployed to Deployed in Setup and to Checked in Run, never back.
type Verifier struct {
	signers  sdk.SignerProvider
	deployer sdk.ContractDeployer

	state   VerifierState
	greeter *Greeter
}

// NewVerifier creates a Verifier in the NotDeployed state.
func NewVerifier(signers sdk.SignerProvider, deployer sdk.ContractDeployer) *Verifier {
	return &Verifier{signers: signers, deployer: deployer}
}

// State returns the current lifecycle state.
func (v *Verifier) State() VerifierState {
	return v.state
}

// Setup deploys the verification contract, passing the signer's address as the owner.
func (v *Verifier) Setup(ctx context.Context) error {
	if v.state != NotDeployed {
		return &SetupError{Err: fmt.Errorf("verifier is already %s", v.state)}
	}

	signer, err := firstSigner(ctx, v.signers)
	if err != nil {
		return &SetupError{Err: err}
	}

	contract, _, err := v.deployer.Deploy(ctx, signer, VerificationArtifact, signer.Address())
	if err != nil {
		return &SetupError{Err: NewDeploymentFailureError(VerificationArtifact, err)}
	}
	sdk.LoggerFrom(ctx).Infof("%s deployed at %s for verification", VerificationArtifact, contract.Address())

	v.greeter = NewGreeter(contract)
	v.state = Deployed

	return nil
}

// Run runs every check once, running Setup first if needed. A failing check does not stop the
// following ones.
func (v *Verifier) Run(ctx context.Context) (VerificationReport, error) {
	switch v.state {
	case Checked:
		return VerificationReport{}, ErrVerificationDone
	case NotDeployed:
		if err := v.Setup(ctx); err != nil {
			return VerificationReport{}, err
		}
	case Deployed:
	}

	checks := []struct {
		name string
		run  func(context.Context, *Greeter) error
	}{
		{CheckInitialGreeting, checkInitialGreeting},
		{CheckUpdateGreeting, checkUpdateGreeting},
	}

	lggr := sdk.LoggerFrom(ctx)
	report := VerificationReport{ContractAddress: v.greeter.Address()}
	for _, c := range checks {
		err := runCheck(ctx, c.name, v.greeter, c.run)
		if err != nil {
			lggr.Errorf("%s: FAIL: %v", c.name, err)
		} else {
			lggr.Infof("%s: ok", c.name)
		}
		report.Results = append(report.Results, CheckResult{Name: c.name, Err: err})
	}
	v.state = Checked

	return report, nil
}

func runCheck(
	ctx context.Context, name string, g *Greeter, check func(context.Context, *Greeter) error,
) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = &CheckError{Check: name, Err: &UnexpectedError{Cause: p}}
		}
	}()

	if err := check(ctx, g); err != nil {
		var checkErr *CheckError
		if errors.As(err, &checkErr) {
			return err
		}

		return &CheckError{Check: name, Err: err}
	}

	return nil
}

func checkInitialGreeting(ctx context.Context, g *Greeter) error {
	return expectGreeting(ctx, g, CheckInitialGreeting, InitialGreeting)
}

func checkUpdateGreeting(ctx context.Context, g *Greeter) error {
	if _, err := g.SetGreeting(ctx, UpdatedGreeting); err != nil {
		return err
	}

	// The value must be stable across reads.
	for range 2 {
		if err := expectGreeting(ctx, g, CheckUpdateGreeting, UpdatedGreeting); err != nil {
			return err
		}
	}

	return nil
}

func expectGreeting(ctx context.Context, g *Greeter, check string, want string) error {
	got, err := g.Greeting(ctx)
	if err != nil {
		return err
	}
	if got != want {
		return &CheckError{Check: check, Want: want, Got: got}
	}

	return nil
}
