package scaffold

import (
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifier_Run(t *testing.T) {
	t.Parallel()

	ctx, logs := observedContext()
	contract := &fakeContract{address: contractAddr, greeting: InitialGreeting}
	deployer := &fakeDeployer{contract: contract}
	v := NewVerifier(newFakeSignerProvider(signerAddr), deployer)
	assert.Equal(t, NotDeployed, v.State())

	require.NoError(t, v.Setup(ctx))
	assert.Equal(t, Deployed, v.State())

	// The signer address is the constructor argument
	require.Len(t, deployer.calls, 1)
	assert.Equal(t, deployCall{signer: signerAddr, artifact: VerificationArtifact, args: []any{signerAddr}}, deployer.calls[0])

	report, err := v.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, Checked, v.State())
	assert.True(t, report.Passed())
	assert.Equal(t, VerificationReport{
		ContractAddress: contractAddr,
		Results: []CheckResult{
			{Name: CheckInitialGreeting},
			{Name: CheckUpdateGreeting},
		},
	}, report)
	assert.Equal(t, UpdatedGreeting, contract.greeting)
	assert.Equal(t, int64(1), contract.counter)

	assert.Equal(t, []string{
		"YourContract deployed at " + contractAddr + " for verification",
		"initial greeting: ok",
		"update greeting: ok",
	}, messages(logs))

	_, err = v.Run(ctx)
	require.ErrorIs(t, err, ErrVerificationDone)
}

func TestVerifier_RunSetsUp(t *testing.T) {
	t.Parallel()

	ctx, _ := observedContext()
	deployer := &fakeDeployer{contract: &fakeContract{address: contractAddr, greeting: InitialGreeting}}

	report, err := NewVerifier(newFakeSignerProvider(signerAddr), deployer).Run(ctx)
	require.NoError(t, err)
	assert.True(t, report.Passed())
	assert.Len(t, deployer.calls, 1)
}

func TestVerifier_ChecksAreIndependent(t *testing.T) {
	t.Parallel()

	ctx, _ := observedContext()
	contract := &fakeContract{address: contractAddr, greeting: "gm"}
	v := NewVerifier(newFakeSignerProvider(signerAddr), &fakeDeployer{contract: contract})

	report, err := v.Run(ctx)
	require.NoError(t, err)
	require.Len(t, report.Results, 2)
	assert.False(t, report.Passed())

	initial := report.Results[0]
	assert.False(t, initial.Passed())
	assert.EqualError(t, initial.Err, `check "initial greeting" failed: expected "Building Unstoppable Apps!!!", got "gm"`)

	assert.True(t, report.Results[1].Passed())
	assert.Equal(t, UpdatedGreeting, contract.greeting)
}

func TestVerifier_CheckFailures(t *testing.T) {
	t.Parallel()

	writeErr := errors.New("execution reverted")

	tests := []struct {
		name        string
		contract    *fakeContract
		wantInitial string
		wantUpdate  string
	}{
		{
			name: "greeting is truncated",
			contract: &fakeContract{
				greeting:  InitialGreeting,
				transform: func(s string) string { return s[:10] },
			},
			wantUpdate: `check "update greeting" failed: expected "Learn Scaffold-ETH 2! :)", got "Learn Scaf"`,
		},
		{
			name: "greeting is transformed",
			contract: &fakeContract{
				greeting:  InitialGreeting,
				transform: strings.ToUpper,
			},
			wantUpdate: `check "update greeting" failed: expected "Learn Scaffold-ETH 2! :)", got "LEARN SCAFFOLD-ETH 2! :)"`,
		},
		{
			name:       "write fails",
			contract:   &fakeContract{greeting: InitialGreeting, writeErr: writeErr},
			wantUpdate: `check "update greeting" failed: execution reverted`,
		},
		{
			name:        "read fails",
			contract:    &fakeContract{readErr: errors.New("connection reset")},
			wantInitial: `check "initial greeting" failed: connection reset`,
			wantUpdate:  `check "update greeting" failed: connection reset`,
		},
		{
			name:        "read panics",
			contract:    &fakeContract{panicOn: "greeting"},
			wantInitial: `check "initial greeting" failed: unexpected error: read greeting`,
			wantUpdate:  `check "update greeting" failed: unexpected error: read greeting`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, _ := observedContext()
			report, err := NewVerifier(newFakeSignerProvider(signerAddr), &fakeDeployer{contract: tt.contract}).Run(ctx)
			require.NoError(t, err)
			require.Len(t, report.Results, 2)
			assert.False(t, report.Passed())

			for i, want := range []string{tt.wantInitial, tt.wantUpdate} {
				if want == "" {
					assert.NoError(t, report.Results[i].Err)
					continue
				}
				assert.EqualError(t, report.Results[i].Err, want)

				var checkErr *CheckError
				assert.ErrorAs(t, report.Results[i].Err, &checkErr)
			}
		})
	}
}

func TestVerifier_SetupFailures(t *testing.T) {
	t.Parallel()

	deployErr := errors.New("transaction reverted")

	tests := []struct {
		name      string
		signers   *fakeSignerProvider
		deployer  *fakeDeployer
		wantErr   string
		wantErrIs error
	}{
		{
			name:      "no signers",
			signers:   newFakeSignerProvider(),
			deployer:  &fakeDeployer{},
			wantErr:   "verification setup failed: no signer available",
			wantErrIs: ErrNoSignerAvailable,
		},
		{
			name:      "deployment not confirmed",
			signers:   newFakeSignerProvider(signerAddr),
			deployer:  &fakeDeployer{err: deployErr},
			wantErr:   "verification setup failed: failed to deploy YourContract: transaction reverted",
			wantErrIs: deployErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, _ := observedContext()
			v := NewVerifier(tt.signers, tt.deployer)

			report, err := v.Run(ctx)
			require.EqualError(t, err, tt.wantErr)
			require.ErrorIs(t, err, tt.wantErrIs)

			var setupErr *SetupError
			require.ErrorAs(t, err, &setupErr)

			// No check ran
			assert.Empty(t, report.Results)
			assert.Equal(t, NotDeployed, v.State())
		})
	}
}

func TestVerifier_SetupTwice(t *testing.T) {
	t.Parallel()

	ctx, _ := observedContext()
	v := NewVerifier(newFakeSignerProvider(signerAddr), &fakeDeployer{contract: &fakeContract{}})

	require.NoError(t, v.Setup(ctx))
	require.EqualError(t, v.Setup(ctx), "verification setup failed: verifier is already deployed")
}

func TestVerifierState_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "not deployed", NotDeployed.String())
	assert.Equal(t, "deployed", Deployed.String())
	assert.Equal(t, "checked", Checked.String())
	assert.Equal(t, "VerifierState(7)", VerifierState(7).String())
}

func TestGreeter(t *testing.T) {
	t.Parallel()

	ctx, _ := observedContext()
	contract := &fakeContract{address: contractAddr, owner: signerAddr, greeting: InitialGreeting}
	g := NewGreeter(contract)

	assert.Equal(t, contractAddr, g.Address())

	greeting, err := g.Greeting(ctx)
	require.NoError(t, err)
	assert.Equal(t, InitialGreeting, greeting)

	owner, err := g.Owner(ctx)
	require.NoError(t, err)
	assert.Equal(t, signerAddr, owner)

	res, err := g.SetGreeting(ctx, "gm")
	require.NoError(t, err)
	assert.Equal(t, "0xfeed", res.Hash)

	counter, err := g.TotalCounter(ctx)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(1), counter)

	premium, err := g.Premium(ctx)
	require.NoError(t, err)
	assert.False(t, premium)
}

func TestGreeter_UnexpectedResult(t *testing.T) {
	t.Parallel()

	ctx, _ := observedContext()
	g := NewGreeter(&fakeContract{})

	// The fake returns no values for unknown methods
	_, err := readOne[string](ctx, g.contract, "unknown")
	require.EqualError(t, err, "unknown returned 0 values, expected 1")

	_, err = readOne[bool](ctx, g.contract, "greeting")
	require.EqualError(t, err, "greeting returned string, expected bool")
}
