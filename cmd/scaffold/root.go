package scaffold

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/smartcontractkit/scaffold/pkg/config"
	"github.com/smartcontractkit/scaffold/sdk"
)

// Option configures the scaffold command.
type Option func(*options)

type options struct {
	dial DialFunc
}

// WithDialer replaces the RPC dialer.
func WithDialer(dial DialFunc) Option {
	return func(o *options) {
		o.dial = dial
	}
}

// BuildScaffoldCmd builds the scaffold command. Without a subcommand it deploys the configured
// contract artifact.
func BuildScaffoldCmd(opts ...Option) *cobra.Command {
	o := &options{dial: dialEthClient}
	for _, opt := range opts {
		opt(o)
	}

	var envFile string

	cmd := &cobra.Command{
		Use:   "scaffold",
		Short: "Deploy and verify the YourContract greeting contract",
		Long: `Deploys the contract artifact named by DEPLOY_ARTIFACT with the first configured signer.

Settings are read from the environment and from the .env file.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDeploy(cmd.Context(), o, envFile, "", nil)
		},
	}

	cmd.PersistentFlags().StringVar(&envFile, "env-file", config.DefaultEnvFile, "Path of the .env file, ignored when missing")

	cmd.AddCommand(buildDeployCmd(o, &envFile))
	cmd.AddCommand(buildGreetingCmd(o, &envFile))
	cmd.AddCommand(buildSetGreetingCmd(o, &envFile))
	cmd.AddCommand(buildVerifyCmd(o, &envFile))
	cmd.AddCommand(buildDeploymentsCmd(&envFile))

	return cmd
}

// Execute runs the scaffold command with args and returns the process exit code: 0 on success
// and 1 on any failure.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer, opts ...Option) int {
	lggr := newLogger(stdout, stderr)
	defer func() { _ = lggr.Sync() }()

	cmd := BuildScaffoldCmd(opts...)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(sdk.ContextWithLogger(ctx, lggr)); err != nil {
		lggr.Errorf("%v", err)
		return 1
	}

	return 0
}
