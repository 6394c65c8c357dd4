package scaffold

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/smartcontractkit/scaffold"
	"github.com/smartcontractkit/scaffold/pkg/deployment"
)

func buildDeployCmd(o *options, envFile *string) *cobra.Command {
	var artifact string

	cmd := &cobra.Command{
		Use:   "deploy [constructor args...]",
		Short: "Deploy a contract artifact",
		Long:  `Deploys the artifact with the first configured signer. Constructor arguments are given as strings and converted to the constructor input types.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctorArgs := make([]any, 0, len(args))
			for _, a := range args {
				ctorArgs = append(ctorArgs, a)
			}

			return runDeploy(cmd.Context(), o, *envFile, artifact, ctorArgs)
		},
	}

	cmd.Flags().StringVar(&artifact, "artifact", "", "Name of the artifact to deploy, defaults to DEPLOY_ARTIFACT")

	return cmd
}

func runDeploy(ctx context.Context, o *options, envFile string, artifact string, args []any) error {
	env, err := loadEnvironment(ctx, o, envFile)
	if err != nil {
		return err
	}
	defer env.Close()

	if artifact == "" {
		artifact = env.cfg.DeployArtifact
	}

	opts := []scaffold.DeployOption{scaffold.WithArgs(args...)}
	if env.cfg.DeploymentsDir != "" {
		opts = append(opts, scaffold.WithRecorder(&deploymentRecorder{
			store:   deployment.NewStore(env.cfg.DeploymentsDir),
			network: env.cfg.Network,
			chain:   env.chain,
		}))
	}

	_, err = scaffold.NewDeployRunner(env.signers, env.deployer, artifact, opts...).Run(ctx)

	return err
}
