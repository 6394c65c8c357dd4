package scaffold

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smartcontractkit/scaffold"
	"github.com/smartcontractkit/scaffold/sdk/evm/bindings"
)

func buildGreetingCmd(o *options, envFile *string) *cobra.Command {
	var address string

	cmd := &cobra.Command{
		Use:   "greeting",
		Short: "Print the greeting of a deployed YourContract",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			env, err := loadEnvironment(ctx, o, *envFile)
			if err != nil {
				return err
			}
			defer env.Close()

			addr, err := env.contractAddress(address)
			if err != nil {
				return err
			}

			contract, err := env.deployer.Attach(nil, bindings.YourContractName, addr)
			if err != nil {
				return err
			}
			greeter := scaffold.NewGreeter(contract)

			greeting, err := greeter.Greeting(ctx)
			if err != nil {
				return err
			}
			counter, err := greeter.TotalCounter(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), greeting)
			fmt.Fprintf(cmd.OutOrStdout(), "greetings set: %s\n", counter)

			return nil
		},
	}

	cmd.Flags().StringVar(&address, "address", "", "Contract address, defaults to the recorded deployment")

	return cmd
}

func buildSetGreetingCmd(o *options, envFile *string) *cobra.Command {
	var address string

	cmd := &cobra.Command{
		Use:   "set-greeting <greeting>",
		Short: "Set the greeting of a deployed YourContract",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			env, err := loadEnvironment(ctx, o, *envFile)
			if err != nil {
				return err
			}
			defer env.Close()

			addr, err := env.contractAddress(address)
			if err != nil {
				return err
			}

			signers, err := env.signers.Signers(ctx)
			if err != nil {
				return fmt.Errorf("%w: %w", scaffold.ErrNoSignerAvailable, err)
			}
			if len(signers) == 0 {
				return scaffold.ErrNoSignerAvailable
			}

			contract, err := env.deployer.Attach(signers[0], bindings.YourContractName, addr)
			if err != nil {
				return err
			}

			tx, err := scaffold.NewGreeter(contract).SetGreeting(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Transaction %s confirmed in block %d\n", tx.Hash, tx.BlockNumber)

			return nil
		},
	}

	cmd.Flags().StringVar(&address, "address", "", "Contract address, defaults to the recorded deployment")

	return cmd
}
