package scaffold

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smartcontractkit/scaffold"
)

func buildVerifyCmd(o *options, envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Deploy YourContract and check its greeting behaviour",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			env, err := loadEnvironment(ctx, o, *envFile)
			if err != nil {
				return err
			}
			defer env.Close()

			report, err := scaffold.NewVerifier(env.signers, env.deployer).Run(ctx)
			if err != nil {
				return err
			}

			failed := 0
			for _, res := range report.Results {
				status := "PASS"
				if !res.Passed() {
					status = "FAIL"
					failed++
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", status, res.Name)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d checks failed on %s: %w",
					failed, len(report.Results), report.ContractAddress, errors.Join(checkErrors(report)...))
			}

			return nil
		},
	}
}

func checkErrors(report scaffold.VerificationReport) []error {
	var errs []error
	for _, res := range report.Results {
		if res.Err != nil {
			errs = append(errs, res.Err)
		}
	}

	return errs
}
