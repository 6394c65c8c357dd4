package scaffold

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/smartcontractkit/scaffold/pkg/config"
	"github.com/smartcontractkit/scaffold/pkg/deployment"
)

func buildDeploymentsCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "deployments",
		Short: "List the recorded deployments of the configured network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*envFile)
			if err != nil {
				return err
			}
			if cfg.DeploymentsDir == "" {
				return fmt.Errorf("deployment records are disabled, set %s", config.EnvDeploymentsDir)
			}

			records, err := deployment.NewStore(cfg.DeploymentsDir).List(cfg.Network)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CONTRACT\tADDRESS\tBLOCK\tTX")
			for _, r := range records {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", r.ContractName, r.Address, r.BlockNumber, r.TxHash)
			}

			return w.Flush()
		},
	}
}
