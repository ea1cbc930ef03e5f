package cmd

import (
	"github.com/spf13/cobra"
)

// strataCmd represents the strata command.
var strataCmd = newStrataCmd()

func newStrataCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strata",
		Short: "Show the effective strata configuration",
		Long:  "Validate the configured strata and print each stratum with its base axes and variants.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			strata, err := loadStrata()
			if err != nil {
				return err
			}

			if _, err := loadSymbols(); err != nil {
				return err
			}

			return currentUI(cmd).DisplayStrata(cmd.Context(), strata)
		},
	}
}

func init() {
	rootCmd.AddCommand(strataCmd)
}
