package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"strata.dev/pkg/strata/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List source files with unit and record counts",
		Long:  listLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			wf, err := currentWorkflow(cmd)
			if err != nil {
				return err
			}

			return wf.List(cmd.Context(), domain.ListArgs{
				Paths:    parsePaths(args),
				Filter:   sourceFilter(),
				Parallel: viper.GetInt(runParallelConfigKey),
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
