package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"strata.dev/pkg/strata/internal/domain"
	m "strata.dev/pkg/strata/internal/model"
)

// mergeCmd represents the merge command.
var mergeCmd = newMergeCmd()

func newMergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Merge sharded output into a single directory",
		Long:  "Merge snippets and manifests from shard_* subdirectories into the output directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			wf, err := currentWorkflow(cmd)
			if err != nil {
				return err
			}

			return wf.Merge(cmd.Context(), domain.MergeArgs{Output: m.Path(viper.GetString(outputFlagName))})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(mergeCmd)
}
