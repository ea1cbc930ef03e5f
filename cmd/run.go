package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"strata.dev/pkg/strata/internal/domain"
	m "strata.dev/pkg/strata/internal/model"
)

var runParallelFlag int
var runShardFlag string

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [paths...]",
		Short: "Generate original and stratum snippets",
		Long:  runLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			shardIndex, totalShards, err := parseShardFlag(runShardFlag)
			if err != nil {
				return err
			}

			wf, err := currentWorkflow(cmd)
			if err != nil {
				return err
			}

			_, err = wf.Generate(cmd.Context(), domain.GenerateArgs{
				Paths:           parsePaths(args),
				Filter:          sourceFilter(),
				Output:          m.Path(viper.GetString(outputFlagName)),
				Parallel:        viper.GetInt(runParallelConfigKey),
				ShardIndex:      shardIndex,
				TotalShardCount: totalShards,
				SpillDir:        viper.GetString(spillDirConfigKey),
			})

			return err
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&runParallelFlag, runParallelFlagName, "p", viper.GetInt(runParallelConfigKey), "number of files processed in parallel")
	bindFlagToConfig(cmd.Flags().Lookup(runParallelFlagName), runParallelConfigKey)
	cmd.Flags().StringVarP(&runShardFlag, shardFlagName, "s", "", "shard index and total shard count in the format INDEX/TOTAL (e.g., 0/3)")
}

// parseShardFlag parses INDEX/TOTAL. An empty value means a single shard.
func parseShardFlag(shard string) (int, int, error) {
	if shard == "" {
		return 0, 1, nil
	}

	var index, total int

	_, err := fmt.Sscanf(shard, "%d/%d", &index, &total)
	if err != nil || total <= 0 || index < 0 || index >= total {
		return 0, 0, fmt.Errorf("invalid --%s %q: want INDEX/TOTAL with 0 <= INDEX < TOTAL", shardFlagName, shard)
	}

	return index, total, nil
}
