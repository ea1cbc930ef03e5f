package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"strata.dev/pkg/strata/internal/domain"
	m "strata.dev/pkg/strata/internal/model"
)

var viewDiffFlag bool
var viewVariantFlag string

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [unit-or-record-id]",
		Short: "View generated snippets",
		Long: `View snippets from an output directory. Without an argument every record
of the manifest is listed; with a unit ID (path#Type.method) its original and
variants are printed, or diffed against the original with --diff.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wf, err := currentWorkflow(cmd)
			if err != nil {
				return err
			}

			unit := ""
			if len(args) == 1 {
				unit = args[0]
			}

			return wf.View(cmd.Context(), domain.ViewArgs{
				Output:  m.Path(viper.GetString(outputFlagName)),
				Unit:    unit,
				Variant: viewVariantFlag,
				Diff:    viewDiffFlag,
			})
		},
	}

	cmd.Flags().BoolVar(&viewDiffFlag, diffFlagName, false, "show variants as unified diffs against the original")
	cmd.Flags().StringVar(&viewVariantFlag, variantFlagName, "", "only show one variant, e.g. stratum1_spaces_few")

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
