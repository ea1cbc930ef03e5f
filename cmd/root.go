// Package cmd provides the root command and CLI setup for strata.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"strata.dev/pkg/strata/internal/adapter"
	"strata.dev/pkg/strata/internal/controller"
	"strata.dev/pkg/strata/internal/domain"
	m "strata.dev/pkg/strata/internal/model"
)

// workflow and ui are built on first use from the loaded configuration.
// Tests replace them with mocks.
var (
	workflow domain.Workflow
	ui       controller.UI
)

var (
	outputDirFlag   string
	excludePatterns []string
	includePatterns []string
	langFlag        string
	symbolsFlag     string
	verboseFlag     bool
)

const pathPatternsHelp = `Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./src/...      recursively scan src directory
  - ./a ./b        scan multiple directories (one level deep)
  - Foo.java       a single file`

const rootLongDescription = `Strata extracts methods and functions from curly-brace source files
(Java, Kotlin, C#, C, C++, JavaScript, TypeScript, Go, Rust) and derives graduated
"stratum" variants from each one: whitespace collapsed, comments stripped,
tabs substituted, identifiers renamed, types qualified, layout reflowed.

` + pathPatternsHelp

const runLongDescription = `Extract every unit of the given paths and write the original and all
configured stratum variants to the output directory, with a manifest.yaml.

` + pathPatternsHelp

const listLongDescription = `List source files with the number of units and records a run would produce.

` + pathPatternsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "strata",
		Short:         "Graduated source snippet generator",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringVarP(&outputDirFlag, outputFlagName, "o", viper.GetString(outputFlagName), "output directory for generated snippets")
	bindFlagToConfig(flags.Lookup(outputFlagName), outputFlagName)

	flags.StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude files matching regex (can be repeated)")
	bindFlagToConfig(flags.Lookup(excludeFlagName), excludeConfigKey)

	flags.StringArrayVarP(&includePatterns, includeFlagName, "i", viper.GetStringSlice(includeConfigKey), "only include files matching glob, e.g. '**/*.java' (can be repeated)")
	bindFlagToConfig(flags.Lookup(includeFlagName), includeConfigKey)

	flags.StringVarP(&langFlag, langFlagName, "l", viper.GetString(langConfigKey), "force the source dialect instead of detecting it from the file extension")
	bindFlagToConfig(flags.Lookup(langFlagName), langConfigKey)

	flags.StringVar(&symbolsFlag, symbolsFlagName, viper.GetString(symbolsConfigKey), "YAML file with rename and qualify symbol tables")
	bindFlagToConfig(flags.Lookup(symbolsFlagName), symbolsConfigKey)

	flags.BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func currentUI(cmd *cobra.Command) controller.UI {
	if ui == nil {
		ui = controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout()))
	}

	return ui
}

func currentWorkflow(cmd *cobra.Command) (domain.Workflow, error) {
	if workflow != nil {
		return workflow, nil
	}

	strata, err := loadStrata()
	if err != nil {
		return nil, err
	}

	symbols, err := loadSymbols()
	if err != nil {
		return nil, err
	}

	extractOptions, err := loadExtractOptions()
	if err != nil {
		return nil, err
	}

	dialects, err := adapter.NewLocalDialectAdapter(viper.GetString(langConfigKey), viper.GetStringMapString(extensionsConfigKey))
	if err != nil {
		return nil, err
	}

	engine, err := domain.NewEngine(symbols, viper.GetInt(scanCacheSizeConfigKey))
	if err != nil {
		return nil, err
	}

	fsAdapter := adapter.NewLocalSourceFSAdapter(dialects)
	orchestrator := domain.NewOrchestrator(fsAdapter, dialects, strata, engine, extractOptions)

	workflow = domain.NewWorkflow(
		domain.NewSourceStreamer(fsAdapter),
		adapter.NewLocalSnippetStore(fsAdapter),
		currentUI(cmd),
		orchestrator,
	)

	return workflow, nil
}

func sourceFilter() adapter.SourceFilter {
	return adapter.SourceFilter{
		Include: viper.GetStringSlice(includeConfigKey),
		Exclude: viper.GetStringSlice(excludeConfigKey),
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
