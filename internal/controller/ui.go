// Package controller provides output adapters for displaying strata runs.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "strata.dev/pkg/strata/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeList StartMode = iota
	ModeGenerate
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithListMode sets the UI to listing mode.
func WithListMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeList
	}
}

// WithGenerateMode sets the UI to generation mode.
func WithGenerateMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeGenerate
	}
}

func startConfig(options []StartOption) StartConfig {
	cfg := StartConfig{mode: ModeList}
	for _, option := range options {
		option(&cfg)
	}

	return cfg
}

// UI displays listings, run progress and stored snippets. Implementations
// can use different output methods (simple text, TUI).
//
//nolint:interfacebloat // one method per workflow event
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context)
	DisplayListing(ctx context.Context, results []m.FileResult, err error) error
	DisplayConcurrencyInfo(ctx context.Context, threads int, shardIndex int, shardCount int)
	DisplayUpcomingFiles(ctx context.Context, count int)
	DisplayStartingFile(ctx context.Context, source m.Source, workerID int)
	DisplayCompletedFile(ctx context.Context, result m.FileResult)
	DisplaySummary(ctx context.Context, summary m.RunSummary)
	DisplayStrata(ctx context.Context, strata m.Strata) error
	DisplayManifest(ctx context.Context, manifest m.Manifest) error
	DisplaySnippet(ctx context.Context, entry m.ManifestEntry, text string) error
	DisplayDiffs(ctx context.Context, diffs []m.VariantDiff) error
}

// NewUI picks the TUI for terminals and SimpleUI otherwise.
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
