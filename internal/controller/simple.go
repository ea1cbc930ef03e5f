package controller

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "strata.dev/pkg/strata/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer. Workers report
// progress concurrently, so writes are serialized.
type SimpleUI struct {
	cmd *cobra.Command
	mu  sync.Mutex
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	return ctx.Err()
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// Wait returns immediately; SimpleUI never blocks.
func (s *SimpleUI) Wait(_ context.Context) {}

// DisplayListing prints one row per file with its unit and record counts.
func (s *SimpleUI) DisplayListing(ctx context.Context, results []m.FileResult, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	if err != nil {
		s.printf("listing error: %v\n", err)
		return err
	}

	s.printf("\n%s", renderListingTable(buildFileStats(results)))

	return nil
}

type fileStat struct {
	path     string
	dialect  string
	units    int
	records  int
	failures int
}

func buildFileStats(results []m.FileResult) []fileStat {
	stats := make([]fileStat, 0, len(results))

	for _, result := range results {
		stats = append(stats, fileStat{
			path:     result.SourceID,
			dialect:  result.Source.Dialect,
			units:    len(result.Units),
			records:  len(result.Records),
			failures: countFatal(result.Failures),
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		return stats[i].path < stats[j].path
	})

	return stats
}

func countFatal(failures []m.Failure) int {
	count := 0

	for _, failure := range failures {
		if failure.Kind.Fatal() {
			count++
		}
	}

	return count
}

func renderListingTable(stats []fileStat) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Dialect", "Units", "Records", "Failures"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER,
	})

	units, records, failures := 0, 0, 0

	for _, stat := range stats {
		table.Append([]string{
			stat.path, stat.dialect,
			fmt.Sprintf("%d", stat.units), fmt.Sprintf("%d", stat.records), fmt.Sprintf("%d", stat.failures),
		})

		units += stat.units
		records += stat.records
		failures += stat.failures
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(stats)), "",
		fmt.Sprintf("%d", units), fmt.Sprintf("%d", records), fmt.Sprintf("%d", failures),
	})

	table.Render()

	return tableBuffer.String()
}

// DisplayConcurrencyInfo shows concurrency settings.
func (s *SimpleUI) DisplayConcurrencyInfo(ctx context.Context, threads int, shardIndex int, shardCount int) {
	if ctx.Err() != nil {
		return
	}

	s.printf("Running with %d worker(s) (Shard %d/%d)\n", threads, shardIndex, shardCount)
}

// DisplayUpcomingFiles shows the number of files to process.
func (s *SimpleUI) DisplayUpcomingFiles(ctx context.Context, count int) {
	if ctx.Err() != nil {
		return
	}

	s.printf("Upcoming files: %d\n", count)
}

// DisplayStartingFile shows which file a worker picked up.
func (s *SimpleUI) DisplayStartingFile(ctx context.Context, source m.Source, workerID int) {
	if ctx.Err() != nil || source.Origin == nil {
		return
	}

	s.printf("[%d] %s\n", workerID, source.Origin.ShortPath)
}

// DisplayCompletedFile prints the file outcome and its fatal failures.
func (s *SimpleUI) DisplayCompletedFile(ctx context.Context, result m.FileResult) {
	if ctx.Err() != nil {
		return
	}

	s.printf("Completed %s -> %d unit(s), %d record(s)\n", result.SourceID, len(result.Units), len(result.Records))

	for _, failure := range result.Failures {
		if failure.Kind.Fatal() {
			s.printf("  %s\n", formatFailure(failure))
		}
	}
}

func formatFailure(failure m.Failure) string {
	var b strings.Builder

	b.WriteString(string(failure.Kind))

	if failure.Unit != "" {
		b.WriteString(" ")
		b.WriteString(failure.Unit)
	}

	if failure.Variant != "" {
		b.WriteString(" [")
		b.WriteString(failure.Variant)
		b.WriteString("]")
	}

	b.WriteString(": ")
	b.WriteString(failure.Message)

	return b.String()
}

// DisplaySummary prints the run totals.
func (s *SimpleUI) DisplaySummary(ctx context.Context, summary m.RunSummary) {
	if ctx.Err() != nil {
		return
	}

	s.printf("%s\n", summaryLine(summary))
}

func summaryLine(summary m.RunSummary) string {
	return fmt.Sprintf("Files: %d | Units: %d | Records: %d | Unchanged: %d | Failures: %d | Degenerate: %d | Run: %s",
		summary.Files, summary.Units, summary.Records, summary.Unchanged,
		summary.CountFailures(m.FailureTransform)+summary.CountFailures(m.FailureUnreadable),
		summary.CountFailures(m.FailureScanDegenerate),
		summary.RunID)
}

// DisplayStrata renders the effective strata configuration.
func (s *SimpleUI) DisplayStrata(ctx context.Context, strata m.Strata) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderStrataTable(strata))

	return nil
}

func renderStrataTable(strata m.Strata) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"ID", "Name", "Base", "Variants"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, stratum := range strata {
		table.Append([]string{
			fmt.Sprintf("%d", stratum.ID),
			stratum.Label(),
			joinSpecs(stratum.Base),
			joinSpecs(stratum.Axes),
		})
	}

	table.Render()

	return tableBuffer.String()
}

func joinSpecs(specs []m.AxisSpec) string {
	if len(specs) == 0 {
		return "-"
	}

	parts := make([]string, 0, len(specs))
	for _, spec := range specs {
		parts = append(parts, spec.String())
	}

	return strings.Join(parts, " ")
}

// DisplayManifest lists every stored record.
func (s *SimpleUI) DisplayManifest(ctx context.Context, manifest m.Manifest) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderManifestTable(manifest))

	return nil
}

func renderManifestTable(manifest m.Manifest) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Record", "Path", "Unchanged"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	unchanged := 0

	for _, entry := range manifest.Entries {
		mark := ""
		if entry.Unchanged {
			mark = "yes"
			unchanged++
		}

		table.Append([]string{entry.ID, entry.Path, mark})
	}

	table.SetFooter([]string{fmt.Sprintf("Run %s", manifest.RunID), fmt.Sprintf("%d records", len(manifest.Entries)), fmt.Sprintf("%d", unchanged)})
	table.Render()

	return tableBuffer.String()
}

// DisplaySnippet prints one stored snippet.
func (s *SimpleUI) DisplaySnippet(ctx context.Context, entry m.ManifestEntry, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("=== %s ===\n%s\n", entry.ID, strings.TrimRight(text, "\n"))

	return nil
}

// DisplayDiffs prints unified diffs of variants against their original.
func (s *SimpleUI) DisplayDiffs(ctx context.Context, diffs []m.VariantDiff) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, diff := range diffs {
		if diff.Unchanged || diff.Diff == "" {
			s.printf("=== %s/%s (unchanged) ===\n", diff.UnitID, diff.VariantID)
			continue
		}

		s.printf("=== %s/%s ===\n%s\n", diff.UnitID, diff.VariantID, strings.TrimRight(diff.Diff, "\n"))
	}

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
