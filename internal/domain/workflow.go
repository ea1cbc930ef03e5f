package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/sync/errgroup"

	"strata.dev/pkg/strata/internal/adapter"
	"strata.dev/pkg/strata/internal/controller"
	m "strata.dev/pkg/strata/internal/model"
	"strata.dev/pkg/strata/pkg"
)

// ListArgs contains the arguments for listing sources and their units.
type ListArgs struct {
	Paths    []m.Path
	Filter   adapter.SourceFilter
	Parallel int
}

// GenerateArgs contains the arguments for generating a corpus.
type GenerateArgs struct {
	Paths           []m.Path
	Filter          adapter.SourceFilter
	Output          m.Path
	Parallel        int
	ShardIndex      int
	TotalShardCount int
	// SpillDir holds the temporary record spill; empty uses the system default.
	SpillDir string
}

// ViewArgs selects stored records to display.
type ViewArgs struct {
	Output m.Path
	// Unit is a unit ID or a record ID. Empty lists every record.
	Unit string
	// Variant narrows the selection to one variant ID.
	Variant string
	// Diff shows each variant as a unified diff against the original.
	Diff bool
}

// MergeArgs contains the arguments for merging sharded output.
type MergeArgs struct {
	Output m.Path
}

// Workflow drives the batch operations of the CLI.
type Workflow interface {
	List(ctx context.Context, args ListArgs) error
	Generate(ctx context.Context, args GenerateArgs) (m.RunSummary, error)
	View(ctx context.Context, args ViewArgs) error
	Merge(ctx context.Context, args MergeArgs) error
}

type workflow struct {
	adapter.SnippetStore
	controller.UI
	SourceStreamer
	Orchestrator

	newRunID func() string
}

// NewWorkflow creates a Workflow from its collaborators.
func NewWorkflow(
	streamer SourceStreamer,
	store adapter.SnippetStore,
	ui controller.UI,
	orchestrator Orchestrator,
) Workflow {
	return &workflow{
		SnippetStore:   store,
		UI:             ui,
		SourceStreamer: streamer,
		Orchestrator:   orchestrator,
		newRunID:       uuid.NewString,
	}
}

func (w *workflow) List(ctx context.Context, args ListArgs) error {
	if err := w.Start(ctx, controller.WithListMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	parallel := bufferSize(args.Parallel)

	sources, err := w.collectSources(ctx, args.Paths, args.Filter, parallel, 0, 1)
	if err != nil {
		return w.DisplayListing(ctx, nil, fmt.Errorf("discover sources: %w", err))
	}

	results := make([]m.FileResult, len(sources))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(parallel)

	for i, source := range sources {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			results[i] = w.ProcessSource(groupCtx, source)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return w.DisplayListing(ctx, nil, err)
	}

	if err := w.DisplayListing(ctx, results, nil); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	w.Wait(ctx)

	return nil
}

// collectSources discovers, sorts and shards the sources of one run.
func (w *workflow) collectSources(ctx context.Context, paths []m.Path, filter adapter.SourceFilter, parallel, shardIndex, totalShardCount int) ([]m.Source, error) {
	all, errCh := w.SourceStreamer.Get(ctx, paths, filter, parallel)
	sharded := w.ShardSources(ctx, all, parallel, shardIndex, totalShardCount)

	var sources []m.Source
	for source := range sharded {
		sources = append(sources, source)
	}

	if err := <-errCh; err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return sources, nil
}

func (w *workflow) Generate(ctx context.Context, args GenerateArgs) (m.RunSummary, error) {
	started := time.Now()
	runID := w.newRunID()

	if err := w.Start(ctx, controller.WithGenerateMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return m.RunSummary{}, err
	}
	defer w.Close(ctx)

	parallel := bufferSize(args.Parallel)
	shardCount := max(args.TotalShardCount, 1)

	sources, err := w.collectSources(ctx, args.Paths, args.Filter, parallel, args.ShardIndex, shardCount)
	if err != nil {
		return m.RunSummary{}, fmt.Errorf("discover sources: %w", err)
	}

	w.DisplayConcurrencyInfo(ctx, parallel, args.ShardIndex, shardCount)
	w.DisplayUpcomingFiles(ctx, len(sources))

	records, err := pkg.NewFileSpill[m.Record](args.SpillDir)
	if err != nil {
		return m.RunSummary{}, fmt.Errorf("create record spill: %w", err)
	}

	defer func() {
		if err := records.Remove(); err != nil {
			slog.Error("Failed to remove record spill", "path", records.Path(), "error", err)
		}
	}()

	builder, err := w.processSources(ctx, sources, parallel, runID, records)
	if err != nil {
		return m.RunSummary{}, err
	}

	if err := records.Close(); err != nil {
		return m.RunSummary{}, fmt.Errorf("close record spill: %w", err)
	}

	root := args.Output
	if shardCount > 1 {
		root = adapter.ShardDir(args.Output, args.ShardIndex)
	}

	if _, err := w.Save(ctx, root, runID, records); err != nil {
		return m.RunSummary{}, fmt.Errorf("save snippets: %w", err)
	}

	summary, err := builder.build(records)
	if err != nil {
		return m.RunSummary{}, fmt.Errorf("summarize run: %w", err)
	}

	summary.Duration = time.Since(started)

	slog.Info("Run completed", "run", runID, "files", summary.Files, "records", summary.Records, "failures", len(summary.Failures), "duration", summary.Duration)

	w.DisplaySummary(ctx, summary)
	w.Wait(ctx)

	return summary, nil
}

// processSources runs the per-file pipeline with at most parallel workers.
// Cancellation is observed between files.
func (w *workflow) processSources(ctx context.Context, sources []m.Source, parallel int, runID string, records pkg.FileSpill[m.Record]) (*summaryBuilder, error) {
	builder := newSummaryBuilder(runID)

	var mu sync.Mutex

	workerIDs := make(chan int, parallel)
	for id := range parallel {
		workerIDs <- id
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(parallel)

	for _, source := range sources {
		if groupCtx.Err() != nil {
			break
		}

		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			workerID := <-workerIDs
			defer func() { workerIDs <- workerID }()

			w.DisplayStartingFile(ctx, source, workerID)

			result := w.ProcessSource(groupCtx, source)

			if err := records.AppendBatch(result.Records); err != nil {
				return fmt.Errorf("spill records of %s: %w", result.SourceID, err)
			}

			mu.Lock()
			builder.add(result)
			mu.Unlock()

			w.DisplayCompletedFile(ctx, result)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return builder, nil
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	manifest, err := w.Load(ctx, args.Output)
	if err != nil {
		return fmt.Errorf("load manifest: %w", err)
	}

	if args.Unit == "" {
		return w.DisplayManifest(ctx, filterVariant(manifest, args.Variant))
	}

	selected := selectEntries(manifest.Entries, args.Unit, args.Variant)
	if len(selected) == 0 {
		return fmt.Errorf("no records found for %s", args.Unit)
	}

	if args.Diff {
		diffs, err := w.diffs(ctx, args.Output, manifest.Entries, selected)
		if err != nil {
			return err
		}

		return w.DisplayDiffs(ctx, diffs)
	}

	for _, entry := range selected {
		text, err := w.Read(ctx, args.Output, entry)
		if err != nil {
			return err
		}

		if err := w.DisplaySnippet(ctx, entry, text); err != nil {
			return err
		}
	}

	return nil
}

func filterVariant(manifest m.Manifest, variant string) m.Manifest {
	if variant == "" {
		return manifest
	}

	filtered := manifest
	filtered.Entries = nil

	for _, entry := range manifest.Entries {
		if variantOf(entry.ID) == variant {
			filtered.Entries = append(filtered.Entries, entry)
		}
	}

	return filtered
}

// splitRecordID splits a record ID into its unit ID and variant ID.
func splitRecordID(id string) (string, string) {
	i := strings.LastIndex(id, "/")
	if i < 0 {
		return id, ""
	}

	return id[:i], id[i+1:]
}

func unitOf(id string) string {
	unit, _ := splitRecordID(id)
	return unit
}

func variantOf(id string) string {
	_, variant := splitRecordID(id)
	return variant
}

// selectEntries returns the entries of a unit, or the single entry whose
// record ID equals ref.
func selectEntries(entries []m.ManifestEntry, ref, variant string) []m.ManifestEntry {
	var selected []m.ManifestEntry

	for _, entry := range entries {
		if entry.ID != ref && unitOf(entry.ID) != ref {
			continue
		}

		if variant != "" && variantOf(entry.ID) != variant {
			continue
		}

		selected = append(selected, entry)
	}

	return selected
}

func (w *workflow) diffs(ctx context.Context, root m.Path, all, selected []m.ManifestEntry) ([]m.VariantDiff, error) {
	originals := make(map[string]m.ManifestEntry)

	for _, entry := range all {
		if entry.Original {
			originals[unitOf(entry.ID)] = entry
		}
	}

	texts := make(map[string]string)

	read := func(entry m.ManifestEntry) (string, error) {
		if text, ok := texts[entry.ID]; ok {
			return text, nil
		}

		text, err := w.Read(ctx, root, entry)
		if err != nil {
			return "", err
		}

		texts[entry.ID] = text

		return text, nil
	}

	var diffs []m.VariantDiff

	for _, entry := range selected {
		if entry.Original {
			continue
		}

		unitID, variantID := splitRecordID(entry.ID)

		original, ok := originals[unitID]
		if !ok {
			return nil, fmt.Errorf("no original record for %s", unitID)
		}

		before, err := read(original)
		if err != nil {
			return nil, err
		}

		after, err := read(entry)
		if err != nil {
			return nil, err
		}

		diff, err := unifiedDiff(before, after, variantID)
		if err != nil {
			return nil, fmt.Errorf("diff %s: %w", entry.ID, err)
		}

		diffs = append(diffs, m.VariantDiff{
			UnitID:    unitID,
			VariantID: variantID,
			Diff:      diff,
			Unchanged: diff == "",
		})
	}

	if len(diffs) == 0 {
		return nil, errors.New("selection contains no variants to diff")
	}

	return diffs, nil
}

func unifiedDiff(before, after, variantID string) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: m.OriginalVariantID,
		ToFile:   variantID,
		Context:  3,
	})
}

func (w *workflow) Merge(ctx context.Context, args MergeArgs) error {
	runID := w.newRunID()

	manifest, err := w.SnippetStore.Merge(ctx, args.Output, runID)
	if err != nil {
		return fmt.Errorf("merge shards: %w", err)
	}

	summary := m.RunSummary{RunID: runID, Records: len(manifest.Entries)}
	files := make(map[string]bool)

	for _, entry := range manifest.Entries {
		files[entry.Source] = true

		if entry.Unchanged {
			summary.Unchanged++
		}
	}

	summary.Files = len(files)

	w.DisplaySummary(ctx, summary)

	return nil
}
