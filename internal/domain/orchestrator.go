package domain

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"strata.dev/pkg/strata/internal/adapter"
	"strata.dev/pkg/strata/internal/domain/lexer"
	m "strata.dev/pkg/strata/internal/model"
)

// Orchestrator runs the per-file pipeline: scan, locate, extract, perturb and
// assemble. Problems are collected as failures on the result; one file never
// aborts the run.
type Orchestrator interface {
	// ProcessSource loads a discovered source and processes it.
	ProcessSource(ctx context.Context, source m.Source) m.FileResult
	// Process runs the pipeline over an already loaded file.
	Process(file m.SourceFile) m.FileResult
}

type orchestrator struct {
	fsAdapter adapter.SourceFSAdapter
	dialects  adapter.DialectAdapter
	strata    m.Strata
	locator   Locator
	extractor Extractor
	engine    Engine
	assembler Assembler
}

// NewOrchestrator constructs an Orchestrator over the given adapters, strata and engine.
func NewOrchestrator(
	fsAdapter adapter.SourceFSAdapter,
	dialects adapter.DialectAdapter,
	strata m.Strata,
	engine Engine,
	opts ExtractOptions,
) Orchestrator {
	return &orchestrator{
		fsAdapter: fsAdapter,
		dialects:  dialects,
		strata:    strata,
		locator:   NewLocator(),
		extractor: NewExtractor(opts),
		engine:    engine,
		assembler: NewAssembler(strata),
	}
}

func (o *orchestrator) ProcessSource(ctx context.Context, source m.Source) m.FileResult {
	file, err := o.load(ctx, source)
	if err != nil {
		sourceID := sourceIDOf(source)
		slog.Error("Failed to load source", "source", sourceID, "error", err)

		return m.FileResult{
			Source:   source,
			SourceID: sourceID,
			Failures: []m.Failure{m.FailureFromError(sourceID, err)},
		}
	}

	result := o.Process(file)
	result.Source = source

	return result
}

func (o *orchestrator) load(ctx context.Context, source m.Source) (m.SourceFile, error) {
	if source.Origin == nil {
		return m.SourceFile{}, fmt.Errorf("%w: source origin is nil", m.ErrUnreadableSource)
	}

	data, err := o.fsAdapter.ReadFile(ctx, source.Origin.FullPath)
	if err != nil {
		return m.SourceFile{}, fmt.Errorf("%w: %w", m.ErrUnreadableSource, err)
	}

	if !utf8.Valid(data) {
		return m.SourceFile{}, fmt.Errorf("%w: %s is not valid UTF-8", m.ErrUnreadableSource, source.Origin.ShortPath)
	}

	dialect, err := o.dialectOf(source)
	if err != nil {
		return m.SourceFile{}, err
	}

	hash := fmt.Sprintf("%x", sha256.Sum256(data))
	source.Origin.Hash = hash

	return m.SourceFile{
		ID:      sourceIDOf(source),
		Path:    source.Origin.FullPath,
		Hash:    hash,
		Dialect: dialect,
		Text:    string(data),
	}, nil
}

func (o *orchestrator) dialectOf(source m.Source) (m.Dialect, error) {
	if source.Dialect != "" {
		return o.dialects.ByName(source.Dialect)
	}

	if d, ok := o.dialects.ForPath(source.Origin.FullPath); ok {
		return d, nil
	}

	return m.Dialect{}, fmt.Errorf("%w for %s", m.ErrUnknownDialect, source.Origin.ShortPath)
}

func sourceIDOf(source m.Source) string {
	if source.Origin == nil {
		return ""
	}

	if source.Origin.ShortPath != "" {
		return string(source.Origin.ShortPath)
	}

	return string(source.Origin.FullPath)
}

func (o *orchestrator) Process(file m.SourceFile) m.FileResult {
	result := m.FileResult{SourceID: file.ID}

	scan := lexer.Scan(file.Text, file.Dialect)
	if scan.Degenerate != nil {
		slog.Warn("Degenerate scan", "source", file.ID, "kind", scan.Degenerate.Kind, "offset", scan.Degenerate.Offset)
		result.Failures = append(result.Failures, m.FailureFromError(file.ID, scan.Degenerate))
	}

	result.Units = o.locator.Locate(file, scan)
	if len(result.Units) == 0 {
		slog.Debug("No units found", "source", file.ID)
		result.Failures = append(result.Failures, m.FailureFromError(file.ID, m.ErrNoUnitsFound))

		return result
	}

	groups := make([]UnitVariants, 0, len(result.Units))

	for i := range result.Units {
		unit := &result.Units[i]
		if !o.extractor.Accept(unit) {
			continue
		}

		snippet := o.extractor.Extract(file, unit)
		group := UnitVariants{Original: snippet}

		for _, stratum := range o.strata {
			for _, axis := range stratum.Axes {
				perturbed, err := o.engine.Perturb(snippet, stratum, axis)
				if err != nil {
					failure := m.FailureFromError(file.ID, err)
					failure.Unit = UnitID(unit)

					var violation *m.TransformInvariantViolation
					if !errors.As(err, &violation) {
						failure.Kind = m.FailureTransform
						failure.Variant = m.Variant{Stratum: stratum.ID, Axis: axis.Axis, Intensity: axis.Intensity}.ID()
					}

					slog.Warn("Perturbation failed", "unit", failure.Unit, "variant", failure.Variant, "error", err)
					result.Failures = append(result.Failures, failure)

					continue
				}

				group.Variants = append(group.Variants, perturbed)
			}
		}

		groups = append(groups, group)
	}

	result.Records = o.assembler.Assemble(groups)

	slog.Debug("Processed source", "source", file.ID, "units", len(result.Units), "records", len(result.Records), "failures", len(result.Failures))

	return result
}
