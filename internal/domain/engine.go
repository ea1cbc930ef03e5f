package domain

import (
	"errors"
	"fmt"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"

	"strata.dev/pkg/strata/internal/domain/lexer"
	"strata.dev/pkg/strata/internal/domain/perturbations"
	m "strata.dev/pkg/strata/internal/model"
)

// DefaultScanCacheSize bounds the number of rescans an engine keeps.
const DefaultScanCacheSize = 4096

// Engine applies strata variants to extracted snippets.
type Engine interface {
	Perturb(snippet m.Snippet, stratum m.Stratum, axis m.AxisSpec) (m.PerturbedSnippet, error)
}

type engine struct {
	symbols    m.SymbolTable
	scans      *lru.Cache[string, m.Scan]
	transforms map[m.AxisSpec]perturbations.Transform
}

// NewEngine returns an Engine rewriting identifiers with symbols. The engine
// owns a rescan cache of at most cacheSize entries; a non-positive size uses
// DefaultScanCacheSize.
func NewEngine(symbols m.SymbolTable, cacheSize int) (Engine, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultScanCacheSize
	}

	scans, err := lru.New[string, m.Scan](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create scan cache: %w", err)
	}

	return &engine{symbols: symbols, scans: scans, transforms: axisTransforms}, nil
}

var axisTransforms = map[m.AxisSpec]perturbations.Transform{
	{Axis: m.AxisComments, Intensity: m.IntensityRemove}:     perturbations.RemoveComments,
	{Axis: m.AxisComments, Intensity: m.IntensityDocs}:       perturbations.RemoveDocComments,
	{Axis: m.AxisComments, Intensity: m.IntensityInline}:     perturbations.RemoveInlineComments,
	{Axis: m.AxisSpaces, Intensity: m.IntensityFew}:          perturbations.SpacesFew,
	{Axis: m.AxisSpaces, Intensity: m.IntensityMany}:         perturbations.SpacesMany,
	{Axis: m.AxisTabs, Intensity: m.IntensityFew}:            perturbations.TabsFew,
	{Axis: m.AxisTabs, Intensity: m.IntensityMany}:           perturbations.TabsMany,
	{Axis: m.AxisNewlines, Intensity: m.IntensityFew}:        perturbations.NewlinesFew,
	{Axis: m.AxisNewlines, Intensity: m.IntensityMany}:       perturbations.NewlinesMany,
	{Axis: m.AxisLayout, Intensity: m.IntensitySingleLine}:   perturbations.SingleLine,
	{Axis: m.AxisLayout, Intensity: m.IntensityTokenPerLine}: perturbations.TokenPerLine,
	{Axis: m.AxisIndentation, Intensity: m.IntensityStrip}:   perturbations.StripIndentation,
	{Axis: m.AxisRename, Intensity: m.IntensityFew}:          perturbations.RenameFew,
	{Axis: m.AxisRename, Intensity: m.IntensityMany}:         perturbations.RenameMany,
	{Axis: m.AxisQualify, Intensity: m.IntensityFew}:         perturbations.QualifyFew,
	{Axis: m.AxisQualify, Intensity: m.IntensityMany}:        perturbations.QualifyMany,
}

// axisChecks refuse inputs their transform would break without the rescan
// noticing.
var axisChecks = map[m.AxisSpec]perturbations.Check{
	{Axis: m.AxisRename, Intensity: m.IntensityFew}:  perturbations.CheckRenameFew,
	{Axis: m.AxisRename, Intensity: m.IntensityMany}: perturbations.CheckRenameMany,
}

func (e *engine) Perturb(snippet m.Snippet, stratum m.Stratum, axis m.AxisSpec) (m.PerturbedSnippet, error) {
	variant := m.Variant{Stratum: stratum.ID, Axis: axis.Axis, Intensity: axis.Intensity}

	if snippet.Unit == nil {
		return m.PerturbedSnippet{}, fmt.Errorf("missing unit for %s", variant.ID())
	}

	base, err := e.apply(snippet, stratum.Pipeline(m.NoneSpec))
	if err != nil {
		return m.PerturbedSnippet{}, annotate(err, variant)
	}

	text := base
	if axis.Axis != m.AxisNone {
		text, err = e.apply(snippet, stratum.Pipeline(axis))
		if err != nil {
			return m.PerturbedSnippet{}, annotate(err, variant)
		}
	}

	return m.PerturbedSnippet{
		Unit:      snippet.Unit,
		Variant:   variant,
		Text:      text,
		Unchanged: axis.Axis != m.AxisNone && text == base,
	}, nil
}

// apply runs the pipeline step by step, rescanning after every step.
func (e *engine) apply(snippet m.Snippet, pipeline []m.AxisSpec) (string, error) {
	text := snippet.Text
	scan := e.scan(snippet.Dialect, text)

	for _, spec := range pipeline {
		transform, ok := e.transforms[spec]
		if !ok {
			return "", fmt.Errorf("%w: %s", m.ErrUnknownIntensity, spec)
		}

		in := perturbations.Input{
			Text:    text,
			Scan:    scan,
			Dialect: snippet.Dialect,
			Symbols: e.symbols,
			Name:    snippet.Unit.Name,
			Type:    innermostType(snippet.Unit),
		}

		if check, ok := axisChecks[spec]; ok {
			if err := check(in); err != nil {
				return "", reject(err, snippet, spec)
			}
		}

		out := transform(in)
		if out == text {
			continue
		}

		outScan := e.scan(snippet.Dialect, out)

		if err := lexer.Compare(text, scan, out, outScan); err != nil {
			return "", reject(err, snippet, spec)
		}

		text, scan = out, outScan
	}

	return text, nil
}

// reject names the failing step in a violation's reason.
func reject(err error, snippet m.Snippet, spec m.AxisSpec) error {
	var violation *m.TransformInvariantViolation
	if errors.As(err, &violation) {
		violation.Reason = spec.String() + ": " + violation.Reason
	}

	slog.Debug("transform rejected", "unit", snippet.Unit.QualifiedName(), "step", spec.String(), "error", err)

	return err
}

func (e *engine) scan(d m.Dialect, text string) m.Scan {
	key := d.Name + "\x00" + text

	if scan, ok := e.scans.Get(key); ok {
		return scan
	}

	scan := lexer.Scan(text, d)
	e.scans.Add(key, scan)

	return scan
}

func innermostType(unit *m.MethodUnit) string {
	if len(unit.Enclosing) == 0 {
		return ""
	}

	return unit.Enclosing[len(unit.Enclosing)-1]
}

func annotate(err error, variant m.Variant) error {
	var violation *m.TransformInvariantViolation
	if errors.As(err, &violation) {
		violation.Variant = variant.ID()
	}

	return err
}
