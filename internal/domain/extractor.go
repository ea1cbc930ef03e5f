package domain

import (
	"fmt"

	m "strata.dev/pkg/strata/internal/model"
)

// ExtractOptions control which part of a unit's span is sliced out.
type ExtractOptions struct {
	// IncludeDoc keeps the documentation comment at the start of the snippet.
	IncludeDoc bool
	// RequireDoc drops units that have no documentation comment.
	RequireDoc bool
}

// DefaultExtractOptions returns the options used when none are configured.
func DefaultExtractOptions() ExtractOptions {
	return ExtractOptions{IncludeDoc: true}
}

// Validate rejects a RequireDoc filter whose documentation would be cut from
// every snippet it keeps.
func (o ExtractOptions) Validate() error {
	if o.RequireDoc && !o.IncludeDoc {
		return fmt.Errorf("%w: require_doc needs include_doc", m.ErrInvalidExtractOptions)
	}

	return nil
}

// Extractor slices located units out of their source text without altering them.
type Extractor interface {
	Extract(file m.SourceFile, unit *m.MethodUnit) m.Snippet
	Accept(unit *m.MethodUnit) bool
}

type extractor struct {
	opts ExtractOptions
}

// NewExtractor returns an Extractor using opts.
func NewExtractor(opts ExtractOptions) Extractor {
	return &extractor{opts: opts}
}

func (e *extractor) Extract(file m.SourceFile, unit *m.MethodUnit) m.Snippet {
	span := unit.Span
	if !e.opts.IncludeDoc && unit.Doc != nil {
		span.Start = unit.Signature.Start
	}

	return m.Snippet{
		Unit:          unit,
		Dialect:       file.Dialect,
		Text:          span.Text(file.Text),
		SignatureText: unit.Signature.Text(file.Text),
		Offset:        span.Start,
	}
}

// Accept reports whether unit passes the extraction filters.
func (e *extractor) Accept(unit *m.MethodUnit) bool {
	return !e.opts.RequireDoc || unit.HasDoc()
}
