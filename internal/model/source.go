// Package model defines the data structures shared by the scanning, locating and
// perturbation stages.
package model

// Path represents a file system path.
type Path string

// File identifies a discovered source file on disk.
type File struct {
	FullPath  Path
	ShortPath Path
	Hash      string
}

// Source is a discovered input waiting to be loaded.
type Source struct {
	Origin  *File
	Dialect string
}

// SourceFile is a loaded, immutable source text.
type SourceFile struct {
	ID      string // logical name, usually the short path
	Path    Path
	Hash    string
	Dialect Dialect
	Text    string
}

// Span is a half-open byte range [Start, End).
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Empty reports whether the span covers no bytes.
func (s Span) Empty() bool {
	return s.End <= s.Start
}

// Contains reports whether offset lies inside the span.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End
}

// Text slices src by the span, clamping to the bounds of src.
func (s Span) Text(src string) string {
	start, end := s.Start, s.End
	if start < 0 {
		start = 0
	}

	if end > len(src) {
		end = len(src)
	}

	if start >= end {
		return ""
	}

	return src[start:end]
}

// Shift returns the span moved by delta bytes.
func (s Span) Shift(delta int) Span {
	return Span{Start: s.Start + delta, End: s.End + delta}
}
