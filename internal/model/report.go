package model

import "time"

// PerturbedSnippet is the result of applying one variant to a unit.
type PerturbedSnippet struct {
	Unit    *MethodUnit
	Variant Variant
	Text    string
	// Unchanged is set when the text equals the stratum's base-only text.
	Unchanged bool
}

// Record is one emitted snippet with its identifying metadata.
type Record struct {
	ID            string
	SourceID      string
	EnclosingType string
	UnitName      string
	Ordinal       int
	Stratum       int
	Axis          Axis
	Intensity     Intensity
	Text          string
	Original      bool
	Unchanged     bool
}

// VariantID returns the variant portion of the record identifier.
func (r Record) VariantID() string {
	if r.Original {
		return OriginalVariantID
	}

	return Variant{Stratum: r.Stratum, Axis: r.Axis, Intensity: r.Intensity}.ID()
}

// FileResult holds the outcome of one file's pipeline.
type FileResult struct {
	Source   Source
	SourceID string
	Units    []MethodUnit
	Records  []Record
	Failures []Failure
}

// RunSummary aggregates a whole run.
type RunSummary struct {
	RunID     string
	Files     int
	Units     int
	Records   int
	Unchanged int
	Failures  []Failure
	Duration  time.Duration
}

// CountFailures returns the number of failures of the given kind.
func (s RunSummary) CountFailures(kind FailureKind) int {
	count := 0

	for _, failure := range s.Failures {
		if failure.Kind == kind {
			count++
		}
	}

	return count
}

// ManifestEntry describes one persisted record.
type ManifestEntry struct {
	ID        string `yaml:"id"`
	Source    string `yaml:"source"`
	Type      string `yaml:"type,omitempty"`
	Unit      string `yaml:"unit"`
	Stratum   int    `yaml:"stratum"`
	Axis      string `yaml:"axis"`
	Intensity string `yaml:"intensity"`
	Path      string `yaml:"path"`
	Original  bool   `yaml:"original,omitempty"`
	Unchanged bool   `yaml:"unchanged,omitempty"`
}

// Manifest lists every persisted record of a run or a merge.
type Manifest struct {
	Version int             `yaml:"version"`
	RunID   string          `yaml:"run_id"`
	Created time.Time       `yaml:"created"`
	Entries []ManifestEntry `yaml:"entries"`
}

// VariantDiff pairs an original snippet with one of its variants for display.
type VariantDiff struct {
	UnitID    string
	VariantID string
	Diff      string
	Unchanged bool
}
