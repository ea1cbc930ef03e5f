package domain

import (
	"sort"

	m "strata.dev/pkg/strata/internal/model"
	"strata.dev/pkg/strata/pkg"
)

// summaryBuilder accumulates per-file results into a RunSummary.
type summaryBuilder struct {
	summary m.RunSummary
}

func newSummaryBuilder(runID string) *summaryBuilder {
	return &summaryBuilder{summary: m.RunSummary{RunID: runID}}
}

func (b *summaryBuilder) add(result m.FileResult) {
	b.summary.Files++
	b.summary.Units += len(result.Units)
	b.summary.Failures = append(b.summary.Failures, result.Failures...)
}

// build counts records from the spill and returns the summary with failures
// sorted by source.
func (b *summaryBuilder) build(records pkg.FileSpill[m.Record]) (m.RunSummary, error) {
	total, unchanged, err := countRecords(records)
	if err != nil {
		return m.RunSummary{}, err
	}

	summary := b.summary
	summary.Records = total
	summary.Unchanged = unchanged

	sort.SliceStable(summary.Failures, func(i, j int) bool {
		return summary.Failures[i].Source < summary.Failures[j].Source
	})

	return summary, nil
}

func countRecords(records pkg.FileSpill[m.Record]) (int, int, error) {
	total := 0
	unchanged := 0

	err := records.Range(func(_ uint64, record m.Record) error {
		total++

		if record.Unchanged {
			unchanged++
		}

		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	return total, unchanged, nil
}
