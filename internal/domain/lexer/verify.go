package lexer

import (
	"fmt"

	m "strata.dev/pkg/strata/internal/model"
)

// Verify rescans before and after and checks that a rewrite kept the text valid.
func Verify(before, after string, dialect m.Dialect) error {
	return Compare(before, Scan(before, dialect), after, Scan(after, dialect))
}

// Compare checks the rewrite invariants on already scanned texts: the nesting
// balance is unchanged, no new unterminated region appeared, and the sequence
// of string and char literals is identical.
func Compare(before string, beforeScan m.Scan, after string, afterScan m.Scan) error {
	if beforeScan.Balance != afterScan.Balance {
		return &m.TransformInvariantViolation{
			Reason: fmt.Sprintf("nesting balance changed from %+v to %+v", beforeScan.Balance, afterScan.Balance),
		}
	}

	if beforeScan.Degenerate == nil && afterScan.Degenerate != nil {
		return &m.TransformInvariantViolation{Reason: afterScan.Degenerate.Error()}
	}

	want := Literals(before, beforeScan)
	got := Literals(after, afterScan)

	if len(want) != len(got) {
		return &m.TransformInvariantViolation{
			Reason: fmt.Sprintf("literal count changed from %d to %d", len(want), len(got)),
		}
	}

	for i := range want {
		if want[i] != got[i] {
			return &m.TransformInvariantViolation{
				Reason: fmt.Sprintf("literal %d changed from %s to %s", i, want[i], got[i]),
			}
		}
	}

	return nil
}

// Literals returns the text of every string and char region in order.
func Literals(src string, scan m.Scan) []string {
	var literals []string

	for _, r := range scan.Regions {
		if r.Kind.IsLiteral() {
			literals = append(literals, r.Text(src))
		}
	}

	return literals
}
