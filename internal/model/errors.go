package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNoUnitsFound marks a file that yielded zero method units.
	ErrNoUnitsFound = errors.New("no method units found")
	// ErrUnreadableSource marks a file that could not be read or decoded.
	ErrUnreadableSource = errors.New("unreadable source")
	// ErrInvalidStrata marks a strata configuration that cannot be used.
	ErrInvalidStrata = errors.New("invalid strata configuration")
	// ErrUnknownAxis marks an axis name outside the supported set.
	ErrUnknownAxis = errors.New("unknown axis")
	// ErrUnknownIntensity marks an intensity that the axis does not support.
	ErrUnknownIntensity = errors.New("unknown intensity")
	// ErrInvalidSymbolTable marks a rename or qualification table that is not idempotent.
	ErrInvalidSymbolTable = errors.New("invalid symbol table")
	// ErrUnknownDialect marks a language name with no registered dialect.
	ErrUnknownDialect = errors.New("unknown dialect")
	// ErrInvalidExtractOptions marks extraction options that contradict each other.
	ErrInvalidExtractOptions = errors.New("invalid extract options")
	// ErrSnippetPathConflict marks two records that would be written to one snippet file.
	ErrSnippetPathConflict = errors.New("snippet path conflict")
)

// ScanDegenerate reports that the scanner reached end of input inside an
// unterminated literal or comment. The region is closed at EOF.
type ScanDegenerate struct {
	Kind   RegionKind
	Offset int
}

func (e *ScanDegenerate) Error() string {
	return fmt.Sprintf("unterminated %s starting at offset %d", e.Kind, e.Offset)
}

// TransformInvariantViolation is returned when a perturbation would break the
// brace balance or the literal content of a unit.
type TransformInvariantViolation struct {
	Variant string
	Reason  string
}

func (e *TransformInvariantViolation) Error() string {
	if e.Variant == "" {
		return "transform invariant violation: " + e.Reason
	}

	return fmt.Sprintf("transform invariant violation in %s: %s", e.Variant, e.Reason)
}

// FailureKind names the taxonomy entry of a recorded failure.
type FailureKind string

const (
	// FailureScanDegenerate is informational, see ScanDegenerate.
	FailureScanDegenerate FailureKind = "scan_degenerate"
	// FailureNoUnits is informational, see ErrNoUnitsFound.
	FailureNoUnits FailureKind = "no_units"
	// FailureTransform is one failed (unit, stratum, axis) request.
	FailureTransform FailureKind = "transform_invariant_violation"
	// FailureUnreadable is one skipped file.
	FailureUnreadable FailureKind = "unreadable_source"
)

// Failure is one isolated problem collected into the run summary.
type Failure struct {
	Kind    FailureKind
	Source  string
	Unit    string
	Variant string
	Message string
}

// FailureFromError classifies err into a Failure for the given source.
func FailureFromError(source string, err error) Failure {
	failure := Failure{Source: source, Message: err.Error()}

	var degenerate *ScanDegenerate

	var violation *TransformInvariantViolation

	switch {
	case errors.As(err, &degenerate):
		failure.Kind = FailureScanDegenerate
	case errors.As(err, &violation):
		failure.Kind = FailureTransform
		failure.Variant = violation.Variant
	case errors.Is(err, ErrNoUnitsFound):
		failure.Kind = FailureNoUnits
	default:
		failure.Kind = FailureUnreadable
	}

	return failure
}

// Fatal reports whether the failure kind prevented output for its scope.
func (k FailureKind) Fatal() bool {
	return k == FailureTransform || k == FailureUnreadable
}
