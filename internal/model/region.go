package model

// RegionKind classifies a span of source text.
type RegionKind int

const (
	// RegionCode is ordinary program text.
	RegionCode RegionKind = iota
	// RegionString is a string literal, including its delimiters.
	RegionString
	// RegionChar is a character literal, including its quotes.
	RegionChar
	// RegionLineComment runs from "//" up to, but excluding, the newline.
	RegionLineComment
	// RegionBlockComment runs from "/*" through the closing "*/".
	RegionBlockComment
)

// String returns the kind name used in logs and test output.
func (k RegionKind) String() string {
	switch k {
	case RegionCode:
		return "CODE"
	case RegionString:
		return "STRING"
	case RegionChar:
		return "CHAR"
	case RegionLineComment:
		return "LINE_COMMENT"
	case RegionBlockComment:
		return "BLOCK_COMMENT"
	default:
		return "UNKNOWN"
	}
}

// IsComment reports whether the kind is one of the comment kinds.
func (k RegionKind) IsComment() bool {
	return k == RegionLineComment || k == RegionBlockComment
}

// IsLiteral reports whether the kind is a string or char literal.
func (k RegionKind) IsLiteral() bool {
	return k == RegionString || k == RegionChar
}

// Region is a classified, half-open range of the scanned text.
type Region struct {
	Kind  RegionKind
	Start int
	End   int
	// Depth is the brace depth in effect when the region starts.
	Depth int
}

// Span returns the region bounds as a Span.
func (r Region) Span() Span {
	return Span{Start: r.Start, End: r.End}
}

// Text returns the region's slice of src.
func (r Region) Text(src string) string {
	return r.Span().Text(src)
}

// Balance records the nesting counters at the end of a scan.
type Balance struct {
	Braces   int
	Parens   int
	Brackets int
	// Underflow is set when any counter went below zero during the scan.
	Underflow bool
}

// Zero reports whether every counter is back at zero without underflow.
func (b Balance) Zero() bool {
	return b.Braces == 0 && b.Parens == 0 && b.Brackets == 0 && !b.Underflow
}

// Scan is the result of one scanner pass.
type Scan struct {
	Regions    []Region
	Balance    Balance
	Degenerate *ScanDegenerate
}

// RegionAt returns the index of the region covering offset, or -1.
func (s Scan) RegionAt(offset int) int {
	lo, hi := 0, len(s.Regions)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		r := s.Regions[mid]

		switch {
		case offset < r.Start:
			hi = mid - 1
		case offset >= r.End:
			lo = mid + 1
		default:
			return mid
		}
	}

	return -1
}
