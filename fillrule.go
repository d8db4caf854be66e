package filltess

// FillRule selects which winding numbers count as "inside" when a fill
// is rasterized.
type FillRule uint8

// Fill rule constants.
const (
	// FillRuleNonZero fills every region with winding number != 0.
	FillRuleNonZero FillRule = iota
	// FillRuleOddEven fills every region with odd winding number.
	FillRuleOddEven
	// FillRuleComplementNonZero fills every region with winding
	// number == 0 (that the tessellation covers).
	FillRuleComplementNonZero
	// FillRuleComplementOddEven fills every region with even winding
	// number (that the tessellation covers).
	FillRuleComplementOddEven

	numFillRules = 4
)

// String returns a human-readable name for the fill rule.
func (r FillRule) String() string {
	switch r {
	case FillRuleNonZero:
		return "NonZero"
	case FillRuleOddEven:
		return "OddEven"
	case FillRuleComplementNonZero:
		return "ComplementNonZero"
	case FillRuleComplementOddEven:
		return "ComplementOddEven"
	default:
		return "Unknown"
	}
}

// FuzzChunkFromWinding maps a winding number to the index of its fuzz
// attribute/index chunk. Windings are interleaved by magnitude:
// 0, -1, +1, -2, +2, ...
func FuzzChunkFromWinding(w int) int {
	v := w
	if v < 0 {
		v = -v
	}
	s := 0
	if w < 0 {
		s = -1
	}
	return 2*v + s
}

func isEven(v int) bool { return v%2 == 0 }
