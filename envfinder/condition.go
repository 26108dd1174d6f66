package envfinder

// Condition is a chemistry-motivated policy restricting which bond records
// count as neighbors. The numeric codes are stable and part of the contract.
type Condition int

const (
	// NoCondition accepts every bond.
	NoCondition Condition = iota
	// OnlyAnionCationBonds accepts bonds whose endpoints carry valences of
	// opposite sign.
	OnlyAnionCationBonds
	// NoSameElementBonds rejects bonds between two atoms of the same element.
	NoSameElementBonds
	// OnlyAnionCationNoSameElementBonds combines OnlyAnionCationBonds and
	// NoSameElementBonds.
	OnlyAnionCationNoSameElementBonds
	// OnlyElementToOxygenBonds accepts bonds with at least one oxygen endpoint.
	OnlyElementToOxygenBonds
	// NoAnionCationBonds accepts bonds whose endpoints share a valence sign.
	NoAnionCationBonds
	// OnlyCationCationBonds accepts bonds between two strictly positive valences.
	OnlyCationCationBonds
)

// predicate decides whether a bond between endpoints with the given element
// symbols and valences satisfies a condition. Valences are only read by
// conditions that require them.
type predicate func(el1, el2 string, val1, val2 float64) bool

// predicates is the per-condition decision table. Indexed by Condition;
// keeping it a fixed-size array makes a missing entry a compile-time error.
var predicates = [OnlyCationCationBonds + 1]predicate{
	NoCondition: func(string, string, float64, float64) bool { return true },
	OnlyAnionCationBonds: func(_, _ string, v1, v2 float64) bool {
		return (v1 < 0 && v2 > 0) || (v2 < 0 && v1 > 0)
	},
	NoSameElementBonds: func(e1, e2 string, _, _ float64) bool { return e1 != e2 },
	OnlyAnionCationNoSameElementBonds: func(e1, e2 string, v1, v2 float64) bool {
		return ((v1 < 0 && v2 > 0) || (v2 < 0 && v1 > 0)) && e1 != e2
	},
	OnlyElementToOxygenBonds: func(e1, e2 string, _, _ float64) bool {
		return e1 == "O" || e2 == "O"
	},
	NoAnionCationBonds: func(_, _ string, v1, v2 float64) bool {
		return (v1 > 0 && v2 > 0) || (v1 < 0 && v2 < 0)
	},
	OnlyCationCationBonds: func(_, _ string, v1, v2 float64) bool {
		return v1 > 0 && v2 > 0
	},
}

// Valid reports whether c is one of the defined condition codes.
func (c Condition) Valid() bool {
	return c >= NoCondition && c <= OnlyCationCationBonds
}

// RequiresValences reports whether the condition discriminates by valence sign.
func (c Condition) RequiresValences() bool {
	switch c {
	case OnlyAnionCationBonds, OnlyAnionCationNoSameElementBonds,
		NoAnionCationBonds, OnlyCationCationBonds:
		return true
	}
	return false
}

// Permits reports whether a bond between endpoints with the given element
// symbols and valences satisfies the condition.
func (c Condition) Permits(el1, el2 string, val1, val2 float64) bool {
	return predicates[c](el1, el2, val1, val2)
}

// String returns a short name for the condition.
func (c Condition) String() string {
	switch c {
	case NoCondition:
		return "none"
	case OnlyAnionCationBonds:
		return "only-anion-cation"
	case NoSameElementBonds:
		return "no-same-element"
	case OnlyAnionCationNoSameElementBonds:
		return "only-anion-cation-no-same-element"
	case OnlyElementToOxygenBonds:
		return "only-element-to-oxygen"
	case NoAnionCationBonds:
		return "no-anion-cation"
	case OnlyCationCationBonds:
		return "only-cation-cation"
	}
	return "invalid"
}
