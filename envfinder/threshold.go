package envfinder

import (
	"fmt"
	"math"

	"github.com/quantchem/crystenv/bondlist"
)

// limitsFromExtremum derives the strength acceptance window (lower, upper).
//
// The base value is the collection's strongest summed strength, scaled by
// percentage. With adapt set and a non-trivial condition, the extremum is
// taken over only the records satisfying the condition; an empty subset is
// ErrEmptySelection.
//
// The window direction follows the polarity: Bonding data accepts
// (-inf, min(extremum*percentage, -noise)], Population data accepts
// [max(extremum*percentage, noise), +inf). A NaN noise cutoff skips the
// clamp.
func limitsFromExtremum(coll *bondlist.Collection, valences []float64,
	percentage, noiseCutoff float64, adapt bool, cond Condition) (lower, upper float64, err error) {
	var extremum float64

	if !adapt || cond == NoCondition {
		ext, extErr := coll.Extremum()
		if extErr != nil {
			return 0, 0, fmt.Errorf("%w: collection is empty", ErrEmptySelection)
		}
		extremum = ext * percentage
	} else {
		var subset []float64
		for _, rec := range coll.Records() {
			e1, e2 := rec.Elements()
			i1, i2, idxErr := rec.SiteIndices()
			if idxErr != nil {
				return 0, 0, idxErr
			}
			var v1, v2 float64
			if cond.RequiresValences() {
				v1, v2 = valences[i1], valences[i2]
			}
			if cond.Permits(e1, e2, v1, v2) {
				subset = append(subset, rec.Summed())
			}
		}
		if len(subset) == 0 {
			return 0, 0, fmt.Errorf("%w: condition %v", ErrEmptySelection, cond)
		}
		extremum = subsetExtremum(subset, coll.Polarity()) * percentage
	}

	if coll.Polarity() == bondlist.Bonding {
		upper = extremum
		if !math.IsNaN(noiseCutoff) {
			upper = math.Min(extremum, -noiseCutoff)
		}
		return math.Inf(-1), upper, nil
	}
	lower = extremum
	if !math.IsNaN(noiseCutoff) {
		lower = math.Max(extremum, noiseCutoff)
	}
	return lower, math.Inf(1), nil
}

// subsetExtremum returns the strongest value of a non-empty strength list:
// the minimum for Bonding data, the maximum for Population data.
func subsetExtremum(values []float64, p bondlist.Polarity) float64 {
	ext := values[0]
	for _, v := range values[1:] {
		if p == bondlist.Bonding {
			ext = math.Min(ext, v)
		} else {
			ext = math.Max(ext, v)
		}
	}
	return ext
}

// validateLimits enforces the both-or-neither rule for explicit limits.
func validateLimits(lower, upper float64) error {
	if math.IsNaN(lower) != math.IsNaN(upper) {
		return fmt.Errorf("%w: give both limits or neither", ErrConfiguration)
	}
	if !math.IsNaN(lower) && lower > upper {
		return fmt.Errorf("%w: lower limit above upper limit", ErrConfiguration)
	}
	return nil
}

// degenerateValences reports whether every valence is (numerically) zero.
func degenerateValences(valences []float64) bool {
	for _, v := range valences {
		if math.Abs(v) > 1e-8 {
			return false
		}
	}
	return true
}
