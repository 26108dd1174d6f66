package envfinder

import (
	"fmt"
	"sort"
	"strings"

	"github.com/quantchem/crystenv/crystal"
)

// MaxClassifiableNeighbors is the largest coordination number the downstream
// geometry classifier supports.
const MaxClassifiableNeighbors = 13

// NeighborsInfo summarizes aggregated bond strengths for a set of sites.
type NeighborsInfo struct {
	// Total is the sum of Strengths.
	Total float64
	// Strengths lists one summed strength per counted bond.
	Strengths []float64
	// Bonds is the number of counted bonds.
	Bonds int
	// Labels lists the bond record label of each counted bond.
	Labels []string
	// AtomPairs lists the two endpoint atom labels of each counted bond.
	AtomPairs [][2]string
	// CentralSites lists the originating site per counted bond; nil for
	// neighbor-pair aggregation, where no endpoint is the central site.
	CentralSites []int
}

// selectSites expands a site selection: explicit indices pass through as a
// membership filter; a nil selection means every site, or every cation
// (valence >= 0) when onlyCations is set.
func (f *Finder) selectSites(isites []int, onlyCations bool) (map[int]bool, error) {
	if onlyCations && f.opts.Valences == nil {
		return nil, fmt.Errorf("%w: cation restriction needs valences", ErrMissingValences)
	}
	selected := make(map[int]bool)
	if isites != nil {
		for _, i := range isites {
			selected[i] = true
		}
		return selected, nil
	}
	for i := 0; i < f.structure.Len(); i++ {
		if !onlyCations || f.opts.Valences[i] >= 0 {
			selected[i] = true
		}
	}
	return selected, nil
}

// InfoToNeighbors aggregates the bond strengths from the selected sites to
// their resolved neighbors. A nil isites selects all sites, or all cations
// when onlyCations is set (requires valences).
func (f *Finder) InfoToNeighbors(isites []int, onlyCations bool) (*NeighborsInfo, error) {
	selected, err := f.selectSites(isites, onlyCations)
	if err != nil {
		return nil, err
	}

	info := &NeighborsInfo{}
	for i := 0; i < f.structure.Len(); i++ {
		if !selected[i] {
			continue
		}
		for _, nb := range f.neighbors[i] {
			rec, recErr := f.coll.ByLabel(nb.Label)
			if recErr != nil {
				return nil, recErr
			}
			info.Total += nb.Strength
			info.Strengths = append(info.Strengths, nb.Strength)
			info.Labels = append(info.Labels, nb.Label)
			info.AtomPairs = append(info.AtomPairs, [2]string{rec.Atom1, rec.Atom2})
			info.CentralSites = append(info.CentralSites, i)
			info.Bonds++
		}
	}
	return info, nil
}

// InfoBetweenNeighbors aggregates the bond strengths between pairs of a
// site's resolved neighbors, for all selected sites. Pairs are enumerated by
// position in the neighbor set, so an atom appearing through two images
// participates once per occurrence.
//
// Bond records are matched by endpoint identity and exact lattice
// translation. For a pair of the same in-cell site the translation is only
// determined up to sign, and the first record matching either sign wins;
// the candidate order is the collection's stable record order, so the
// choice is reproducible, but reordering the input records can change which
// of two symmetry-equivalent bonds is counted.
func (f *Finder) InfoBetweenNeighbors(isites []int, onlyCations bool) (*NeighborsInfo, error) {
	selected, err := f.selectSites(isites, onlyCations)
	if err != nil {
		return nil, err
	}

	info := &NeighborsInfo{}
	for isite := 0; isite < f.structure.Len(); isite++ {
		if !selected[isite] {
			continue
		}
		set := f.neighbors[isite]
		for i := 0; i < len(set); i++ {
			for j := i + 1; j < len(set); j++ {
				if err := f.aggregatePair(info, set[i], set[j]); err != nil {
					return nil, err
				}
			}
		}
	}
	return info, nil
}

// aggregatePair counts the bond records connecting two neighbor occurrences.
func (f *Finder) aggregatePair(info *NeighborsInfo, na, nb ResolvedNeighbor) error {
	cellA := crystal.UnitCellOffset(na.FracCoords)
	cellB := crystal.UnitCellOffset(nb.FracCoords)

	// Relative translation, ordered lower site index first.
	var translation [3]int
	for c := 0; c < 3; c++ {
		if nb.SiteIndex < na.SiteIndex {
			translation[c] = cellB[c] - cellA[c]
		} else {
			translation[c] = cellA[c] - cellB[c]
		}
	}

	records := f.coll.RecordsForSite(na.SiteIndex, f.lower, f.upper, f.opts.OnlyBondsTo)
	done := false
	for _, rec := range records {
		i1, i2, err := rec.SiteIndices()
		if err != nil {
			return err
		}
		if !(na.SiteIndex == i1 && nb.SiteIndex == i2) && !(na.SiteIndex == i2 && nb.SiteIndex == i1) {
			continue
		}
		match := false
		if i1 != i2 {
			match = rec.Translation == translation
		} else if !done {
			neg := [3]int{-rec.Translation[0], -rec.Translation[1], -rec.Translation[2]}
			// Same in-cell site: the translation is determined up to sign
			// only; accept one record per pair to avoid double counting.
			match = rec.Translation == translation || neg == translation
			done = done || match
		}
		if match {
			s := rec.Summed()
			info.Total += s
			info.Strengths = append(info.Strengths, s)
			info.Labels = append(info.Labels, rec.Label)
			info.AtomPairs = append(info.AtomPairs, [2]string{rec.Atom1, rec.Atom2})
			info.Bonds++
		}
	}
	return nil
}

// AnionTypes returns the sorted element symbols carrying a negative valence.
func (f *Finder) AnionTypes() ([]string, error) {
	if f.opts.Valences == nil {
		return nil, fmt.Errorf("%w: no anions and cations defined", ErrMissingValences)
	}
	seen := make(map[string]bool)
	var anions []string
	for i := 0; i < f.structure.Len(); i++ {
		if f.opts.Valences[i] >= 0 {
			continue
		}
		site, err := f.structure.Site(i)
		if err != nil {
			return nil, err
		}
		if !seen[site.Element] {
			seen[site.Element] = true
			anions = append(anions, site.Element)
		}
	}
	sort.Strings(anions)
	return anions, nil
}

// ClassificationCoords returns, per site, the Cartesian coordinates of its
// resolved neighbors, as consumed by a geometry classifier. Returns
// ErrCardinality if any site exceeds MaxClassifiableNeighbors; environments
// are never truncated.
func (f *Finder) ClassificationCoords() ([][][3]float64, error) {
	coords := make([][][3]float64, f.structure.Len())
	for i, set := range f.neighbors {
		if len(set) > MaxClassifiableNeighbors {
			return nil, fmt.Errorf("%w: site %d has %d neighbors", ErrCardinality, i, len(set))
		}
		for _, nb := range set {
			coords[i] = append(coords[i], nb.CartCoords)
		}
	}
	return coords, nil
}

// PlotLabel builds a human-readable bond-count label for a list of counted
// atom pairs, e.g. "2 x Na-Cl, 1 x Cl-Cl (per bond)". Pair names are sorted
// within a pair; distinct pairs keep first-seen order.
func PlotLabel(atomPairs [][2]string, perBond bool) string {
	counts := make(map[string]int)
	var order []string
	for _, pair := range atomPairs {
		e1 := strings.TrimRight(pair[0], "0123456789")
		e2 := strings.TrimRight(pair[1], "0123456789")
		if e2 < e1 {
			e1, e2 = e2, e1
		}
		key := e1 + "-" + e2
		if counts[key] == 0 {
			order = append(order, key)
		}
		counts[key]++
	}
	parts := make([]string, 0, len(order))
	for _, key := range order {
		parts = append(parts, fmt.Sprintf("%d x %s", counts[key], key))
	}
	label := strings.Join(parts, ", ")
	if perBond {
		label += " (per bond)"
	}
	return label
}
