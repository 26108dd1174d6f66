package envfinder

import (
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/quantchem/crystenv/bondlist"
	"github.com/quantchem/crystenv/crystal"
)

// Tolerances of the geometric reconciliation step.
const (
	// lengthRelTol is the relative tolerance between a bond record's length
	// and a geometric candidate's distance.
	lengthRelTol = 1e-4
	// lengthAbsTol absorbs comparisons near zero length.
	lengthAbsTol = 1e-8
	// imageIntTol bounds the deviation of an image translation from integers.
	imageIntTol = 1e-6
)

// ResolvedNeighbor is one entry of a site's resolved neighbor set: a
// bond-selected neighbor bound to a concrete periodic-image site, so label,
// length, strength, image and coordinates are mutually consistent.
type ResolvedNeighbor struct {
	// SiteIndex is the in-cell site index of the neighbor.
	SiteIndex int
	// Site is the in-cell representative of the neighbor.
	Site crystal.Site
	// Image is the lattice translation from the in-cell representative to
	// the actual neighbor position.
	Image [3]int
	// Label is the bond record that selected this neighbor.
	Label string
	// Length is the bond record's stored length.
	Length float64
	// Strength is the bond record's summed interaction strength.
	Strength float64
	// FracCoords and CartCoords locate the neighbor image.
	FracCoords [3]float64
	CartCoords [3]float64
}

// Finder evaluates and caches the coordination environment of every site at
// construction. All methods are read-only afterwards and safe for
// concurrent use.
type Finder struct {
	structure *crystal.Structure
	coll      *bondlist.Collection
	opts      Options

	lower, upper float64
	neighbors    [][]ResolvedNeighbor
}

// candidate is one bond-selected neighbor awaiting geometric confirmation.
type candidate struct {
	label    string
	length   float64
	neighbor int
	strength float64
}

// NewFinder validates the configuration, resolves the strength window and
// evaluates the neighbor environment of every site in structure.
func NewFinder(structure *crystal.Structure, coll *bondlist.Collection, opts ...Option) (*Finder, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if !o.Condition.Valid() {
		return nil, fmt.Errorf("%w: condition code %d", ErrConfiguration, int(o.Condition))
	}
	if err := validateLimits(o.LowerLimit, o.UpperLimit); err != nil {
		return nil, err
	}
	if o.Valences != nil && len(o.Valences) != structure.Len() {
		return nil, fmt.Errorf("%w: %d valences for %d sites", ErrConfiguration, len(o.Valences), structure.Len())
	}
	for _, rec := range coll.Records() {
		i1, i2, err := rec.SiteIndices()
		if err != nil {
			return nil, err
		}
		if i1 >= structure.Len() || i2 >= structure.Len() {
			return nil, fmt.Errorf("%w: record %q references a site outside the structure", ErrConfiguration, rec.Label)
		}
	}
	if o.Condition.RequiresValences() {
		if o.Valences == nil {
			return nil, fmt.Errorf("%w: condition %v needs valences", ErrMissingValences, o.Condition)
		}
		if degenerateValences(o.Valences) {
			return nil, fmt.Errorf("%w: all valences are zero, condition %v cannot discriminate", ErrMissingValences, o.Condition)
		}
	}

	f := &Finder{structure: structure, coll: coll, opts: o}

	if math.IsNaN(o.LowerLimit) {
		lower, upper, err := limitsFromExtremum(coll, o.Valences, o.PercStrength, o.NoiseCutoff, o.AdaptExtremum, o.Condition)
		if err != nil {
			return nil, err
		}
		f.lower, f.upper = lower, upper
	} else {
		f.lower, f.upper = o.LowerLimit, o.UpperLimit
	}

	if err := f.evaluate(); err != nil {
		return nil, err
	}
	return f, nil
}

// evaluate resolves every site. Sites are independent; each goroutine
// writes only its own result slot.
func (f *Finder) evaluate() error {
	f.neighbors = make([][]ResolvedNeighbor, f.structure.Len())

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < f.structure.Len(); i++ {
		i := i
		g.Go(func() error {
			resolved, err := f.resolveSite(i)
			if err != nil {
				return fmt.Errorf("site %d: %w", i, err)
			}
			f.neighbors[i] = resolved
			return nil
		})
	}
	return g.Wait()
}

// resolveSite runs the candidate filter and the geometric matching for one
// site. An empty candidate set is a valid empty environment, not an error.
func (f *Finder) resolveSite(isite int) ([]ResolvedNeighbor, error) {
	records := f.coll.RecordsForSite(isite, f.lower, f.upper, f.opts.OnlyBondsTo)
	cands, err := f.filterCandidates(isite, records)
	if err != nil {
		return nil, err
	}
	if len(cands) == 0 {
		f.opts.Logger.Debug("no bond-selected neighbors", "site", isite)
		return nil, nil
	}

	maxLength := cands[0].length
	for _, c := range cands[1:] {
		maxLength = math.Max(maxLength, c.length)
	}
	center, err := f.structure.CartCoords(isite)
	if err != nil {
		return nil, err
	}
	sphere := f.structure.SitesInSphere(center, maxLength+0.5)

	// Arena matching: walk geometric results in ascending-distance order and
	// consume the first candidate whose site index and length agree.
	consumed := make([]bool, len(cands))
	resolved := make([]ResolvedNeighbor, 0, len(cands))
	for _, img := range sphere {
		for ci, cand := range cands {
			if consumed[ci] || cand.neighbor != img.Index {
				continue
			}
			if !scalar.EqualWithinAbsOrRel(cand.length, img.Distance, lengthAbsTol, lengthRelTol) {
				continue
			}
			entry, bindErr := f.bind(cand, img)
			if bindErr != nil {
				return nil, bindErr
			}
			resolved = append(resolved, entry)
			consumed[ci] = true
			break
		}
	}

	for ci, used := range consumed {
		if !used {
			// Geometrically unconfirmed bond; dropped by policy, never an error.
			f.opts.Logger.Debug("bond candidate without geometric match",
				"site", isite, "label", cands[ci].label, "length", cands[ci].length)
		}
	}
	f.opts.Logger.Debug("resolved site", "site", isite, "neighbors", len(resolved))
	return resolved, nil
}

// filterCandidates applies the condition policy to the records touching
// isite and returns the surviving candidates in record order.
func (f *Finder) filterCandidates(isite int, records []*bondlist.Record) ([]candidate, error) {
	var cands []candidate
	for _, rec := range records {
		i1, i2, err := rec.SiteIndices()
		if err != nil {
			return nil, err
		}
		e1, e2 := rec.Elements()
		var v1, v2 float64
		if f.opts.Condition.RequiresValences() {
			v1, v2 = f.opts.Valences[i1], f.opts.Valences[i2]
		}
		if !f.opts.Condition.Permits(e1, e2, v1, v2) {
			continue
		}
		other := i2
		if i1 != isite {
			other = i1
		}
		cands = append(cands, candidate{
			label:    rec.Label,
			length:   rec.Length,
			neighbor: other,
			strength: rec.Summed(),
		})
	}
	return cands, nil
}

// bind attaches the geometric image to a matched candidate and derives the
// image translation, guarding integrality to imageIntTol.
func (f *Finder) bind(cand candidate, img crystal.SphereSite) (ResolvedNeighbor, error) {
	site, err := f.structure.Site(img.Index)
	if err != nil {
		return ResolvedNeighbor{}, err
	}
	var image [3]int
	for c := 0; c < 3; c++ {
		diff := img.FracCoords[c] - site.FracCoords[c]
		rounded := math.Round(diff)
		if math.Abs(diff-rounded) > imageIntTol {
			return ResolvedNeighbor{}, fmt.Errorf("%w: neighbor %q component %d offset %v",
				ErrInconsistentImage, cand.label, c, diff)
		}
		image[c] = int(rounded)
	}
	return ResolvedNeighbor{
		SiteIndex:  img.Index,
		Site:       site,
		Image:      image,
		Label:      cand.label,
		Length:     cand.length,
		Strength:   cand.strength,
		FracCoords: img.FracCoords,
		CartCoords: img.CartCoords,
	}, nil
}

// Structure returns the structure the finder was built on.
func (f *Finder) Structure() *crystal.Structure { return f.structure }

// Collection returns the bond-record collection the finder was built on.
func (f *Finder) Collection() *bondlist.Collection { return f.coll }

// Limits returns the strength acceptance window in effect.
func (f *Finder) Limits() (lower, upper float64) { return f.lower, f.upper }

// Valences returns the valences in effect, or nil.
func (f *Finder) Valences() []float64 { return f.opts.Valences }

// NeighborSet returns the resolved neighbor set of site i in resolution
// order. The returned slice is shared and must not be modified.
func (f *Finder) NeighborSet(i int) ([]ResolvedNeighbor, error) {
	if i < 0 || i >= len(f.neighbors) {
		return nil, fmt.Errorf("%w: %d", ErrSiteIndex, i)
	}
	return f.neighbors[i], nil
}

// CoordinationNumber returns the number of resolved neighbors of site i.
func (f *Finder) CoordinationNumber(i int) (int, error) {
	set, err := f.NeighborSet(i)
	if err != nil {
		return 0, err
	}
	return len(set), nil
}
