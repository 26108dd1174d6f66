package crystal

import (
	"math"
	"sort"
)

// SphereSite is one periodic image returned by SitesInSphere.
type SphereSite struct {
	// Index is the in-cell site this image originates from.
	Index int
	// Distance is the Cartesian distance from the search center.
	Distance float64
	// Image is the lattice translation applied to the in-cell site.
	Image [3]int
	// FracCoords are the image's fractional coordinates (in-cell + Image).
	FracCoords [3]float64
	// CartCoords are the image's Cartesian coordinates.
	CartCoords [3]float64
}

// SitesInSphere returns every periodic image of every site whose Cartesian
// distance from center is at most r. Results are sorted by ascending
// distance; ties keep site-then-image enumeration order (stable sort), so
// the ordering is reproducible for identical inputs.
func (s *Structure) SitesInSphere(center [3]float64, r float64) []SphereSite {
	if r <= 0 {
		return nil
	}
	fcenter := s.lattice.Fractional(center)
	k := s.lattice.fracPerLength()

	// Per-axis image range: any image within r has each fractional
	// component within r*k of the center's. One extra cell on each side
	// absorbs the in-cell spread.
	var lo, hi [3]int
	for c := 0; c < 3; c++ {
		lo[c] = int(math.Floor(fcenter[c]-r*k[c])) - 1
		hi[c] = int(math.Ceil(fcenter[c] + r*k[c]))
	}

	var found []SphereSite
	for idx, site := range s.sites {
		for n0 := lo[0]; n0 <= hi[0]; n0++ {
			for n1 := lo[1]; n1 <= hi[1]; n1++ {
				for n2 := lo[2]; n2 <= hi[2]; n2++ {
					frac := [3]float64{
						site.FracCoords[0] + float64(n0),
						site.FracCoords[1] + float64(n1),
						site.FracCoords[2] + float64(n2),
					}
					cart := s.lattice.Cartesian(frac)
					dx := cart[0] - center[0]
					dy := cart[1] - center[1]
					dz := cart[2] - center[2]
					d := math.Sqrt(dx*dx + dy*dy + dz*dz)
					if d <= r {
						found = append(found, SphereSite{
							Index:      idx,
							Distance:   d,
							Image:      [3]int{n0, n1, n2},
							FracCoords: frac,
							CartCoords: cart,
						})
					}
				}
			}
		}
	}
	sort.SliceStable(found, func(i, j int) bool { return found[i].Distance < found[j].Distance })
	return found
}
