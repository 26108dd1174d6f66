package crystal

import (
	"fmt"
	"math"
)

// Site is one atom position inside a Structure. FracCoords are always
// normalized into [0, 1); Cartesian coordinates depend on the lattice and
// are derived on demand.
type Site struct {
	// Element is the chemical element symbol, e.g. "Na".
	Element string
	// FracCoords are the fractional coordinates within the unit cell.
	FracCoords [3]float64
}

// Structure is an immutable ordered list of sites sharing one lattice.
type Structure struct {
	lattice *Lattice
	sites   []Site
}

// NewStructure builds a Structure from parallel element and fractional
// coordinate slices. Coordinates are normalized into [0, 1).
func NewStructure(lattice *Lattice, elements []string, fracCoords [][3]float64) (*Structure, error) {
	if len(elements) != len(fracCoords) {
		return nil, fmt.Errorf("%w: %d elements, %d coordinates", ErrSiteMismatch, len(elements), len(fracCoords))
	}
	sites := make([]Site, len(elements))
	for i, el := range elements {
		if el == "" {
			return nil, fmt.Errorf("%w: site %d", ErrEmptyElement, i)
		}
		var f [3]float64
		for c := 0; c < 3; c++ {
			f[c] = fracCoords[i][c] - math.Floor(fracCoords[i][c])
		}
		sites[i] = Site{Element: el, FracCoords: f}
	}
	return &Structure{lattice: lattice, sites: sites}, nil
}

// Lattice returns the shared lattice.
func (s *Structure) Lattice() *Lattice { return s.lattice }

// Len returns the number of sites.
func (s *Structure) Len() int { return len(s.sites) }

// Site returns the in-cell site at index i.
func (s *Structure) Site(i int) (Site, error) {
	if i < 0 || i >= len(s.sites) {
		return Site{}, fmt.Errorf("%w: %d", ErrSiteIndex, i)
	}
	return s.sites[i], nil
}

// CartCoords returns the Cartesian coordinates of site i.
func (s *Structure) CartCoords(i int) ([3]float64, error) {
	site, err := s.Site(i)
	if err != nil {
		return [3]float64{}, err
	}
	return s.lattice.Cartesian(site.FracCoords), nil
}

// Label returns the atom label of site i: element symbol followed by the
// 1-based position in the structure, e.g. "Na1" for the first site.
func (s *Structure) Label(i int) (string, error) {
	site, err := s.Site(i)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%d", site.Element, i+1), nil
}

// UnitCellOffset returns the unit cell a fractional coordinate belongs to:
// componentwise floor of the coordinate rounded to 4 decimals. The rounding
// keeps coordinates that sit a hair below an integer boundary from being
// assigned to the wrong cell.
func UnitCellOffset(frac [3]float64) [3]int {
	var cell [3]int
	for c := 0; c < 3; c++ {
		cell[c] = int(math.Floor(math.Round(frac[c]*1e4) / 1e4))
	}
	return cell
}
