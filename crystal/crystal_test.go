package crystal_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantchem/crystenv/crystal"
)

// TestNewLattice_Singular verifies that a degenerate basis errors ErrBadLattice.
func TestNewLattice_Singular(t *testing.T) {
	_, err := crystal.NewLattice([3][3]float64{{1, 0, 0}, {2, 0, 0}, {0, 0, 1}})
	assert.ErrorIs(t, err, crystal.ErrBadLattice, "linearly dependent rows must error")
}

// TestLattice_RoundTrip checks Cartesian↔fractional conversion on a skewed cell.
func TestLattice_RoundTrip(t *testing.T) {
	lat, err := crystal.NewLattice([3][3]float64{{4, 0, 0}, {1, 5, 0}, {0.5, 0.25, 6}})
	require.NoError(t, err)

	frac := [3]float64{0.1, 0.7, 0.35}
	back := lat.Fractional(lat.Cartesian(frac))
	for c := 0; c < 3; c++ {
		assert.InDelta(t, frac[c], back[c], 1e-12, "round-trip component %d", c)
	}
	assert.InDelta(t, 120.0, lat.Volume(), 1e-9, "volume of the skewed cell")
}

// TestNewStructure_Validation covers length mismatch and empty elements.
func TestNewStructure_Validation(t *testing.T) {
	lat, err := crystal.CubicLattice(4)
	require.NoError(t, err)

	_, err = crystal.NewStructure(lat, []string{"Na"}, [][3]float64{{0, 0, 0}, {0.5, 0.5, 0.5}})
	assert.ErrorIs(t, err, crystal.ErrSiteMismatch)

	_, err = crystal.NewStructure(lat, []string{""}, [][3]float64{{0, 0, 0}})
	assert.ErrorIs(t, err, crystal.ErrEmptyElement)
}

// TestStructure_NormalizationAndLabels verifies coordinates land in [0,1)
// and labels use the 1-based overall ordinal.
func TestStructure_NormalizationAndLabels(t *testing.T) {
	lat, err := crystal.CubicLattice(4)
	require.NoError(t, err)
	str, err := crystal.NewStructure(lat,
		[]string{"Na", "Cl"},
		[][3]float64{{-0.25, 1.5, 0}, {0.5, 0.5, 0.5}})
	require.NoError(t, err)

	site, err := str.Site(0)
	require.NoError(t, err)
	assert.Equal(t, [3]float64{0.75, 0.5, 0}, site.FracCoords, "coords normalized into [0,1)")

	label, err := str.Label(1)
	require.NoError(t, err)
	assert.Equal(t, "Cl2", label)

	_, err = str.Site(5)
	assert.ErrorIs(t, err, crystal.ErrSiteIndex)
}

// TestSitesInSphere_CubicNearest verifies that a primitive cubic structure
// yields exactly six nearest images at the lattice constant.
func TestSitesInSphere_CubicNearest(t *testing.T) {
	lat, err := crystal.CubicLattice(3)
	require.NoError(t, err)
	str, err := crystal.NewStructure(lat, []string{"Po"}, [][3]float64{{0, 0, 0}})
	require.NoError(t, err)

	center, err := str.CartCoords(0)
	require.NoError(t, err)
	found := str.SitesInSphere(center, 3.1)

	// self at d=0 plus six face neighbors at d=3
	require.Len(t, found, 7)
	assert.Equal(t, 0.0, found[0].Distance, "closest image is the site itself")
	for _, ss := range found[1:] {
		assert.InDelta(t, 3.0, ss.Distance, 1e-12)
		assert.Equal(t, 0, ss.Index)
	}
}

// TestSitesInSphere_SortedStable verifies ascending-distance ordering on a
// two-site cell.
func TestSitesInSphere_SortedStable(t *testing.T) {
	lat, err := crystal.CubicLattice(5)
	require.NoError(t, err)
	str, err := crystal.NewStructure(lat,
		[]string{"Na", "Cl"},
		[][3]float64{{0, 0, 0}, {0.5, 0, 0}})
	require.NoError(t, err)

	center, err := str.CartCoords(0)
	require.NoError(t, err)
	found := str.SitesInSphere(center, 6)
	for i := 1; i < len(found); i++ {
		assert.LessOrEqual(t, found[i-1].Distance, found[i].Distance, "results must be distance-sorted")
	}
	// nearest non-self image is Cl at 2.5
	assert.Equal(t, 1, found[1].Index)
	assert.InDelta(t, 2.5, found[1].Distance, 1e-12)
}

// TestUnitCellOffset covers the floor-of-rounded rule, including values a
// hair below an integer boundary.
func TestUnitCellOffset(t *testing.T) {
	assert.Equal(t, [3]int{0, 0, 0}, crystal.UnitCellOffset([3]float64{0.25, 0.5, 0.9999}))
	// a coordinate within rounding distance of the boundary belongs to the next cell
	assert.Equal(t, [3]int{1, 0, 0}, crystal.UnitCellOffset([3]float64{0.999999, 0, 0}))
	assert.Equal(t, [3]int{1, -1, 0}, crystal.UnitCellOffset([3]float64{1.25, -0.5, 0.0001}))
	assert.Equal(t, [3]int{-1, 0, 2}, crystal.UnitCellOffset([3]float64{-0.75, 0.00004, 2.00004}))
}

// TestSitesInSphere_ZeroRadius returns nothing for non-positive radii.
func TestSitesInSphere_ZeroRadius(t *testing.T) {
	lat, err := crystal.CubicLattice(3)
	require.NoError(t, err)
	str, err := crystal.NewStructure(lat, []string{"Po"}, [][3]float64{{0, 0, 0}})
	require.NoError(t, err)

	assert.Nil(t, str.SitesInSphere([3]float64{0, 0, 0}, 0))
	assert.Nil(t, str.SitesInSphere([3]float64{0, 0, 0}, -math.Pi))
}
