package crystal

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Lattice is an immutable periodic lattice described by three row basis
// vectors in Cartesian space. The inverse basis is precomputed once so that
// Cartesian↔fractional conversions are plain matrix products.
type Lattice struct {
	basis [3][3]float64 // row vectors a, b, c
	inv   [3][3]float64 // inverse of the basis matrix
	vol   float64       // absolute cell volume
}

// NewLattice builds a Lattice from three row basis vectors.
// Returns ErrBadLattice if the basis is singular.
func NewLattice(basis [3][3]float64) (*Lattice, error) {
	m := mat.NewDense(3, 3, []float64{
		basis[0][0], basis[0][1], basis[0][2],
		basis[1][0], basis[1][1], basis[1][2],
		basis[2][0], basis[2][1], basis[2][2],
	})
	var invM mat.Dense
	if err := invM.Inverse(m); err != nil {
		return nil, ErrBadLattice
	}
	lat := &Lattice{basis: basis, vol: math.Abs(mat.Det(m))}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			lat.inv[i][j] = invM.At(i, j)
		}
	}
	return lat, nil
}

// CubicLattice returns a primitive cubic lattice with edge length a.
// Convenience constructor; a must be non-zero.
func CubicLattice(a float64) (*Lattice, error) {
	return NewLattice([3][3]float64{{a, 0, 0}, {0, a, 0}, {0, 0, a}})
}

// Basis returns the row basis vectors.
func (l *Lattice) Basis() [3][3]float64 { return l.basis }

// Volume returns the absolute volume of the unit cell.
func (l *Lattice) Volume() float64 { return l.vol }

// Cartesian converts fractional coordinates to Cartesian: cart = frac · B.
func (l *Lattice) Cartesian(frac [3]float64) [3]float64 {
	var cart [3]float64
	for j := 0; j < 3; j++ {
		cart[j] = frac[0]*l.basis[0][j] + frac[1]*l.basis[1][j] + frac[2]*l.basis[2][j]
	}
	return cart
}

// Fractional converts Cartesian coordinates to fractional: frac = cart · B⁻¹.
func (l *Lattice) Fractional(cart [3]float64) [3]float64 {
	var frac [3]float64
	for j := 0; j < 3; j++ {
		frac[j] = cart[0]*l.inv[0][j] + cart[1]*l.inv[1][j] + cart[2]*l.inv[2][j]
	}
	return frac
}

// fracPerLength returns, per lattice direction, the largest change in that
// fractional coordinate caused by a unit Cartesian displacement. Used to
// bound the image search range for a given radius.
func (l *Lattice) fracPerLength() [3]float64 {
	var k [3]float64
	for j := 0; j < 3; j++ {
		k[j] = math.Sqrt(l.inv[0][j]*l.inv[0][j] + l.inv[1][j]*l.inv[1][j] + l.inv[2][j]*l.inv[2][j])
	}
	return k
}
