// Package crystal provides the geometric primitives the analysis core works
// on: periodic lattices, sites with fractional and Cartesian coordinates,
// immutable structures, and a periodic sphere search that returns every
// lattice image of every site within a radius.
//
// A Structure is built once and never mutated; all query methods are safe
// for concurrent use. Fractional coordinates are normalized into [0, 1) at
// construction so that image arithmetic stays exact.
//
// Errors:
//
//	ErrBadLattice   - lattice basis is singular.
//	ErrSiteMismatch - element and coordinate lists differ in length.
//	ErrEmptyElement - a site has an empty element symbol.
//	ErrSiteIndex    - a site index is out of range.
package crystal
