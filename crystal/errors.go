package crystal

import "errors"

var (
	// ErrBadLattice indicates the lattice basis vectors are linearly dependent.
	ErrBadLattice = errors.New("crystal: lattice basis is singular")
	// ErrSiteMismatch indicates element and coordinate slices differ in length.
	ErrSiteMismatch = errors.New("crystal: element and coordinate counts differ")
	// ErrEmptyElement indicates a site was given an empty element symbol.
	ErrEmptyElement = errors.New("crystal: empty element symbol")
	// ErrSiteIndex indicates a requested site index is out of range.
	ErrSiteIndex = errors.New("crystal: site index out of range")
)
