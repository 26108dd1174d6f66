package bondlist

import (
	"fmt"
	"strconv"
	"strings"
)

// SplitAtomLabel splits an atom label such as "Na1" into its element symbol
// and the 0-based site index encoded by the trailing 1-based ordinal.
// Returns ErrBadLabel when either part is missing or the ordinal is < 1.
func SplitAtomLabel(s string) (element string, index int, err error) {
	head := strings.TrimRight(s, "0123456789")
	tail := s[len(head):]
	if head == "" || tail == "" {
		return "", 0, fmt.Errorf("%w: %q", ErrBadLabel, s)
	}
	n, convErr := strconv.Atoi(tail)
	if convErr != nil || n < 1 {
		return "", 0, fmt.Errorf("%w: %q", ErrBadLabel, s)
	}
	return head, n - 1, nil
}

// Elements returns the element symbols of the record's two endpoints.
func (r *Record) Elements() (string, string) {
	e1 := strings.TrimRight(r.Atom1, "0123456789")
	e2 := strings.TrimRight(r.Atom2, "0123456789")
	return e1, e2
}

// SiteIndices returns the 0-based site indices of the record's two endpoints.
func (r *Record) SiteIndices() (int, int, error) {
	_, i1, err := SplitAtomLabel(r.Atom1)
	if err != nil {
		return 0, 0, err
	}
	_, i2, err := SplitAtomLabel(r.Atom2)
	if err != nil {
		return 0, 0, err
	}
	return i1, i2, nil
}
