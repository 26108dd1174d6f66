package bondlist

import "errors"

var (
	// ErrBadLabel indicates an atom label could not be split into element and ordinal.
	ErrBadLabel = errors.New("bondlist: malformed atom label")
	// ErrDuplicateLabel indicates two records share the same bond label.
	ErrDuplicateLabel = errors.New("bondlist: duplicate bond label")
	// ErrNoRecords indicates an extremum was requested from an empty collection.
	ErrNoRecords = errors.New("bondlist: collection has no records")
	// ErrUnknownLabel indicates a lookup for a bond label that does not exist.
	ErrUnknownLabel = errors.New("bondlist: unknown bond label")
)
