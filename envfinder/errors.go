package envfinder

import "errors"

var (
	// ErrConfiguration indicates invalid setup: an unknown condition code,
	// exactly one explicit limit, or a valence list of the wrong length.
	ErrConfiguration = errors.New("envfinder: invalid configuration")
	// ErrMissingValences indicates a condition policy or site restriction
	// requires valences that are unavailable or carry no sign information.
	ErrMissingValences = errors.New("envfinder: valences unavailable")
	// ErrEmptySelection indicates no bond record satisfies the condition the
	// threshold should adapt to.
	ErrEmptySelection = errors.New("envfinder: no record matches the condition")
	// ErrInconsistentImage indicates a resolved neighbor's translation is not
	// integral within tolerance; structure and bond data do not fit together.
	ErrInconsistentImage = errors.New("envfinder: non-integer periodic image translation")
	// ErrCardinality indicates a site's neighbor count exceeds
	// MaxClassifiableNeighbors.
	ErrCardinality = errors.New("envfinder: too many neighbors for classification")
	// ErrSiteIndex indicates a requested site index is out of range.
	ErrSiteIndex = errors.New("envfinder: site index out of range")
)
