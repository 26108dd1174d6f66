// Package envfinder determines the bonded coordination environment of every
// site in a periodic structure from pairwise bond-strength records.
//
// A Finder couples three mechanisms:
//
//   - a strength threshold, either given explicitly or derived as a
//     percentage of the strongest interaction (optionally adapted to the
//     chemistry condition and clamped by a noise cutoff);
//   - a Condition policy restricting which bonds count as neighbors
//     (anion-cation only, no same-element bonds, ...);
//   - geometric reconciliation: every bond-selected neighbor is matched to a
//     real periodic-image site by distance, so neighbor identity, image
//     translation and Cartesian coordinates are mutually consistent.
//
// All sites are evaluated once at construction and the results cached;
// queries (NeighborSet, InfoToNeighbors, InfoBetweenNeighbors, ...) read the
// cache and are safe for concurrent use.
//
// Errors:
//
//	ErrConfiguration     - invalid condition code, one-sided limits, bad valence list.
//	ErrMissingValences   - a policy or query needs valences that are absent or all zero.
//	ErrEmptySelection    - threshold adaptation subset is empty.
//	ErrInconsistentImage - periodic-image reconciliation yields a non-integer translation.
//	ErrCardinality       - a neighbor count exceeds the classification limit.
//	ErrSiteIndex         - a site index is out of range.
package envfinder
