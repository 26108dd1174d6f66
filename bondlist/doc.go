// Package bondlist holds collections of pairwise bond-strength records and
// the queries the analysis core runs against them: per-site filtering by
// length, strength window and element, a polarity-aware global extremum,
// and atom-label parsing.
//
// A Collection is built once from a list of records and never mutated.
// Record order is preserved everywhere: per-site queries return records in
// collection order, which downstream neighbor resolution relies on for
// deterministic results.
//
// The Polarity of a collection states how strength values are read:
// Bonding data is stronger the more negative it is; Population data
// (overlap/bond-index style) is stronger the more positive it is.
package bondlist
