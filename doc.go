// Package crystenv infers local atomic coordination environments in periodic
// crystals from pairwise bond-strength data combined with the crystal's
// geometry.
//
// Given a structure and a list of bond records (an energy-like interaction
// value per atom pair, e.g. from orbital-overlap bonding analysis), the
// module decides which neighbors of each site form chemically meaningful
// bonds, reconciles those bonds with the actual periodic-image geometry, and
// aggregates bond strengths per site and between neighbor pairs.
//
// Everything is organized under four subpackages:
//
//	crystal/   — lattices, sites, structures and the periodic sphere search
//	bondlist/  — indexed bond-record collections with per-site filtering
//	envfinder/ — threshold selection, condition policies, neighbor resolution
//	             and strength aggregation (the analysis core)
//	bondgraph/ — bonding graphs assembled from resolved neighbor sets
//
// Minimal usage:
//
//	lat, _ := crystal.NewLattice(basis)
//	str, _ := crystal.NewStructure(lat, elements, fracCoords)
//	coll, _ := bondlist.NewCollection(bondlist.Bonding, records)
//	f, err := envfinder.NewFinder(str, coll,
//	    envfinder.WithCondition(envfinder.OnlyAnionCationBonds),
//	    envfinder.WithValences(vals))
//	if err != nil { ... }
//	nbrs := f.NeighborSet(0)
//
// All computations are pure and happen once at Finder construction; query
// methods read a write-once cache and are safe for concurrent use.
package crystenv
