// Package bondgraph assembles a bonding graph from a finder's resolved
// neighbor sets: one vertex per structure site, one edge per unique bond
// record, with strength, length and periodic-image translation on the edge.
//
// The graph supports self-loops (a site bonded to its own periodic image)
// and parallel edges (two sites connected through several bonds). It is
// built once by FromFinder and read-only afterwards; all methods are safe
// for concurrent use.
package bondgraph
