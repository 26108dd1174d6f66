package bondgraph

import (
	"errors"
	"fmt"
	"sync"

	"github.com/quantchem/crystenv/envfinder"
)

// ErrVertexIndex indicates a requested vertex index is out of range.
var ErrVertexIndex = errors.New("bondgraph: vertex index out of range")

// Vertex is one structure site in the bonding graph.
type Vertex struct {
	// ID is the atom label, e.g. "Na1".
	ID string
	// Index is the site index in the structure.
	Index int
	// Element is the chemical element symbol.
	Element string
	// FracCoords are the in-cell fractional coordinates.
	FracCoords [3]float64
}

// Edge is one bond between two sites (or a site and its own image).
type Edge struct {
	// Label is the originating bond record label, unique in the graph.
	Label string
	// From and To are site indices; From is the site whose neighbor set
	// contributed the edge first.
	From, To int
	// Strength is the summed interaction strength of the bond.
	Strength float64
	// Length is the bond length.
	Length float64
	// Image is the periodic-image translation from From's cell to the
	// neighbor position.
	Image [3]int
}

// Graph is a read-only bonding graph. vertices are indexed by site;
// adjacency maps a site to the labels of its incident edges.
type Graph struct {
	mu        sync.RWMutex
	vertices  []Vertex
	edges     map[string]Edge
	order     []string // edge labels in insertion order
	adjacency map[int]map[string]struct{}
}

// FromFinder builds the bonding graph of a finder's cached environments.
// Each bond record contributes exactly one edge even though it appears in
// the neighbor sets of both endpoints.
func FromFinder(f *envfinder.Finder) (*Graph, error) {
	str := f.Structure()
	g := &Graph{
		vertices:  make([]Vertex, str.Len()),
		edges:     make(map[string]Edge),
		adjacency: make(map[int]map[string]struct{}),
	}
	for i := 0; i < str.Len(); i++ {
		site, err := str.Site(i)
		if err != nil {
			return nil, err
		}
		label, err := str.Label(i)
		if err != nil {
			return nil, err
		}
		g.vertices[i] = Vertex{ID: label, Index: i, Element: site.Element, FracCoords: site.FracCoords}
	}
	for i := 0; i < str.Len(); i++ {
		set, err := f.NeighborSet(i)
		if err != nil {
			return nil, err
		}
		for _, nb := range set {
			if _, seen := g.edges[nb.Label]; seen {
				continue
			}
			e := Edge{
				Label:    nb.Label,
				From:     i,
				To:       nb.SiteIndex,
				Strength: nb.Strength,
				Length:   nb.Length,
				Image:    nb.Image,
			}
			g.edges[nb.Label] = e
			g.order = append(g.order, nb.Label)
			g.attach(i, nb.Label)
			if nb.SiteIndex != i {
				g.attach(nb.SiteIndex, nb.Label)
			}
		}
	}
	return g, nil
}

func (g *Graph) attach(site int, label string) {
	if g.adjacency[site] == nil {
		g.adjacency[site] = make(map[string]struct{})
	}
	g.adjacency[site][label] = struct{}{}
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.vertices)
}

// EdgeCount returns the number of unique bonds.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.edges)
}

// Vertex returns the vertex for site i.
func (g *Graph) Vertex(i int) (Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if i < 0 || i >= len(g.vertices) {
		return Vertex{}, fmt.Errorf("%w: %d", ErrVertexIndex, i)
	}
	return g.vertices[i], nil
}

// Edges returns all edges in insertion order.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, 0, len(g.order))
	for _, label := range g.order {
		out = append(out, g.edges[label])
	}
	return out
}

// EdgesOf returns the edges incident to site i, in global insertion order.
func (g *Graph) EdgesOf(i int) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if i < 0 || i >= len(g.vertices) {
		return nil, fmt.Errorf("%w: %d", ErrVertexIndex, i)
	}
	var out []Edge
	for _, label := range g.order {
		if _, ok := g.adjacency[i][label]; ok {
			out = append(out, g.edges[label])
		}
	}
	return out, nil
}

// Degree returns the number of bonds incident to site i.
func (g *Graph) Degree(i int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if i < 0 || i >= len(g.vertices) {
		return 0, fmt.Errorf("%w: %d", ErrVertexIndex, i)
	}
	return len(g.adjacency[i]), nil
}

// TotalStrength sums the strengths of all bonds incident to site i.
func (g *Graph) TotalStrength(i int) (float64, error) {
	edges, err := g.EdgesOf(i)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, e := range edges {
		total += e.Strength
	}
	return total, nil
}
