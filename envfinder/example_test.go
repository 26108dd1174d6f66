package envfinder_test

import (
	"fmt"
	"log"

	"github.com/quantchem/crystenv/bondlist"
	"github.com/quantchem/crystenv/crystal"
	"github.com/quantchem/crystenv/envfinder"
)

// ExampleNewFinder resolves the environment of a diatomic rock-salt-like
// cell and prints the per-site coordination.
func ExampleNewFinder() {
	lat, err := crystal.CubicLattice(5.6)
	if err != nil {
		log.Fatal(err)
	}
	str, err := crystal.NewStructure(lat,
		[]string{"Na", "Cl"},
		[][3]float64{{0, 0, 0}, {0.5, 0, 0}})
	if err != nil {
		log.Fatal(err)
	}
	coll, err := bondlist.NewCollection(bondlist.Bonding, []bondlist.Record{{
		Label: "1", Atom1: "Na1", Atom2: "Cl2",
		Length:    2.80,
		Strengths: map[bondlist.Spin]float64{bondlist.SpinUp: -1.0},
	}})
	if err != nil {
		log.Fatal(err)
	}

	f, err := envfinder.NewFinder(str, coll,
		envfinder.WithPercStrength(1.0),
		envfinder.WithoutNoiseCutoff())
	if err != nil {
		log.Fatal(err)
	}

	_, upper := f.Limits()
	fmt.Printf("window upper bound: %.1f\n", upper)
	for i := 0; i < str.Len(); i++ {
		label, _ := str.Label(i)
		set, _ := f.NeighborSet(i)
		for _, nb := range set {
			fmt.Printf("%s -> site %d (bond %s, %.2f, %.1f)\n",
				label, nb.SiteIndex, nb.Label, nb.Length, nb.Strength)
		}
	}

	info, err := f.InfoToNeighbors(nil, false)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(envfinder.PlotLabel(info.AtomPairs, false))
	fmt.Printf("total strength: %.1f\n", info.Total)

	// Output:
	// window upper bound: -1.0
	// Na1 -> site 1 (bond 1, 2.80, -1.0)
	// Cl2 -> site 0 (bond 1, 2.80, -1.0)
	// 2 x Cl-Na
	// total strength: -2.0
}
