package bondlist

// Spin identifies one spin channel of a spin-polarized calculation.
type Spin int

const (
	// SpinUp is the majority spin channel.
	SpinUp Spin = iota
	// SpinDown is the minority spin channel.
	SpinDown
)

// Polarity states how strength values of a collection are interpreted.
//
//   - Bonding     — energy-like data; more negative means stronger, the
//     global extremum is the minimum.
//   - Population  — overlap/bond-index data; more positive means stronger,
//     the global extremum is the maximum.
type Polarity int

const (
	// Bonding marks energy-like interactions (negative = strong).
	Bonding Polarity = iota
	// Population marks overlap-population-like interactions (positive = strong).
	Population
)

// String returns the polarity name.
func (p Polarity) String() string {
	if p == Population {
		return "population"
	}
	return "bonding"
}

// Record is one pairwise interaction entry between two labeled atoms.
// Atom1/Atom2 order carries no meaning but is preserved as given.
type Record struct {
	// Label uniquely identifies the record; by convention the 1-based
	// position in the originating bond list, as a string.
	Label string
	// Atom1 and Atom2 are atom labels ("Na1": element + 1-based site ordinal).
	Atom1, Atom2 string
	// Length is the bond length.
	Length float64
	// Translation is the lattice translation between the two atoms' cells.
	Translation [3]int
	// Strengths holds the interaction strength per spin channel. An
	// unpolarized record stores a single SpinUp entry.
	Strengths map[Spin]float64
}

// Summed returns the strength summed over spin channels.
func (r *Record) Summed() float64 {
	var sum float64
	for _, v := range r.Strengths {
		sum += v
	}
	return sum
}
