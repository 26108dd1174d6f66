package bondlist

import (
	"fmt"
	"math"
)

// MaxBondLength is the hard upper bound on bond lengths considered by
// per-site queries, in the same distance units as the records.
const MaxBondLength = 6.0

// Collection is an immutable, ordered set of bond records indexed by label
// and by touched site. All queries iterate in the original record order.
type Collection struct {
	polarity      Polarity
	records       []*Record
	byLabel       map[string]*Record
	bySite        map[int][]int // site index → positions of touching records
	spinPolarized bool
}

// NewCollection builds a Collection with the given polarity. Every record's
// atom labels must parse and every bond label must be unique.
func NewCollection(polarity Polarity, records []Record) (*Collection, error) {
	c := &Collection{
		polarity: polarity,
		records:  make([]*Record, len(records)),
		byLabel:  make(map[string]*Record, len(records)),
		bySite:   make(map[int][]int),
	}
	for i := range records {
		rec := records[i]
		if _, dup := c.byLabel[rec.Label]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLabel, rec.Label)
		}
		i1, i2, err := rec.SiteIndices()
		if err != nil {
			return nil, fmt.Errorf("record %q: %w", rec.Label, err)
		}
		if _, down := rec.Strengths[SpinDown]; down {
			c.spinPolarized = true
		}
		c.records[i] = &rec
		c.byLabel[rec.Label] = &rec
		c.bySite[i1] = append(c.bySite[i1], i)
		if i2 != i1 {
			c.bySite[i2] = append(c.bySite[i2], i)
		}
	}
	return c, nil
}

// Polarity returns how strengths of this collection are interpreted.
func (c *Collection) Polarity() Polarity { return c.polarity }

// Len returns the number of records.
func (c *Collection) Len() int { return len(c.records) }

// IsSpinPolarized reports whether any record carries a SpinDown channel.
func (c *Collection) IsSpinPolarized() bool { return c.spinPolarized }

// Records returns all records in original order. The slice must not be
// modified.
func (c *Collection) Records() []*Record { return c.records }

// ByLabel returns the record with the given bond label.
func (c *Collection) ByLabel(label string) (*Record, error) {
	rec, ok := c.byLabel[label]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLabel, label)
	}
	return rec, nil
}

// RecordsForSite returns, in collection order, the records touching the
// given site whose length is at most MaxBondLength, whose summed strength
// lies in [lower, upper], and — when onlyBondsTo is non-nil — whose other
// endpoint's element is in that set.
func (c *Collection) RecordsForSite(site int, lower, upper float64, onlyBondsTo []string) []*Record {
	var out []*Record
	for _, pos := range c.bySite[site] {
		rec := c.records[pos]
		if rec.Length > MaxBondLength {
			continue
		}
		s := rec.Summed()
		if s < lower || s > upper {
			continue
		}
		if onlyBondsTo != nil && !otherEndpointIn(rec, site, onlyBondsTo) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// Extremum returns the strongest summed strength in the collection: the
// minimum for Bonding data, the maximum for Population data.
func (c *Collection) Extremum() (float64, error) {
	if len(c.records) == 0 {
		return 0, ErrNoRecords
	}
	ext := math.Inf(1)
	if c.polarity == Population {
		ext = math.Inf(-1)
	}
	for _, rec := range c.records {
		s := rec.Summed()
		if c.polarity == Bonding {
			ext = math.Min(ext, s)
		} else {
			ext = math.Max(ext, s)
		}
	}
	return ext, nil
}

// otherEndpointIn reports whether the endpoint of rec that is not site has
// an element in allowed. Labels were validated at construction.
func otherEndpointIn(rec *Record, site int, allowed []string) bool {
	i1, _, _ := rec.SiteIndices()
	e1, e2 := rec.Elements()
	other := e2
	if i1 != site {
		other = e1
	}
	for _, el := range allowed {
		if el == other {
			return true
		}
	}
	return false
}
