package seqf

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// IndexSet is an ordered, fixed-size list of positions, used to address
// several slots of a [Sequence] in one call. Like a Sequence it is immutable;
// it is constructed per call and validated against the target sequence at the
// point of use.
type IndexSet struct {
	pos []int
}

// Indices constructs an IndexSet from the given positions, kept in the order
// given.
func Indices(pos ...int) IndexSet {
	return IndexSet{pos: slices.Clone(pos)}
}

// Span constructs an IndexSet covering [lo, hi) in ascending order.
// An empty interval yields the empty IndexSet.
func Span[I constraints.Integer](lo, hi I) IndexSet {
	if lo >= hi {
		return IndexSet{}
	}
	pos := make([]int, 0, int(hi-lo))
	for i := lo; i < hi; i++ {
		pos = append(pos, int(i))
	}
	return IndexSet{pos: pos}
}

// Len reports the number of positions.
func (x IndexSet) Len() int {
	return len(x.pos)
}

// At returns the k-th position.
// It reports a [RangeError] unless 0 <= k < Len.
func (x IndexSet) At(k int) (int, error) {
	if k < 0 || k >= len(x.pos) {
		return 0, oob(k, len(x.pos))
	}
	return x.pos[k], nil
}

// Values returns the positions as a fresh slice.
func (x IndexSet) Values() []int {
	return slices.Clone(x.pos)
}

// check validates every position against a target length n.
func (x IndexSet) check(n int) error {
	for _, p := range x.pos {
		if p < 0 || p >= n {
			return oob(p, n)
		}
	}
	return nil
}

// ascending reports whether positions are strictly increasing, which also
// rules out duplicates.
func (x IndexSet) ascending() bool {
	for k := 1; k < len(x.pos); k++ {
		if x.pos[k] <= x.pos[k-1] {
			return false
		}
	}
	return true
}
