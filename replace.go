package seqf

import "golang.org/x/exp/slices"

// Replace returns a copy of s in which position r holds v.
// Length is unchanged; every other position is preserved.
//
// Replacing in the empty sequence is a no-op for any r, never an error.
// Otherwise r must satisfy 0 <= r < Len, or a [RangeError] is reported.
func (s Sequence[E]) Replace(r int, v E) (Sequence[E], error) {
	if len(s.elems) == 0 {
		return s, nil
	}
	if r < 0 || r >= len(s.elems) {
		return Sequence[E]{}, oob(r, len(s.elems))
	}
	out := slices.Clone(s.elems)
	out[r] = v
	return Sequence[E]{elems: out}, nil
}

// ReplaceAll returns a copy of s in which every position named by ix holds v.
//
// Replacements fold left to right over ix; because the value is shared,
// duplicate positions are inert. Every position must satisfy 0 <= p < Len,
// validated before any output is built.
func (s Sequence[E]) ReplaceAll(ix IndexSet, v E) (Sequence[E], error) {
	if err := ix.check(len(s.elems)); err != nil {
		return Sequence[E]{}, err
	}
	out := slices.Clone(s.elems)
	for _, p := range ix.pos {
		out[p] = v
	}
	return Sequence[E]{elems: out}, nil
}

// ReplaceEach returns a copy of s in which each position ix[k] holds vs[k].
//
// ix and vs must have equal length, or a [LengthError] is reported; the
// length check precedes all other work. Positions fold in order k = 0..N-1,
// so with duplicate positions the last pairing wins.
func (s Sequence[E]) ReplaceEach(ix IndexSet, vs Sequence[E]) (Sequence[E], error) {
	pairs, err := Zip(ix, vs)
	if err != nil {
		return Sequence[E]{}, err
	}
	if err := ix.check(len(s.elems)); err != nil {
		return Sequence[E]{}, err
	}
	out := slices.Clone(s.elems)
	for _, pv := range pairs {
		out[pv.First] = pv.Second
	}
	return Sequence[E]{elems: out}, nil
}
