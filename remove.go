package seqf

import "golang.org/x/exp/slices"

// Remove returns a copy of s without the element at position r.
// Relative order of the remaining elements is preserved; length shrinks by
// one. Removing the sole element of a length-1 sequence yields the empty
// sequence.
//
// Removing from the empty sequence is a no-op for any r, never an error.
// Otherwise r must satisfy 0 <= r < Len, or a [RangeError] is reported.
func (s Sequence[E]) Remove(r int) (Sequence[E], error) {
	if len(s.elems) == 0 {
		return s, nil
	}
	if r < 0 || r >= len(s.elems) {
		return Sequence[E]{}, oob(r, len(s.elems))
	}
	out := make([]E, 0, len(s.elems)-1)
	out = append(out, s.elems[:r]...)
	out = append(out, s.elems[r+1:]...)
	return Sequence[E]{elems: out}, nil
}

// RemoveAll returns a copy of s without the elements at the positions named
// by ix. Positions are absolute positions in the original sequence and must
// be strictly ascending; [ErrUnsortedIndices] is reported otherwise, since
// unsorted or duplicated input is ambiguous between absolute and
// already-shifted addressing.
//
// An ix longer than the sequence reports a [LengthError]; a position outside
// the original bounds reports a [RangeError]. Validation completes before any
// output is built.
//
// Internally the k-th removal (zero-based) targets position ix[k]-k of the
// shrinking working sequence, which deletes exactly the absolute positions
// named.
func (s Sequence[E]) RemoveAll(ix IndexSet) (Sequence[E], error) {
	if len(ix.pos) > len(s.elems) {
		return Sequence[E]{}, &LengthError{Want: len(s.elems), Got: len(ix.pos)}
	}
	if !ix.ascending() {
		return Sequence[E]{}, ErrUnsortedIndices
	}
	if err := ix.check(len(s.elems)); err != nil {
		return Sequence[E]{}, err
	}

	out := slices.Clone(s.elems)
	for k, p := range ix.pos {
		p -= k
		out = slices.Delete(out, p, p+1)
	}
	return Sequence[E]{elems: out}, nil
}
