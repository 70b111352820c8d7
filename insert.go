package seqf

// Insert returns a copy of s with v at position i. The element previously at
// i moves to i+1; length grows by one.
//
// Boundary positions are valid: i == 0 prepends and i == Len appends, so
// inserting an element just removed from position r reconstructs the original
// sequence for every valid r. A [RangeError] is reported unless
// 0 <= i <= Len.
func (s Sequence[E]) Insert(i int, v E) (Sequence[E], error) {
	if i < 0 || i > len(s.elems) {
		return Sequence[E]{}, oob(i, len(s.elems))
	}
	out := make([]E, 0, len(s.elems)+1)
	out = append(out, s.elems[:i]...)
	out = append(out, v)
	out = append(out, s.elems[i:]...)
	return Sequence[E]{elems: out}, nil
}

// InsertAll returns a copy of s with the elements of vs spliced in at
// position i, preserving their order. Length grows by vs.Len. The positional
// contract matches [Sequence.Insert]: 0 <= i <= Len, boundaries included.
func (s Sequence[E]) InsertAll(i int, vs Sequence[E]) (Sequence[E], error) {
	if i < 0 || i > len(s.elems) {
		return Sequence[E]{}, oob(i, len(s.elems))
	}
	out := make([]E, 0, len(s.elems)+len(vs.elems))
	out = append(out, s.elems[:i]...)
	out = append(out, vs.elems...)
	out = append(out, s.elems[i:]...)
	return Sequence[E]{elems: out}, nil
}
