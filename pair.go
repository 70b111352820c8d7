package seqf

// Pair is a minimal two-slot product type.
type Pair[A, B any] struct {
	First  A
	Second B
}

// MakePair constructs a Pair.
func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

// Zip pairs each position of ix with the value at the same offset of vs.
// It reports a [LengthError] when the lengths differ.
//
// The result is the replacement specification consumed by
// [Sequence.ReplaceEach]: position ix[k] receives value vs[k].
func Zip[E any](ix IndexSet, vs Sequence[E]) ([]Pair[int, E], error) {
	if len(ix.pos) != len(vs.elems) {
		return nil, &LengthError{Want: len(ix.pos), Got: len(vs.elems)}
	}
	pairs := make([]Pair[int, E], len(ix.pos))
	for k, p := range ix.pos {
		pairs[k] = MakePair(p, vs.elems[k])
	}
	return pairs, nil
}
