package seqf

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Sequence is an immutable, fixed-length, zero-indexed list of elements of
// one slot type E. The zero value is the empty sequence.
//
// A Sequence never shares backing storage with caller-visible slices, and no
// method mutates its receiver. All transformations return a new Sequence.
type Sequence[E any] struct {
	elems []E
}

// Of constructs a Sequence holding the given elements.
func Of[E any](elems ...E) Sequence[E] {
	return Sequence[E]{elems: slices.Clone(elems)}
}

// From constructs a Sequence from a slice. The slice is copied; later
// mutation of it does not alter the Sequence.
func From[E any](s []E) Sequence[E] {
	return Sequence[E]{elems: slices.Clone(s)}
}

// Len reports the number of elements.
func (s Sequence[E]) Len() int {
	return len(s.elems)
}

// At returns the element at position i.
// It reports a [RangeError] unless 0 <= i < Len.
func (s Sequence[E]) At(i int) (E, error) {
	if i < 0 || i >= len(s.elems) {
		var zero E
		return zero, oob(i, len(s.elems))
	}
	return s.elems[i], nil
}

// Slice returns the subsequence over [lo, hi).
// It reports a [RangeError] if lo < 0, lo > hi, or hi > Len.
func (s Sequence[E]) Slice(lo, hi int) (Sequence[E], error) {
	switch {
	case lo < 0:
		return Sequence[E]{}, oob(lo, len(s.elems))
	case hi > len(s.elems), lo > hi:
		return Sequence[E]{}, oob(hi, len(s.elems))
	}
	return Sequence[E]{elems: slices.Clone(s.elems[lo:hi])}, nil
}

// Concat returns the elements of s followed by the elements of other.
// Result length is the sum of the input lengths. Concat never fails.
func (s Sequence[E]) Concat(other Sequence[E]) Sequence[E] {
	return Sequence[E]{elems: join(s.elems, other.elems)}
}

// Append returns s extended with vs at the end.
func (s Sequence[E]) Append(vs ...E) Sequence[E] {
	return Sequence[E]{elems: join(s.elems, vs)}
}

// Prepend returns s extended with vs at the front.
func (s Sequence[E]) Prepend(vs ...E) Sequence[E] {
	return Sequence[E]{elems: join(vs, s.elems)}
}

// Head returns the first element.
// It reports a [RangeError] on the empty sequence.
func (s Sequence[E]) Head() (E, error) {
	return s.At(0)
}

// Tail returns everything past the first element.
// The tail of the empty sequence is the empty sequence.
func (s Sequence[E]) Tail() Sequence[E] {
	if len(s.elems) == 0 {
		return s
	}
	return Sequence[E]{elems: slices.Clone(s.elems[1:])}
}

// Values returns the elements as a fresh slice.
func (s Sequence[E]) Values() []E {
	return slices.Clone(s.elems)
}

func (s Sequence[E]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range s.elems {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", e)
	}
	b.WriteByte(']')
	return b.String()
}

// Equal reports whether two sequences hold equal elements in equal order.
func Equal[E comparable](a, b Sequence[E]) bool {
	return slices.Equal(a.elems, b.elems)
}

// EqualFunc is [Equal] under a caller-supplied element comparison.
func EqualFunc[E any](a, b Sequence[E], eq func(E, E) bool) bool {
	return slices.EqualFunc(a.elems, b.elems, eq)
}

// join concatenates without aliasing either input.
func join[T any](head, tail []T) (ts []T) {
	ts = make([]T, len(head)+len(tail))
	copy(ts, head)
	copy(ts[len(head):], tail)
	return
}
