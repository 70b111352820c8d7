package seqf

import (
	"testing"
)

// WANT

// wantSeq returns a "want" function bound to t.
// Calling want tests a sequence for exact elements; if they differ, t.Errorf.
func wantSeq[E comparable](t *testing.T) func(got Sequence[E], elems ...E) {
	return func(got Sequence[E], elems ...E) {
		t.Helper()
		if !Equal(got, Of(elems...)) {
			t.Errorf("\n\texpected %v\n\tgot %v", Of(elems...), got)
		}
	}
}

// SLOTS

// five slots, after the material this package grew out of
func slots() Sequence[string] {
	return Of("bool", "string", "ubyte", "short", "ushort")
}
