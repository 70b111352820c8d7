// Package seqtest provides small helpers for testing code that produces
// [seqf.Sequence] values.
//
// It's offered more in the sense of "this is possible" rather than "this
// should be used".
package seqtest

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jstrand/seqf"
)

// Diff compares got against a sequence of the want elements.
// A mismatch is reported through t.Errorf with a go-cmp diff.
func Diff[E any](t testing.TB, got seqf.Sequence[E], want ...E) {
	t.Helper()
	if d := cmp.Diff(want, got.Values(), cmpopts.EquateEmpty()); d != "" {
		t.Errorf("sequence mismatch (-want +got):\n%s", d)
	}
}

// Wanter returns a "want" function bound to t.
//
// Calling want tests whether a sequence holds exactly the given elements.
// If it does not, t.Errorf is called with a diff.
func Wanter[E any](t testing.TB) (want func(got seqf.Sequence[E], elems ...E)) {
	return func(got seqf.Sequence[E], elems ...E) {
		t.Helper()
		Diff(t, got, elems...)
	}
}
