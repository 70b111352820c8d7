/*
Package seqf provides immutable, fixed-length, generic sequences and a small
family of pure transformations over them: replacement, removal, and insertion,
in single-position and multi-position forms.

Included are:
  - [Sequence], an immutable ordered list of elements of one slot type
  - [IndexSet], an ordered list of positions addressing several slots at once
  - Replace/Remove/Insert engines, each a pure function from an input sequence
    to a fresh output sequence
  - typed, inspectable errors compatible with [errors.Is] and the
    errdefs classifiers

# Hello, sequence

	package main

	import (
		"fmt"

		"github.com/jstrand/seqf"
	)

	func main() {
		s := seqf.Of("bool", "string", "ubyte", "short", "ushort")
		s, _ = s.Replace(0, "int")
		fmt.Println(s)
	}

# Immutability

No operation mutates its receiver or its arguments. Every transformation
returns a new [Sequence]; the input remains valid and unchanged. Because of
this, any number of goroutines may transform the same source sequence
concurrently without coordination.

# Multi-position operations

An [IndexSet] names several positions for one call:

	s, err := s.RemoveAll(seqf.Indices(0, 2, 4))

Positions in an IndexSet given to [Sequence.RemoveAll] are absolute positions
in the original sequence, and must be given in strictly ascending order.
The engine applies the left-shift bookkeeping internally.

# Errors

Failures are precondition violations, never transient conditions. Each is
reported synchronously as a typed error: [RangeError] for a position outside
the sequence bounds, [LengthError] for parallel collections of unequal length.
Both wrap the corresponding github.com/containerd/errdefs sentinel, so

	errdefs.IsOutOfRange(err)

classifies without unpacking the concrete type.

# Scale

These sequences target the small, bounded lengths of the domain they came
from. Multi-position removal is O(N) per removed position; neither the
representation nor the algorithms are tuned for unbounded N.

# seqtest

A package seqtest is also included. It offers diff-printing test helpers
for code that produces sequences.
*/
package seqf
