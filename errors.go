package seqf

import (
	"fmt"

	"github.com/containerd/errdefs"
)

// RangeError reports a position outside the bounds of its target.
// It wraps [errdefs.ErrOutOfRange].
type RangeError struct {
	Index int // the offending position
	Len   int // the target's length at the time of use
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("position %d with length %d: %v", e.Index, e.Len, errdefs.ErrOutOfRange)
}

func (e *RangeError) Unwrap() error {
	return errdefs.ErrOutOfRange
}

// LengthError reports a collection whose length breaks a multi-position
// operation's precondition: parallel values not matching their positions, or
// more removal positions than the sequence holds.
// It wraps [errdefs.ErrInvalidArgument].
type LengthError struct {
	Want int // the length the operation required
	Got  int // the length supplied
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("got length %d, want %d: %v", e.Got, e.Want, errdefs.ErrInvalidArgument)
}

func (e *LengthError) Unwrap() error {
	return errdefs.ErrInvalidArgument
}

// ErrUnsortedIndices is reported by [Sequence.RemoveAll] when its IndexSet is
// not strictly ascending. Positions there are absolute positions in the
// original sequence; the caller pre-sorts and deduplicates.
var ErrUnsortedIndices = fmt.Errorf("positions must be strictly ascending: %w", errdefs.ErrInvalidArgument)

func oob(i, n int) error {
	return &RangeError{Index: i, Len: n}
}
