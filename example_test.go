package seqf_test

import (
	"fmt"

	"github.com/containerd/errdefs"
	"github.com/jstrand/seqf"
)

func Example_basic() {
	s := seqf.Of("bool", "string", "ubyte", "short", "ushort")

	s, _ = s.Replace(0, "int")
	fmt.Println(s)

	s, _ = s.Remove(2)
	fmt.Println(s)

	s, _ = s.Insert(1, "long")
	fmt.Println(s)

	// Output:
	// [int string ubyte short ushort]
	// [int string short ushort]
	// [int long string short ushort]
}

func ExampleSequence_RemoveAll() {
	s := seqf.Of("bool", "string", "ubyte", "short", "ushort")

	s, _ = s.RemoveAll(seqf.Indices(0, 2, 4))
	fmt.Println(s)

	// Output:
	// [string short]
}

func ExampleSequence_InsertAll() {
	s := seqf.Of("bool", "string", "ubyte", "short", "ushort")

	s, _ = s.InsertAll(1, seqf.Of("int", "long", "ulong"))
	fmt.Println(s)

	// Output:
	// [bool int long ulong string ubyte short ushort]
}

func ExampleSequence_ReplaceEach() {
	s := seqf.Of("bool", "string", "ubyte", "short", "ushort")

	_, err := s.ReplaceEach(seqf.Indices(0, 2, 4), seqf.Of("a", "b"))
	fmt.Println(err)
	fmt.Println(errdefs.IsInvalidArgument(err))

	// Output:
	// got length 2, want 3: invalid argument
	// true
}

func ExampleSpan() {
	s := seqf.Of("bool", "string", "ubyte", "short", "ushort")

	s, _ = s.RemoveAll(seqf.Span(1, 4))
	fmt.Println(s)

	// Output:
	// [bool ushort]
}
