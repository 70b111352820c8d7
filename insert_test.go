package seqf

import (
	"testing"

	"github.com/containerd/errdefs"
	"github.com/stretchr/testify/require"
)

func TestInsert(t *testing.T) {
	s := slots()
	want := wantSeq[string](t)

	out, err := s.Insert(1, "int")
	require.NoError(t, err)
	want(out, "bool", "int", "string", "ubyte", "short", "ushort")
	require.Equal(t, s.Len()+1, out.Len())

	// the element previously at i is now at i+1
	prev, _ := s.At(1)
	moved, _ := out.At(2)
	require.Equal(t, prev, moved)

	// input unchanged
	want(s, "bool", "string", "ubyte", "short", "ushort")
}

func TestInsertBoundaries(t *testing.T) {
	s := Of("b", "c")
	want := wantSeq[string](t)

	out, err := s.Insert(0, "a")
	require.NoError(t, err)
	want(out, "a", "b", "c")

	out, err = s.Insert(2, "d")
	require.NoError(t, err)
	want(out, "b", "c", "d")

	out, err = Of[string]().Insert(0, "a")
	require.NoError(t, err)
	want(out, "a")
}

func TestInsertOutOfRange(t *testing.T) {
	s := slots()

	for _, i := range []int{-1, 6, 42} {
		_, err := s.Insert(i, "int")
		require.True(t, errdefs.IsOutOfRange(err), "Insert(%d): %v", i, err)
	}
}

func TestInsertAll(t *testing.T) {
	s := slots()
	want := wantSeq[string](t)

	out, err := s.InsertAll(1, Of("int", "long", "ulong"))
	require.NoError(t, err)
	want(out, "bool", "int", "long", "ulong", "string", "ubyte", "short", "ushort")
	require.Equal(t, s.Len()+3, out.Len())

	// boundaries, as with single insertion
	out, err = s.InsertAll(0, Of("x"))
	require.NoError(t, err)
	want(out, "x", "bool", "string", "ubyte", "short", "ushort")

	out, err = s.InsertAll(5, Of("x"))
	require.NoError(t, err)
	want(out, "bool", "string", "ubyte", "short", "ushort", "x")

	// inserting the empty sequence changes nothing
	out, err = s.InsertAll(3, Of[string]())
	require.NoError(t, err)
	require.True(t, Equal(s, out))

	_, err = s.InsertAll(6, Of("x"))
	require.True(t, errdefs.IsOutOfRange(err))
}

func TestInsertRemoveRoundTrip(t *testing.T) {
	s := slots()

	for r := 0; r < s.Len(); r++ {
		v, err := s.At(r)
		require.NoError(t, err)

		shorter, err := s.Remove(r)
		require.NoError(t, err)

		back, err := shorter.Insert(r, v)
		require.NoError(t, err)
		require.True(t, Equal(s, back), "round trip at %d", r)
	}
}
