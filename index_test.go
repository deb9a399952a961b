package fftgrid

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-fftgrid/internal/testutil"
)

var (
	_ Indexer = Index{}
	_ Indexer = ShapedIndex{}
)

func TestIndexComponents(t *testing.T) {
	ix := NewIndex(1, 5, -3)
	if ix.NDim() != 3 {
		t.Fatalf("NDim=%d, want 3", ix.NDim())
	}

	for d, want := range []int{1, 5, -3} {
		got, err := ix.Component(d)
		if err != nil {
			t.Fatalf("Component(%d): %v", d, err)
		}
		if got != want {
			t.Fatalf("Component(%d)=%d, want %d", d, got, want)
		}
	}

	for _, d := range []int{-1, 3} {
		if _, err := ix.Component(d); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("Component(%d): err=%v, want ErrOutOfRange", d, err)
		}
	}
}

func TestIndexTupleIsACopy(t *testing.T) {
	ix := NewIndex(1, 2)
	tup := ix.Tuple()
	tup[0] = 99
	testutil.RequireIntsEqual(t, ix.Tuple(), []int{1, 2})

	// Construction copies too.
	src := []int{3, 4}
	ix = IndexOf(src)
	src[0] = 99
	testutil.RequireIntsEqual(t, ix.Tuple(), []int{3, 4})
}

func TestIndexPositional(t *testing.T) {
	tests := []struct {
		name    string
		index   Index
		lengths []int
		want    []int
	}{
		{"in range", NewIndex(1, 5), []int{3, 3}, []int{1, 2}},
		{"negative wraps up", NewIndex(-1), []int{4}, []int{3}},
		{"nyquist", NewIndex(-2, -1), []int{4, 4}, []int{2, 3}},
		{"large positive wraps", NewIndex(9), []int{4}, []int{1}},
		{"large negative wraps", NewIndex(-9), []int{4}, []int{3}},
		{"zero dimensional", NewIndex(), nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.index.Positional(tt.lengths...)
			if err != nil {
				t.Fatalf("Positional: %v", err)
			}
			testutil.RequireIntsEqual(t, got, tt.want)
		})
	}
}

func TestIndexPositionalDimensionMismatch(t *testing.T) {
	ix := NewIndex(1, 5)

	if _, err := ix.Positional(3, 3, 7); !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("arity 2 vs 3: err=%v, want ErrDimensionMismatch", err)
	}
	if _, err := ix.Positional(3); !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("arity 2 vs 1: err=%v, want ErrDimensionMismatch", err)
	}
}

func TestIndexPositionalZeroLength(t *testing.T) {
	if _, err := NewIndex(0).Positional(0); err == nil {
		t.Fatal("expected error for zero axis length")
	}
}

func TestIndexEqualAndHash(t *testing.T) {
	a := NewIndex(1, -2)
	b := NewIndex(1, -2)
	c := NewIndex(1, 2)
	d := NewIndex(1)

	if !a.Equal(b) {
		t.Fatal("equal tuples must compare equal")
	}
	if a.Equal(c) || a.Equal(d) {
		t.Fatal("differing tuples must not compare equal")
	}
	if a.Hash() != b.Hash() {
		t.Fatal("equal indices must hash equal")
	}

	// (1) and (1, 0) are different values despite a shared prefix.
	if NewIndex(1).Equal(NewIndex(1, 0)) {
		t.Fatal("dimensionality is part of the value")
	}
}

func TestIndexString(t *testing.T) {
	if got := NewIndex(1, -2).String(); got != "(1, -2)" {
		t.Fatalf("String=%q", got)
	}
	if got := NewIndex().String(); got != "()" {
		t.Fatalf("String=%q", got)
	}
}

func TestShapedIndex(t *testing.T) {
	si, err := NewShapedIndex(NewIndex(1, -1), 4, 6)
	if err != nil {
		t.Fatalf("NewShapedIndex: %v", err)
	}
	if si.NDim() != 2 {
		t.Fatalf("NDim=%d, want 2", si.NDim())
	}
	testutil.RequireIntsEqual(t, si.Shape(), []int{4, 6})
	testutil.RequireIntsEqual(t, si.Canonical().Tuple(), []int{1, -1})

	pos, err := si.Positional(4, 6)
	if err != nil {
		t.Fatalf("Positional: %v", err)
	}
	testutil.RequireIntsEqual(t, pos, []int{1, 5})
}

func TestShapedIndexMismatches(t *testing.T) {
	if _, err := NewShapedIndex(NewIndex(1, -1), 4); !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("bind arity: err=%v, want ErrDimensionMismatch", err)
	}

	si, _ := NewShapedIndex(NewIndex(1, -1), 4, 6)

	// Wrong arity at the point of use.
	if _, err := si.Positional(4); !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("use arity: err=%v, want ErrDimensionMismatch", err)
	}

	// Right arity, disagreeing lengths.
	if _, err := si.Positional(4, 8); !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("shape disagreement: err=%v, want ErrDimensionMismatch", err)
	}
}

func TestIndexerCanonicalRoundTrip(t *testing.T) {
	si, _ := NewShapedIndex(NewIndex(2, -2), 5, 5)
	for _, ixr := range []Indexer{NewIndex(2, -2), si} {
		pos, err := ixr.Canonical().Positional(5, 5)
		if err != nil {
			t.Fatalf("Positional: %v", err)
		}
		testutil.RequireIntsEqual(t, pos, []int{2, 3})
	}
}
