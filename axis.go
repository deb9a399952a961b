package fftgrid

import (
	"fmt"
	"iter"
)

// Axis describes the signed frequency layout of one dimension of
// length N.
//
// Position p in [0, N) carries frequency p for p < ceil(N/2); beyond
// that the values wrap negative, so position p carries p-N. For N=4
// the axis enumerates 0, 1, -2, -1; for N=5 it enumerates
// 0, 1, 2, -2, -1. The map from positions to frequencies is a
// bijection onto the integer interval [-floor(N/2), ceil(N/2)-1].
//
// Axis stores only the length. Every query is computed on demand, so
// values are trivially copyable and safe to share between goroutines.
// Two axes are equal (==) exactly when their lengths are equal.
type Axis struct {
	n int
}

// NewAxis returns the frequency axis for a dimension of length n.
// n must not be negative.
func NewAxis(n int) (Axis, error) {
	if n < 0 {
		return Axis{}, fmt.Errorf("fftgrid: axis length must be >= 0: %d", n)
	}
	return Axis{n: n}, nil
}

// AxisFor returns the frequency axis matching the length of an
// existing sequence, typically one dimension's worth of FFT output.
func AxisFor[S ~[]E, E any](s S) Axis {
	return Axis{n: len(s)}
}

// Len returns the dimension length N.
func (a Axis) Len() int { return a.n }

// At returns the signed frequency stored at position pos in [0, N).
func (a Axis) At(pos int) (int, error) {
	if pos < 0 || pos >= a.n {
		return 0, rangeError("axis position", pos, 0, a.n-1)
	}
	return a.at(pos), nil
}

// at computes the frequency for a position known to be in range.
func (a Axis) at(pos int) int {
	if pos < (a.n+1)/2 {
		return pos
	}
	return pos - a.n
}

// Min returns the smallest frequency on the axis, -floor(N/2).
func (a Axis) Min() int { return -(a.n / 2) }

// Max returns the largest frequency on the axis, ceil(N/2)-1.
func (a Axis) Max() int { return (a.n+1)/2 - 1 }

// Values iterates the frequencies in storage (positional) order. The
// sequence is finite and restartable.
func (a Axis) Values() iter.Seq[int] {
	return func(yield func(int) bool) {
		for p := range a.n {
			if !yield(a.at(p)) {
				return
			}
		}
	}
}

// All iterates (position, frequency) pairs in storage order.
func (a Axis) All() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for p := range a.n {
			if !yield(p, a.at(p)) {
				return
			}
		}
	}
}

// Sorted returns the frequencies of the axis in ascending order. The
// sorted value set of a frequency axis is always a contiguous integer
// run, so the result is simply the span from Min to Max. With reverse
// set it runs from Max down to Min instead.
func (a Axis) Sorted(reverse bool) Span {
	if a.n == 0 {
		return Span{}
	}
	if reverse {
		return NewSpan(a.Max(), a.Min())
	}
	return NewSpan(a.Min(), a.Max())
}

// String renders the axis as "Axis(N)".
func (a Axis) String() string {
	return fmt.Sprintf("Axis(%d)", a.n)
}
