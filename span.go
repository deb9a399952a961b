package fftgrid

import (
	"iter"
	"strconv"
)

// Span is a lazily evaluated contiguous run of integers, ascending or
// descending. Only the endpoints are stored; elements are computed on
// demand. The zero value is the empty span.
type Span struct {
	from int
	n    int
	desc bool
}

// NewSpan returns the span covering from..to inclusive. When to is
// smaller than from the span runs downward.
func NewSpan(from, to int) Span {
	if from <= to {
		return Span{from: from, n: to - from + 1}
	}
	return Span{from: from, n: from - to + 1, desc: true}
}

// Len returns the number of integers the span covers.
func (s Span) Len() int { return s.n }

// At returns the i-th integer of the span, counting from the first
// endpoint.
func (s Span) At(i int) (int, error) {
	if i < 0 || i >= s.n {
		return 0, rangeError("span position", i, 0, s.n-1)
	}
	if s.desc {
		return s.from - i, nil
	}
	return s.from + i, nil
}

// Values iterates the span from its first endpoint to its last. The
// sequence is finite and restartable.
func (s Span) Values() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := range s.n {
			v := s.from + i
			if s.desc {
				v = s.from - i
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Reverse returns the span running in the opposite direction.
func (s Span) Reverse() Span {
	if s.n == 0 {
		return s
	}
	last, _ := s.At(s.n - 1)
	return NewSpan(last, s.from)
}

// String renders the span as "from..to" or "empty".
func (s Span) String() string {
	if s.n == 0 {
		return "empty"
	}
	last, _ := s.At(s.n - 1)
	return strconv.Itoa(s.from) + ".." + strconv.Itoa(last)
}
