package fftgrid

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// Shaped is the minimal view of a host array: its shape as a sequence
// of non-negative dimension lengths. The grid reads the shape once at
// construction and never retains the host.
type Shaped interface {
	Shape() []int
}

// Grid is the Cartesian product of one frequency [Axis] per dimension
// of a D-dimensional spectrum.
//
// Only the shape is stored. All Size() frequency indices are computed
// on demand, so a Grid over an arbitrarily large shape costs O(D)
// memory and is safe to copy and share between goroutines.
type Grid struct {
	shape []int
}

// NewGrid returns the grid for the given dimension lengths. Lengths
// must not be negative; zero lengths are legal and yield an empty
// grid.
func NewGrid(lengths ...int) (Grid, error) {
	for d, n := range lengths {
		if n < 0 {
			return Grid{}, fmt.Errorf("fftgrid: length of dimension %d must be >= 0: %d", d, n)
		}
	}
	s := make([]int, len(lengths))
	copy(s, lengths)
	return Grid{shape: s}, nil
}

// GridOfSpans returns the grid whose dimension lengths are the
// cardinalities of the given spans.
func GridOfSpans(spans ...Span) Grid {
	s := make([]int, len(spans))
	for d, sp := range spans {
		s[d] = sp.Len()
	}
	return Grid{shape: s}
}

// GridFor returns the grid matching the shape of a host array.
func GridFor(host Shaped) (Grid, error) {
	return NewGrid(host.Shape()...)
}

// NDim returns the number of dimensions D.
func (g Grid) NDim() int { return len(g.shape) }

// Shape returns a copy of the D dimension lengths.
func (g Grid) Shape() []int {
	out := make([]int, len(g.shape))
	copy(out, g.shape)
	return out
}

// Size returns the total number of indices, the product of the shape.
// The empty product is 1: a zero-dimensional grid holds exactly one
// index, the empty tuple.
func (g Grid) Size() int {
	size := 1
	for _, n := range g.shape {
		size *= n
	}
	return size
}

// Axis returns the frequency axis of dimension d, 0-based.
func (g Grid) Axis(d int) (Axis, error) {
	if d < 0 || d >= len(g.shape) {
		return Axis{}, rangeError("dimension", d, 0, len(g.shape)-1)
	}
	return Axis{n: g.shape[d]}, nil
}

// AxisOrUnit returns the axis of dimension d, or the length-1 axis
// when d lies outside [0, D). This is the lenient accessor for
// pairing a grid against data of lower dimensionality, where missing
// trailing dimensions behave as if they had length 1.
func (g Grid) AxisOrUnit(d int) Axis {
	if d >= 0 && d < len(g.shape) {
		return Axis{n: g.shape[d]}
	}
	return Axis{n: 1}
}

// At returns the frequency index stored at the given positional
// coordinates, one per dimension. Every coordinate is bounds-checked
// against its dimension.
func (g Grid) At(coords ...int) (Index, error) {
	if len(coords) != len(g.shape) {
		return Index{}, dimMismatchError(len(coords), len(g.shape),
			"pass one coordinate per grid dimension")
	}
	c := make([]int, len(coords))
	for d, p := range coords {
		if p < 0 || p >= g.shape[d] {
			return Index{}, rangeError(fmt.Sprintf("coordinate for dimension %d", d), p, 0, g.shape[d]-1)
		}
		c[d] = Axis{n: g.shape[d]}.at(p)
	}
	return Index{components: c}, nil
}

// AtLinear returns the frequency index for a 0-based linear position
// in row-major order. It agrees element-for-element with plain
// positional row-major enumeration of the same shape, re-expressed in
// frequency coordinates.
func (g Grid) AtLinear(i int) (Index, error) {
	size := g.Size()
	if i < 0 || i >= size {
		return Index{}, rangeError("linear index", i, 0, size-1)
	}
	c := make([]int, len(g.shape))
	rem := i
	for d := len(g.shape) - 1; d >= 0; d-- {
		n := g.shape[d]
		c[d] = Axis{n: n}.at(rem % n)
		rem /= n
	}
	return Index{components: c}, nil
}

// Indices iterates every frequency index of the grid in row-major
// order. The sequence is finite, restartable and never materializes
// the index set.
func (g Grid) Indices() iter.Seq[Index] {
	return func(yield func(Index) bool) {
		g.walk(func(_ int, pos []int) bool {
			return yield(g.indexAt(pos))
		})
	}
}

// All iterates (linear index, frequency index) pairs in row-major
// order.
func (g Grid) All() iter.Seq2[int, Index] {
	return func(yield func(int, Index) bool) {
		g.walk(func(lin int, pos []int) bool {
			return yield(lin, g.indexAt(pos))
		})
	}
}

// Positions iterates the positional counterpart of Indices: every
// valid coordinate tuple in row-major order. The yielded slice is
// reused between iterations; copy it to retain.
func (g Grid) Positions() iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		g.walk(func(_ int, pos []int) bool {
			return yield(pos)
		})
	}
}

// indexAt builds the index for a position known to be in range.
func (g Grid) indexAt(pos []int) Index {
	c := make([]int, len(pos))
	for d, p := range pos {
		c[d] = Axis{n: g.shape[d]}.at(p)
	}
	return Index{components: c}
}

// walk visits every position in row-major order, odometer-style. A
// zero-dimensional grid yields exactly one visit with the empty
// tuple; any zero-length dimension yields none.
func (g Grid) walk(visit func(lin int, pos []int) bool) {
	for _, n := range g.shape {
		if n == 0 {
			return
		}
	}
	pos := make([]int, len(g.shape))
	for lin := 0; ; lin++ {
		if !visit(lin, pos) {
			return
		}
		d := len(g.shape) - 1
		for ; d >= 0; d-- {
			pos[d]++
			if pos[d] < g.shape[d] {
				break
			}
			pos[d] = 0
		}
		if d < 0 {
			return
		}
	}
}

// String renders the grid as "Grid(6x9)".
func (g Grid) String() string {
	var b strings.Builder
	b.WriteString("Grid(")
	for d, n := range g.shape {
		if d > 0 {
			b.WriteByte('x')
		}
		b.WriteString(strconv.Itoa(n))
	}
	b.WriteByte(')')
	return b.String()
}
