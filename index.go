package fftgrid

import (
	"encoding/binary"
	"fmt"
	"hash/maphash"
	"strconv"
	"strings"
)

// Indexer is the capability shared by every frequency index kind: a
// fixed dimensionality, conversion to the canonical plain [Index],
// and conversion to zero-based positions given target axis lengths.
//
// The set of kinds is closed: [Index] is the canonical kind and
// [ShapedIndex] is the variant that additionally carries the shape it
// was built against.
type Indexer interface {
	NDim() int
	Canonical() Index
	Positional(axisLengths ...int) ([]int, error)
}

// Index is an immutable D-tuple of signed frequency components.
//
// Components are not bounds-checked at construction; any integer is a
// legal frequency. Legality against a concrete dimension length is
// only established during [Index.Positional], which wraps by true
// mathematical modulo.
//
// Index deliberately exposes no element iteration. Call [Index.Tuple]
// to obtain the components explicitly; this keeps the dimensionality
// of an index from being silently discarded by generic unpacking.
type Index struct {
	components []int
}

// NewIndex builds an index from the given components. The
// dimensionality is fixed to the number of arguments and never
// changes.
func NewIndex(components ...int) Index {
	c := make([]int, len(components))
	copy(c, components)
	return Index{components: c}
}

// IndexOf builds an index from a tuple. The tuple is copied; later
// mutation of the argument does not affect the index.
func IndexOf(tuple []int) Index {
	return NewIndex(tuple...)
}

// NDim returns the dimensionality D.
func (ix Index) NDim() int { return len(ix.components) }

// Canonical returns the index itself; Index is the canonical kind.
func (ix Index) Canonical() Index { return ix }

// Component returns the d-th signed component, 0-based.
func (ix Index) Component(d int) (int, error) {
	if d < 0 || d >= len(ix.components) {
		return 0, rangeError("component", d, 0, len(ix.components)-1)
	}
	return ix.components[d], nil
}

// Tuple returns a copy of the D components in order. This is the only
// way to read the raw components in bulk.
func (ix Index) Tuple() []int {
	out := make([]int, len(ix.components))
	copy(out, ix.components)
	return out
}

// Positional converts the index into zero-based positions for an
// array whose dimensions have the given lengths. Component d maps to
// ((f mod n) + n) mod n with n = axisLengths[d], so negative
// frequencies land on the upper half of the dimension: frequency -1
// on a length-4 axis maps to position 3.
//
// Exactly one length per index dimension must be supplied. The index
// may cover only a leading subset of a larger array's dimensions;
// pass the lengths of just those dimensions. All lengths must be
// positive, since a zero-length dimension holds no position at all.
func (ix Index) Positional(axisLengths ...int) ([]int, error) {
	if len(axisLengths) != len(ix.components) {
		return nil, dimMismatchError(len(axisLengths), len(ix.components),
			"pass one axis length per index dimension; slice the longer operand explicitly")
	}
	out := make([]int, len(ix.components))
	for d, f := range ix.components {
		n := axisLengths[d]
		if n <= 0 {
			return nil, fmt.Errorf("fftgrid: axis length for dimension %d must be > 0: %d", d, n)
		}
		out[d] = ((f % n) + n) % n
	}
	return out, nil
}

// Equal reports value equality: same dimensionality and pairwise
// equal components.
func (ix Index) Equal(other Index) bool {
	if len(ix.components) != len(other.components) {
		return false
	}
	for d := range ix.components {
		if ix.components[d] != other.components[d] {
			return false
		}
	}
	return true
}

var indexHashSeed = maphash.MakeSeed()

// Hash returns a value-based hash consistent with [Index.Equal].
// Hashes are stable within a single process only.
func (ix Index) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(indexHashSeed)
	var buf [8]byte
	for _, c := range ix.components {
		binary.LittleEndian.PutUint64(buf[:], uint64(c))
		h.Write(buf[:])
	}
	return h.Sum64()
}

// String renders the index as "(f0, f1, ...)".
func (ix Index) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for d, c := range ix.components {
		if d > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(c))
	}
	b.WriteByte(')')
	return b.String()
}

// ShapedIndex pairs a plain [Index] with the shape it was built
// against.
//
// It is the size-carrying index kind: Positional additionally
// verifies that the caller's axis lengths agree with the carried
// shape, catching an index built for one array being applied to
// another. For all positional work the shape is dropped first via
// Canonical; the carried shape is metadata, never part of the value's
// identity.
type ShapedIndex struct {
	index Index
	shape []int
}

// NewShapedIndex binds index to the shape of the array it addresses.
// The shape must have one length per index dimension.
func NewShapedIndex(index Index, shape ...int) (ShapedIndex, error) {
	if len(shape) != index.NDim() {
		return ShapedIndex{}, dimMismatchError(len(shape), index.NDim(),
			"bind one shape length per index dimension")
	}
	s := make([]int, len(shape))
	copy(s, shape)
	return ShapedIndex{index: index, shape: s}, nil
}

// NDim returns the dimensionality D.
func (si ShapedIndex) NDim() int { return si.index.NDim() }

// Canonical drops the carried shape and returns the plain index.
func (si ShapedIndex) Canonical() Index { return si.index }

// Shape returns a copy of the carried shape.
func (si ShapedIndex) Shape() []int {
	out := make([]int, len(si.shape))
	copy(out, si.shape)
	return out
}

// Positional converts like [Index.Positional] after verifying that
// the supplied lengths agree with the carried shape.
func (si ShapedIndex) Positional(axisLengths ...int) ([]int, error) {
	if len(axisLengths) != len(si.shape) {
		return nil, dimMismatchError(len(axisLengths), len(si.shape),
			"pass one axis length per index dimension; slice the longer operand explicitly")
	}
	for d, n := range si.shape {
		if axisLengths[d] != n {
			return nil, fmt.Errorf("%w: carried shape disagrees at dimension %d: bound to length %d, indexing length %d",
				ErrDimensionMismatch, d, n, axisLengths[d])
		}
	}
	return si.index.Positional(axisLengths...)
}

// String renders the shaped index as "(f0, f1)@[n0 n1]".
func (si ShapedIndex) String() string {
	return fmt.Sprintf("%s@%v", si.index, si.shape)
}
