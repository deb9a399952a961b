package spectral

import (
	"fmt"
	"math"
	"sync"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-fftgrid"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// mustAxis builds the axis for a slice length, which is never
// negative.
func mustAxis(n int) fftgrid.Axis {
	axis, err := fftgrid.NewAxis(n)
	if err != nil {
		panic(err)
	}
	return axis
}

// BinFrequencies returns the physical frequency in hertz of each of
// the n bins of an FFT computed at the given sample rate, in storage
// order: bin p carries its signed frequency index scaled by
// sampleRate/n. For n=4 at 4 Hz the result is 0, 1, -2, -1.
func BinFrequencies(n int, sampleRate float64) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("spectral: bin count must be > 0: %d", n)
	}
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("spectral: sample rate must be > 0: %v", sampleRate)
	}

	out := make([]float64, n)
	step := sampleRate / float64(n)
	for p, f := range mustAxis(n).All() {
		out[p] = float64(f) * step
	}
	return out, nil
}

// splitPoint returns the storage position of the first
// wrapped-negative bin of an axis: everything up to and including the
// largest non-negative frequency sits in the lower half.
func splitPoint(axis fftgrid.Axis) int {
	return axis.Max() + 1
}

// shifted copies src into ascending frequency order.
func shifted[T any](src []T) []T {
	n := len(src)
	if n == 0 {
		return nil
	}
	out := make([]T, n)
	split := splitPoint(fftgrid.AxisFor(src))
	copy(out, src[split:])
	copy(out[n-split:], src[:split])
	return out
}

// unshifted copies a slice in ascending frequency order back into
// storage order.
func unshifted[T any](src []T) []T {
	n := len(src)
	if n == 0 {
		return nil
	}
	out := make([]T, n)
	split := splitPoint(fftgrid.AxisFor(src))
	copy(out, src[n-split:])
	copy(out[split:], src[:n-split])
	return out
}

// Shift reorders bins from storage order to ascending frequency order
// (negative frequencies first, then DC, then positives). The input is
// not modified; only the output slice is allocated.
func Shift(bins []complex128) []complex128 {
	return shifted(bins)
}

// Unshift reorders bins from ascending frequency order back to
// storage order; it is the exact inverse of [Shift].
func Unshift(bins []complex128) []complex128 {
	return unshifted(bins)
}

// ShiftFloats is [Shift] for real-valued per-bin data such as
// magnitudes or bin frequencies.
func ShiftFloats(vals []float64) []float64 {
	return shifted(vals)
}

// UnshiftFloats is [Unshift] for real-valued per-bin data.
func UnshiftFloats(vals []float64) []float64 {
	return unshifted(vals)
}

// rowMajorStrides returns the element stride of each dimension in a
// row-major layout of the given shape.
func rowMajorStrides(shape []int) []int {
	strides := make([]int, len(shape))
	stride := 1
	for d := len(shape) - 1; d >= 0; d-- {
		strides[d] = stride
		stride *= shape[d]
	}
	return strides
}

// ShiftN reorders an N-dimensional spectrum, stored row-major in src,
// into ascending frequency order along every dimension. dst and src
// must both have length equal to the product of shape and must not
// overlap.
func ShiftN(dst, src []complex128, shape ...int) error {
	grid, mins, strides, err := shiftPlan(len(dst), len(src), shape)
	if err != nil {
		return err
	}

	for lin, ix := range grid.All() {
		dst[shiftedLinear(ix, mins, strides)] = src[lin]
	}
	return nil
}

// UnshiftN is the exact inverse of [ShiftN].
func UnshiftN(dst, src []complex128, shape ...int) error {
	grid, mins, strides, err := shiftPlan(len(dst), len(src), shape)
	if err != nil {
		return err
	}

	for lin, ix := range grid.All() {
		dst[lin] = src[shiftedLinear(ix, mins, strides)]
	}
	return nil
}

// shiftPlan validates buffers against the shape and precomputes the
// per-dimension minima and strides the shifted layout needs.
func shiftPlan(dstLen, srcLen int, shape []int) (fftgrid.Grid, []int, []int, error) {
	grid, err := fftgrid.NewGrid(shape...)
	if err != nil {
		return fftgrid.Grid{}, nil, nil, fmt.Errorf("spectral: %w", err)
	}
	if srcLen != grid.Size() || dstLen != grid.Size() {
		return fftgrid.Grid{}, nil, nil, fmt.Errorf("spectral: buffer lengths %d (dst) and %d (src) must both equal shape size %d",
			dstLen, srcLen, grid.Size())
	}

	mins := make([]int, grid.NDim())
	for d := range mins {
		mins[d] = grid.AxisOrUnit(d).Min()
	}
	return grid, mins, rowMajorStrides(shape), nil
}

// shiftedLinear returns the row-major position of a frequency index
// in the ascending-order layout, where dimension d starts at mins[d].
func shiftedLinear(ix fftgrid.Index, mins, strides []int) int {
	lin := 0
	for d, f := range ix.Tuple() {
		lin += (f - mins[d]) * strides[d]
	}
	return lin
}

// ShiftedMagnitude returns |X[k]| for each bin, reordered into
// ascending frequency order for display.
//
// Magnitudes are computed with SIMD-optimized kernels when available
// (AVX2, SSE2, NEON). Scratch buffers are pooled internally.
func ShiftedMagnitude(bins []complex128) []float64 {
	return shiftedKernel(bins, func(dst, re, im []float64) {
		vecmath.Magnitude(dst, re, im)
	})
}

// ShiftedPower returns |X[k]|^2 for each bin, reordered into
// ascending frequency order for display.
//
// Powers are computed with SIMD-optimized kernels when available
// (AVX2, SSE2, NEON). Scratch buffers are pooled internally.
func ShiftedPower(bins []complex128) []float64 {
	return shiftedKernel(bins, func(dst, re, im []float64) {
		vecmath.Power(dst, re, im)
	})
}

func shiftedKernel(bins []complex128, kernel func(dst, re, im []float64)) []float64 {
	n := len(bins)
	if n == 0 {
		return nil
	}

	re, im, buf := getScratch(n)
	for i, c := range bins {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vals := make([]float64, n)
	kernel(vals, re, im)
	putScratch(buf)

	out := make([]float64, n)
	split := splitPoint(fftgrid.AxisFor(bins))
	copy(out, vals[split:])
	copy(out[n-split:], vals[:split])
	return out
}
