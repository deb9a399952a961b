// Package fftgrid maps between signed FFT frequency indices and
// zero-based array positions.
//
// FFT libraries store the output of an N-point transform in "storage
// order": position p holds frequency bin p for p < ceil(N/2), and the
// upper half wraps to negative frequencies, so position p holds bin
// p-N from there on. For N=4 the bins read 0, 1, -2, -1; for N=5 they
// read 0, 1, 2, -2, -1. This package lets callers address such arrays
// by signed frequency instead of raw position.
//
// Three types carry the mapping. [Axis] describes the layout of one
// dimension. [Index] is an immutable tuple of signed frequency
// components, convertible to zero-based positions for a concrete
// shape. [Grid] is the Cartesian product of one axis per dimension
// and enumerates every frequency index of a multi-dimensional
// spectrum without materializing them.
//
// All types store only lengths, never elements, so they cost O(D)
// memory regardless of shape, are freely copyable, and are safe for
// concurrent use. The package computes index mappings only: it never
// performs a transform and never touches array data.
//
// Multi-dimensional enumeration and linear indexing are row-major:
// the last dimension varies fastest, matching the layout of a flat Go
// slice indexed by i*cols+j. [Grid.AtLinear] and [Grid.Indices]
// follow the same order.
package fftgrid
