// Package spectral arranges complex spectrum bins produced by
// external FFT backends.
//
// The package intentionally does not implement FFT itself. It maps
// between the storage order FFT backends emit (bin 0 first, negative
// frequencies wrapped into the upper half) and ascending frequency
// order, and labels bins with physical frequencies, using the index
// conventions of the parent fftgrid package.
package spectral
