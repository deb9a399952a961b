package testutil

import "math"

// Impulse generates a complex unit impulse at the given position.
func Impulse(length, pos int) []complex128 {
	out := make([]complex128, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// CosineCycles generates a real cosine completing the given number of
// whole cycles over length samples, as a complex slice ready for a
// complex FFT.
func CosineCycles(length, cycles int) []complex128 {
	out := make([]complex128, length)
	step := 2 * math.Pi * float64(cycles) / float64(length)
	for i := range out {
		out[i] = complex(math.Cos(step*float64(i)), 0)
	}
	return out
}

// Ramp generates the complex sequence 0, 1, 2, ... of the given
// length. Every element is distinct, which makes reordering bugs
// visible.
func Ramp(length int) []complex128 {
	out := make([]complex128, length)
	for i := range out {
		out[i] = complex(float64(i), 0)
	}
	return out
}
