// Package reference provides slow, obviously correct transforms used as test
// oracles.
package reference

import "math/bits"

// HadamardEntry returns entry (i, j) of the unnormalized Sylvester-ordered
// Hadamard matrix: +1 when i&j has even parity, -1 otherwise.
func HadamardEntry(i, j int) float64 {
	if bits.OnesCount(uint(i&j))&1 == 1 {
		return -1
	}

	return 1
}

// NaiveHadamard computes the Walsh–Hadamard transform of src by direct
// O(n²) matrix multiplication. len(src) must be a power of two.
func NaiveHadamard(src []float64) []float64 {
	n := len(src)
	dst := make([]float64, n)

	for i := range n {
		var sum float64
		for j := range n {
			sum += HadamardEntry(i, j) * src[j]
		}

		dst[i] = sum
	}

	return dst
}

// PartialHadamard applies butterfly stages 0..step-1 to a copy of src, one
// element pair at a time. It produces the inputs expected by resumable
// transforms.
func PartialHadamard(src []float64, step int) []float64 {
	dst := append([]float64(nil), src...)

	for k := range step {
		span := 1 << k
		for i := 0; i < len(dst); i += 2 * span {
			for j := i; j < i+span; j++ {
				x, y := dst[j], dst[j+span]
				dst[j], dst[j+span] = x+y, x-y
			}
		}
	}

	return dst
}
