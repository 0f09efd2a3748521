// Package algofwht computes the fast Walsh–Hadamard transform of float64
// sequences in place.
//
// The transform is unnormalized and returns coefficients in natural
// (Sylvester) order: applying it twice scales the input by n. Lengths must
// be powers of two. Work is done by the widest lane kernel the CPU supports;
// see SetLaneStrategy and the FWHT_SIMD environment variable to override it.
package algofwht

import (
	"fmt"

	m "github.com/cwbudde/algo-fwht/internal/math"
)

// Transform computes the Walsh–Hadamard transform of v[:n] in place.
// It is equivalent to TransformFrom(v, n, 0).
func Transform(v []float64, n int) error {
	return TransformFrom(v, n, 0)
}

// TransformFrom completes the transform of v[:n] in place, given that the
// first step butterfly stages have already been applied. Stage k combines
// elements at distance 2^k; step must lie in [0, log2(n)]. A step of
// log2(n) leaves v unchanged.
func TransformFrom(v []float64, n, step int) error {
	if err := validate(v, n, step); err != nil {
		return err
	}

	if n == 0 {
		return nil
	}

	k, err := resolveKernel(GetLaneStrategy())
	if err != nil {
		return err
	}

	k.Func(v[:n:n], step)

	return nil
}

// Stages returns the number of butterfly stages of a length-n transform.
func Stages(n int) (int, error) {
	if err := validateLength(n); err != nil {
		return 0, err
	}

	return m.Log2(n), nil
}

func validateLength(n int) error {
	if n < 0 || (n != 0 && !m.IsPowerOf2(n)) {
		return fmt.Errorf("%w: %d is not a power of 2", ErrInvalidLength, n)
	}

	return nil
}

func validateStep(n, step int) error {
	if stages := m.Log2(n); step < 0 || step > stages {
		return fmt.Errorf("%w: step %d outside [0, %d] for length %d", ErrInvalidStep, step, stages, n)
	}

	return nil
}

func validateBuffer(v []float64, n int) error {
	if n == 0 {
		return nil
	}

	if v == nil {
		return ErrNilSlice
	}

	if len(v) < n {
		return fmt.Errorf("%w: have %d elements, need %d", ErrShortBuffer, len(v), n)
	}

	return nil
}

func validate(v []float64, n, step int) error {
	if err := validateLength(n); err != nil {
		return err
	}

	if err := validateStep(n, step); err != nil {
		return err
	}

	return validateBuffer(v, n)
}
