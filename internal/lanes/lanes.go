// Package lanes provides the lane-width primitives the butterfly engine is
// written against.
//
// An Ops value fixes the number of doubles handled together (the lane width)
// and supplies a fused base transform that completes the first BaseLog2
// butterfly stages inside every group of BaseSize elements. The engine in
// internal/butterfly is generic over Ops and never inspects which
// instantiation it runs on.
package lanes

import "fmt"

// Ops is the vector-width abstraction. A is the lane value type: float64 for
// the scalar instantiation, fixed-size arrays for the wide ones.
type Ops[A any] interface {
	// Width returns the number of float64 elements held by one lane value.
	Width() int

	// BaseLog2 returns the number of stages fused by ComputeBase.
	BaseLog2() int

	// Load reads Width() consecutive elements starting at v[0].
	Load(v []float64) A

	// StoreAdd writes the element-wise sum a+b to dst[:Width()].
	StoreAdd(dst []float64, a, b A)

	// StoreSub writes the element-wise difference a-b to dst[:Width()].
	StoreSub(dst []float64, a, b A)

	// ComputeBase applies stages step..BaseLog2()-1 inside every contiguous
	// group of 1<<BaseLog2() elements of v[:n]. Groups do not interact.
	// It is a no-op when step >= BaseLog2().
	ComputeBase(v []float64, n, step int)
}

// MaxBaseSize is the largest base group size of any instantiation. Callers
// use it to size stack scratch buffers.
const MaxBaseSize = 16

// BaseSize returns the base group size 1<<BaseLog2() of ops.
func BaseSize[A any](ops Ops[A]) int {
	return 1 << ops.BaseLog2()
}

// Validate reports a configuration defect in ops: a base group that is not
// a whole number of lanes, or one larger than MaxBaseSize.
func Validate[A any](ops Ops[A]) error {
	w, b := ops.Width(), BaseSize(ops)
	if w < 1 || b%w != 0 {
		return fmt.Errorf("lanes: base group of %d elements is not a multiple of lane width %d", b, w)
	}

	if b > MaxBaseSize {
		return fmt.Errorf("lanes: base group of %d elements exceeds %d", b, MaxBaseSize)
	}

	return nil
}
