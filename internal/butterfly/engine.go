// Package butterfly implements the in-place fast Walsh–Hadamard transform on
// top of the lane primitives in internal/lanes.
//
// Stage k combines elements at distance 2^k. The first stages run fused
// inside base groups (lanes.Ops.ComputeBase); the remaining ones run through
// a width-agnostic loop that doubles the span until it covers the sequence.
// Outputs are in natural order and unnormalized.
package butterfly

import (
	"github.com/cwbudde/algo-fwht/internal/lanes"
	m "github.com/cwbudde/algo-fwht/internal/math"
)

// TransformFrom completes the transform of v, given that the first step
// stages have already been applied. len(v) must be zero or a power of two
// and 0 <= step <= log2(len(v)); callers validate both.
func TransformFrom[A any, O lanes.Ops[A]](ops O, v []float64, step int) {
	n := len(v)
	if n == 0 {
		return
	}

	base := 1 << ops.BaseLog2()
	if n < base {
		transformSmall[A](ops, v, step, base)
		return
	}

	ops.ComputeBase(v, n, step)

	width := ops.Width()
	for span := m.MaxInt(1<<step, base); span < n; span <<= 1 {
		for i := 0; i < n; i += span << 1 {
			for j := i; j < i+span; j += width {
				x := ops.Load(v[j:])
				y := ops.Load(v[j+span:])
				ops.StoreAdd(v[j:], x, y)
				ops.StoreSub(v[j+span:], x, y)
			}
		}
	}
}

// transformSmall zero-pads v to one base group, runs the fused network on
// the padded copy and copies back the first len(v) elements. Padding only
// ever pairs real elements with zeros in the extra stages, so the prefix
// holds the transform of v.
func transformSmall[A any, O lanes.Ops[A]](ops O, v []float64, step, base int) {
	var scratch [lanes.MaxBaseSize]float64

	aux := scratch[:base]
	copy(aux, v)
	ops.ComputeBase(aux, base, step)
	copy(v, aux)
}
