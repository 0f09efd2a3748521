package butterfly

import (
	"github.com/cwbudde/algo-fwht/internal/cpu"
	"github.com/cwbudde/algo-fwht/internal/fwhtypes"
	"github.com/cwbudde/algo-fwht/internal/lanes"
)

// Func completes the transform of v given that step stages are applied.
// It performs no validation.
type Func func(v []float64, step int)

// Kernel is a transform bound to one lane-width instantiation.
type Kernel struct {
	Name     string
	Strategy fwhtypes.LaneStrategy
	Level    fwhtypes.SIMDLevel
	Width    int
	BaseLog2 int
	Func     Func

	supported func(cpu.Features) bool
	err       error
}

// BaseSize returns the number of elements the kernel's fused network covers.
func (k Kernel) BaseSize() int {
	return 1 << k.BaseLog2
}

// Validate reports a lane/group misalignment in the kernel's instantiation.
func (k Kernel) Validate() error {
	return k.err
}

// Supports reports whether features allow k to be picked automatically.
func (k Kernel) Supports(features cpu.Features) bool {
	if k.Level != fwhtypes.SIMDNone && features.ForceGeneric {
		return false
	}

	return k.supported(features)
}

func newKernel[A any, O lanes.Ops[A]](
	name string,
	strategy fwhtypes.LaneStrategy,
	level fwhtypes.SIMDLevel,
	ops O,
	supported func(cpu.Features) bool,
) Kernel {
	return Kernel{
		Name:     name,
		Strategy: strategy,
		Level:    level,
		Width:    ops.Width(),
		BaseLog2: ops.BaseLog2(),
		Func: func(v []float64, step int) {
			TransformFrom[A](ops, v, step)
		},
		supported: supported,
		err:       lanes.Validate[A](ops),
	}
}

// registry lists kernels from most to least preferred. The scalar kernel is
// last and always supported.
var registry = []Kernel{
	newKernel[lanes.Vec8]("wide8-avx512", fwhtypes.LaneWide8, fwhtypes.SIMDAVX512, lanes.Wide8{},
		func(f cpu.Features) bool { return f.HasAVX512 }),
	newKernel[lanes.Vec4]("wide4-avx", fwhtypes.LaneWide4, fwhtypes.SIMDAVX, lanes.Wide4{},
		func(f cpu.Features) bool { return f.HasAVX }),
	newKernel[lanes.Vec4]("wide4-neon", fwhtypes.LaneWide4, fwhtypes.SIMDNEON, lanes.Wide4{},
		func(f cpu.Features) bool { return f.HasNEON }),
	newKernel[float64]("scalar", fwhtypes.LaneScalar, fwhtypes.SIMDNone, lanes.Scalar{},
		func(cpu.Features) bool { return true }),
}

// Kernels returns a copy of the registered kernels in preference order.
func Kernels() []Kernel {
	return append([]Kernel(nil), registry...)
}

// Select returns the kernel for strategy. LaneAuto picks the most preferred
// kernel the features support. An explicit strategy returns its kernel
// regardless of features: every instantiation is portable Go. ok is false
// for an unknown strategy.
func Select(features cpu.Features, strategy fwhtypes.LaneStrategy) (k Kernel, ok bool) {
	if strategy == fwhtypes.LaneAuto {
		for _, kernel := range registry {
			if kernel.Supports(features) {
				return kernel, true
			}
		}

		return scalarKernel(), true
	}

	for _, kernel := range registry {
		if kernel.Strategy == strategy {
			return kernel, true
		}
	}

	return Kernel{}, false
}

func scalarKernel() Kernel {
	return registry[len(registry)-1]
}
