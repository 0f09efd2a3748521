package algofwht

import (
	"fmt"
	"sync/atomic"

	"github.com/cwbudde/algo-fwht/internal/butterfly"
	"github.com/cwbudde/algo-fwht/internal/cpu"
)

var laneStrategy atomic.Uint32

// SetLaneStrategy sets the strategy used by Transform, TransformFrom and
// plans created without an explicit strategy. Forcing a wide strategy is
// allowed on any CPU; the kernels are portable Go and only differ in speed.
func SetLaneStrategy(strategy LaneStrategy) error {
	if !strategy.Valid() {
		return fmt.Errorf("%w: %d", ErrUnsupportedStrategy, strategy)
	}

	laneStrategy.Store(uint32(strategy))

	return nil
}

// GetLaneStrategy returns the current package-level lane strategy.
func GetLaneStrategy() LaneStrategy {
	return LaneStrategy(laneStrategy.Load())
}

// ActiveKernel returns the name of the kernel Transform currently uses.
func ActiveKernel() string {
	k, err := resolveKernel(GetLaneStrategy())
	if err != nil {
		return ""
	}

	return k.Name
}

func resolveKernel(strategy LaneStrategy) (butterfly.Kernel, error) {
	k, ok := butterfly.Select(cpu.DetectFeatures(), strategy)
	if !ok {
		return butterfly.Kernel{}, fmt.Errorf("%w: %d", ErrUnsupportedStrategy, strategy)
	}

	if err := k.Validate(); err != nil {
		return butterfly.Kernel{}, fmt.Errorf("%w: kernel %s: %w", ErrLaneMisaligned, k.Name, err)
	}

	return k, nil
}
