package fwhtypes

// LaneStrategy controls which lane-width instantiation a transform runs on.
type LaneStrategy uint32

const (
	LaneAuto   LaneStrategy = iota // Widest kernel the CPU supports
	LaneScalar                     // One element per lane, no fused base stages
	LaneWide4                      // Four doubles per lane, 3 fused base stages
	LaneWide8                      // Eight doubles per lane, 4 fused base stages
)

// String returns a human-readable name for the strategy.
func (s LaneStrategy) String() string {
	switch s {
	case LaneAuto:
		return "auto"
	case LaneScalar:
		return "scalar"
	case LaneWide4:
		return "wide4"
	case LaneWide8:
		return "wide8"
	default:
		return "unknown"
	}
}

// Valid reports whether s is one of the defined strategies.
func (s LaneStrategy) Valid() bool {
	return s <= LaneWide8
}

// SIMDLevel describes the minimum required CPU features for a kernel.
type SIMDLevel uint8

const (
	SIMDNone   SIMDLevel = iota // Pure Go implementation
	SIMDAVX                     // Requires AVX (256-bit double lanes)
	SIMDAVX512                  // Requires AVX-512F
	SIMDNEON                    // Requires ARM NEON
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "generic"
	case SIMDAVX:
		return "avx"
	case SIMDAVX512:
		return "avx512"
	case SIMDNEON:
		return "neon"
	default:
		return "unknown"
	}
}
