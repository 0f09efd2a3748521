package algofwht

import "github.com/cwbudde/algo-fwht/internal/fwhtypes"

// LaneStrategy selects the lane-width instantiation transforms run on.
// The canonical definition is in internal/fwhtypes.
type LaneStrategy = fwhtypes.LaneStrategy

const (
	// LaneAuto picks the widest kernel the CPU supports. This is the default.
	LaneAuto = fwhtypes.LaneAuto

	// LaneScalar processes one element at a time with no fused base stages.
	LaneScalar = fwhtypes.LaneScalar

	// LaneWide4 processes four doubles per lane and fuses three base stages.
	LaneWide4 = fwhtypes.LaneWide4

	// LaneWide8 processes eight doubles per lane and fuses four base stages.
	LaneWide8 = fwhtypes.LaneWide8
)
