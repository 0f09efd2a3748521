package algofwht

import "errors"

// Sentinel errors returned by transform operations. Returned errors wrap
// these with call details; match them with errors.Is.
var (
	// ErrInvalidLength is returned when the transform length is negative or
	// not a power of 2. A length of 0 is valid and makes the call a no-op.
	ErrInvalidLength = errors.New("algofwht: invalid transform length")

	// ErrInvalidStep is returned when the number of already applied stages
	// is negative or exceeds log2 of the length.
	ErrInvalidStep = errors.New("algofwht: invalid stage count")

	// ErrNilSlice is returned when a nil slice is passed for a non-empty
	// transform.
	ErrNilSlice = errors.New("algofwht: nil slice")

	// ErrShortBuffer is returned when the slice holds fewer elements than
	// the transform length.
	ErrShortBuffer = errors.New("algofwht: buffer shorter than transform length")

	// ErrLaneMisaligned is returned when a kernel's base group size is not
	// a whole number of lanes. It indicates a build defect, not bad input.
	ErrLaneMisaligned = errors.New("algofwht: base group not a multiple of lane width")

	// ErrUnsupportedStrategy is returned for an unknown LaneStrategy value.
	ErrUnsupportedStrategy = errors.New("algofwht: unsupported lane strategy")
)
