package algofwht

import (
	"context"

	"github.com/cwbudde/algo-fwht/internal/butterfly"
	m "github.com/cwbudde/algo-fwht/internal/math"
)

// PlanOptions configures NewPlan.
type PlanOptions struct {
	// Strategy overrides the package-level lane strategy. The zero value,
	// LaneAuto, defers to SetLaneStrategy.
	Strategy LaneStrategy

	// Logger receives plan creation events. Nil disables logging.
	Logger *Logger
}

// Plan is a transform of fixed length with its kernel resolved up front.
// Kernel selection and length validation happen once in NewPlan; each call
// only checks the buffer and step. A Plan holds no mutable state and may be
// shared between goroutines working on distinct buffers.
type Plan struct {
	n      int
	stages int
	kernel butterfly.Kernel
}

// NewPlan creates a plan for transforms of length n.
//
// Example:
//
//	plan, err := algofwht.NewPlan(1024)
//	if err != nil {
//	    return err
//	}
//	err = plan.Transform(samples)
func NewPlan(n int, opts ...PlanOptions) (*Plan, error) {
	var opt PlanOptions
	if len(opts) > 0 {
		opt = opts[0]
	}

	logger := opt.Logger
	if logger == nil {
		logger = NoopLogger()
	}

	strategy := opt.Strategy
	if strategy == LaneAuto {
		strategy = GetLaneStrategy()
	}

	p, err := newPlan(n, strategy)
	if err != nil {
		logger.LogPlan(context.Background(), n, strategy, "", err)
		return nil, err
	}

	logger.LogPlan(context.Background(), n, strategy, p.kernel.Name, nil)

	return p, nil
}

func newPlan(n int, strategy LaneStrategy) (*Plan, error) {
	if err := validateLength(n); err != nil {
		return nil, err
	}

	k, err := resolveKernel(strategy)
	if err != nil {
		return nil, err
	}

	return &Plan{n: n, stages: m.Log2(n), kernel: k}, nil
}

// Len returns the transform length.
func (p *Plan) Len() int {
	return p.n
}

// Stages returns log2(Len()), the number of butterfly stages.
func (p *Plan) Stages() int {
	return p.stages
}

// Kernel returns the name of the kernel the plan runs.
func (p *Plan) Kernel() string {
	return p.kernel.Name
}

// LaneWidth returns the number of doubles the plan's kernel handles at once.
func (p *Plan) LaneWidth() int {
	return p.kernel.Width
}

// Transform computes the transform of v[:Len()] in place.
func (p *Plan) Transform(v []float64) error {
	return p.TransformFrom(v, 0)
}

// TransformFrom completes the transform of v[:Len()] in place, given that
// the first step stages have already been applied.
func (p *Plan) TransformFrom(v []float64, step int) error {
	if err := validateStep(p.n, step); err != nil {
		return err
	}

	if err := validateBuffer(v, p.n); err != nil {
		return err
	}

	if p.n == 0 {
		return nil
	}

	p.kernel.Func(v[:p.n:p.n], step)

	return nil
}
