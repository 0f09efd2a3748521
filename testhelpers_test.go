package algofwht

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Shared test helper functions used across multiple test files

const testTol = 1e-9

func randomFloats(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))

	v := make([]float64, n)
	for i := range v {
		v[i] = rng.NormFloat64()
	}

	return v
}

func assertApproxSlice(t *testing.T, want, got []float64, tol float64, msgAndArgs ...any) {
	t.Helper()

	assert.InDeltaSlice(t, want, got, tol, msgAndArgs...)
}

var allStrategies = []LaneStrategy{LaneScalar, LaneWide4, LaneWide8}
