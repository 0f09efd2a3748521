package butterfly

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-fwht/internal/lanes"
	m "github.com/cwbudde/algo-fwht/internal/math"
	"github.com/cwbudde/algo-fwht/internal/reference"
	"github.com/stretchr/testify/assert"
)

const testTol = 1e-9

func randomSlice(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))

	v := make([]float64, n)
	for i := range v {
		v[i] = rng.Float64()*2 - 1
	}

	return v
}

func allKernels() map[string]Func {
	return map[string]Func{
		"scalar": func(v []float64, step int) { TransformFrom[float64](lanes.Scalar{}, v, step) },
		"wide4":  func(v []float64, step int) { TransformFrom[lanes.Vec4](lanes.Wide4{}, v, step) },
		"wide8":  func(v []float64, step int) { TransformFrom[lanes.Vec8](lanes.Wide8{}, v, step) },
	}
}

func TestTransformMatchesReference(t *testing.T) {
	t.Parallel()

	for name, fn := range allKernels() {
		for _, n := range []int{1, 2, 4, 8, 16, 32, 64, 256} {
			t.Run(fmt.Sprintf("%s/n=%d", name, n), func(t *testing.T) {
				t.Parallel()

				input := randomSlice(n, int64(n))
				want := reference.NaiveHadamard(input)

				got := append([]float64(nil), input...)
				fn(got, 0)

				assert.InDeltaSlice(t, want, got, testTol*float64(n))
			})
		}
	}
}

func TestTransformFromEveryStep(t *testing.T) {
	t.Parallel()

	for name, fn := range allKernels() {
		for _, n := range []int{1, 2, 4, 8, 16, 32, 128} {
			for step := 0; step <= m.Log2(n); step++ {
				t.Run(fmt.Sprintf("%s/n=%d/step=%d", name, n, step), func(t *testing.T) {
					t.Parallel()

					input := randomSlice(n, int64(n+step))
					want := reference.PartialHadamard(input, m.Log2(n))

					got := reference.PartialHadamard(input, step)
					fn(got, step)

					// Every path performs the same additions in the same
					// order, so the result is bit-exact.
					assert.Equal(t, want, got)
				})
			}
		}
	}
}

func TestTransformEmpty(t *testing.T) {
	t.Parallel()

	for name, fn := range allKernels() {
		assert.NotPanics(t, func() { fn(nil, 0) }, name)
		assert.NotPanics(t, func() { fn([]float64{}, 0) }, name)
	}
}

func TestSmallInputLeavesTailAlone(t *testing.T) {
	t.Parallel()

	// Only v[:4] is transformed; the backing array beyond it belongs to the
	// caller and must not be touched by the padding path.
	backing := []float64{1, 0, 1, 0, 7, 7, 7, 7}
	TransformFrom[lanes.Vec4](lanes.Wide4{}, backing[:4], 0)

	assert.Equal(t, []float64{2, 2, 0, 0, 7, 7, 7, 7}, backing)
}

func TestWidthIndependence(t *testing.T) {
	t.Parallel()

	const n = 1024

	input := randomSlice(n, 99)
	kernels := allKernels()

	want := append([]float64(nil), input...)
	kernels["scalar"](want, 0)

	for name, fn := range kernels {
		got := append([]float64(nil), input...)
		fn(got, 0)
		assert.Equal(t, want, got, name)
	}
}

func BenchmarkTransform(b *testing.B) {
	for _, n := range []int{64, 1024, 65536} {
		for name, fn := range allKernels() {
			b.Run(fmt.Sprintf("%s/n=%d", name, n), func(b *testing.B) {
				v := randomSlice(n, 1)

				b.ReportAllocs()
				b.SetBytes(int64(n * 8))

				for b.Loop() {
					fn(v, 0)
				}
			})
		}
	}
}
