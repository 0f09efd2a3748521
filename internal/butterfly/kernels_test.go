package butterfly

import (
	"testing"

	"github.com/cwbudde/algo-fwht/internal/cpu"
	"github.com/cwbudde/algo-fwht/internal/fwhtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectAuto(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		features cpu.Features
		want     string
	}{
		{"none", cpu.Features{}, "scalar"},
		{"avx", cpu.Features{HasAVX: true}, "wide4-avx"},
		{"avx512", cpu.Features{HasAVX: true, HasAVX2: true, HasAVX512: true}, "wide8-avx512"},
		{"neon", cpu.Features{HasNEON: true}, "wide4-neon"},
		{"forced generic", cpu.Features{HasAVX: true, HasAVX512: true, ForceGeneric: true}, "scalar"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			k, ok := Select(tc.features, fwhtypes.LaneAuto)
			require.True(t, ok)
			assert.Equal(t, tc.want, k.Name)
			require.NoError(t, k.Validate())
		})
	}
}

func TestSelectExplicit(t *testing.T) {
	t.Parallel()

	generic := cpu.Features{ForceGeneric: true}

	k, ok := Select(generic, fwhtypes.LaneWide8)
	require.True(t, ok)
	assert.Equal(t, 8, k.Width)
	assert.Equal(t, 16, k.BaseSize())

	k, ok = Select(generic, fwhtypes.LaneWide4)
	require.True(t, ok)
	assert.Equal(t, 4, k.Width)
	assert.Equal(t, 8, k.BaseSize())

	k, ok = Select(cpu.Features{HasAVX512: true}, fwhtypes.LaneScalar)
	require.True(t, ok)
	assert.Equal(t, "scalar", k.Name)
	assert.Equal(t, 1, k.BaseSize())

	_, ok = Select(generic, fwhtypes.LaneStrategy(77))
	assert.False(t, ok)
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	ks := Kernels()
	require.NotEmpty(t, ks)
	assert.Equal(t, "scalar", ks[len(ks)-1].Name)

	for _, k := range ks {
		require.NoError(t, k.Validate(), k.Name)
		assert.Zero(t, k.BaseSize()%k.Width, k.Name)

		v := []float64{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}
		k.Func(v, 0)
		assert.Equal(t, 16.0, v[0], k.Name)

		for i := 1; i < len(v); i++ {
			assert.Zero(t, v[i], "%s index %d", k.Name, i)
		}
	}

	// Mutating the returned copy must not affect selection.
	ks[0].Name = "changed"
	assert.NotEqual(t, "changed", Kernels()[0].Name)
}
