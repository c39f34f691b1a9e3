package sweep

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/wavesim/internal/wave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func depthSweep() *Sweep {
	return &Sweep{
		Param: "depth",
		Min:   0.1,
		Max:   1000,
		Steps: 5,
		Log:   true,
		Base:  Base{Amplitude: 0.01, Wavelength: 100},
	}
}

func TestRun_CrossesRegimes(t *testing.T) {
	results, err := Run(context.Background(), depthSweep())
	require.NoError(t, err)
	require.Len(t, results, 5)

	assert.InDelta(t, 0.1, results[0].Value, 1e-12)
	assert.InDelta(t, 1000, results[4].Value, 1e-9)

	assert.Equal(t, wave.Shallow, results[0].Diagnostics.Regime)
	assert.Equal(t, wave.Deep, results[4].Diagnostics.Regime)

	for i := 1; i < len(results); i++ {
		assert.Greater(t, results[i].Diagnostics.PhaseVelocity, results[i-1].Diagnostics.PhaseVelocity,
			"phase velocity should grow with depth")
	}
}

func TestRun_RecordsRejectedSteps(t *testing.T) {
	s := &Sweep{Param: "amplitude", Min: 0, Max: 2, Steps: 3, Base: Base{Wavelength: 100, Depth: 3}}
	results, err := Run(context.Background(), s)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.ErrorIs(t, results[0].Err, wave.ErrInvalidParameter)
	assert.NoError(t, results[1].Err)
	assert.Empty(t, results[1].Warnings)
	require.Len(t, results[2].Warnings, 1)
	assert.Equal(t, wave.WarnDepthRatio, results[2].Warnings[0].Kind)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := Run(ctx, depthSweep())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *Sweep)
	}{
		{"unknown param", func(s *Sweep) { s.Param = "period" }},
		{"one step", func(s *Sweep) { s.Steps = 1 }},
		{"reversed range", func(s *Sweep) { s.Min, s.Max = 10, 1 }},
		{"log from zero", func(s *Sweep) { s.Min = 0 }},
		{"infinite max", func(s *Sweep) { s.Max = math.Inf(1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := depthSweep()
			tt.mutate(s)
			assert.ErrorIs(t, s.Validate(), ErrInvalidSweep)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweep.yaml")
	data := "name: shoaling\nparam: depth\nmin: 1\nmax: 100\nsteps: 3\nlog: true\nbase:\n  amplitude: 0.5\n  wavelength: 50\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "shoaling", s.Name)
	assert.Equal(t, []float64{1, 10, 100}, roundAll(s.Values()))
	assert.Equal(t, 50.0, s.Base.Wavelength)
}

func roundAll(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = float64(int64(x*1e9+0.5)) / 1e9
	}
	return out
}

func TestLoad_DefaultsBase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweep.yaml")
	require.NoError(t, os.WriteFile(path, []byte("param: depth\nmin: 1\nmax: 100\nsteps: 3\n"), 0644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultBase(), s.Base)

	results, err := Run(context.Background(), s)
	require.NoError(t, err)
	require.Len(t, results, 3)
	for _, r := range results {
		assert.NoError(t, r.Err)
	}
}

func TestLoadOver_KeepsOmittedBaseFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweep.yaml")
	data := "param: amplitude\nmin: 0.1\nmax: 1\nsteps: 2\nbase:\n  depth: 20\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	s, err := LoadOver(path, Base{Amplitude: 1, Wavelength: 80, Depth: 5})
	require.NoError(t, err)
	assert.Equal(t, Base{Amplitude: 1, Wavelength: 80, Depth: 20}, s.Base)
}
