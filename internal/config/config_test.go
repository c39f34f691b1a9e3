package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/wavesim/internal/wave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, WaveConfig{Amplitude: 1.0, Wavelength: 100.0, Depth: 1000.0}, cfg.Wave)
	assert.Equal(t, DomainConfig{Length: 1000, Points: 1000}, cfg.Domain)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wave.yaml")
	data := []byte("wave:\n  amplitude: 2.5\neffects:\n  wind: true\n  wind_speed: 12\ndt: 0.05\n")
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2.5, cfg.Wave.Amplitude)
	assert.Equal(t, DefaultWavelength, cfg.Wave.Wavelength)
	assert.Equal(t, DefaultDepth, cfg.Wave.Depth)
	assert.True(t, cfg.Effects.Wind)
	assert.Equal(t, 12.0, cfg.Effects.WindSpeed)
	assert.Equal(t, wave.DefaultFriction, cfg.Effects.Friction)
	assert.Equal(t, 0.05, cfg.Dt)
	assert.Equal(t, DefaultPoints, cfg.Domain.Points)
}

func TestLoadOver_RefinesPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wave.yaml")
	require.NoError(t, os.WriteFile(path, []byte("wave:\n  amplitude: 0.2\n"), 0644))

	cfg, err := LoadOver(path, GetPreset("tsunami"))
	require.NoError(t, err)

	assert.Equal(t, 0.2, cfg.Wave.Amplitude)
	assert.Equal(t, Presets["tsunami"].Wavelength, cfg.Wave.Wavelength)
	assert.Equal(t, 30.0, cfg.Dt)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("wave: [not, a, map"), 0644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestLoad_NaNTimestepFailsValidation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nan.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dt: .nan\nduration: .nan\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(cfg.Dt))
	assert.Error(t, cfg.Validate())
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.yaml")
	cfg := DefaultConfig()
	cfg.Wave.Depth = 42
	cfg.Effects.Nonlinear = true
	cfg.Theme = "storm"

	require.NoError(t, Save(path, cfg))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestParameters(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Effects.Dispersion = true

	p, err := cfg.Parameters()
	require.NoError(t, err)
	assert.Equal(t, 1000.0, p.Depth)
	assert.True(t, p.Effects.Dispersion)
	assert.Equal(t, wave.DefaultCoriolis, p.Effects.CoriolisParam)

	cfg.Wave.Wavelength = 0
	_, err = cfg.Parameters()
	assert.ErrorIs(t, err, wave.ErrInvalidParameter)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative depth", func(c *Config) { c.Wave.Depth = -1 }},
		{"one point", func(c *Config) { c.Domain.Points = 1 }},
		{"zero length", func(c *Config) { c.Domain.Length = 0 }},
		{"zero dt", func(c *Config) { c.Dt = 0 }},
		{"zero duration", func(c *Config) { c.Duration = 0 }},
		{"NaN dt", func(c *Config) { c.Dt = math.NaN() }},
		{"NaN duration", func(c *Config) { c.Duration = math.NaN() }},
		{"infinite duration", func(c *Config) { c.Duration = math.Inf(1) }},
		{"too many frames", func(c *Config) { c.Dt = 1e-13 }},
		{"NaN wrap", func(c *Config) { c.Wrap = math.NaN() }},
		{"zero fps", func(c *Config) { c.FPS = 0 }},
		{"negative wrap", func(c *Config) { c.Wrap = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoopConfig(t *testing.T) {
	cfg := DefaultConfig()
	lc := cfg.LoopConfig()
	assert.Equal(t, cfg.Domain.Length, lc.DomainLength)
	assert.Equal(t, cfg.Domain.Points, lc.Points)
	assert.Equal(t, cfg.Wrap, lc.WrapAfter)
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("tsunami")
	require.NotNil(t, cfg)
	assert.Equal(t, 200000.0, cfg.Wave.Wavelength)
	assert.Equal(t, 0.0, cfg.Wrap)
	require.NoError(t, cfg.Validate())

	p, _ := cfg.Parameters()
	d, err := wave.Diagnose(p)
	require.NoError(t, err)
	assert.Equal(t, wave.Shallow, d.Regime)
}

func TestGetPreset_Regimes(t *testing.T) {
	want := map[string]wave.Regime{
		"shallow":      wave.Shallow,
		"intermediate": wave.Intermediate,
		"deep":         wave.Deep,
	}
	for name, regime := range want {
		p, err := GetPreset(name).Parameters()
		require.NoError(t, err, name)
		d, _ := wave.Diagnose(p)
		assert.Equal(t, regime, d.Regime, name)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	assert.Nil(t, GetPreset("nonexistent"))
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	assert.Len(t, names, len(Presets))
	assert.IsIncreasing(t, names)
	for _, name := range names {
		assert.NoError(t, GetPreset(name).Validate(), name)
	}
}
