package config

import "sort"

// Presets are named wave scenarios. Each is applied over DefaultConfig, so
// only the wave section and the settings that differ are listed.
var Presets = map[string]WaveConfig{
	// Same as DefaultConfig.
	"default": {Amplitude: 1.0, Wavelength: 100.0, Depth: 1000.0},
	// Long wave on a shelf, k·h ≪ π/10.
	"shallow":      {Amplitude: 0.5, Wavelength: 1000.0, Depth: 10.0},
	"intermediate": {Amplitude: 1.0, Wavelength: 100.0, Depth: 10.0},
	"deep":         {Amplitude: 1.0, Wavelength: 50.0, Depth: 1000.0},
	// Open-ocean tsunami: tiny amplitude, very long wavelength, still shallow water.
	"tsunami": {Amplitude: 0.5, Wavelength: 200000.0, Depth: 4000.0},
	// Steep storm sea, triggers the steepness warning.
	"storm": {Amplitude: 8.0, Wavelength: 60.0, Depth: 200.0},
}

// presetDomains widens the sampling domain where one kilometre would show
// less than a wavelength.
var presetDomains = map[string]DomainConfig{
	"shallow": {Length: 5000, Points: 1000},
	"tsunami": {Length: 1000000, Points: 2000},
}

// GetPreset returns a full configuration for the named preset, or nil.
func GetPreset(name string) *Config {
	w, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Wave = w
	if d, ok := presetDomains[name]; ok {
		cfg.Domain = d
	}
	if name == "tsunami" {
		// Periods are tens of minutes; step in minutes and do not wrap.
		cfg.Dt = 30
		cfg.Duration = 3600
		cfg.Wrap = 0
	}
	return cfg
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
