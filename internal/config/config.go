package config

import (
	"fmt"
	"math"
	"os"

	"github.com/san-kum/wavesim/internal/sim"
	"github.com/san-kum/wavesim/internal/wave"
	"gopkg.in/yaml.v3"
)

// Defaults: a 1 m wave of 100 m length over 1000 m of water, sampled at
// 1000 points over 1 km, stepped by 0.1 s.
const (
	DefaultAmplitude  = 1.0
	DefaultWavelength = 100.0
	DefaultDepth      = 1000.0
	DefaultLength     = sim.DefaultDomainLength
	DefaultPoints     = sim.DefaultPoints
	DefaultDt         = 0.1
	DefaultDuration   = 10.0
	DefaultFPS        = 20
	DefaultWrap       = 10.0
	DefaultTheme      = "ocean"
	DefaultDataDir    = ".wavesim"

	// MaxFrames bounds duration/dt for a recorded run.
	MaxFrames = 100000
)

type Config struct {
	Wave     WaveConfig    `yaml:"wave"`
	Effects  EffectsConfig `yaml:"effects"`
	Domain   DomainConfig  `yaml:"domain"`
	Dt       float64       `yaml:"dt"`
	Duration float64       `yaml:"duration"`
	FPS      int           `yaml:"fps"`
	Wrap     float64       `yaml:"wrap"`
	Theme    string        `yaml:"theme"`
	DataDir  string        `yaml:"data_dir"`
	LogLevel string        `yaml:"log_level"`
}

type WaveConfig struct {
	Amplitude  float64 `yaml:"amplitude"`
	Wavelength float64 `yaml:"wavelength"`
	Depth      float64 `yaml:"depth"`
}

type EffectsConfig struct {
	Nonlinear      bool    `yaml:"nonlinear"`
	Dispersion     bool    `yaml:"dispersion"`
	BottomFriction bool    `yaml:"bottom_friction"`
	Coriolis       bool    `yaml:"coriolis"`
	Wind           bool    `yaml:"wind"`
	Friction       float64 `yaml:"friction"`
	CoriolisParam  float64 `yaml:"coriolis_param"`
	WindSpeed      float64 `yaml:"wind_speed"`
	WindDirection  float64 `yaml:"wind_direction"`
}

type DomainConfig struct {
	Length float64 `yaml:"length"`
	Points int     `yaml:"points"`
}

func DefaultConfig() *Config {
	return &Config{
		Wave: WaveConfig{
			Amplitude:  DefaultAmplitude,
			Wavelength: DefaultWavelength,
			Depth:      DefaultDepth,
		},
		Effects: EffectsConfig{
			Friction:      wave.DefaultFriction,
			CoriolisParam: wave.DefaultCoriolis,
		},
		Domain: DomainConfig{
			Length: DefaultLength,
			Points: DefaultPoints,
		},
		Dt:       DefaultDt,
		Duration: DefaultDuration,
		FPS:      DefaultFPS,
		Wrap:     DefaultWrap,
		Theme:    DefaultTheme,
		DataDir:  DefaultDataDir,
		LogLevel: "info",
	}
}

// Load reads a YAML file over the defaults, so omitted keys keep their
// default values.
func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads a YAML file over base, which is modified and returned.
// It lets a config file refine a preset.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, base); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return base, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Parameters converts the wave and effects sections into a validated
// parameter set.
func (c *Config) Parameters() (wave.Parameters, error) {
	p := wave.Parameters{
		Amplitude:  c.Wave.Amplitude,
		Wavelength: c.Wave.Wavelength,
		Depth:      c.Wave.Depth,
		Effects: wave.Effects{
			Nonlinear:      c.Effects.Nonlinear,
			Dispersion:     c.Effects.Dispersion,
			BottomFriction: c.Effects.BottomFriction,
			Coriolis:       c.Effects.Coriolis,
			Wind:           c.Effects.Wind,
			Friction:       c.Effects.Friction,
			CoriolisParam:  c.Effects.CoriolisParam,
			WindSpeed:      c.Effects.WindSpeed,
			WindDirection:  c.Effects.WindDirection,
		},
	}
	if _, err := p.Validate(); err != nil {
		return wave.Parameters{}, err
	}
	return p, nil
}

// LoopConfig returns the sim configuration for the domain and wrap settings.
func (c *Config) LoopConfig() sim.Config {
	return sim.Config{
		DomainLength: c.Domain.Length,
		Points:       c.Domain.Points,
		WrapAfter:    c.Wrap,
	}
}

// Validate checks everything a run needs before any loop is built.
func (c *Config) Validate() error {
	if _, err := c.Parameters(); err != nil {
		return err
	}
	if c.Domain.Points < 2 {
		return fmt.Errorf("domain.points must be at least 2, got %d", c.Domain.Points)
	}
	if !positive(c.Domain.Length) {
		return fmt.Errorf("domain.length must be positive, got %f", c.Domain.Length)
	}
	if !positive(c.Dt) {
		return fmt.Errorf("dt must be positive, got %f", c.Dt)
	}
	if !positive(c.Duration) {
		return fmt.Errorf("duration must be positive, got %f", c.Duration)
	}
	if frames := c.Duration / c.Dt; frames > MaxFrames {
		return fmt.Errorf("duration/dt gives %.0f frames, limit is %d", frames, MaxFrames)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	if c.Wrap < 0 || math.IsNaN(c.Wrap) || math.IsInf(c.Wrap, 0) {
		return fmt.Errorf("wrap must be finite and not negative, got %f", c.Wrap)
	}
	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
