// Package sweep steps one wave parameter across a range and reports the
// dispersion diagnostics at each value.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/san-kum/wavesim/internal/config"
	"github.com/san-kum/wavesim/internal/wave"
	"gonum.org/v1/gonum/floats"
	"gopkg.in/yaml.v3"
)

var ErrInvalidSweep = errors.New("sweep: invalid sweep")

// Sweep varies Param from Min to Max in Steps values, holding the other
// parameters at Base.
type Sweep struct {
	Name  string  `yaml:"name"`
	Param string  `yaml:"param"` // amplitude, wavelength or depth
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max"`
	Steps int     `yaml:"steps"`
	Log   bool    `yaml:"log"` // geometric spacing
	Base  Base    `yaml:"base"`
}

type Base struct {
	Amplitude  float64 `yaml:"amplitude"`
	Wavelength float64 `yaml:"wavelength"`
	Depth      float64 `yaml:"depth"`
}

// Result holds one step. Err is set when the value was rejected; the
// sweep carries on past it.
type Result struct {
	Value       float64
	Diagnostics wave.Diagnostics
	Warnings    []wave.Warning
	Err         error
}

// DefaultBase holds the parameters of config.DefaultConfig.
func DefaultBase() Base {
	return Base{
		Amplitude:  config.DefaultAmplitude,
		Wavelength: config.DefaultWavelength,
		Depth:      config.DefaultDepth,
	}
}

// Load reads a sweep from a YAML file. Base values the file omits keep
// their defaults.
func Load(path string) (*Sweep, error) {
	return LoadOver(path, DefaultBase())
}

// LoadOver reads a sweep from a YAML file over base.
func LoadOver(path string, base Base) (*Sweep, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	s := Sweep{Base: base}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Sweep) Validate() error {
	switch s.Param {
	case "amplitude", "wavelength", "depth":
	default:
		return fmt.Errorf("%w: unknown parameter %q", ErrInvalidSweep, s.Param)
	}
	if s.Steps < 2 {
		return fmt.Errorf("%w: need at least 2 steps, got %d", ErrInvalidSweep, s.Steps)
	}
	if math.IsNaN(s.Min) || math.IsNaN(s.Max) || math.IsInf(s.Min, 0) || math.IsInf(s.Max, 0) {
		return fmt.Errorf("%w: bounds must be finite", ErrInvalidSweep)
	}
	if s.Max < s.Min {
		return fmt.Errorf("%w: max %g below min %g", ErrInvalidSweep, s.Max, s.Min)
	}
	if s.Log && s.Min <= 0 {
		return fmt.Errorf("%w: log spacing needs min > 0, got %g", ErrInvalidSweep, s.Min)
	}
	return nil
}

// Values returns the parameter values the sweep visits.
func (s *Sweep) Values() []float64 {
	dst := make([]float64, s.Steps)
	if s.Log {
		return floats.LogSpan(dst, s.Min, s.Max)
	}
	return floats.Span(dst, s.Min, s.Max)
}

// Run evaluates every step, stopping early if ctx is cancelled.
func Run(ctx context.Context, s *Sweep) ([]Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	values := s.Values()
	results := make([]Result, 0, len(values))
	for _, v := range values {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		p := wave.Parameters{
			Amplitude:  s.Base.Amplitude,
			Wavelength: s.Base.Wavelength,
			Depth:      s.Base.Depth,
			Effects:    wave.DefaultEffects(),
		}
		switch s.Param {
		case "amplitude":
			p.Amplitude = v
		case "wavelength":
			p.Wavelength = v
		case "depth":
			p.Depth = v
		}

		r := Result{Value: v}
		r.Warnings, r.Err = p.Validate()
		if r.Err == nil {
			r.Diagnostics, r.Err = wave.Diagnose(p)
		}
		results = append(results, r)
	}
	return results, nil
}
