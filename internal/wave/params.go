package wave

import (
	"fmt"
	"math"
)

const (
	// Gravity is the gravitational acceleration in m/s².
	Gravity = 9.81

	// SeawaterDensity in kg/m³.
	SeawaterDensity = 1025.0

	DefaultFriction = 0.001
	DefaultCoriolis = 0.0001

	// Ratios above which the small-amplitude assumption is considered broken.
	MaxDepthRatio     = 0.5
	MaxSteepnessRatio = 0.1
)

// Effects toggles the optional corrections layered over the linear profile.
// The zero value disables all of them.
type Effects struct {
	Nonlinear      bool
	Dispersion     bool
	BottomFriction bool
	Coriolis       bool
	Wind           bool

	Friction      float64 // bottom friction decay rate, 1/s
	CoriolisParam float64 // Coriolis parameter f, rad/s
	WindSpeed     float64 // m/s
	WindDirection float64 // radians
}

// DefaultEffects returns all effects disabled with the standard coefficients.
func DefaultEffects() Effects {
	return Effects{
		Friction:      DefaultFriction,
		CoriolisParam: DefaultCoriolis,
	}
}

// Any reports whether at least one effect is enabled.
func (e Effects) Any() bool {
	return e.Nonlinear || e.Dispersion || e.BottomFriction || e.Coriolis || e.Wind
}

// Parameters is an immutable wave description. Update it by building a new
// value, never by mutating one that has been handed to a Loop.
type Parameters struct {
	Amplitude  float64 // m
	Wavelength float64 // m
	Depth      float64 // m
	Effects    Effects
}

// NewParameters builds and validates a parameter set with default effects.
func NewParameters(amplitude, wavelength, depth float64) (Parameters, error) {
	p := Parameters{
		Amplitude:  amplitude,
		Wavelength: wavelength,
		Depth:      depth,
		Effects:    DefaultEffects(),
	}
	if _, err := p.Validate(); err != nil {
		return Parameters{}, err
	}
	return p, nil
}

// WithEffects returns a copy of p with e installed.
func (p Parameters) WithEffects(e Effects) Parameters {
	p.Effects = e
	return p
}

// Validate checks the hard constraints and collects advisory warnings.
func (p Parameters) Validate() ([]Warning, error) {
	checks := []struct {
		name  string
		value float64
	}{
		{"amplitude", p.Amplitude},
		{"wavelength", p.Wavelength},
		{"depth", p.Depth},
	}
	for _, c := range checks {
		if !positive(c.value) {
			return nil, invalid(c.name, c.value)
		}
	}

	if k := 2 * math.Pi / p.Wavelength; k == 0 || math.IsInf(k, 0) {
		return nil, invalid("wavenumber", k)
	}

	e := p.Effects
	if e.Friction < 0 || !finite(e.Friction) {
		return nil, invalid("friction", e.Friction)
	}
	if !finite(e.CoriolisParam) {
		return nil, invalid("coriolis", e.CoriolisParam)
	}
	if e.WindSpeed < 0 || !finite(e.WindSpeed) {
		return nil, invalid("wind_speed", e.WindSpeed)
	}
	if !finite(e.WindDirection) {
		return nil, invalid("wind_direction", e.WindDirection)
	}

	return p.warnings(), nil
}

func (p Parameters) warnings() []Warning {
	var ws []Warning
	if p.Amplitude >= p.Depth {
		ws = append(ws, Warning{
			Kind:    WarnExceedsDepth,
			Message: fmt.Sprintf("amplitude %.2f m exceeds depth %.2f m", p.Amplitude, p.Depth),
		})
	} else if r := p.Amplitude / p.Depth; r >= MaxDepthRatio {
		ws = append(ws, Warning{
			Kind:    WarnDepthRatio,
			Message: fmt.Sprintf("amplitude/depth = %.2f, linear theory needs A ≪ h", r),
		})
	}
	if r := p.Amplitude / p.Wavelength; r >= MaxSteepnessRatio {
		ws = append(ws, Warning{
			Kind:    WarnSteepness,
			Message: fmt.Sprintf("amplitude/wavelength = %.3f, linear theory needs A ≪ λ", r),
		})
	}
	return ws
}

// WarningKind classifies a physical validity warning.
type WarningKind int

const (
	WarnDepthRatio WarningKind = iota
	WarnExceedsDepth
	WarnSteepness
)

func (k WarningKind) String() string {
	switch k {
	case WarnDepthRatio:
		return "depth_ratio"
	case WarnExceedsDepth:
		return "exceeds_depth"
	case WarnSteepness:
		return "steepness"
	}
	return "unknown"
}

// Warning is advisory: the parameters are accepted but outside the regime
// where linear theory is physically meaningful.
type Warning struct {
	Kind    WarningKind
	Message string
}

func (w Warning) String() string { return w.Message }

func positive(v float64) bool { return v > 0 && finite(v) }

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
