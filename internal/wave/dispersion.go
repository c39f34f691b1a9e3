package wave

import "math"

// Regime classifies water depth relative to wavelength.
type Regime int

const (
	Intermediate Regime = iota
	Shallow
	Deep
)

// Thresholds on k·h.
const (
	ShallowLimit = math.Pi / 10
	DeepLimit    = math.Pi
)

func (r Regime) String() string {
	switch r {
	case Shallow:
		return "shallow"
	case Deep:
		return "deep"
	default:
		return "intermediate"
	}
}

// Wavenumber returns k = 2π/λ.
func Wavenumber(wavelength float64) (float64, error) {
	if !positive(wavelength) {
		return 0, invalid("wavelength", wavelength)
	}
	return 2 * math.Pi / wavelength, nil
}

// AngularFrequency solves ω² = g·k·tanh(k·h) for ω. A zero wavenumber is
// the degenerate still-water state and is rejected along with h ≤ 0.
func AngularFrequency(k, depth float64) (float64, error) {
	if !positive(depth) {
		return 0, invalid("depth", depth)
	}
	if !positive(k) {
		return 0, invalid("wavenumber", k)
	}
	return omega(k, depth), nil
}

// Classify reports the water regime. It never changes the dispersion
// formula, which is valid across all regimes.
func Classify(k, depth float64) Regime {
	kh := k * depth
	switch {
	case kh < ShallowLimit:
		return Shallow
	case kh > DeepLimit:
		return Deep
	default:
		return Intermediate
	}
}

// PhaseVelocity returns the crest speed c = ω/k.
func PhaseVelocity(k, w float64) (float64, error) {
	if k == 0 {
		return 0, ErrDivisionUndefined
	}
	return w / k, nil
}

// GroupVelocity returns c_g = ½·c·(1 + 2kh/sinh(2kh)).
func GroupVelocity(k, depth float64) (float64, error) {
	w, err := AngularFrequency(k, depth)
	if err != nil {
		return 0, err
	}
	c, err := PhaseVelocity(k, w)
	if err != nil {
		return 0, err
	}
	x := 2 * k * depth
	// sinh overflows for deep water; the correction term is zero there anyway.
	if x > 700 {
		return 0.5 * c, nil
	}
	return 0.5 * c * (1 + x/math.Sinh(x)), nil
}

func omega(k, depth float64) float64 {
	return math.Sqrt(Gravity * k * math.Tanh(k*depth))
}

// Diagnostics are the derived quantities of a parameter set.
type Diagnostics struct {
	Wavenumber       float64
	AngularFrequency float64
	PhaseVelocity    float64
	GroupVelocity    float64
	Period           float64
	Regime           Regime
}

// Diagnose derives the dispersion quantities for p.
func Diagnose(p Parameters) (Diagnostics, error) {
	k, err := Wavenumber(p.Wavelength)
	if err != nil {
		return Diagnostics{}, err
	}
	w, err := AngularFrequency(k, p.Depth)
	if err != nil {
		return Diagnostics{}, err
	}
	c, err := PhaseVelocity(k, w)
	if err != nil {
		return Diagnostics{}, err
	}
	cg, err := GroupVelocity(k, p.Depth)
	if err != nil {
		return Diagnostics{}, err
	}
	return Diagnostics{
		Wavenumber:       k,
		AngularFrequency: w,
		PhaseVelocity:    c,
		GroupVelocity:    cg,
		Period:           2 * math.Pi / w,
		Regime:           Classify(k, p.Depth),
	}, nil
}
