package wave

import "math"

// windFactor is the empirical surface stress coefficient.
const windFactor = 0.0015

// effectField holds the per-instant constants of the enabled effects so the
// per-point work stays a few multiplications.
type effectField struct {
	p Parameters
	k float64

	scale  float64 // dispersion × friction × coriolis
	windA  float64 // amplitude of the wind term
	extent float64 // x span used by the wind term
	origin float64
}

func newEffectField(p Parameters, k, w, t float64, xs []float64) *effectField {
	e := p.Effects
	if !e.Any() {
		return nil
	}

	f := &effectField{p: p, k: k, scale: 1}
	if e.Dispersion {
		kh := k * p.Depth
		f.scale *= math.Sqrt(math.Tanh(kh) / kh)
	}
	if e.BottomFriction {
		f.scale *= math.Exp(-e.Friction * t)
	}
	if e.Coriolis {
		f.scale *= math.Cos(e.CoriolisParam * t)
	}
	if e.Wind && len(xs) > 1 {
		f.origin = xs[0]
		f.extent = xs[len(xs)-1] - xs[0]
		f.windA = windFactor * e.WindSpeed * math.Cos(e.WindDirection)
	}
	return f
}

func (f *effectField) apply(eta, x, phase float64) float64 {
	if f.p.Effects.Nonlinear {
		a, k := f.p.Amplitude, f.k
		eta += 0.5*k*a*a*math.Cos(2*phase) + 0.375*k*k*a*a*a*math.Cos(3*phase)
	}
	eta *= f.scale
	if f.extent > 0 {
		eta += f.windA * math.Sin(2*math.Pi*(x-f.origin)/f.extent)
	}
	return eta
}
