package analysis

import (
	"math"

	"github.com/san-kum/wavesim/internal/wave"
	"gonum.org/v1/gonum/floats"
)

type Summary struct {
	Energy        float64 // J/m², ½ρg⟨η²⟩
	MomentumFlux  float64
	MaxAmplitude  float64 // max |η|
	RMSAmplitude  float64
	PhaseVelocity float64
	GroupVelocity float64
	Wavelength    float64
	Period        float64
	Regime        wave.Regime
}

// Summarize computes energy, amplitude statistics and dispersion
// quantities for one sample.
func Summarize(s wave.Sample, p wave.Parameters) (Summary, error) {
	d, err := wave.Diagnose(p)
	if err != nil {
		return Summary{}, err
	}

	sum := Summary{
		PhaseVelocity: d.PhaseVelocity,
		GroupVelocity: d.GroupVelocity,
		Wavelength:    2 * math.Pi / d.Wavenumber,
		Period:        d.Period,
		Regime:        d.Regime,
	}

	n := s.Len()
	if n == 0 {
		return sum, nil
	}

	eta := s.Elevations()
	meanSq := floats.Dot(eta, eta) / float64(n)

	sum.Energy = 0.5 * wave.SeawaterDensity * wave.Gravity * meanSq
	sum.MomentumFlux = wave.SeawaterDensity * wave.Gravity * meanSq / 2
	sum.MaxAmplitude = math.Max(floats.Max(eta), -floats.Min(eta))
	sum.RMSAmplitude = math.Sqrt(meanSq)
	return sum, nil
}

// Metrics flattens the summary for run metadata.
func (s Summary) Metrics() map[string]float64 {
	return map[string]float64{
		"energy":         s.Energy,
		"momentum_flux":  s.MomentumFlux,
		"max_amplitude":  s.MaxAmplitude,
		"rms_amplitude":  s.RMSAmplitude,
		"phase_velocity": s.PhaseVelocity,
		"group_velocity": s.GroupVelocity,
		"wavelength":     s.Wavelength,
		"period":         s.Period,
	}
}
