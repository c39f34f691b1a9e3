package metrics

import (
	"github.com/san-kum/wavesim/internal/wave"
	"gonum.org/v1/gonum/floats"
)

// EnergyDensity averages ½ρg⟨η²⟩ over the observed samples, in J/m².
type EnergyDensity struct {
	name    string
	rho     float64
	total   float64
	samples int
}

func NewEnergyDensity() *EnergyDensity {
	return &EnergyDensity{
		name: "energy_density",
		rho:  wave.SeawaterDensity,
	}
}

func (e *EnergyDensity) Name() string { return e.name }

func (e *EnergyDensity) Observe(s wave.Sample) {
	n := s.Len()
	if n == 0 {
		return
	}
	eta := s.Elevations()
	e.total += 0.5 * e.rho * wave.Gravity * floats.Dot(eta, eta) / float64(n)
	e.samples++
}

func (e *EnergyDensity) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.total / float64(e.samples)
}

func (e *EnergyDensity) Reset() {
	e.total = 0
	e.samples = 0
}
