// Package metrics accumulates statistics over a run of wave samples.
package metrics

import "github.com/san-kum/wavesim/internal/wave"

type Metric interface {
	Name() string
	Observe(s wave.Sample)
	Value() float64
	Reset()
}

// Standard returns the metrics recorded with every stored run.
func Standard() []Metric {
	return []Metric{
		NewMaxElevation(),
		NewRMSElevation(),
		NewEnergyDensity(),
		NewExceedance(0.5),
	}
}

// Collect observes each sample with every metric and returns the values
// keyed by name.
func Collect(ms []Metric, samples []wave.Sample) map[string]float64 {
	for _, s := range samples {
		for _, m := range ms {
			m.Observe(s)
		}
	}
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}
