package metrics

import (
	"math"

	"github.com/san-kum/wavesim/internal/wave"
)

// MaxElevation tracks the largest |η| seen across all samples.
type MaxElevation struct {
	name string
	max  float64
}

func NewMaxElevation() *MaxElevation {
	return &MaxElevation{name: "max_elevation"}
}

func (m *MaxElevation) Name() string { return m.name }

func (m *MaxElevation) Observe(s wave.Sample) {
	for _, p := range s.Points {
		m.max = math.Max(m.max, math.Abs(p.Eta))
	}
}

func (m *MaxElevation) Value() float64 { return m.max }

func (m *MaxElevation) Reset() { m.max = 0 }

// RMSElevation is the root mean square of η over every observed point.
type RMSElevation struct {
	name  string
	sumSq float64
	count int
}

func NewRMSElevation() *RMSElevation {
	return &RMSElevation{name: "rms_elevation"}
}

func (r *RMSElevation) Name() string { return r.name }

func (r *RMSElevation) Observe(s wave.Sample) {
	for _, p := range s.Points {
		r.sumSq += p.Eta * p.Eta
	}
	r.count += s.Len()
}

func (r *RMSElevation) Value() float64 {
	if r.count == 0 {
		return 0
	}
	return math.Sqrt(r.sumSq / float64(r.count))
}

func (r *RMSElevation) Reset() {
	r.sumSq = 0
	r.count = 0
}
