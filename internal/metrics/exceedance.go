package metrics

import (
	"math"

	"github.com/san-kum/wavesim/internal/wave"
)

// Exceedance is the fraction of samples whose crest exceeds threshold
// metres anywhere in the domain.
type Exceedance struct {
	name       string
	threshold  float64
	violations int
	samples    int
}

func NewExceedance(threshold float64) *Exceedance {
	return &Exceedance{
		name:      "exceedance",
		threshold: threshold,
	}
}

func (e *Exceedance) Name() string {
	return e.name
}

func (e *Exceedance) Observe(s wave.Sample) {
	e.samples++
	for _, p := range s.Points {
		if math.Abs(p.Eta) > e.threshold {
			e.violations++
			break
		}
	}
}

func (e *Exceedance) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return float64(e.violations) / float64(e.samples)
}

func (e *Exceedance) Reset() {
	e.violations = 0
	e.samples = 0
}
