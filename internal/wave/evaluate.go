package wave

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Point is a single position/elevation pair.
type Point struct {
	X   float64
	Eta float64
}

// Sample is the surface profile at one instant. The slice is owned by
// whoever received the Sample; nothing in this module writes to it again.
type Sample struct {
	Time   float64
	Points []Point
}

func (s Sample) Len() int { return len(s.Points) }

// Positions returns a copy of the x coordinates.
func (s Sample) Positions() []float64 {
	xs := make([]float64, len(s.Points))
	for i, p := range s.Points {
		xs[i] = p.X
	}
	return xs
}

// Elevations returns a copy of the η values.
func (s Sample) Elevations() []float64 {
	etas := make([]float64, len(s.Points))
	for i, p := range s.Points {
		etas[i] = p.Eta
	}
	return etas
}

// Spacing returns the distance between the first two positions, or 0.
func (s Sample) Spacing() float64 {
	if len(s.Points) < 2 {
		return 0
	}
	return s.Points[1].X - s.Points[0].X
}

// Domain returns n evenly spaced positions over [0, length].
func Domain(length float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: domain needs at least 2 points, got %d", ErrInvalidParameter, n)
	}
	if !positive(length) {
		return nil, invalid("domain_length", length)
	}
	return floats.Span(make([]float64, n), 0, length), nil
}

// minParallelChunk keeps small domains on the calling goroutine.
const minParallelChunk = 4096

// Evaluate computes η(x, t) for every position in xs. p must already have
// passed Validate; Evaluate itself never fails.
func Evaluate(p Parameters, t float64, xs []float64) Sample {
	k := 2 * math.Pi / p.Wavelength
	w := omega(k, p.Depth)

	points := make([]Point, len(xs))
	fx := newEffectField(p, k, w, t, xs)

	parallelFor(len(xs), minParallelChunk, func(start, end int) {
		for i := start; i < end; i++ {
			x := xs[i]
			phase := k*x - w*t
			eta := p.Amplitude * math.Cos(phase)
			if fx != nil {
				eta = fx.apply(eta, x, phase)
			}
			points[i] = Point{X: x, Eta: eta}
		}
	})

	return Sample{Time: t, Points: points}
}

// Clone returns a deep copy of s.
func (s Sample) Clone() Sample {
	points := make([]Point, len(s.Points))
	copy(points, s.Points)
	return Sample{Time: s.Time, Points: points}
}
