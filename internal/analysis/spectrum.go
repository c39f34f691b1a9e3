package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"github.com/san-kum/wavesim/internal/wave"
)

// Spectrum holds power per frequency bin. Frequencies follow the fftfreq
// layout: non-negative bins first, then negative bins.
type Spectrum struct {
	Freq  []float64 // cycles per metre
	Power []float64 // |FFT(η)|²
}

// PowerSpectrum transforms the sample elevations. The sample spacing is
// taken from the first two positions.
func PowerSpectrum(s wave.Sample) Spectrum {
	n := s.Len()
	if n == 0 {
		return Spectrum{}
	}

	coeffs := fft.FFTReal(s.Elevations())
	power := make([]float64, n)
	for i, c := range coeffs {
		a := cmplx.Abs(c)
		power[i] = a * a
	}

	return Spectrum{Freq: FFTFreq(n, s.Spacing()), Power: power}
}

// FFTFreq returns the sample frequencies for an n-point transform with
// spacing d.
func FFTFreq(n int, d float64) []float64 {
	freq := make([]float64, n)
	if n == 0 || d == 0 {
		return freq
	}
	scale := 1 / (float64(n) * d)
	half := (n-1)/2 + 1
	for i := 0; i < half; i++ {
		freq[i] = float64(i) * scale
	}
	for i := half; i < n; i++ {
		freq[i] = float64(i-n) * scale
	}
	return freq
}

// Positive returns the bins with 0 < f.
func (s Spectrum) Positive() Spectrum {
	var out Spectrum
	for i, f := range s.Freq {
		if f > 0 {
			out.Freq = append(out.Freq, f)
			out.Power = append(out.Power, s.Power[i])
		}
	}
	return out
}

// Dominant returns the positive frequency carrying the most power.
func (s Spectrum) Dominant() (freq, power float64) {
	for i, f := range s.Freq {
		if f > 0 && s.Power[i] > power {
			freq, power = f, s.Power[i]
		}
	}
	return freq, power
}
