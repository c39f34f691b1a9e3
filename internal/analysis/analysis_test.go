package analysis

import (
	"math"
	"testing"

	"github.com/san-kum/wavesim/internal/wave"
)

func TestFFTFreq(t *testing.T) {
	tests := []struct {
		n    int
		d    float64
		want []float64
	}{
		{4, 1, []float64{0, 0.25, -0.5, -0.25}},
		{5, 0.5, []float64{0, 0.4, 0.8, -0.8, -0.4}},
	}

	for _, tt := range tests {
		got := FFTFreq(tt.n, tt.d)
		for i := range tt.want {
			if math.Abs(got[i]-tt.want[i]) > 1e-12 {
				t.Errorf("FFTFreq(%d, %g)[%d] = %g, want %g", tt.n, tt.d, i, got[i], tt.want[i])
			}
		}
	}
}

func TestPowerSpectrum_DominantWavelength(t *testing.T) {
	p, _ := wave.NewParameters(1, 64, 100)
	xs, _ := wave.Domain(1023, 1024) // spacing exactly 1 m
	s := wave.Evaluate(p, 0, xs)

	ps := PowerSpectrum(s)
	if len(ps.Freq) != 1024 || len(ps.Power) != 1024 {
		t.Fatalf("expected 1024 bins, got %d/%d", len(ps.Freq), len(ps.Power))
	}

	f, power := ps.Dominant()
	if math.Abs(f-1.0/64) > 1e-9 {
		t.Errorf("expected dominant frequency 1/64, got %g", f)
	}
	// A pure cosine of amplitude A puts (A·n/2)² into its bin.
	if want := 512.0 * 512.0; math.Abs(power-want)/want > 1e-6 {
		t.Errorf("expected peak power %g, got %g", want, power)
	}
}

func TestPowerSpectrum_Empty(t *testing.T) {
	ps := PowerSpectrum(wave.Sample{})
	if ps.Freq != nil || ps.Power != nil {
		t.Error("expected empty spectrum")
	}
}

func TestSpectrum_Positive(t *testing.T) {
	ps := Spectrum{
		Freq:  []float64{0, 0.25, -0.5, -0.25},
		Power: []float64{1, 2, 3, 4},
	}
	pos := ps.Positive()
	if len(pos.Freq) != 1 || pos.Freq[0] != 0.25 || pos.Power[0] != 2 {
		t.Errorf("unexpected positive half: %+v", pos)
	}
}

func TestSummarize(t *testing.T) {
	p, _ := wave.NewParameters(2, 100, 1000)
	xs, _ := wave.Domain(1000, 1001)
	s := wave.Evaluate(p, 0, xs)

	sum, err := Summarize(s, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Ten whole wavelengths: ⟨cos²⟩ ≈ 1/2, so ⟨η²⟩ ≈ A²/2.
	if math.Abs(sum.RMSAmplitude-2/math.Sqrt2) > 1e-2 {
		t.Errorf("expected rms ≈ %g, got %g", 2/math.Sqrt2, sum.RMSAmplitude)
	}
	if sum.MaxAmplitude != 2 {
		t.Errorf("expected max amplitude 2, got %g", sum.MaxAmplitude)
	}
	wantE := 0.5 * wave.SeawaterDensity * wave.Gravity * sum.RMSAmplitude * sum.RMSAmplitude
	if math.Abs(sum.Energy-wantE) > 1e-9 {
		t.Errorf("expected energy %g, got %g", wantE, sum.Energy)
	}
	if math.Abs(sum.Wavelength-100) > 1e-9 {
		t.Errorf("expected wavelength 100, got %g", sum.Wavelength)
	}
	if sum.Regime != wave.Deep {
		t.Errorf("expected deep regime, got %v", sum.Regime)
	}
	if len(sum.Metrics()) != 8 {
		t.Errorf("expected 8 metrics, got %d", len(sum.Metrics()))
	}
}

func TestSummarize_InvalidParameters(t *testing.T) {
	_, err := Summarize(wave.Sample{}, wave.Parameters{Amplitude: 1, Wavelength: -1, Depth: 1})
	if err == nil {
		t.Error("expected error, got nil")
	}
}

func TestAssessRisk(t *testing.T) {
	tests := []struct {
		height float64
		level  RiskLevel
	}{
		{0.1, RiskLow},
		{0.5, RiskModerate},
		{1.9, RiskModerate},
		{2.0, RiskHigh},
		{4.9, RiskHigh},
		{5.0, RiskExtreme},
		{30, RiskExtreme},
	}

	for _, tt := range tests {
		r := AssessRisk(tt.height, 0)
		if r.Level != tt.level {
			t.Errorf("height %g: expected %v, got %v", tt.height, tt.level, r.Level)
		}
		if r.Damage == "" {
			t.Errorf("height %g: empty damage estimate", tt.height)
		}
	}
}
