// Package wave evaluates linear (Airy) surface gravity waves.
//
// The package is a set of pure functions over an immutable [Parameters]
// value:
//
//   - [Wavenumber]: k = 2π/λ
//   - [AngularFrequency]: linear dispersion relation ω² = g·k·tanh(k·h)
//   - [Classify]: shallow / intermediate / deep water by k·h
//   - [PhaseVelocity]: c = ω/k
//   - [Evaluate]: surface elevation η(x, t) = A·cos(k·x − ω·t)
//
// Nothing here holds state, so every function is safe for concurrent use.
//
// # Example
//
//	p, _ := wave.NewParameters(1.0, 100.0, 1000.0)
//	xs, _ := wave.Domain(1000, 1000)
//	s := wave.Evaluate(p, 0.5, xs)
//
// # Validity
//
// Linear theory assumes amplitude ≪ depth and amplitude ≪ wavelength.
// [Parameters.Validate] rejects non-positive values and reports violations
// of the small-amplitude assumption as [Warning]s, which never block
// evaluation.
package wave
