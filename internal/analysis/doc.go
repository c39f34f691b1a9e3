// Package analysis characterizes a sampled wave profile.
//
//   - [Summarize]: energy density, momentum flux, amplitude statistics and
//     dispersion quantities for one sample
//   - [Spectrum]: spatial power spectrum |FFT(η)|² with fftfreq bins
//   - [AssessRisk]: coarse hazard level from crest height and energy
//
// # Example
//
//	s := loop.Tick(dt)
//	sum, _ := analysis.Summarize(s, loop.Parameters())
//	risk := analysis.AssessRisk(sum.MaxAmplitude, sum.Energy)
package analysis
