// Package viz renders a running wave loop in the terminal.
//
// The [Model] is a Bubble Tea program that advances a [sim.Loop] on every
// frame and draws the surface on a Braille [Canvas]:
//
//   - the profile η(x) across the sampled domain with a dotted mean line
//   - a side panel with time, state, regime, k, ω, c, period and warnings
//   - an energy history plot
//
// # Key Bindings
//
//	Space - Start/Pause
//	R     - Reset to t = 0
//	Tab   - Select amplitude, wavelength or depth
//	Up/K  - Scale selected parameter by +5%
//	Down/J- Scale selected parameter by -5%
//	E     - Cycle physical effects
//	T     - Cycle color themes
//	?     - Show help overlay
//	Q     - Quit
package viz
