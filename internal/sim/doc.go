// Package sim drives a wave field through time.
//
// A [Loop] is the single owner of the simulation clock and the active
// [wave.Parameters]. Renderers call [Loop.Tick] at their own cadence and
// receive a freshly allocated [wave.Sample]; the loop performs no I/O.
//
// # State Machine
//
//	Idle    --Start--> Running
//	Running --Pause--> Paused
//	Paused  --Start--> Running
//	any     --Reset--> Idle (t = 0)
//
// Accepted parameter updates reset t to 0 without changing the run state.
package sim
