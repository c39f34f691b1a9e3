package sim

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"github.com/san-kum/wavesim/internal/wave"
	"github.com/sirupsen/logrus"
)

// snapshot is published as a unit so readers never see a parameter set
// paired with another set's warnings.
type snapshot struct {
	params   wave.Parameters
	diag     wave.Diagnostics
	warnings []wave.Warning
}

// Loop owns the simulation clock and the active parameters and produces
// one wave.Sample per Tick. Renderers pull from it; it never calls out.
//
// Parameter updates are whole-value swaps, so Parameters may be read from
// any goroutine. The clock and run state are guarded by a mutex.
type Loop struct {
	active atomic.Pointer[snapshot]
	xs     []float64
	wrap   float64
	log    logrus.FieldLogger

	mu    sync.Mutex
	t     float64
	state RunState
	last  *wave.Sample
}

// New builds a loop over a fixed sampling domain with p as the initial
// parameter set. The loop starts Idle at t = 0.
func New(cfg Config, p wave.Parameters) (*Loop, error) {
	if cfg.WrapAfter < 0 || math.IsNaN(cfg.WrapAfter) {
		return nil, fmt.Errorf("%w: wrap period %g", ErrInvalidConfig, cfg.WrapAfter)
	}
	xs, err := wave.Domain(cfg.DomainLength, cfg.Points)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	l := &Loop{
		xs:   xs,
		wrap: cfg.WrapAfter,
		log:  log.WithField("component", "sim"),
	}
	if _, err := l.SetParameters(p); err != nil {
		return nil, err
	}
	return l, nil
}

// SetParameters validates p and, on success, replaces the active set and
// resets the clock to t = 0 so the new wave starts in phase. The run state
// is left untouched. On failure the previous parameters stay in effect.
func (l *Loop) SetParameters(p wave.Parameters) ([]wave.Warning, error) {
	warnings, err := p.Validate()
	if err != nil {
		l.log.WithError(err).Warn("rejected parameter update")
		return nil, fmt.Errorf("%w: %w", ErrRejected, err)
	}
	diag, err := wave.Diagnose(p)
	if err != nil {
		l.log.WithError(err).Warn("rejected parameter update")
		return nil, fmt.Errorf("%w: %w", ErrRejected, err)
	}

	l.mu.Lock()
	l.active.Store(&snapshot{params: p, diag: diag, warnings: warnings})
	l.t = 0
	l.last = nil
	l.mu.Unlock()

	fields := logrus.Fields{
		"amplitude":  p.Amplitude,
		"wavelength": p.Wavelength,
		"depth":      p.Depth,
		"regime":     diag.Regime,
	}
	l.log.WithFields(fields).Debug("parameters updated")
	for _, w := range warnings {
		l.log.WithFields(fields).WithField("kind", w.Kind).Warn(w.Message)
	}
	return warnings, nil
}

// Start begins or resumes advancing the clock.
func (l *Loop) Start() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state = Running
}

// Pause freezes the clock without discarding state. It has no effect
// unless the loop is running.
func (l *Loop) Pause() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state == Running {
		l.state = Paused
	}
}

// Reset returns the loop to Idle at t = 0. The clock stays stopped until
// the next Start; callers that want an uninterrupted animation call Start
// right after Reset.
func (l *Loop) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.t = 0
	l.state = Idle
	l.last = nil
}

// Tick advances the clock by dt while running and returns the profile at
// the new time. When not running it returns the last sample without
// advancing. Non-positive or non-finite dt leaves the clock where it is, as
// does a step that would carry it past MaxTime.
func (l *Loop) Tick(dt float64) wave.Sample {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state != Running {
		if l.last == nil {
			s := wave.Evaluate(l.active.Load().params, l.t, l.xs)
			l.last = &s
		}
		return l.last.Clone()
	}

	if next := l.t + dt; dt > 0 && next <= MaxTime {
		l.t = next
		if l.wrap > 0 && l.t >= l.wrap {
			l.t = math.Mod(l.t, l.wrap)
		}
	}

	s := wave.Evaluate(l.active.Load().params, l.t, l.xs)
	l.last = &s
	return s.Clone()
}

// Parameters returns the active parameter set.
func (l *Loop) Parameters() wave.Parameters {
	return l.active.Load().params
}

// Warnings returns the validity warnings of the active parameter set.
func (l *Loop) Warnings() []wave.Warning {
	ws := l.active.Load().warnings
	return append([]wave.Warning(nil), ws...)
}

func (l *Loop) Time() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.t
}

func (l *Loop) State() RunState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Domain returns a copy of the sampling positions.
func (l *Loop) Domain() []float64 {
	return append([]float64(nil), l.xs...)
}

func (l *Loop) Diagnostics() wave.Diagnostics { return l.active.Load().diag }

func (l *Loop) Wavenumber() float64 { return l.active.Load().diag.Wavenumber }

func (l *Loop) AngularFrequency() float64 { return l.active.Load().diag.AngularFrequency }

func (l *Loop) Regime() wave.Regime { return l.active.Load().diag.Regime }

// PhaseVelocity recomputes c = ω/k from the active set. Accepted parameters
// always have k > 0, so a division failure here is a programming error.
func (l *Loop) PhaseVelocity() float64 {
	d := l.active.Load().diag
	c, err := wave.PhaseVelocity(d.Wavenumber, d.AngularFrequency)
	if err != nil {
		panic(fmt.Sprintf("sim: accepted parameters produced %v", err))
	}
	return c
}

// Status returns time, state and parameters from a single instant.
func (l *Loop) Status() Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	snap := l.active.Load()
	return Status{
		Time:        l.t,
		State:       l.state,
		Parameters:  snap.params,
		Diagnostics: snap.diag,
		Warnings:    append([]wave.Warning(nil), snap.warnings...),
	}
}
