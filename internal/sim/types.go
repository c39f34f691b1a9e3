package sim

import (
	"errors"

	"github.com/san-kum/wavesim/internal/wave"
	"github.com/sirupsen/logrus"
)

var (
	// ErrInvalidConfig indicates a loop configuration that cannot produce a domain.
	ErrInvalidConfig = errors.New("sim: invalid loop configuration")

	// ErrRejected wraps every parameter update that failed validation.
	ErrRejected = errors.New("sim: parameters rejected")
)

// RunState is the clock state of a Loop.
type RunState int

const (
	Idle RunState = iota
	Running
	Paused
)

func (s RunState) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return "idle"
	}
}

const (
	DefaultDomainLength = 1000.0
	DefaultPoints       = 1000

	// MaxTime caps the clock (about 31,700 years) so ω·t stays finite.
	MaxTime = 1e12
)

// Config fixes the sampling domain and clock behavior at construction.
type Config struct {
	DomainLength float64 // metres, positions span [0, DomainLength]
	Points       int     // number of sample positions

	// WrapAfter folds the clock back into [0, WrapAfter) once exceeded.
	// Zero disables wrapping.
	WrapAfter float64

	Logger logrus.FieldLogger
}

func DefaultConfig() Config {
	return Config{
		DomainLength: DefaultDomainLength,
		Points:       DefaultPoints,
	}
}

// Status is a consistent view of the loop for display.
type Status struct {
	Time        float64
	State       RunState
	Parameters  wave.Parameters
	Diagnostics wave.Diagnostics
	Warnings    []wave.Warning
}
