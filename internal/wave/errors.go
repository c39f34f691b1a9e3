package wave

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter indicates a non-positive or non-finite amplitude,
	// wavelength or depth, or a zero wavenumber.
	ErrInvalidParameter = errors.New("wave: invalid parameter")

	// ErrDivisionUndefined indicates a phase velocity request with k = 0.
	ErrDivisionUndefined = errors.New("wave: division undefined (zero wavenumber)")
)

// ParameterError names the field that failed validation.
type ParameterError struct {
	Field string
	Value float64
	Err   error
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%s: %s = %g", e.Err, e.Field, e.Value)
}

func (e *ParameterError) Unwrap() error {
	return e.Err
}

func invalid(field string, value float64) error {
	return &ParameterError{Field: field, Value: value, Err: ErrInvalidParameter}
}
