package brachistochrone

import (
	"errors"
	"fmt"
)

var (
	// ErrDomain marks a numeric input outside the domain of sqrt or asin.
	ErrDomain = errors.New("brachistochrone: value out of numeric domain")
	// ErrInvalidGeometry marks a ray with a negative step or an angle outside (0, π/2).
	ErrInvalidGeometry = errors.New("brachistochrone: invalid ray geometry")
	// ErrStepLimit is returned by bounded drivers when the trace did not terminate in time.
	ErrStepLimit = errors.New("brachistochrone: step limit reached before termination")
	// ErrConfig marks an unusable configuration file.
	ErrConfig = errors.New("brachistochrone: invalid config")
)

// DomainError reports which quantity left its legal range.
type DomainError struct {
	Op    string // "sqrt", "asin", ...
	Value Real
	Msg   string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s(%g): %s", ErrDomain, e.Op, e.Value, e.Msg)
}

func (e *DomainError) Unwrap() error { return ErrDomain }

// GeometryError reports a rejected ray step or angle.
type GeometryError struct {
	Step  Real
	Angle Real
	Msg   string
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("%s: step=%g angle=%g: %s", ErrInvalidGeometry, e.Step, e.Angle, e.Msg)
}

func (e *GeometryError) Unwrap() error { return ErrInvalidGeometry }
