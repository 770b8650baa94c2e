package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Input validation errors
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrEmptyOutcomes    = fmt.Errorf("%w: outcome sequence is empty", ErrInvalidParameter)

	// Numerical degeneracy errors
	ErrDegeneratePosterior = errors.New("degenerate posterior: zero mass across entire grid")
	ErrDegenerateCurvature = errors.New("degenerate curvature: gaussian approximation undefined at boundary mode")

	// Sampling errors
	ErrInsufficientSamples = errors.New("insufficient samples for summary")
)

// Error constructors with context
func NewInvalidParameterError(field string, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidParameter, field, reason)
}

func NewDegeneratePosteriorError(detail string) error {
	return fmt.Errorf("%w (%s)", ErrDegeneratePosterior, detail)
}

// Error checking helpers
func IsInvalidParameter(err error) bool {
	return errors.Is(err, ErrInvalidParameter)
}

func IsDegenerate(err error) bool {
	return errors.Is(err, ErrDegeneratePosterior) ||
		errors.Is(err, ErrDegenerateCurvature)
}
