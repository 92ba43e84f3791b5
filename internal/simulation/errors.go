package simulation

import (
	"errors"
	"fmt"
)

// Boat construction errors. Every ValidationError matches ErrValidation and the
// field specific error below.
var (
	ErrValidation          = errors.New("invalid boat parameters")
	ErrInvalidSpeed        = errors.New("invalid speed")
	ErrInvalidAcceleration = errors.New("invalid acceleration")
	ErrInvalidRadius       = errors.New("invalid radius")
)

// Boat state errors: a boat must be placed before it can be read or moved.
var (
	ErrPositionNotSet  = errors.New("boat position not set")
	ErrDirectionNotSet = errors.New("boat direction not set")
)

// Lake errors.
var (
	ErrInvalidDimensions = errors.New("lake dimensions must be positive")
	ErrBoatTooLarge      = errors.New("boat is larger than the lake")
	ErrBoatAlreadyPlaced = errors.New("boat already placed in a lake")
	ErrInvalidDelta      = errors.New("time delta must be a finite non-negative number")
)

// Runner errors.
var (
	ErrInvalidFrameRate = errors.New("frame rate must be positive")
	ErrFrameRateTooHigh = errors.New("frame rate too high: refresh interval below 1ms")
	ErrLakeHasRunner    = errors.New("lake is already driven by a simulation")
)

// ValidationError reports which boat parameter was rejected and why.
type ValidationError struct {
	Kind   error // ErrInvalidSpeed, ErrInvalidAcceleration or ErrInvalidRadius
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidation, e.Reason)
}

// Unwrap lets errors.Is match both ErrValidation and the field kind.
func (e *ValidationError) Unwrap() []error {
	return []error{ErrValidation, e.Kind}
}
