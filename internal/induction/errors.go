package induction

import "errors"

var (
	// ErrNonFinite indicates a NaN or Inf position or timestamp.
	ErrNonFinite = errors.New("induction: non-finite input (NaN or Inf)")

	// ErrTurnsRange indicates a coil winding count outside [MinTurns, MaxTurns].
	ErrTurnsRange = errors.New("induction: turns out of range")

	// ErrParams indicates a parameter set that cannot produce a defined flux.
	ErrParams = errors.New("induction: invalid parameters")
)
