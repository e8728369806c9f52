package kata

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the base error for every rejected input in package kata.
// All other sentinels below wrap it, so errors.Is(err, ErrInvalidArgument)
// holds for any error returned by this package.
var ErrInvalidArgument = errors.New("invalid argument")

// Sentinel errors for package kata.
var (
	// Digit analysis errors
	ErrNonPositiveNumber = fmt.Errorf("%w: number must be positive", ErrInvalidArgument)

	// Stone visiting errors
	ErrNegativeStones    = fmt.Errorf("%w: total stones must not be negative", ErrInvalidArgument)
	ErrTooManyStones     = fmt.Errorf("%w: total stones exceeds MaxStones", ErrInvalidArgument)
	ErrNonPositiveStep   = fmt.Errorf("%w: step size must be positive", ErrInvalidArgument)
	ErrBirdCountMismatch = fmt.Errorf("%w: bird count does not match number of step sizes", ErrInvalidArgument)
)
