package casefile

import "errors"

// Sentinel errors for package casefile.
var (
	// ErrInvalidCase is returned for a case that cannot be evaluated.
	ErrInvalidCase = errors.New("invalid case")

	// ErrUnknownKata is returned for a case naming a kata that does not exist.
	ErrUnknownKata = errors.New("unknown kata")
)
