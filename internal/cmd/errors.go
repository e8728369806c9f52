package cmd

import "errors"

// Sentinel errors for package cmd.
var (
	ErrUnknownFormat = errors.New("unknown output format")
	ErrNotPangram    = errors.New("text is not a pangram")
	ErrCheckFailed   = errors.New("case file check failed")
)
