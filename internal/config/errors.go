package config

import "errors"

var (
	// ErrMissingArgument is returned when a flag that requires a value was given without one.
	ErrMissingArgument = errors.New("missing argument")
	// ErrUnknownArgument is returned for unrecognized flags, stray arguments and unknown cipher names.
	ErrUnknownArgument = errors.New("unknown argument")
)
