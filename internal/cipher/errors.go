package cipher

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidKey is returned when a key fails validation for the selected cipher.
	ErrInvalidKey = errors.New("invalid key")
	// ErrUnknownType is returned when a cipher name does not match any supported cipher.
	ErrUnknownType = errors.New("unknown cipher")
)

// KeyError describes a rejected key.
type KeyError struct {
	Type   Type   // cipher the key was meant for
	Key    string // raw key text as supplied
	Reason string // human-readable explanation
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("%s: %s key %q: %s", ErrInvalidKey, e.Type, e.Key, e.Reason)
}

// Unwrap allows errors.Is(err, ErrInvalidKey).
func (e *KeyError) Unwrap() error { return ErrInvalidKey }
