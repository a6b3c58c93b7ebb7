package cipher

import (
	"fmt"
	"strings"
)

// Mode selects the direction of a transformation.
type Mode byte

const (
	// Encrypt transforms plaintext into ciphertext.
	Encrypt Mode = iota
	// Decrypt transforms ciphertext back into plaintext.
	Decrypt
)

func (m Mode) String() string {
	if m == Decrypt {
		return "decrypt"
	}

	return "encrypt"
}

// Type identifies a cipher variant.
type Type byte

const (
	// Caesar shifts every letter by a fixed amount.
	Caesar Type = iota
	// Playfair substitutes digraphs using a 5x5 key grid.
	Playfair
	// Vigenere shifts every letter by the matching letter of a repeating keyword.
	Vigenere
)

//nolint:gochecknoglobals
var typeNames = map[Type]string{
	Caesar:   "caesar",
	Playfair: "playfair",
	Vigenere: "vigenere",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}

	return fmt.Sprintf("Type(%d)", byte(t))
}

// ContextFree reports whether the variant transforms each character independently
// of its position, making it safe to split the input into segments.
func (t Type) ContextFree() bool {
	return t == Caesar
}

// ParseType resolves a cipher name, ignoring case and surrounding whitespace.
func ParseType(name string) (Type, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	for t, n := range typeNames {
		if n == name {
			return t, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownType, name)
}

// Names returns the supported cipher names in declaration order.
func Names() []string {
	return []string{Caesar.String(), Playfair.String(), Vigenere.String()}
}
