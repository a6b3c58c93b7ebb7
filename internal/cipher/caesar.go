package cipher

import (
	"strings"
)

// CaesarCipher shifts every letter by a fixed amount.
type CaesarCipher struct {
	shift int
}

// NewCaesar parses key as a decimal integer, optionally signed, and reduces it modulo 26.
// An empty key yields the null shift. Values of any magnitude are accepted.
func NewCaesar(key string) (*CaesarCipher, error) {
	text := strings.TrimSpace(key)
	if text == "" {
		return &CaesarCipher{}, nil
	}

	negative := false

	switch text[0] {
	case '-':
		negative = true
		text = text[1:]
	case '+':
		text = text[1:]
	}

	if text == "" {
		return nil, &KeyError{Type: Caesar, Key: key, Reason: "missing digits"}
	}

	value := 0

	for _, r := range text {
		if r < '0' || r > '9' {
			return nil, &KeyError{Type: Caesar, Key: key, Reason: "not an integer"}
		}

		value = (value*10 + int(r-'0')) % alphabetSize
	}

	if negative {
		value = (alphabetSize - value) % alphabetSize
	}

	return &CaesarCipher{shift: value}, nil
}

// Shift returns the normalized shift in [0, 25].
// The pipeline logs it at debug level once the cipher is built.
func (c *CaesarCipher) Shift() int { return c.shift }

// Transform shifts letters forward to encrypt and backward to decrypt.
func (c *CaesarCipher) Transform(text string, mode Mode) string {
	n := c.shift
	if mode == Decrypt {
		n = -n
	}

	out := []rune(text)

	for i, r := range out {
		if isLetter(r) {
			out[i] = shift(r, n)
		}
	}

	return string(out)
}
