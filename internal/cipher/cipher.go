package cipher

import "fmt"

const alphabetSize = 26

// Cipher transforms sanitized text in the given mode.
// Transform is a pure function of its arguments for a given key.
type Cipher interface {
	Transform(text string, mode Mode) string
}

// New validates key for the requested cipher type and constructs the cipher.
// A returned error wraps ErrInvalidKey or ErrUnknownType.
func New(t Type, key string) (Cipher, error) {
	var (
		c   Cipher
		err error
	)

	switch t {
	case Caesar:
		c, err = NewCaesar(key)
	case Playfair:
		c, err = NewPlayfair(key)
	case Vigenere:
		c, err = NewVigenere(key)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, t)
	}

	if err != nil {
		return nil, err
	}

	return c, nil
}

func isLetter(r rune) bool { return r >= 'A' && r <= 'Z' }

// shift rotates an uppercase letter by n positions, n in (-26, 26).
func shift(r rune, n int) rune {
	return 'A' + rune((int(r-'A')+n+alphabetSize)%alphabetSize)
}

// keyLetters uppercases key and keeps only its letters.
func keyLetters(key string) []rune {
	letters := make([]rune, 0, len(key))

	for _, r := range key {
		switch {
		case isLetter(r):
			letters = append(letters, r)
		case r >= 'a' && r <= 'z':
			letters = append(letters, r-'a'+'A')
		}
	}

	return letters
}

// dedupe removes repeated runes, keeping the first occurrence.
func dedupe(runes []rune) []rune {
	seen := make(map[rune]struct{}, len(runes))
	out := runes[:0:0]

	for _, r := range runes {
		if _, ok := seen[r]; ok {
			continue
		}

		seen[r] = struct{}{}
		out = append(out, r)
	}

	return out
}
