package cipher

// VigenereCipher shifts each letter by the matching letter of a repeating keyword.
type VigenereCipher struct {
	shifts []int
}

// NewVigenere builds the keyword from the letters of key, uppercased with repeats removed.
func NewVigenere(key string) (*VigenereCipher, error) {
	letters := dedupe(keyLetters(key))
	if len(letters) == 0 {
		return nil, &KeyError{Type: Vigenere, Key: key, Reason: "no alphabetic characters"}
	}

	shifts := make([]int, len(letters))
	for i, r := range letters {
		shifts[i] = int(r - 'A')
	}

	return &VigenereCipher{shifts: shifts}, nil
}

// Keyword returns the normalized keyword, as logged by --verbose runs.
func (v *VigenereCipher) Keyword() string {
	out := make([]rune, len(v.shifts))
	for i, n := range v.shifts {
		out[i] = 'A' + rune(n)
	}

	return string(out)
}

// Transform applies the keyword to the letters of text.
// Only letters advance the keyword position; digits pass through untouched.
func (v *VigenereCipher) Transform(text string, mode Mode) string {
	out := []rune(text)
	pos := 0

	for i, r := range out {
		if !isLetter(r) {
			continue
		}

		n := v.shifts[pos%len(v.shifts)]
		if mode == Decrypt {
			n = -n
		}

		out[i] = shift(r, n)
		pos++
	}

	return string(out)
}
