package sanitize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/idelchi/gocipher/internal/sanitize"
)

func TestText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "mixed", in: "Hello, World! 123", want: "HELLOWORLD123"},
		{name: "empty", in: "", want: ""},
		{name: "only punctuation", in: " \t\n.,;:!?-_", want: ""},
		{name: "already canonical", in: "ABC0XYZ9", want: "ABC0XYZ9"},
		{name: "lowercase", in: "abcxyz", want: "ABCXYZ"},
		{name: "non ascii letters dropped", in: "Café über", want: "CAFBER"},
		{name: "fullwidth digits dropped", in: "A１B", want: "AB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, sanitize.Text(tt.in))
		})
	}
}

func TestTextIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Hello, World! 123",
		"the quick brown fox jumps over the lazy dog",
		"Ünïcödé ☃ 42",
		"",
	}

	for _, in := range inputs {
		once := sanitize.Text(in)
		assert.Equal(t, once, sanitize.Text(once), "input %q", in)
	}
}

func TestChar(t *testing.T) {
	t.Parallel()

	for r := rune(0); r < 0x250; r++ {
		c, ok := sanitize.Char(r)
		if !ok {
			continue
		}

		isLetter := c >= 'A' && c <= 'Z'
		isDigit := c >= '0' && c <= '9'

		assert.True(t, isLetter || isDigit, "Char(%q) = %q", r, c)
	}
}
