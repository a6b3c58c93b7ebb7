package parallel_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/gocipher/internal/cipher"
	"github.com/idelchi/gocipher/internal/parallel"
)

func TestSplit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		n    int
		want []string
	}{
		{name: "even", text: "ABCDEF", n: 3, want: []string{"AB", "CD", "EF"}},
		{name: "remainder in last", text: "ABCDEFG", n: 3, want: []string{"AB", "CD", "EFG"}},
		{name: "single", text: "ABC", n: 1, want: []string{"ABC"}},
		{name: "shorter than n", text: "AB", n: 4, want: []string{"", "", "", "AB"}},
		{name: "empty", text: "", n: 3, want: []string{"", "", ""}},
		{name: "zero treated as one", text: "ABC", n: 0, want: []string{"ABC"}},
		{name: "negative treated as one", text: "ABC", n: -2, want: []string{"ABC"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := parallel.Split(tt.text, tt.n)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.text, strings.Join(got, ""))
		})
	}
}

func TestRunMatchesSequential(t *testing.T) {
	t.Parallel()

	texts := []string{
		"",
		"A",
		"HELLO",
		"HELLOWORLD123",
		strings.Repeat("THEQUICKBROWNFOXJUMPSOVERTHELAZYDOG0123456789", 97),
	}

	for _, key := range []string{"0", "3", "13", "25"} {
		c, err := cipher.New(cipher.Caesar, key)
		require.NoError(t, err)

		for _, text := range texts {
			for _, mode := range []cipher.Mode{cipher.Encrypt, cipher.Decrypt} {
				want := c.Transform(text, mode)

				for _, workers := range []int{1, 2, 3, 7, 10, 64, len(text) + 5} {
					got, err := parallel.Run(c, text, mode, workers)
					require.NoError(t, err)
					require.Equal(t, want, got, "key %s, %d workers, %d bytes", key, workers, len(text))
				}
			}
		}
	}
}

func TestRunRoundTrip(t *testing.T) {
	t.Parallel()

	c, err := cipher.New(cipher.Caesar, "3")
	require.NoError(t, err)

	enc, err := parallel.Run(c, "HELLO", cipher.Encrypt, 10)
	require.NoError(t, err)
	assert.Equal(t, "KHOOR", enc)

	dec, err := parallel.Run(c, enc, cipher.Decrypt, 10)
	require.NoError(t, err)
	assert.Equal(t, "HELLO", dec)
}

// faulty panics on segments containing a marker byte.
type faulty struct{}

func (faulty) Transform(text string, _ cipher.Mode) string {
	if strings.Contains(text, "!") {
		panic("bad segment")
	}

	return strings.ToLower(text)
}

func TestRunPropagatesWorkerFailure(t *testing.T) {
	t.Parallel()

	out, err := parallel.Run(faulty{}, "AAAA!BBB", cipher.Encrypt, 4)
	require.ErrorIs(t, err, parallel.ErrWorker)
	assert.Contains(t, err.Error(), "segment 2")
	assert.Empty(t, out)

	out, err = parallel.Run(faulty{}, "AAAABBBB", cipher.Encrypt, 4)
	require.NoError(t, err)
	assert.Equal(t, "aaaabbbb", out)
}
