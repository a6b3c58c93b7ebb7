// Package parallel splits sanitized text into contiguous segments and transforms
// them concurrently, reassembling the results in segment order.
//
// Only ciphers whose transformation is independent of character position may be
// dispatched here; see cipher.Type.ContextFree.
package parallel

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/idelchi/gocipher/internal/cipher"
)

// ErrWorker is returned when a worker fails while transforming its segment.
var ErrWorker = errors.New("worker failed")

// Split partitions text into n contiguous segments. All but the last segment
// hold len(text)/n bytes; the last one absorbs the remainder.
// Segments may be empty when text is shorter than n. n < 1 is treated as 1.
func Split(text string, n int) []string {
	n = max(n, 1)

	size := len(text) / n
	segments := make([]string, n)

	for i := range n - 1 {
		segments[i] = text[i*size : (i+1)*size]
	}

	segments[n-1] = text[(n-1)*size:]

	return segments
}

// Run transforms text with c using one goroutine per segment and blocks until every
// worker has finished. The output is identical to c.Transform(text, mode).
// Sanitized text is ASCII, so byte-based splitting never cuts a character.
func Run(c cipher.Cipher, text string, mode cipher.Mode, workers int) (string, error) {
	segments := Split(text, workers)
	results := make([]string, len(segments))

	group := errgroup.Group{}

	for i, segment := range segments {
		group.Go(func() error {
			out, err := transform(c, segment, mode)
			if err != nil {
				return fmt.Errorf("segment %d: %w", i, err)
			}

			results[i] = out

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return "", err
	}

	return strings.Join(results, ""), nil
}

// transform runs a single segment, converting a panic into an error.
func transform(c cipher.Cipher, segment string, mode cipher.Mode) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrWorker, r)
		}
	}()

	return c.Transform(segment, mode), nil
}
