// Package logic implements the read, sanitize, transform and write pipeline.
package logic

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"

	"github.com/idelchi/gocipher/internal/cipher"
	"github.com/idelchi/gocipher/internal/config"
	"github.com/idelchi/gocipher/internal/fileutil"
	"github.com/idelchi/gocipher/internal/parallel"
	"github.com/idelchi/gocipher/internal/sanitize"
)

// Streams are the standard streams used when no input or output file is configured.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Result summarizes a single run.
type Result struct {
	// Raw input size in bytes
	InputSize int64

	// Sanitized input size in bytes
	SanitizedSize int64

	// Written output size in bytes, including the trailing newline
	OutputSize int64

	// Number of workers used, 1 for sequential ciphers
	Workers int

	// Wall time of the whole run
	Duration time.Duration
}

// Run is the main logic of the application.
// The cipher is constructed before any input is read, so an invalid key aborts
// the run without touching the output.
func Run(cfg *config.Config, streams Streams, log zerolog.Logger) error {
	start := time.Now()

	typ, err := cfg.Type()
	if err != nil {
		return err
	}

	c, err := cipher.New(typ, cfg.Key)
	if err != nil {
		return fmt.Errorf("constructing %s cipher: %w", typ, err)
	}

	logCipher(log, c, typ, cfg.Mode())

	raw, err := readInput(cfg.Input, streams.In)
	if err != nil {
		return err
	}

	text := sanitize.Text(string(raw))

	log.Debug().Int("raw", len(raw)).Int("sanitized", len(text)).Msg("input read")

	output, workers, err := Apply(c, typ, text, cfg.Mode(), cfg.Parallel)
	if err != nil {
		return fmt.Errorf("running %s: %w", typ, err)
	}

	log.Debug().Int("workers", workers).Int("output", len(output)).Msg("text transformed")

	size, err := writeOutput(cfg.Output, output+"\n", streams.Out)
	if err != nil {
		return err
	}

	result := Result{
		InputSize:     int64(len(raw)),
		SanitizedSize: int64(len(text)),
		OutputSize:    size,
		Workers:       workers,
		Duration:      time.Since(start),
	}

	if cfg.Stats {
		printStats(streams.Err, result)
	}

	return nil
}

// Apply transforms sanitized text with c. Context-free ciphers are dispatched
// across min(parallel, len(text)) workers, the others run sequentially.
// It returns the output and the number of workers used.
func Apply(c cipher.Cipher, typ cipher.Type, text string, mode cipher.Mode, workers int) (string, int, error) {
	if !typ.ContextFree() {
		return c.Transform(text, mode), 1, nil
	}

	workers = max(1, min(workers, len(text)))

	output, err := parallel.Run(c, text, mode, workers)
	if err != nil {
		return "", workers, fmt.Errorf("parallel dispatch: %w", err)
	}

	return output, workers, nil
}

// logCipher logs the effective key material the cipher was constructed with.
func logCipher(log zerolog.Logger, c cipher.Cipher, typ cipher.Type, mode cipher.Mode) {
	event := log.Debug().Stringer("cipher", typ).Stringer("mode", mode)

	switch c := c.(type) {
	case *cipher.CaesarCipher:
		event = event.Int("shift", c.Shift())
	case *cipher.VigenereCipher:
		event = event.Str("keyword", c.Keyword())
	case *cipher.PlayfairCipher:
		event = event.Strs("grid", c.Grid())
	}

	event.Msg("cipher constructed")
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading standard input: %w", err)
		}

		return data, nil
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("reading input file: %w", err)
	}

	return data, nil
}

func writeOutput(path, output string, stdout io.Writer) (int64, error) {
	if path == "" {
		n, err := io.WriteString(stdout, output)
		if err != nil {
			return int64(n), fmt.Errorf("writing standard output: %w", err)
		}

		return int64(n), nil
	}

	const ownerReadWrite = 0o600

	size, err := fileutil.WriteFile(filepath.Clean(path), []byte(output), ownerReadWrite)
	if err != nil {
		return 0, fmt.Errorf("writing output file: %w", err)
	}

	return size, nil
}

func printStats(w io.Writer, r Result) {
	fmt.Fprintf(w, "\nStats\n")
	//nolint:gosec // sizes are lengths and never negative
	fmt.Fprintf(w, "  Input:     %s\n", humanize.IBytes(uint64(r.InputSize)))
	//nolint:gosec // sizes are lengths and never negative
	fmt.Fprintf(w, "  Sanitized: %s\n", humanize.IBytes(uint64(r.SanitizedSize)))
	//nolint:gosec // sizes are lengths and never negative
	fmt.Fprintf(w, "  Output:    %s\n", humanize.IBytes(uint64(r.OutputSize)))
	fmt.Fprintf(w, "  Workers:   %d\n", r.Workers)
	fmt.Fprintf(w, "  Duration:  %s\n", r.Duration.Round(time.Millisecond))
}
