// Command gocipher encrypts and decrypts text with classical ciphers.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/idelchi/gocipher/internal/cipher"
	"github.com/idelchi/gocipher/internal/commands"
	"github.com/idelchi/gocipher/internal/config"
	"github.com/idelchi/gocipher/internal/logic"
)

// version is overridable at link time:
//
//	go build -ldflags "-X main.version=1.0.0"
var version = "0.5.0" //nolint:gochecknoglobals

func main() {
	root := commands.NewRootCommand(version, logic.Streams{
		In:  os.Stdin,
		Out: os.Stdout,
		Err: os.Stderr,
	})

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "[error] %s: %v\n", kind(err), err)

		os.Exit(1)
	}
}

// kind names the error category reported to the user.
func kind(err error) string {
	switch {
	case errors.Is(err, config.ErrMissingArgument):
		return "Missing argument"
	case errors.Is(err, config.ErrUnknownArgument):
		return "Unknown argument"
	case errors.Is(err, cipher.ErrInvalidKey):
		return "Invalid key"
	default:
		return "Failed"
	}
}
