// Package config holds the program settings resolved from flags, environment
// variables and an optional settings file.
package config

import (
	"errors"
	"fmt"

	playground "github.com/go-playground/validator/v10"
	"github.com/idelchi/gogen/pkg/validator"

	"github.com/idelchi/gocipher/internal/cipher"
)

// Config is the fully resolved set of program settings.
// It is created once by the command layer and only read afterwards.
type Config struct {
	// Input file to read from, standard input when empty
	Input string `mapstructure:"infile" yaml:"infile"`

	// Output file to write to, standard output when empty
	Output string `mapstructure:"outfile" yaml:"outfile"`

	// Cipher key, raw text as supplied
	Key string `label:"--key" mapstructure:"key" validate:"exclusive=KeyFile" yaml:"-"`

	// Path to a file holding the cipher key
	KeyFile string `label:"--key-file" mapstructure:"key-file" yaml:"key-file"`

	// Cipher name
	Cipher string `label:"--cipher" mapstructure:"cipher" validate:"required,cipher" yaml:"cipher"`

	// Decrypt instead of encrypt
	Decrypt bool `mapstructure:"decrypt" yaml:"decrypt"`

	// Number of parallel workers for context-free ciphers
	Parallel int `label:"--parallel" mapstructure:"parallel" validate:"gte=1" yaml:"parallel"`

	// Optional JSONC settings file
	Settings string `mapstructure:"settings" yaml:"settings"`

	// Output verbosity and reporting
	Verbose bool `mapstructure:"verbose" yaml:"verbose"`
	Quiet   bool `mapstructure:"quiet"   yaml:"quiet"`
	Stats   bool `mapstructure:"stats"   yaml:"stats"`

	// Show the configuration and exit
	Show bool `mapstructure:"show" yaml:"-"`
}

// Validate validates the configuration against the struct tags.
// Any failure on the cipher name, including an empty one, is reported as
// ErrUnknownArgument.
func (c *Config) Validate() error {
	validator := validator.NewValidator()

	if err := register(validator); err != nil {
		return err
	}

	err := validator.Validator().Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			if fe.StructField() == "Cipher" {
				return fmt.Errorf("%w: %w", ErrUnknownArgument, validator.FormatErrors(playground.ValidationErrors{fe})[0])
			}
		}
	}

	errs := validator.FormatErrors(err)

	switch len(errs) {
	case 0:
		return nil
	case 1:
		return fmt.Errorf("validating configuration: %w", errs[0])
	default:
		return fmt.Errorf("validating configuration:\n%w", errors.Join(errs...))
	}
}

// Mode returns the cipher mode selected by the configuration.
func (c *Config) Mode() cipher.Mode {
	if c.Decrypt {
		return cipher.Decrypt
	}

	return cipher.Encrypt
}

// Type returns the cipher type selected by the configuration.
func (c *Config) Type() (cipher.Type, error) {
	t, err := cipher.ParseType(c.Cipher)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrUnknownArgument, err)
	}

	return t, nil
}
