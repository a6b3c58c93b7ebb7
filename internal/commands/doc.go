// Package commands provides the command-line interface for the gocipher tool.
//
// It implements commands for:
//   - encryption
//   - decryption
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra and viper.
package commands

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/gocipher/internal/config"
	"github.com/idelchi/gocipher/internal/logic"
)

// bind returns a PersistentPreRunE handler that binds the root and command flags to v.
func bind(v *viper.Viper) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		if err := v.BindPFlags(cmd.Root().Flags()); err != nil {
			return fmt.Errorf("binding root flags: %w", err)
		}

		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return fmt.Errorf("binding command flags: %w", err)
		}

		return nil
	}
}

// run returns a RunE handler that resolves the configuration and runs the pipeline.
// decrypt overrides the --decrypt flag when non-nil.
func run(v *viper.Viper, streams logic.Streams, decrypt *bool) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, _ []string) error {
		if decrypt != nil {
			v.Set("decrypt", *decrypt)
		}

		cfg, err := config.Resolve(v)
		if err != nil {
			return err
		}

		if cfg.Show {
			return show(cfg, streams)
		}

		log := newLogger(cfg, streams.Err)

		log.Debug().
			Str("cipher", cfg.Cipher).
			Bool("decrypt", cfg.Decrypt).
			Int("parallel", cfg.Parallel).
			Str("infile", cfg.Input).
			Str("outfile", cfg.Output).
			Msg("configuration resolved")

		return logic.Run(cfg, streams, log)
	}
}

// show prints the resolved configuration as YAML.
func show(cfg *config.Config, streams logic.Streams) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling configuration: %w", err)
	}

	_, err = fmt.Fprint(streams.Out, string(out))

	return err
}

// flagError classifies flag parse failures into missing and unknown arguments.
// A value the flag cannot parse, such as "-j x", counts as an unknown argument.
func flagError(_ *cobra.Command, err error) error {
	msg := err.Error()

	switch {
	case strings.HasPrefix(msg, "flag needs an argument"):
		return fmt.Errorf("%w: %s", config.ErrMissingArgument, strings.TrimPrefix(msg, "flag needs an argument: "))
	case strings.HasPrefix(msg, "unknown flag"),
		strings.HasPrefix(msg, "unknown shorthand flag"),
		strings.HasPrefix(msg, "invalid argument"):
		return fmt.Errorf("%w: %s", config.ErrUnknownArgument, msg)
	default:
		return err
	}
}

// noArgs rejects positional arguments as unknown.
func noArgs(_ *cobra.Command, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("%w: %q", config.ErrUnknownArgument, args[0])
	}

	return nil
}
