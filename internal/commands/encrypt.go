package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/gocipher/internal/logic"
)

// NewEncryptCommand creates a new cobra command for the encrypt subcommand.
func NewEncryptCommand(v *viper.Viper, streams logic.Streams) *cobra.Command {
	decrypt := false

	return &cobra.Command{
		Use:     "encrypt [flags]",
		Aliases: []string{"enc"},
		Short:   "Encrypt text",
		Args:    noArgs,
		RunE:    run(v, streams, &decrypt),
	}
}
