package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/gocipher/internal/logic"
)

// NewDecryptCommand creates a new cobra command for the decrypt subcommand.
func NewDecryptCommand(v *viper.Viper, streams logic.Streams) *cobra.Command {
	decrypt := true

	return &cobra.Command{
		Use:     "decrypt [flags]",
		Aliases: []string{"dec"},
		Short:   "Decrypt text",
		Args:    noArgs,
		RunE:    run(v, streams, &decrypt),
	}
}
