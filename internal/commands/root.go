package commands

import (
	"runtime"

	"github.com/idelchi/gogen/pkg/cobraext"
	"github.com/spf13/cobra"

	"github.com/idelchi/gocipher/internal/config"
	"github.com/idelchi/gocipher/internal/logic"
)

// NewRootCommand creates the root command with common configuration.
// It sets up environment variable binding and flag handling.
// Running the root command without a subcommand encrypts unless --decrypt is given.
func NewRootCommand(version string, streams logic.Streams) *cobra.Command {
	v := config.NewViper()

	root := cobraext.NewDefaultRootCommand(version)

	root.Use = "gocipher [flags] [command]"
	root.Short = "Classical cipher utility"
	root.Long = `Encrypts/Decrypts input alphanumeric text using classical ciphers.

Letters are uppercased, digits are kept and everything else is dropped before the
cipher runs. Text is read from --infile or standard input and written to --outfile
or standard output. Settings may also come from GOCIPHER_* environment variables
or a JSONC file given with --settings.`
	root.Args = noArgs
	root.RunE = run(v, streams, nil)
	// Flags bind to this root's viper instead of the package-level one.
	root.PersistentPreRunE = bind(v)

	root.SetIn(streams.In)
	root.SetOut(streams.Out)
	root.SetErr(streams.Err)
	root.SetFlagErrorFunc(flagError)

	flags := root.PersistentFlags()

	flags.StringP("infile", "i", "", "Read text to be processed from FILE, stdin if not supplied")
	flags.StringP("outfile", "o", "", "Write processed text to FILE, stdout if not supplied")
	flags.StringP("cipher", "c", "caesar", "Cipher to use: caesar, playfair or vigenere")
	flags.StringP("key", "k", "", "Cipher key, a null key is used if not supplied")
	flags.StringP("key-file", "f", "", "Path to a file holding the cipher key")
	flags.IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers for the caesar cipher")
	flags.String("settings", "", "Path to a JSONC settings file")
	flags.Bool("verbose", false, "Log debug information to stderr")
	flags.BoolP("quiet", "q", false, "Suppress log output")
	flags.Bool("stats", false, "Print statistics to stderr after processing")
	flags.BoolP("show", "s", false, "Show the configuration and exit")

	root.Flags().Bool("encrypt", false, "Encrypt the input text (default behaviour)")
	root.Flags().Bool("decrypt", false, "Decrypt the input text")
	root.MarkFlagsMutuallyExclusive("encrypt", "decrypt")
	root.MarkFlagsMutuallyExclusive("key", "key-file")

	root.AddCommand(NewEncryptCommand(v, streams), NewDecryptCommand(v, streams))

	return root
}
