package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "discnamer",
		Short: "Identify and rename photos of movie discs using vision LLMs",
		Long: `Discnamer identifies movie titles from photos of Blu-ray discs or their
cases using a vision-capable LLM, then renames the photos accordingly.

Renamed photos land in a working directory with a forced .jpg extension;
byte-identical originals are archived alongside under their own extension.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	// Add subcommands
	cmd.AddCommand(newProcessCmd())
	cmd.AddCommand(newIdentifyCmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newEvalCmd())

	return cmd
}
