package cmd

import (
	"fmt"
	"os"

	"github.com/discshelf/discnamer/internal/identify"
	"github.com/discshelf/discnamer/internal/naming"
	"github.com/spf13/cobra"
)

func newIdentifyCmd() *cobra.Command {
	var provider string
	var model string

	cmd := &cobra.Command{
		Use:   "identify <image>",
		Short: "Identify a single disc photo without renaming it",
		Long: `Identifies the movie title in a single disc photo and prints the title
plus the filename it would be renamed to. No files are moved or copied.`,
		Example: `  discnamer identify IMG_0042.jpg

  discnamer identify --provider gemini disc.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if _, err := os.Stat(path); err != nil {
				return fmt.Errorf("cannot read image: %w", err)
			}

			service, err := identify.NewService(provider, model)
			if err != nil {
				return err
			}
			if err := service.CheckCredentials(); err != nil {
				return err
			}

			title, err := service.IdentifyFile(cmd.Context(), path)
			if err != nil {
				return err
			}

			fmt.Printf("Title:    %s\n", title)
			fmt.Printf("Filename: %s.jpg\n", naming.SanitizeTitle(title))
			return nil
		},
	}

	cmd.Flags().StringVar(&provider, "provider", "", "LLM provider (anthropic, openai, ollama, or gemini)")
	cmd.Flags().StringVar(&model, "model", "", "Model name (defaults to provider's default)")

	return cmd
}
