package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/discshelf/discnamer/internal/fileutil"
	"github.com/discshelf/discnamer/internal/identify"
	"github.com/discshelf/discnamer/internal/organizer"
	"github.com/spf13/cobra"
)

func newProcessCmd() *cobra.Command {
	var inputDir string
	var renamedDir string
	var originalsDir string
	var provider string
	var model string
	var reportPath string

	cmd := &cobra.Command{
		Use:   "process",
		Short: "Identify and rename every disc photo in a directory",
		Long: `Processes every image in the input directory: each photo is identified by
the configured vision LLM, renamed to the sanitized movie title, and placed
into the renamed directory as a .jpg. A byte-identical copy of the original
lands in the originals directory with its source extension preserved.

Existing files are never overwritten; colliding names get a numeric suffix
(The_Matrix.jpg, The_Matrix_1.jpg, ...). A failure on one photo is reported
and the batch continues.`,
		Example: `  # Process ./data/process with the default Anthropic provider
  discnamer process

  # Custom directories and provider, with a YAML run report
  discnamer process --input ./photos --renamed ./renamed --originals ./originals \
    --provider openai --report run.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := identify.NewService(provider, model)
			if err != nil {
				return err
			}

			// Credential check happens once, before any file is touched.
			if err := service.CheckCredentials(); err != nil {
				return err
			}

			for _, dir := range []string{inputDir, renamedDir, originalsDir} {
				if err := fileutil.EnsureDir(dir); err != nil {
					return fmt.Errorf("failed to create directory %s: %w", dir, err)
				}
			}

			fmt.Printf("Input directory:     %s\n", inputDir)
			fmt.Printf("Renamed directory:   %s\n", renamedDir)
			fmt.Printf("Originals directory: %s\n", originalsDir)
			fmt.Printf("Provider:            %s (%s)\n\n", service.Provider(), service.Model())

			report, err := organizer.Run(cmd.Context(), service, organizer.Options{
				InputDir:     inputDir,
				RenamedDir:   renamedDir,
				OriginalsDir: originalsDir,
			})
			if err != nil {
				return err
			}

			if reportPath != "" {
				if err := report.Save(reportPath, service.Provider(), service.Model()); err != nil {
					return err
				}
				fmt.Printf("\nRun report saved to: %s\n", reportPath)
			}

			fmt.Printf("\nProcessing complete: %d renamed, %d failed\n", report.Processed, report.Failed)
			return nil
		},
	}

	cmd.Flags().StringVar(&inputDir, "input", filepath.Join("data", "process"), "Directory of photos to process")
	cmd.Flags().StringVar(&renamedDir, "renamed", filepath.Join("data", "renamed"), "Destination for renamed .jpg files")
	cmd.Flags().StringVar(&originalsDir, "originals", filepath.Join("data", "originals"), "Destination for archived originals")
	cmd.Flags().StringVar(&provider, "provider", "", "LLM provider (anthropic, openai, ollama, or gemini)")
	cmd.Flags().StringVar(&model, "model", "", "Model name (defaults to provider's default)")
	cmd.Flags().StringVar(&reportPath, "report", "", "Write a YAML run report to this path")

	return cmd
}
