package evalcmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRunCmd creates the eval run command
func NewRunCmd() *cobra.Command {
	var datasetPath string
	var provider string
	var model string
	var sampleSize int

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Evaluate identification accuracy against a labeled dataset",
		Long: `Run the identification pipeline over a labeled dataset of disc photos and
score the results against the ground-truth titles.

The dataset is a JSONL or Parquet file whose rows carry an id, an image path
(absolute or relative to the dataset file), and the expected movie title.`,
		Example: `  # Evaluate 10 photos with the default provider
  discnamer eval run --dataset ./testdata/discs.jsonl --sample 10

  # Evaluate a parquet dataset with OpenAI
  discnamer eval run --dataset ./discs.parquet --provider openai --model gpt-4o --sample -1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(datasetPath); os.IsNotExist(err) {
				return fmt.Errorf("dataset file not found: %s", datasetPath)
			}

			return executeRun(cmd.Context(), datasetPath, provider, model, sampleSize)
		},
	}

	cmd.Flags().StringVar(&datasetPath, "dataset", "", "Path to JSONL or Parquet dataset file (required)")
	cmd.Flags().StringVar(&provider, "provider", "", "LLM provider (anthropic, openai, ollama, or gemini)")
	cmd.Flags().StringVar(&model, "model", "", "Model name (defaults to provider's default)")
	cmd.Flags().IntVar(&sampleSize, "sample", 10, "Number of records to evaluate (-1 for all)")

	_ = cmd.MarkFlagRequired("dataset")
	return cmd
}
