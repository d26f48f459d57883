package evalcmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/discshelf/discnamer/internal/eval/dataset"
	"github.com/discshelf/discnamer/internal/eval/metrics"
	"github.com/discshelf/discnamer/internal/eval/results"
	"github.com/discshelf/discnamer/internal/identify"
)

// Identifier produces a movie title for the image at path.
type Identifier interface {
	IdentifyFile(ctx context.Context, path string) (string, error)
}

func executeRun(ctx context.Context, datasetPath, provider, model string, sampleSize int) error {
	slog.Info("Starting evaluation run", "dataset", datasetPath, "provider", provider, "model", model)

	loader := dataset.NewLoader(datasetPath)
	records, err := loader.LoadSample(sampleSize)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	slog.Info("Dataset loaded", "records", len(records))

	service, err := identify.NewService(provider, model)
	if err != nil {
		return err
	}
	if err := service.CheckCredentials(); err != nil {
		return err
	}

	evalResults := runEvaluation(ctx, service, records, datasetPath)

	agg := metrics.Aggregate(evalResults, service.Provider(), service.Model())

	outputPath, err := results.SaveToYAML(datasetPath, sampleSize, agg)
	if err != nil {
		return err
	}

	printSummary(agg)
	fmt.Printf("\nResults saved to: %s\n", outputPath)

	return nil
}

// runEvaluation identifies every record sequentially and scores each result
// against its ground-truth title.
func runEvaluation(ctx context.Context, identifier Identifier, records []dataset.DiscPhotoRecord, datasetPath string) []metrics.EvaluationResult {
	evalResults := make([]metrics.EvaluationResult, 0, len(records))

	for i, record := range records {
		slog.Info("Evaluating record", "id", record.ID, "progress", fmt.Sprintf("%d/%d", i+1, len(records)))

		imagePath := record.ResolveImagePath(datasetPath)
		result := metrics.EvaluationResult{
			ID:            record.ID,
			ImagePath:     imagePath,
			ExpectedTitle: record.Title,
		}

		start := time.Now()
		title, err := identifier.IdentifyFile(ctx, imagePath)
		result.ProcessingTime = time.Since(start)

		if err != nil {
			result.Error = err.Error()
			slog.Error("Identification failed", "id", record.ID, "err", err)
		} else {
			result.IdentifiedAs = title
			result.Match = metrics.CompareTitles(record.Title, title)
		}

		evalResults = append(evalResults, result)
	}

	return evalResults
}

func printSummary(agg *metrics.AggregateResults) {
	fmt.Printf("\nEvaluation summary\n")
	fmt.Printf("  Provider:           %s (%s)\n", agg.Provider, agg.Model)
	fmt.Printf("  Records:            %d\n", agg.TotalRecords)
	fmt.Printf("  Identified:         %d\n", agg.SuccessCount)
	fmt.Printf("  Failed:             %d\n", agg.FailureCount)
	fmt.Printf("  Exact matches:      %d\n", agg.ExactMatches)
	fmt.Printf("  Normalized matches: %d\n", agg.NormalizedMatches)
	fmt.Printf("  No matches:         %d\n", agg.NoMatches)
	fmt.Printf("  Overall accuracy:   %.2f\n", agg.OverallAccuracy)
	if agg.SuccessCount > 0 {
		fmt.Printf("  Avg time per image: %s\n", agg.AverageProcessingTime.Round(time.Millisecond))
	}
}
