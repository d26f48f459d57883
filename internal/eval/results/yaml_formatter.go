package results

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/discshelf/discnamer/internal/eval/metrics"
	"gopkg.in/yaml.v3"
)

// EvalConfig represents the configuration section of the eval YAML
type EvalConfig struct {
	Provider    string `yaml:"provider"`
	Model       string `yaml:"model"`
	DatasetPath string `yaml:"datasetpath"`
	SampleSize  int    `yaml:"samplesize"`
	Timestamp   string `yaml:"timestamp"`
}

// EvalResult represents a single evaluation result
type EvalResult struct {
	Identifier    string  `yaml:"identifier"`
	ExpectedTitle string  `yaml:"expectedtitle"`
	IdentifiedAs  string  `yaml:"identifiedas"`
	Score         float64 `yaml:"score"`
	Method        string  `yaml:"method"`
	Error         string  `yaml:"error,omitempty"`
}

// EvalSummary represents the aggregate section of the eval YAML
type EvalSummary struct {
	TotalRecords      int     `yaml:"totalrecords"`
	SuccessCount      int     `yaml:"successcount"`
	FailureCount      int     `yaml:"failurecount"`
	ExactMatches      int     `yaml:"exactmatches"`
	NormalizedMatches int     `yaml:"normalizedmatches"`
	NoMatches         int     `yaml:"nomatches"`
	OverallAccuracy   float64 `yaml:"overallaccuracy"`
}

// EvalSpec represents the complete evaluation report
type EvalSpec struct {
	Config  EvalConfig   `yaml:"config"`
	Summary EvalSummary  `yaml:"summary"`
	Results []EvalResult `yaml:"results"`
}

// SaveToYAML saves evaluation results to a YAML file in evals/ directory
func SaveToYAML(datasetPath string, sampleSize int, agg *metrics.AggregateResults) (string, error) {
	if err := os.MkdirAll("evals", 0755); err != nil {
		return "", fmt.Errorf("failed to create evals directory: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")

	spec := EvalSpec{
		Config: EvalConfig{
			Provider:    agg.Provider,
			Model:       agg.Model,
			DatasetPath: datasetPath,
			SampleSize:  sampleSize,
			Timestamp:   timestamp,
		},
		Summary: EvalSummary{
			TotalRecords:      agg.TotalRecords,
			SuccessCount:      agg.SuccessCount,
			FailureCount:      agg.FailureCount,
			ExactMatches:      agg.ExactMatches,
			NormalizedMatches: agg.NormalizedMatches,
			NoMatches:         agg.NoMatches,
			OverallAccuracy:   agg.OverallAccuracy,
		},
		Results: make([]EvalResult, 0, len(agg.Results)),
	}

	for _, r := range agg.Results {
		spec.Results = append(spec.Results, EvalResult{
			Identifier:    r.ID,
			ExpectedTitle: r.ExpectedTitle,
			IdentifiedAs:  r.IdentifiedAs,
			Score:         r.Match.Score,
			Method:        r.Match.Method,
			Error:         r.Error,
		})
	}

	data, err := yaml.Marshal(&spec)
	if err != nil {
		return "", fmt.Errorf("failed to marshal eval results: %w", err)
	}

	outputPath := filepath.Join("evals", fmt.Sprintf("eval_%s_%s.yaml", agg.Provider, timestamp))
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write eval results: %w", err)
	}

	return outputPath, nil
}
