package metrics

import (
	"time"
)

// EvaluationResult represents the outcome for a single labeled photo
type EvaluationResult struct {
	ID             string
	ImagePath      string
	ExpectedTitle  string
	IdentifiedAs   string
	Match          TitleMatch
	ProcessingTime time.Duration
	Error          string // If identification failed
}

// AggregateResults represents aggregated evaluation metrics
type AggregateResults struct {
	TotalRecords int
	SuccessCount int
	FailureCount int

	ExactMatches      int
	NormalizedMatches int
	NoMatches         int

	// Mean match score across successful identifications
	OverallAccuracy float64

	AverageProcessingTime time.Duration
	TotalProcessingTime   time.Duration

	Results []EvaluationResult

	EvaluationDate time.Time
	Provider       string
	Model          string
}

// Aggregate rolls individual evaluation results into summary statistics
func Aggregate(results []EvaluationResult, provider, model string) *AggregateResults {
	agg := &AggregateResults{
		TotalRecords:   len(results),
		Results:        results,
		EvaluationDate: time.Now(),
		Provider:       provider,
		Model:          model,
	}

	var scoreSum float64
	for _, r := range results {
		if r.Error != "" {
			agg.FailureCount++
			continue
		}
		agg.SuccessCount++
		scoreSum += r.Match.Score
		agg.TotalProcessingTime += r.ProcessingTime

		switch r.Match.Method {
		case "exact":
			agg.ExactMatches++
		case "normalized":
			agg.NormalizedMatches++
		default:
			agg.NoMatches++
		}
	}

	if agg.SuccessCount > 0 {
		agg.OverallAccuracy = scoreSum / float64(agg.SuccessCount)
		agg.AverageProcessingTime = agg.TotalProcessingTime / time.Duration(agg.SuccessCount)
	}

	return agg
}
