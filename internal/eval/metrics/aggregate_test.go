package metrics

import (
	"testing"
	"time"
)

func TestAggregate(t *testing.T) {
	results := []EvaluationResult{
		{
			ID:             "disc1",
			ExpectedTitle:  "The Matrix",
			IdentifiedAs:   "The Matrix",
			Match:          TitleMatch{Score: 1.0, Method: "exact"},
			ProcessingTime: 2 * time.Second,
		},
		{
			ID:             "disc2",
			ExpectedTitle:  "Alien",
			IdentifiedAs:   "alien",
			Match:          TitleMatch{Score: 0.9, Method: "normalized"},
			ProcessingTime: 4 * time.Second,
		},
		{
			ID:            "disc3",
			ExpectedTitle: "Heat",
			IdentifiedAs:  "Unknown",
			Match:         TitleMatch{Score: 0.0, Method: "none"},
		},
		{
			ID:            "disc4",
			ExpectedTitle: "Ronin",
			Error:         "API Error",
		},
	}

	agg := Aggregate(results, "anthropic", "claude-sonnet-4-20250514")

	if agg.TotalRecords != 4 {
		t.Errorf("TotalRecords = %d, want 4", agg.TotalRecords)
	}
	if agg.SuccessCount != 3 {
		t.Errorf("SuccessCount = %d, want 3", agg.SuccessCount)
	}
	if agg.FailureCount != 1 {
		t.Errorf("FailureCount = %d, want 1", agg.FailureCount)
	}
	if agg.ExactMatches != 1 || agg.NormalizedMatches != 1 || agg.NoMatches != 1 {
		t.Errorf("match counts = %d/%d/%d, want 1/1/1", agg.ExactMatches, agg.NormalizedMatches, agg.NoMatches)
	}

	wantAccuracy := (1.0 + 0.9 + 0.0) / 3
	if diff := agg.OverallAccuracy - wantAccuracy; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("OverallAccuracy = %v, want %v", agg.OverallAccuracy, wantAccuracy)
	}

	if agg.TotalProcessingTime != 6*time.Second {
		t.Errorf("TotalProcessingTime = %v, want 6s", agg.TotalProcessingTime)
	}
	if agg.AverageProcessingTime != 2*time.Second {
		t.Errorf("AverageProcessingTime = %v, want 2s", agg.AverageProcessingTime)
	}

	if agg.Provider != "anthropic" || agg.Model != "claude-sonnet-4-20250514" {
		t.Errorf("provider/model = %s/%s", agg.Provider, agg.Model)
	}
}

func TestAggregateEmpty(t *testing.T) {
	agg := Aggregate(nil, "openai", "gpt-4o")

	if agg.TotalRecords != 0 || agg.SuccessCount != 0 || agg.FailureCount != 0 {
		t.Errorf("counts should all be zero, got %d/%d/%d", agg.TotalRecords, agg.SuccessCount, agg.FailureCount)
	}
	if agg.OverallAccuracy != 0 {
		t.Errorf("OverallAccuracy = %v, want 0", agg.OverallAccuracy)
	}
}
