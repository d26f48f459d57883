package metrics

import "testing"

func TestCompareTitles(t *testing.T) {
	tests := []struct {
		name       string
		expected   string
		actual     string
		wantScore  float64
		wantMethod string
	}{
		{
			name:       "exact match",
			expected:   "The Matrix",
			actual:     "The Matrix",
			wantScore:  1.0,
			wantMethod: "exact",
		},
		{
			name:       "case difference",
			expected:   "The Matrix",
			actual:     "the matrix",
			wantScore:  0.9,
			wantMethod: "normalized",
		},
		{
			name:       "leading article dropped",
			expected:   "The Matrix",
			actual:     "Matrix",
			wantScore:  0.9,
			wantMethod: "normalized",
		},
		{
			name:       "punctuation difference",
			expected:   "Spider-Man: Into the Spider-Verse",
			actual:     "Spider Man Into the Spider Verse",
			wantScore:  0.9,
			wantMethod: "normalized",
		},
		{
			name:       "different movie",
			expected:   "The Matrix",
			actual:     "Blade Runner",
			wantScore:  0.0,
			wantMethod: "none",
		},
		{
			name:       "sentinel response",
			expected:   "The Matrix",
			actual:     "Unknown",
			wantScore:  0.0,
			wantMethod: "none",
		},
		{
			name:       "empty actual",
			expected:   "The Matrix",
			actual:     "",
			wantScore:  0.0,
			wantMethod: "none",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match := CompareTitles(tt.expected, tt.actual)
			if match.Score != tt.wantScore {
				t.Errorf("score = %v, want %v", match.Score, tt.wantScore)
			}
			if match.Method != tt.wantMethod {
				t.Errorf("method = %q, want %q", match.Method, tt.wantMethod)
			}
		})
	}
}

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected string
	}{
		{
			name:     "lowercases",
			title:    "BLADE RUNNER",
			expected: "blade runner",
		},
		{
			name:     "strips punctuation",
			title:    "WALL-E",
			expected: "walle",
		},
		{
			name:     "drops leading article",
			title:    "The Godfather",
			expected: "godfather",
		},
		{
			name:     "keeps bare article",
			title:    "The",
			expected: "the",
		},
		{
			name:     "collapses whitespace",
			title:    "  2001:  A   Space Odyssey ",
			expected: "2001 a space odyssey",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := normalizeTitle(tt.title)
			if result != tt.expected {
				t.Errorf("normalizeTitle(%q) = %q, want %q", tt.title, result, tt.expected)
			}
		})
	}
}
