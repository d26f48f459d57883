package metrics

import (
	"strings"
	"unicode"
)

// TitleMatch represents the comparison result between a ground-truth title
// and an identified title
type TitleMatch struct {
	Expected string
	Actual   string
	Score    float64 // 0.0 to 1.0
	Method   string  // "exact", "normalized", "none"
}

// CompareTitles compares an identified title against the ground truth.
// An exact string match scores 1.0. Titles that agree after normalization
// (case, punctuation, articles) score 0.9. Everything else scores 0.
func CompareTitles(expected, actual string) TitleMatch {
	match := TitleMatch{
		Expected: expected,
		Actual:   actual,
	}

	if expected == actual {
		match.Score = 1.0
		match.Method = "exact"
		return match
	}

	if normalizeTitle(expected) != "" && normalizeTitle(expected) == normalizeTitle(actual) {
		match.Score = 0.9
		match.Method = "normalized"
		return match
	}

	match.Method = "none"
	return match
}

// normalizeTitle folds a title for tolerant comparison: lowercase, strip
// punctuation, collapse whitespace, drop a leading article.
func normalizeTitle(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}

	fields := strings.Fields(b.String())
	if len(fields) > 1 {
		switch fields[0] {
		case "the", "a", "an":
			fields = fields[1:]
		}
	}
	return strings.Join(fields, " ")
}
