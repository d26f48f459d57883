// Package naming derives filesystem-safe names from movie titles and picks
// collision-free destination paths.
package naming

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

// reservedReplacer strips characters that are unsafe in filenames.
var reservedReplacer = strings.NewReplacer(
	"<", "",
	">", "",
	":", "",
	"\"", "",
	"/", "",
	"\\", "",
	"|", "",
	"?", "",
	"*", "",
)

// SanitizeTitle converts a movie title into a safe Title_Case filename token.
// Reserved filesystem characters are removed, spaces become underscores, runs
// of underscores collapse to one, and each underscore-delimited word gets an
// uppercase leading character. The rest of each word keeps its casing.
// Degenerate input may produce an empty token; callers must tolerate that.
func SanitizeTitle(title string) string {
	sanitized := reservedReplacer.Replace(title)
	sanitized = strings.ReplaceAll(sanitized, " ", "_")
	for strings.Contains(sanitized, "__") {
		sanitized = strings.ReplaceAll(sanitized, "__", "_")
	}
	sanitized = strings.Trim(sanitized, "_")

	words := strings.Split(sanitized, "_")
	for i, word := range words {
		words[i] = upperFirst(word)
	}
	return strings.Join(words, "_")
}

func upperFirst(word string) string {
	if word == "" {
		return word
	}
	r, size := utf8.DecodeRuneInString(word)
	return string(unicode.ToUpper(r)) + word[size:]
}

// Candidate returns the nth filename candidate for a base name. The first
// attempt (n=0) carries no suffix; later attempts append _1, _2, and so on.
func Candidate(base string, n int, ext string) string {
	if n == 0 {
		return base + ext
	}
	return fmt.Sprintf("%s_%d%s", base, n, ext)
}

// AvailablePath probes dir for the first candidate path that does not exist
// yet. The filesystem is re-checked on every attempt so the answer stays
// correct even when earlier placements landed between calls.
func AvailablePath(dir, base, ext string) string {
	for n := 0; ; n++ {
		candidate := filepath.Join(dir, Candidate(base, n, ext))
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}
