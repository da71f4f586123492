// Package similarity scores how alike two game titles are.
//
// Titles are normalized first (uppercase, colons dropped, hyphens turned into
// spaces, runs of spaces collapsed) and then compared character by character
// with the Ratcliff/Obershelp ratio implemented by difflib's SequenceMatcher.
package similarity

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Normalize prepares a title for comparison.
func Normalize(title string) string {
	title = strings.ToUpper(title)
	title = strings.ReplaceAll(title, ":", "")
	title = strings.ReplaceAll(title, "-", " ")
	return strings.Join(strings.Fields(title), " ")
}

// Ratio returns the similarity of two titles in [0, 1]. Two titles that both
// normalize to the empty string score 1.
func Ratio(a, b string) float64 {
	m := difflib.NewMatcher(chars(Normalize(a)), chars(Normalize(b)))
	return m.Ratio()
}

func chars(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
