// Package terms normalises free-form genre, platform and tag strings so they can
// be compared across data sources.
package terms

import (
	"strings"

	"github.com/gosimple/unidecode"
	"golang.org/x/text/cases"
)

// Normalize transliterates s to ASCII, case-folds it and collapses whitespace.
// "  Rôle-Playing  Game " becomes "role-playing game".
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	folded := cases.Fold().String(unidecode.Unidecode(s))
	return strings.Join(strings.Fields(folded), " ")
}

// Set returns the distinct non-blank normalised values of values.
func Set(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		if n := Normalize(v); n != "" {
			set[n] = struct{}{}
		}
	}
	return set
}

// Clean normalises values, dropping blanks and duplicates while keeping order.
func Clean(values []string) []string {
	var out []string
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		n := Normalize(v)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
