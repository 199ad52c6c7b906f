// Package discovery filters the game catalog for the discovery search.
package discovery

import (
	"cmp"
	"strings"

	"gameatlas/backend/pkg/terms"
)

// Record is the flattened view of a game that filters run against.
// Nil numeric fields mean the value is unknown.
type Record struct {
	ID          uint     `json:"id"`
	Title       string   `json:"title"`
	Genres      []string `json:"genres"`
	Platforms   []string `json:"platforms"`
	Tags        []string `json:"tags"`
	Price       *float64 `json:"price,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	ReleaseYear *int     `json:"release_year,omitempty"`
	Downloads   *int64   `json:"downloads,omitempty"`
	Revenue     *float64 `json:"revenue,omitempty"`
}

// Range is an inclusive range. A nil bound is open.
type Range[T cmp.Ordered] struct {
	Min *T `json:"min,omitempty"`
	Max *T `json:"max,omitempty"`
}

// IsSet reports whether either bound is present.
func (r Range[T]) IsSet() bool {
	return r.Min != nil || r.Max != nil
}

// Contains reports whether v lies within the bounds.
func (r Range[T]) Contains(v T) bool {
	if r.Min != nil && v < *r.Min {
		return false
	}
	if r.Max != nil && v > *r.Max {
		return false
	}
	return true
}

// allows is the per-dimension check: unset ranges and unknown values pass.
func (r Range[T]) allows(v *T) bool {
	if !r.IsSet() || v == nil {
		return true
	}
	return r.Contains(*v)
}

// Filter describes a discovery query. Every present criterion must hold.
type Filter struct {
	Platforms   []string       `json:"platforms,omitempty"`
	Genres      []string       `json:"genres,omitempty"`
	Tags        []string       `json:"tags,omitempty"`
	Price       Range[float64] `json:"price"`
	Rating      Range[float64] `json:"rating"`
	ReleaseYear Range[int]     `json:"release_year"`
	Downloads   Range[int64]   `json:"downloads"`
	Revenue     Range[float64] `json:"revenue"`
}

// IsEmpty reports whether f has no criteria at all.
func (f Filter) IsEmpty() bool {
	return len(terms.Clean(f.Platforms)) == 0 &&
		len(terms.Clean(f.Genres)) == 0 &&
		len(terms.Clean(f.Tags)) == 0 &&
		!f.Price.IsSet() &&
		!f.Rating.IsSet() &&
		!f.ReleaseYear.IsSet() &&
		!f.Downloads.IsSet() &&
		!f.Revenue.IsSet()
}

// Apply returns the candidates that satisfy f, in their original order.
// An empty filter returns candidates as given.
func Apply(candidates []Record, f Filter) []Record {
	if f.IsEmpty() {
		return candidates
	}

	m := compile(f)
	matched := make([]Record, 0, len(candidates))
	for _, r := range candidates {
		if m.matches(r) {
			matched = append(matched, r)
		}
	}
	return matched
}

// Matches reports whether a single record satisfies f.
func Matches(r Record, f Filter) bool {
	return compile(f).matches(r)
}

// MatchTerm reports whether value matches term: either normalised string
// contains the other, or the same holds for one of the term's aliases.
func MatchTerm(value, term string, aliases AliasTable) bool {
	v := terms.Normalize(value)
	if v == "" {
		return false
	}
	for _, t := range aliases.Expand(term) {
		if containsEither(v, t) {
			return true
		}
	}
	return false
}

func containsEither(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// matcher holds a filter with its terms normalised and expanded once.
type matcher struct {
	platforms [][]string
	genres    [][]string
	tags      [][]string
	f         Filter
}

func compile(f Filter) matcher {
	return matcher{
		platforms: expandAll(f.Platforms, PlatformAliases),
		genres:    expandAll(f.Genres, GenreAliases),
		tags:      expandAll(f.Tags, nil),
		f:         f,
	}
}

func expandAll(filterTerms []string, aliases AliasTable) [][]string {
	var groups [][]string
	for _, t := range terms.Clean(filterTerms) {
		groups = append(groups, aliases.Expand(t))
	}
	return groups
}

func (m matcher) matches(r Record) bool {
	return anyMatch(r.Platforms, m.platforms) &&
		anyMatch(r.Genres, m.genres) &&
		anyMatch(r.Tags, m.tags) &&
		m.f.Price.allows(r.Price) &&
		m.f.Rating.allows(r.Rating) &&
		m.f.ReleaseYear.allows(r.ReleaseYear) &&
		m.f.Downloads.allows(r.Downloads) &&
		m.f.Revenue.allows(r.Revenue)
}

// anyMatch is true when no groups are given, or when some value matches some
// expanded group.
func anyMatch(values []string, groups [][]string) bool {
	if len(groups) == 0 {
		return true
	}
	for _, raw := range values {
		v := terms.Normalize(raw)
		if v == "" {
			continue
		}
		for _, group := range groups {
			for _, t := range group {
				if containsEither(v, t) {
					return true
				}
			}
		}
	}
	return false
}
