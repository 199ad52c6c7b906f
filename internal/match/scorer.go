// Package match ranks candidate games by how much they share with a source game.
package match

import (
	"fmt"
	"sort"

	"gameatlas/backend/pkg/terms"
)

const (
	DefaultGenreWeight    = 3
	DefaultTagWeight      = 2
	DefaultPlatformWeight = 1
	DefaultMinScore       = 0
	DefaultLimit          = 10
)

// Attributes are the sets a game is compared on.
type Attributes struct {
	Genres    []string `json:"genres"`
	Tags      []string `json:"tags"`
	Platforms []string `json:"platforms"`
}

// Candidate is one entry of the pool being ranked.
type Candidate struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
	Attributes
}

// Result is a candidate together with its score.
type Result struct {
	Candidate
	Score int `json:"score"`
}

// Weights multiply the overlap count of each dimension.
type Weights struct {
	Genre    int `json:"genre"`
	Tag      int `json:"tag"`
	Platform int `json:"platform"`
}

// DefaultWeights returns the 3/2/1 genre/tag/platform weighting.
func DefaultWeights() Weights {
	return Weights{Genre: DefaultGenreWeight, Tag: DefaultTagWeight, Platform: DefaultPlatformWeight}
}

// Validate rejects negative weights, which would allow negative scores.
func (w Weights) Validate() error {
	if w.Genre < 0 || w.Tag < 0 || w.Platform < 0 {
		return fmt.Errorf("match weights must be non-negative, got genre=%d tag=%d platform=%d", w.Genre, w.Tag, w.Platform)
	}
	return nil
}

// Scorer scores and ranks candidates. Candidates scoring at or below MinScore
// are dropped and at most Limit results are returned.
type Scorer struct {
	Weights  Weights
	MinScore int
	Limit    int
}

// DefaultScorer returns a Scorer using the default weights, threshold and limit.
func DefaultScorer() Scorer {
	return Scorer{Weights: DefaultWeights(), MinScore: DefaultMinScore, Limit: DefaultLimit}
}

// Score computes the relevance of candidate to source with the default weights.
func Score(source, candidate Attributes) int {
	return DefaultScorer().Score(source, candidate)
}

// Rank ranks pool against source with the default scorer.
func Rank(source Attributes, pool []Candidate) []Result {
	return DefaultScorer().Rank(source, pool)
}

// Score returns the weighted sum of genre, tag and platform overlaps. Values
// are compared after terms.Normalize, so "Rôle" and "role" count as shared
// and duplicates within a set count once.
func (s Scorer) Score(source, candidate Attributes) int {
	return s.score(newProfile(source), newProfile(candidate))
}

// Rank scores every candidate, keeps those above MinScore and returns them
// sorted by descending score. Equal scores keep their order in pool.
func (s Scorer) Rank(source Attributes, pool []Candidate) []Result {
	return s.rank(source, pool, func(Candidate) bool { return false })
}

// RankExcluding is Rank with the candidate identified by sourceID left out, so a
// stored game is never reported as similar to itself.
func (s Scorer) RankExcluding(sourceID uint, source Attributes, pool []Candidate) []Result {
	return s.rank(source, pool, func(c Candidate) bool { return c.ID == sourceID })
}

func (s Scorer) rank(source Attributes, pool []Candidate, skip func(Candidate) bool) []Result {
	src := newProfile(source)

	results := make([]Result, 0, len(pool))
	for _, candidate := range pool {
		if skip(candidate) {
			continue
		}
		score := s.score(src, newProfile(candidate.Attributes))
		if score <= s.MinScore {
			continue
		}
		results = append(results, Result{Candidate: candidate, Score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if limit := s.limit(); len(results) > limit {
		results = results[:limit]
	}
	return results
}

func (s Scorer) limit() int {
	if s.Limit <= 0 {
		return DefaultLimit
	}
	return s.Limit
}

func (s Scorer) score(a, b profile) int {
	return overlap(a.genres, b.genres)*s.Weights.Genre +
		overlap(a.tags, b.tags)*s.Weights.Tag +
		overlap(a.platforms, b.platforms)*s.Weights.Platform
}

// Shared lists, per dimension, the normalised values both games have in common.
func Shared(source, candidate Attributes) Attributes {
	return Attributes{
		Genres:    intersect(source.Genres, candidate.Genres),
		Tags:      intersect(source.Tags, candidate.Tags),
		Platforms: intersect(source.Platforms, candidate.Platforms),
	}
}

type profile struct {
	genres, tags, platforms map[string]struct{}
}

func newProfile(a Attributes) profile {
	return profile{
		genres:    terms.Set(a.Genres),
		tags:      terms.Set(a.Tags),
		platforms: terms.Set(a.Platforms),
	}
}

func overlap(a, b map[string]struct{}) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	n := 0
	for v := range a {
		if _, ok := b[v]; ok {
			n++
		}
	}
	return n
}

func intersect(a, b []string) []string {
	other := terms.Set(b)
	shared := []string{}
	for _, v := range terms.Clean(a) {
		if _, ok := other[v]; ok {
			shared = append(shared, v)
		}
	}
	return shared
}
