package match

import (
	"reflect"
	"testing"
)

func attrs(genres, tags, platforms []string) Attributes {
	return Attributes{Genres: genres, Tags: tags, Platforms: platforms}
}

func TestScore(t *testing.T) {
	tt := []struct {
		name      string
		source    Attributes
		candidate Attributes
		expected  int
	}{
		{"Empty sets", Attributes{}, Attributes{}, 0},
		{"No overlap", attrs([]string{"RPG"}, nil, nil), attrs([]string{"Shooter"}, nil, nil), 0},
		{"One genre", attrs([]string{"RPG"}, nil, nil), attrs([]string{"RPG", "Action"}, nil, nil), 3},
		{"One tag", attrs(nil, []string{"pixel art"}, nil), attrs(nil, []string{"pixel art"}, nil), 2},
		{"One platform", attrs(nil, nil, []string{"PC"}), attrs(nil, nil, []string{"PC"}), 1},
		{
			"All dimensions",
			attrs([]string{"RPG", "Action"}, []string{"pixel art", "co-op"}, []string{"PC", "Switch"}),
			attrs([]string{"RPG", "Action"}, []string{"co-op"}, []string{"Switch", "PS5"}),
			2*3 + 1*2 + 1*1,
		},
		{"Case insensitive", attrs([]string{"rpg"}, nil, nil), attrs([]string{"RPG"}, nil, nil), 3},
		{"Duplicates count once", attrs([]string{"RPG", "rpg"}, nil, nil), attrs([]string{"RPG"}, nil, nil), 3},
		{"Blank values ignored", attrs([]string{""}, nil, nil), attrs([]string{" "}, nil, nil), 0},
		{"Accents folded", attrs(nil, []string{"Rôle"}, nil), attrs(nil, []string{"role"}, nil), 2},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			if got := Score(tc.source, tc.candidate); got != tc.expected {
				t.Errorf("Expected %d but got %d", tc.expected, got)
			}
		})
	}
}

func TestScoreIsSymmetricAndNonNegative(t *testing.T) {
	games := []Attributes{
		{},
		attrs([]string{"RPG"}, []string{"roguelike"}, []string{"PC"}),
		attrs([]string{"RPG", "Strategy"}, []string{"roguelike", "turn-based"}, []string{"PC", "Mac"}),
		attrs([]string{"Puzzle"}, nil, []string{"Switch", "PC"}),
	}

	for i, a := range games {
		for j, b := range games {
			ab, ba := Score(a, b), Score(b, a)
			if ab != ba {
				t.Errorf("Score(%d,%d)=%d but Score(%d,%d)=%d", i, j, ab, j, i, ba)
			}
			if ab < 0 {
				t.Errorf("Score(%d,%d)=%d is negative", i, j, ab)
			}
		}
	}
}

func TestRankOrdersAndFilters(t *testing.T) {
	source := attrs([]string{"RPG"}, []string{"pixel art"}, []string{"PC"})
	pool := []Candidate{
		{ID: 1, Title: "Platform only", Attributes: attrs(nil, nil, []string{"PC"})},
		{ID: 2, Title: "Nothing shared", Attributes: attrs([]string{"Sports"}, nil, []string{"PS5"})},
		{ID: 3, Title: "Genre and tag", Attributes: attrs([]string{"RPG"}, []string{"pixel art"}, nil)},
		{ID: 4, Title: "Genre only", Attributes: attrs([]string{"RPG"}, nil, nil)},
	}

	results := Rank(source, pool)

	var ids []uint
	var scores []int
	for _, r := range results {
		ids = append(ids, r.ID)
		scores = append(scores, r.Score)
	}
	if want := []uint{3, 4, 1}; !reflect.DeepEqual(ids, want) {
		t.Errorf("Expected ids %v but got %v", want, ids)
	}
	if want := []int{5, 3, 1}; !reflect.DeepEqual(scores, want) {
		t.Errorf("Expected scores %v but got %v", want, scores)
	}
}

func TestRankKeepsInputOrderOnTies(t *testing.T) {
	source := attrs([]string{"RPG"}, nil, nil)
	var pool []Candidate
	for id := uint(1); id <= 5; id++ {
		pool = append(pool, Candidate{ID: id, Attributes: attrs([]string{"RPG"}, nil, nil)})
	}

	results := Rank(source, pool)
	for i, r := range results {
		if r.ID != uint(i+1) {
			t.Fatalf("Expected position %d to hold id %d but got %d", i, i+1, r.ID)
		}
	}
}

func TestRankLimitsResults(t *testing.T) {
	source := attrs(nil, nil, []string{"PC"})
	var pool []Candidate
	for id := uint(1); id <= 25; id++ {
		pool = append(pool, Candidate{ID: id, Attributes: attrs(nil, nil, []string{"PC"})})
	}

	if got := len(Rank(source, pool)); got != DefaultLimit {
		t.Errorf("Expected %d results but got %d", DefaultLimit, got)
	}

	scorer := DefaultScorer()
	scorer.Limit = 3
	if got := len(scorer.Rank(source, pool)); got != 3 {
		t.Errorf("Expected 3 results but got %d", got)
	}
}

func TestRankEmptyPool(t *testing.T) {
	if got := Rank(attrs([]string{"RPG"}, nil, nil), nil); len(got) != 0 {
		t.Errorf("Expected no results but got %v", got)
	}
}

func TestRankExcludingSkipsSource(t *testing.T) {
	source := attrs([]string{"RPG"}, nil, nil)
	pool := []Candidate{
		{ID: 7, Attributes: source},
		{ID: 8, Attributes: source},
	}

	results := DefaultScorer().RankExcluding(7, source, pool)
	if len(results) != 1 || results[0].ID != 8 {
		t.Errorf("Expected only id 8 but got %v", results)
	}
}

func TestCustomWeightsAndThreshold(t *testing.T) {
	scorer := Scorer{Weights: Weights{Genre: 1, Tag: 0, Platform: 5}, MinScore: 4}
	source := attrs([]string{"RPG"}, []string{"co-op"}, []string{"PC"})
	pool := []Candidate{
		{ID: 1, Attributes: attrs([]string{"RPG"}, []string{"co-op"}, nil)},
		{ID: 2, Attributes: attrs(nil, nil, []string{"PC"})},
	}

	if got := scorer.Score(source, pool[0].Attributes); got != 1 {
		t.Errorf("Expected score 1 but got %d", got)
	}

	results := scorer.Rank(source, pool)
	if len(results) != 1 || results[0].ID != 2 || results[0].Score != 5 {
		t.Errorf("Expected only id 2 with score 5 but got %v", results)
	}
}

func TestWeightsValidate(t *testing.T) {
	if err := DefaultWeights().Validate(); err != nil {
		t.Errorf("Expected default weights to be valid, got %v", err)
	}
	if err := (Weights{Genre: -1}).Validate(); err == nil {
		t.Error("Expected an error for a negative weight")
	}
}

func TestShared(t *testing.T) {
	got := Shared(
		attrs([]string{"RPG", "Action"}, []string{"Co-op"}, []string{"PC"}),
		attrs([]string{"action", "rpg"}, []string{"co-op", "Roguelike"}, []string{"Switch"}),
	)
	want := Attributes{Genres: []string{"rpg", "action"}, Tags: []string{"co-op"}, Platforms: []string{}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %+v but got %+v", want, got)
	}
}
