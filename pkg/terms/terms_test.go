package terms

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tt := []struct {
		name     string
		input    string
		expected string
	}{
		{"Empty", "", ""},
		{"Lowercases", "RPG", "rpg"},
		{"Trims and collapses spaces", "  Open   World ", "open world"},
		{"Strips accents", "Pokémon", "pokemon"},
		{"Keeps punctuation", "Beat 'em up", "beat 'em up"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.input); got != tc.expected {
				t.Errorf("Expected %q but got %q", tc.expected, got)
			}
		})
	}
}

func TestSetDropsBlanksAndDuplicates(t *testing.T) {
	set := Set([]string{"RPG", "rpg", " ", "Action"})
	if len(set) != 2 {
		t.Fatalf("Expected 2 entries but got %d: %v", len(set), set)
	}
	for _, want := range []string{"rpg", "action"} {
		if _, ok := set[want]; !ok {
			t.Errorf("Expected %q in set %v", want, set)
		}
	}
}

func TestCleanKeepsOrder(t *testing.T) {
	got := Clean([]string{"Steam", "", "PC", "steam"})
	want := []string{"steam", "pc"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v but got %v", want, got)
	}
}
