package catalog

import (
	"context"
	"errors"
	"reflect"
	"sync/atomic"
	"testing"
	"time"

	"gameatlas/backend/internal/models"

	"gorm.io/gorm"
)

func ptr[T any](v T) *T { return &v }

func game(id uint, title string, genres, platforms []string, tags ...string) models.Game {
	g := models.Game{
		Model:     gorm.Model{ID: id},
		Title:     title,
		Genres:    genres,
		Platforms: platforms,
	}
	for _, name := range tags {
		g.Tags = append(g.Tags, &models.Tag{Name: name})
	}
	return g
}

func TestFromGames(t *testing.T) {
	g := game(7, "Dungeon Tale", []string{"RPG"}, []string{"PC"}, "Pixel Art", "Co-op")
	g.Price = ptr(9.99)
	c := FromGames([]models.Game{g})

	if c.Len() != 1 {
		t.Fatalf("Expected 1 game but got %d", c.Len())
	}

	entry, ok := c.Find(7)
	if !ok {
		t.Fatal("Expected to find game 7")
	}
	if entry.Record.Title != "Dungeon Tale" || *entry.Record.Price != 9.99 {
		t.Errorf("Unexpected record %+v", entry.Record)
	}
	if want := []string{"Pixel Art", "Co-op"}; !reflect.DeepEqual(entry.Candidate.Tags, want) {
		t.Errorf("Expected tags %v but got %v", want, entry.Candidate.Tags)
	}
	if want := []string{"RPG"}; !reflect.DeepEqual(entry.Candidate.Genres, want) {
		t.Errorf("Expected genres %v but got %v", want, entry.Candidate.Genres)
	}

	if _, ok := c.Find(8); ok {
		t.Error("Expected game 8 to be missing")
	}
}

func TestRefreshKeepsSnapshotOnError(t *testing.T) {
	fail := false
	c := New(func(context.Context) ([]models.Game, error) {
		if fail {
			return nil, errors.New("connection refused")
		}
		return []models.Game{game(1, "A", nil, nil), game(2, "B", nil, nil)}, nil
	})

	if err := c.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}
	refreshedAt := c.RefreshedAt()

	fail = true
	if err := c.Refresh(context.Background()); err == nil {
		t.Fatal("Expected an error from the failing loader")
	}
	if c.Len() != 2 {
		t.Errorf("Expected the previous snapshot of 2 games but got %d", c.Len())
	}
	if !c.RefreshedAt().Equal(refreshedAt) {
		t.Error("Expected RefreshedAt to be unchanged after a failed refresh")
	}
}

func TestViewsShareOrder(t *testing.T) {
	c := FromGames([]models.Game{game(3, "C", nil, nil), game(1, "A", nil, nil), game(2, "B", nil, nil)})

	records, candidates := c.Records(), c.Candidates()
	for i := range records {
		if records[i].ID != candidates[i].ID {
			t.Errorf("Position %d: record %d, candidate %d", i, records[i].ID, candidates[i].ID)
		}
	}
}

func TestStartRefreshesPeriodically(t *testing.T) {
	var calls atomic.Int32
	c := New(func(context.Context) ([]models.Game, error) {
		calls.Add(1)
		return nil, nil
	})

	sched, err := c.Start(context.Background(), 20*time.Millisecond)
	if err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	defer sched.Shutdown()

	deadline := time.Now().Add(2 * time.Second)
	for calls.Load() < 3 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if got := calls.Load(); got < 3 {
		t.Errorf("Expected at least 3 loads but got %d", got)
	}
}

func TestStartFailsOnInitialError(t *testing.T) {
	c := New(func(context.Context) ([]models.Game, error) {
		return nil, errors.New("no database")
	})
	if _, err := c.Start(context.Background(), time.Minute); err == nil {
		t.Error("Expected Start to fail when the first refresh fails")
	}
}
