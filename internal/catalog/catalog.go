// Package catalog keeps an in-memory snapshot of the games table. The snapshot
// is the candidate pool for similar-game ranking and discovery search.
package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gameatlas/backend/internal/discovery"
	"gameatlas/backend/internal/match"
	"gameatlas/backend/internal/models"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Loader fetches every game with its tags preloaded.
type Loader func(ctx context.Context) ([]models.Game, error)

// GormLoader loads games from db.
func GormLoader(db *gorm.DB) Loader {
	return func(ctx context.Context) ([]models.Game, error) {
		var games []models.Game
		if err := db.WithContext(ctx).Preload("Tags").Order("id").Find(&games).Error; err != nil {
			return nil, err
		}
		return games, nil
	}
}

// Entry is one game in the views used by the matcher and the discovery filter.
type Entry struct {
	Record    discovery.Record
	Candidate match.Candidate
}

// Catalog is safe for concurrent use. Snapshots are replaced, never mutated.
type Catalog struct {
	load Loader

	mu          sync.RWMutex
	records     []discovery.Record
	candidates  []match.Candidate
	byID        map[uint]int
	refreshedAt time.Time
}

// Global is the catalog shared by the HTTP handlers.
var Global = New(func(context.Context) ([]models.Game, error) { return nil, nil })

// New returns an empty catalog; call Refresh to populate it.
func New(load Loader) *Catalog {
	return &Catalog{load: load, byID: map[uint]int{}}
}

// FromGames returns a catalog already holding games.
func FromGames(games []models.Game) *Catalog {
	c := New(func(context.Context) ([]models.Game, error) { return games, nil })
	c.swap(games)
	return c
}

// Refresh reloads the snapshot. On error the previous snapshot stays in place.
func (c *Catalog) Refresh(ctx context.Context) error {
	games, err := c.load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	c.swap(games)
	return nil
}

func (c *Catalog) swap(games []models.Game) {
	records := make([]discovery.Record, len(games))
	candidates := make([]match.Candidate, len(games))
	byID := make(map[uint]int, len(games))
	for i, g := range games {
		records[i] = ToRecord(g)
		candidates[i] = ToCandidate(g)
		byID[g.ID] = i
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = records
	c.candidates = candidates
	c.byID = byID
	c.refreshedAt = time.Now()
}

// Records returns the discovery view of the snapshot.
func (c *Catalog) Records() []discovery.Record {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.records
}

// Candidates returns the match view of the snapshot.
func (c *Catalog) Candidates() []match.Candidate {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.candidates
}

// Find looks a game up by ID.
func (c *Catalog) Find(id uint) (Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := c.byID[id]
	if !ok {
		return Entry{}, false
	}
	return Entry{Record: c.records[i], Candidate: c.candidates[i]}, true
}

// Len is the number of games in the snapshot.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}

// RefreshedAt is the time of the last successful refresh.
func (c *Catalog) RefreshedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.refreshedAt
}

// Start refreshes the catalog once and then every interval until the returned
// scheduler is shut down. The first refresh error is returned.
func (c *Catalog) Start(ctx context.Context, interval time.Duration) (gocron.Scheduler, error) {
	if err := c.Refresh(ctx); err != nil {
		return nil, err
	}

	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	_, err = sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			if err := c.Refresh(ctx); err != nil {
				log.Error().Err(err).Msg("[Catalog] refresh failed")
				return
			}
			log.Debug().Int("games", c.Len()).Msg("[Catalog] refreshed")
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = sched.Shutdown()
		return nil, fmt.Errorf("failed to schedule catalog refresh: %w", err)
	}

	sched.Start()
	return sched, nil
}

// ToRecord flattens a game for the discovery filter.
func ToRecord(g models.Game) discovery.Record {
	return discovery.Record{
		ID:          g.ID,
		Title:       g.Title,
		Genres:      []string(g.Genres),
		Platforms:   []string(g.Platforms),
		Tags:        g.TagNames(),
		Price:       g.Price,
		Rating:      g.Rating,
		ReleaseYear: g.ReleaseYear,
		Downloads:   g.Downloads,
		Revenue:     g.Revenue,
	}
}

// ToCandidate flattens a game for the matcher.
func ToCandidate(g models.Game) match.Candidate {
	return match.Candidate{
		ID:    g.ID,
		Title: g.Title,
		Attributes: match.Attributes{
			Genres:    []string(g.Genres),
			Tags:      g.TagNames(),
			Platforms: []string(g.Platforms),
		},
	}
}
