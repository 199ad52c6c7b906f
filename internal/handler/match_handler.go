package handler

import (
	"net/http"
	"strconv"

	"gameatlas/backend/internal/catalog"
	"gameatlas/backend/internal/match"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// MatchInput describes the developer's own game. It does not need to exist in the catalog.
type MatchInput struct {
	Genres    []string `json:"genres" example:"RPG,Roguelike"`
	Tags      []string `json:"tags" example:"Pixel Art"`
	Platforms []string `json:"platforms" example:"PC"`
	ExcludeID uint     `json:"exclude_id"`
	Limit     int      `json:"limit" binding:"omitempty,min=1,max=50"`
}

// MatchResponse is one ranked game together with what it shares with the source.
type MatchResponse struct {
	ID        uint             `json:"id"`
	Title     string           `json:"title"`
	Score     int              `json:"score"`
	Genres    []string         `json:"genres"`
	Tags      []string         `json:"tags"`
	Platforms []string         `json:"platforms"`
	Shared    match.Attributes `json:"shared"`
}

func newMatchResponses(source match.Attributes, results []match.Result) []MatchResponse {
	response := make([]MatchResponse, 0, len(results))
	for _, r := range results {
		response = append(response, MatchResponse{
			ID:        r.ID,
			Title:     r.Title,
			Score:     r.Score,
			Genres:    nonNil(r.Genres),
			Tags:      nonNil(r.Tags),
			Platforms: nonNil(r.Platforms),
			Shared:    match.Shared(source, r.Attributes),
		})
	}
	return response
}

// endregion

// MatchGames godoc
// @Summary      Rank similar games
// @Description  Scores every catalog game against the given genres, tags and platforms and returns the best matches.
// @Tags         match
// @Accept       json
// @Produce      json
// @Param        input body MatchInput true "Source game attributes"
// @Success      200  {array}   MatchResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /match [post]
func MatchGames(c *gin.Context) {
	var input MatchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s := scorer()
	if input.Limit > 0 {
		s.Limit = input.Limit
	}

	source := match.Attributes{Genres: input.Genres, Tags: input.Tags, Platforms: input.Platforms}
	results := s.RankExcluding(input.ExcludeID, source, catalog.Global.Candidates())

	c.JSON(http.StatusOK, newMatchResponses(source, results))
}

// GetSimilarGames godoc
// @Summary      Get games similar to a stored game
// @Description  Ranks the catalog against a stored game. The game itself is never part of the result.
// @Tags         match
// @Produce      json
// @Param        id    path   int  true   "Game ID"
// @Param        limit query  int  false  "Maximum number of results" default(10)
// @Success      200  {array}   MatchResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Game not found"
// @Router       /games/{id}/similar [get]
func GetSimilarGames(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	entry, found := catalog.Global.Find(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	s := scorer()
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > 50 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 50"})
			return
		}
		s.Limit = limit
	}

	source := entry.Candidate.Attributes
	results := s.RankExcluding(id, source, catalog.Global.Candidates())

	c.JSON(http.StatusOK, newMatchResponses(source, results))
}
