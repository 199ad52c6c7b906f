package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"gameatlas/backend/internal/database"
	"gameatlas/backend/internal/models"
	"gameatlas/backend/pkg/terms"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// region --- DTOs ---

type GameInput struct {
	Title       string   `json:"title" binding:"required,max=255"`
	Description string   `json:"description"`
	SteamURL    string   `json:"steam_url" binding:"omitempty,url"`
	Genres      []string `json:"genres"`
	Platforms   []string `json:"platforms"`
	TagIDs      []uint   `json:"tag_ids"` // IDs of the tags to associate with the game

	Price       *float64 `json:"price" binding:"omitempty,min=0"`
	Rating      *float64 `json:"rating" binding:"omitempty,min=0,max=5"`
	ReleaseYear *int     `json:"release_year" binding:"omitempty,min=1950,max=2100"`
	Downloads   *int64   `json:"downloads" binding:"omitempty,min=0"`
	Revenue     *float64 `json:"revenue" binding:"omitempty,min=0"`
}

type GameResponse struct {
	ID          uint          `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	SteamURL    string        `json:"steam_url"`
	Genres      []string      `json:"genres"`
	Platforms   []string      `json:"platforms"`
	Tags        []TagResponse `json:"tags"`
	Price       *float64      `json:"price,omitempty"`
	Rating      *float64      `json:"rating,omitempty"`
	ReleaseYear *int          `json:"release_year,omitempty"`
	Downloads   *int64        `json:"downloads,omitempty"`
	Revenue     *float64      `json:"revenue,omitempty"`
	IsFavorite  bool          `json:"is_favorite"`
}

func newGameResponse(game models.Game, favoriteIDs map[uint]bool) GameResponse {
	tagResponses := []TagResponse{}
	for _, tag := range game.Tags {
		if tag != nil {
			tagResponses = append(tagResponses, newTagResponse(*tag))
		}
	}

	return GameResponse{
		ID:          game.ID,
		Title:       game.Title,
		Description: game.Description,
		SteamURL:    game.SteamURL,
		Genres:      nonNil(game.Genres),
		Platforms:   nonNil(game.Platforms),
		Tags:        tagResponses,
		Price:       game.Price,
		Rating:      game.Rating,
		ReleaseYear: game.ReleaseYear,
		Downloads:   game.Downloads,
		Revenue:     game.Revenue,
		IsFavorite:  favoriteIDs[game.ID],
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

// apply copies the input onto game. Genre and platform labels are stored as
// entered, minus blanks and case-insensitive duplicates.
func (in GameInput) apply(game *models.Game) {
	game.Title = strings.TrimSpace(in.Title)
	game.Description = in.Description
	game.SteamURL = in.SteamURL
	game.Genres = datatypes.JSONSlice[string](dedupeLabels(in.Genres))
	game.Platforms = datatypes.JSONSlice[string](dedupeLabels(in.Platforms))
	game.Price = in.Price
	game.Rating = in.Rating
	game.ReleaseYear = in.ReleaseYear
	game.Downloads = in.Downloads
	game.Revenue = in.Revenue
}

func dedupeLabels(labels []string) []string {
	out := []string{}
	seen := make(map[string]bool, len(labels))
	for _, label := range labels {
		key := terms.Normalize(label)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, strings.TrimSpace(label))
	}
	return out
}

// PaginatedGameResponse defines the structure for a paginated list of games.
type PaginatedGameResponse struct {
	Data []GameResponse `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

// endregion

// region --- Admin Handlers ---

// CreateGame godoc
// @Summary      Create a new game
// @Description  Creates a new game and associates it with given tags.
// @Tags         admin-games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body GameInput true "Game Info"
// @Success      201  {object}  GameResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Router       /admin/games [post]
func CreateGame(c *gin.Context) {
	var input GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Find tags by IDs
	var tags []*models.Tag
	if len(input.TagIDs) > 0 {
		if err := database.DB.Find(&tags, input.TagIDs).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load tags"})
			return
		}
	}

	var game models.Game
	input.apply(&game)
	game.Tags = tags

	if err := database.DB.Create(&game).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create game"})
		return
	}

	refreshCatalog(c)
	c.JSON(http.StatusCreated, newGameResponse(game, nil)) // No favorites context on create
}

// UpdateGame godoc
// @Summary      Update a game
// @Description  Updates a game's details and replaces its tags.
// @Tags         admin-games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int       true  "Game ID"
// @Param        input body      GameInput true  "New Game Info"
// @Success      200   {object}  GameResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse "Admin access required"
// @Failure      404   {object}  ErrorResponse "Game not found"
// @Router       /admin/games/{id} [put]
func UpdateGame(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	var game models.Game
	if err := database.DB.First(&game, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	var input GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Find new tags
	var tags []*models.Tag
	if len(input.TagIDs) > 0 {
		if err := database.DB.Find(&tags, input.TagIDs).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load tags"})
			return
		}
	}

	input.apply(&game)

	tx := database.DB.Begin()

	// Replace association
	if err := tx.Model(&game).Association("Tags").Replace(tags); err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update tags for game"})
		return
	}

	// Save the updated game model itself
	if err := tx.Save(&game).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update game"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update game"})
		return
	}

	// Preload tags for the response
	database.DB.Preload("Tags").First(&game, id)

	refreshCatalog(c)
	c.JSON(http.StatusOK, newGameResponse(game, nil)) // No favorites context on update
}

// DeleteGame godoc
// @Summary      Delete a game
// @Description  Deletes an existing game.
// @Tags         admin-games
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Game ID"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse "Admin access required"
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /admin/games/{id} [delete]
func DeleteGame(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	result := database.DB.Select("Tags").Delete(&models.Game{Model: gorm.Model{ID: id}})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete game"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	refreshCatalog(c)
	c.JSON(http.StatusOK, gin.H{"message": "Game deleted"})
}

// endregion

// region --- Public Handlers ---

// ToggleFavoriteGame godoc
// @Summary      Toggle a game in favorites
// @Description  Adds or removes a game from the user's favorites list.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Game ID"
// @Success      200 {object} map[string]bool "{"is_favorite": true}"
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "User or game not found"
// @Failure      500 {object} ErrorResponse "Failed to update favorites"
// @Router       /games/{id}/favorite [post]
func ToggleFavoriteGame(c *gin.Context) {
	userID, _ := currentUserID(c)
	gameID, ok := idParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	var user models.User
	// Eagerly load just the one favorite game we care about
	if err := database.DB.Preload("FavoriteGames", "id = ?", gameID).First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var game models.Game
	if err := database.DB.First(&game, gameID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	association := database.DB.Model(&user).Association("FavoriteGames")

	// If the preload found the game, it's already a favorite
	if len(user.FavoriteGames) > 0 {
		if err := association.Delete(&game); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove from favorites"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"is_favorite": false})
		return
	}

	if err := association.Append(&game); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to favorites"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"is_favorite": true})
}

// GetGameByID godoc
// @Summary      Get a single game by ID
// @Description  Retrieves details for a single game, including its tags and favorite status.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Game ID"
// @Success      200 {object} GameResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{id} [get]
func GetGameByID(c *gin.Context) {
	userID, _ := currentUserID(c)
	id, ok := idParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	var game models.Game
	if err := database.DB.Preload("Tags").First(&game, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	// Check if this game is a favorite for the current user
	var user models.User
	err := database.DB.Preload("FavoriteGames", "id = ?", id).First(&user, userID).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load favorites"})
		return
	}

	favoriteIDs := make(map[uint]bool)
	if len(user.FavoriteGames) > 0 {
		favoriteIDs[id] = true
	}

	c.JSON(http.StatusOK, newGameResponse(game, favoriteIDs))
}

// GetGames godoc
// @Summary      Get a list of games
// @Description  Retrieves a paginated list of games, with optional filtering by title, tags, and favorites.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        q       query     string  false  "Search query for game title"
// @Param        tag_ids query     string  false  "Comma-separated list of Tag IDs"
// @Param        favorites_only query bool false "Return only favorite games"
// @Param        page    query     int     false  "Page number" default(1)
// @Param        limit   query     int     false  "Items per page" default(10)
// @Success      200 {object} PaginatedGameResponse
// @Router       /games [get]
func GetGames(c *gin.Context) {
	userID, _ := currentUserID(c)
	page, limit := pageParams(c)

	searchQuery := c.Query("q")
	favoritesOnly, _ := strconv.ParseBool(c.Query("favorites_only"))

	// Get user's favorite game IDs first for efficient checking
	var user models.User
	if err := database.DB.Preload("FavoriteGames").First(&user, userID).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load favorites"})
		return
	}
	favoriteIDs := make(map[uint]bool)
	var favGameIDs []uint
	for _, favGame := range user.FavoriteGames {
		favoriteIDs[favGame.ID] = true
		favGameIDs = append(favGameIDs, favGame.ID)
	}

	if favoritesOnly && len(favGameIDs) == 0 {
		c.JSON(http.StatusOK, NewPaginatedResponse([]GameResponse{}, 0, page, limit))
		return
	}

	var tagIDs []uint
	for _, s := range splitCommaSeparated(c.Query("tag_ids")) {
		if id, parseErr := strconv.ParseUint(s, 10, 32); parseErr == nil {
			tagIDs = append(tagIDs, uint(id))
		}
	}

	// filtered builds the shared WHERE clauses for both the count and the page query.
	filtered := func() *gorm.DB {
		q := database.DB.Model(&models.Game{})
		if favoritesOnly {
			q = q.Where("games.id IN (?)", favGameIDs)
		}
		if searchQuery != "" {
			q = q.Where("games.title ILIKE ?", "%"+searchQuery+"%")
		}
		if len(tagIDs) > 0 {
			q = q.Joins("JOIN game_tags gt ON gt.game_id = games.id").
				Where("gt.tag_id IN (?)", tagIDs).
				Group("games.id")
		}
		return q
	}

	// --- Count total items ---
	// A grouped query is counted through a subquery of distinct game IDs.
	var totalItems int64
	countQuery := database.DB.Table("(?) as sub", filtered().Select("games.id"))
	if err := countQuery.Count(&totalItems).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count games"})
		return
	}

	// --- Fetch paginated data ---
	var games []models.Game
	err := filtered().Preload("Tags").Order("games.id").Offset(offset(page, limit)).Limit(limit).Find(&games).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve games"})
		return
	}

	response := make([]GameResponse, 0, len(games))
	for _, game := range games {
		response = append(response, newGameResponse(game, favoriteIDs))
	}

	c.JSON(http.StatusOK, NewPaginatedResponse(response, totalItems, page, limit))
}

// Helper to split comma-separated strings
func splitCommaSeparated(s string) []string {
	var result []string
	parts := strings.Split(s, ",")
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// endregion
