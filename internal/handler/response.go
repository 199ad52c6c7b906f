package handler

import (
	"strconv"

	"gameatlas/backend/internal/auth"
	"gameatlas/backend/internal/catalog"
	"gameatlas/backend/internal/config"
	"gameatlas/backend/internal/match"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// MessageResponse is returned by endpoints that only acknowledge an action.
type MessageResponse struct {
	Message string `json:"message" example:"Game deleted"`
}

// currentUserID returns the ID set by the auth middleware.
func currentUserID(c *gin.Context) (uint, bool) {
	return auth.UserID(c)
}

// idParam parses a positive numeric path parameter.
func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// scorer returns the configured match scorer.
func scorer() match.Scorer {
	if config.AppConfig == nil {
		return match.DefaultScorer()
	}
	return config.AppConfig.Scorer()
}

// refreshCatalog reloads the in-memory catalog after a write.
func refreshCatalog(c *gin.Context) {
	if err := catalog.Global.Refresh(c.Request.Context()); err != nil {
		log.Error().Err(err).Msg("Catalog refresh after write failed")
	}
}
