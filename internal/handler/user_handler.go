package handler

import (
	"net/http"

	"gameatlas/backend/internal/database"
	"gameatlas/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// PrivateUserResponse defines the structure for the authenticated user's own profile.
type PrivateUserResponse struct {
	ID                 uint   `json:"id" example:"1"`
	Nickname           string `json:"nickname" example:"pixelsmith"`
	Email              string `json:"email" example:"dev@example.com"`
	Role               string `json:"role" example:"user"`
	FavoriteGamesCount int64  `json:"favorite_games_count"`
	DiscoveryListCount int64  `json:"discovery_list_count"`
}

// GetMe godoc
// @Summary      Get current user's info
// @Description  Retrieves the private profile for the currently authenticated user.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  PrivateUserResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/me [get]
func GetMe(c *gin.Context) {
	viewerID, _ := currentUserID(c)

	var user models.User
	if err := database.DB.First(&user, viewerID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, buildPrivateUserResponse(user))
}

func buildPrivateUserResponse(user models.User) PrivateUserResponse {
	favoritesCount := database.DB.Model(&user).Association("FavoriteGames").Count()

	var listCount int64
	database.DB.Model(&models.DiscoveryList{}).Where("user_id = ?", user.ID).Count(&listCount)

	return PrivateUserResponse{
		ID:                 user.ID,
		Nickname:           user.Nickname,
		Email:              user.Email,
		Role:               user.Role,
		FavoriteGamesCount: favoritesCount,
		DiscoveryListCount: listCount,
	}
}
