package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"gameatlas/backend/internal/catalog"
	"gameatlas/backend/internal/database"
	"gameatlas/backend/internal/discovery"
	"gameatlas/backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// region --- DTOs ---

type DiscoveryListInput struct {
	Name   string           `json:"name" binding:"required,max=255" example:"Cozy roguelites"`
	Filter discovery.Filter `json:"filter"`
}

type DiscoveryListResponse struct {
	ID         uint             `json:"id"`
	Name       string           `json:"name"`
	Slug       string           `json:"slug"`
	ShareToken string           `json:"share_token"`
	Filter     discovery.Filter `json:"filter"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

func newDiscoveryListResponse(list models.DiscoveryList) DiscoveryListResponse {
	return DiscoveryListResponse{
		ID:         list.ID,
		Name:       list.Name,
		Slug:       list.Slug,
		ShareToken: list.ShareToken,
		Filter:     list.Filter.Data(),
		CreatedAt:  list.CreatedAt,
		UpdatedAt:  list.UpdatedAt,
	}
}

// DiscoveryResultsResponse is a page of discovery results.
type DiscoveryResultsResponse struct {
	Data []discovery.Record `json:"data"`
	Meta PaginationMeta     `json:"meta"`
}

// SharedDiscoveryListResponse is a shared list together with its first page of results.
type SharedDiscoveryListResponse struct {
	List    DiscoveryListResponse               `json:"list"`
	Results PaginatedResponse[discovery.Record] `json:"results"`
	IsOwner bool                                `json:"is_owner"`
}

// endregion

// runFilter applies f to the catalog and returns the requested page.
func runFilter(c *gin.Context, f discovery.Filter) PaginatedResponse[discovery.Record] {
	page, limit := pageParams(c)
	return PaginateSlice(discovery.Apply(catalog.Global.Records(), f), page, limit)
}

// findOwnedList loads a list belonging to the current user, writing the error
// response itself when it cannot.
func findOwnedList(c *gin.Context) (models.DiscoveryList, bool) {
	var list models.DiscoveryList
	userID, _ := currentUserID(c)
	id, ok := idParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid list ID"})
		return list, false
	}

	err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&list).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Discovery list not found"})
		return list, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load discovery list"})
		return list, false
	}
	return list, true
}

// SearchDiscovery godoc
// @Summary      Search the catalog
// @Description  Returns the catalog games matching every criterion of the filter. Platform and genre terms also match their synonyms.
// @Tags         discovery
// @Accept       json
// @Produce      json
// @Param        input body  discovery.Filter true  "Filter"
// @Param        page  query int              false "Page number" default(1)
// @Param        limit query int              false "Items per page" default(10)
// @Success      200   {object} DiscoveryResultsResponse
// @Failure      400   {object} ErrorResponse
// @Router       /discovery/search [post]
func SearchDiscovery(c *gin.Context) {
	var filter discovery.Filter
	if err := c.ShouldBindJSON(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, runFilter(c, filter))
}

// CreateDiscoveryList godoc
// @Summary      Save a discovery list
// @Description  Saves a named filter for the current user.
// @Tags         discovery-lists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body DiscoveryListInput true "List"
// @Success      201  {object}  DiscoveryListResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /discovery/lists [post]
func CreateDiscoveryList(c *gin.Context) {
	userID, _ := currentUserID(c)

	var input DiscoveryListInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name := strings.TrimSpace(input.Name)
	list := models.DiscoveryList{
		UserID:     userID,
		Name:       name,
		Slug:       slug.Make(name),
		ShareToken: uuid.NewString(),
		Filter:     datatypes.NewJSONType(input.Filter),
	}

	if err := database.DB.Create(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save discovery list"})
		return
	}

	c.JSON(http.StatusCreated, newDiscoveryListResponse(list))
}

// GetDiscoveryLists godoc
// @Summary      List saved discovery lists
// @Description  Returns the current user's discovery lists, newest first.
// @Tags         discovery-lists
// @Produce      json
// @Security     BearerAuth
// @Param        page  query int false "Page number" default(1)
// @Param        limit query int false "Items per page" default(10)
// @Success      200  {object}  PaginatedResponse[DiscoveryListResponse]
// @Failure      401  {object}  ErrorResponse
// @Router       /discovery/lists [get]
func GetDiscoveryLists(c *gin.Context) {
	userID, _ := currentUserID(c)
	page, limit := pageParams(c)

	query := database.DB.Where("user_id = ?", userID).Order("created_at DESC").Session(&gorm.Session{})
	lists, err := Paginate[models.DiscoveryList](query, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve discovery lists"})
		return
	}

	response := make([]DiscoveryListResponse, 0, len(lists.Data))
	for _, list := range lists.Data {
		response = append(response, newDiscoveryListResponse(list))
	}

	c.JSON(http.StatusOK, NewPaginatedResponse(response, lists.Meta.TotalItems, page, limit))
}

// GetDiscoveryList godoc
// @Summary      Get a discovery list
// @Tags         discovery-lists
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "List ID"
// @Success      200  {object}  DiscoveryListResponse
// @Failure      404  {object}  ErrorResponse "Discovery list not found"
// @Router       /discovery/lists/{id} [get]
func GetDiscoveryList(c *gin.Context) {
	list, ok := findOwnedList(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, newDiscoveryListResponse(list))
}

// UpdateDiscoveryList godoc
// @Summary      Update a discovery list
// @Description  Renames a list and replaces its filter. The share token is kept.
// @Tags         discovery-lists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path int                true "List ID"
// @Param        input body DiscoveryListInput true "List"
// @Success      200  {object}  DiscoveryListResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Discovery list not found"
// @Router       /discovery/lists/{id} [put]
func UpdateDiscoveryList(c *gin.Context) {
	list, ok := findOwnedList(c)
	if !ok {
		return
	}

	var input DiscoveryListInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	list.Name = strings.TrimSpace(input.Name)
	list.Slug = slug.Make(list.Name)
	list.Filter = datatypes.NewJSONType(input.Filter)

	if err := database.DB.Save(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update discovery list"})
		return
	}

	c.JSON(http.StatusOK, newDiscoveryListResponse(list))
}

// DeleteDiscoveryList godoc
// @Summary      Delete a discovery list
// @Tags         discovery-lists
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "List ID"
// @Success      200  {object}  MessageResponse
// @Failure      404  {object}  ErrorResponse "Discovery list not found"
// @Router       /discovery/lists/{id} [delete]
func DeleteDiscoveryList(c *gin.Context) {
	list, ok := findOwnedList(c)
	if !ok {
		return
	}

	if err := database.DB.Delete(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete discovery list"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Discovery list deleted"})
}

// GetDiscoveryListResults godoc
// @Summary      Run a saved discovery list
// @Description  Applies the list's filter to the current catalog.
// @Tags         discovery-lists
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int true  "List ID"
// @Param        page  query int false "Page number" default(1)
// @Param        limit query int false "Items per page" default(10)
// @Success      200  {object}  DiscoveryResultsResponse
// @Failure      404  {object}  ErrorResponse "Discovery list not found"
// @Router       /discovery/lists/{id}/results [get]
func GetDiscoveryListResults(c *gin.Context) {
	list, ok := findOwnedList(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, runFilter(c, list.Filter.Data()))
}

// GetSharedDiscoveryList godoc
// @Summary      Open a shared discovery list
// @Description  Resolves a share token to its list and runs the filter. No account is needed.
// @Tags         discovery-lists
// @Produce      json
// @Param        token path  string true  "Share token"
// @Param        page  query int    false "Page number" default(1)
// @Param        limit query int    false "Items per page" default(10)
// @Success      200  {object}  SharedDiscoveryListResponse
// @Failure      404  {object}  ErrorResponse "Discovery list not found"
// @Router       /discovery/shared/{token} [get]
func GetSharedDiscoveryList(c *gin.Context) {
	token, err := uuid.Parse(c.Param("token"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Discovery list not found"})
		return
	}

	var list models.DiscoveryList
	if err := database.DB.Where("share_token = ?", token.String()).First(&list).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Discovery list not found"})
		return
	}

	viewerID, authenticated := currentUserID(c)
	c.JSON(http.StatusOK, SharedDiscoveryListResponse{
		List:    newDiscoveryListResponse(list),
		Results: runFilter(c, list.Filter.Data()),
		IsOwner: authenticated && viewerID == list.UserID,
	})
}
