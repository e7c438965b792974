package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/arinkulshi/diet-recommendation-tool/services"
	"github.com/arinkulshi/diet-recommendation-tool/utils"

	"github.com/gin-gonic/gin"
)

type FavoriteController struct {
	Svc *services.FavoriteService
}

func NewFavoriteController(svc *services.FavoriteService) *FavoriteController {
	return &FavoriteController{Svc: svc}
}

type addFavoriteReq struct {
	// number or numeric string; the web client sends ids as strings
	FoodID json.RawMessage `json:"food_id"`
}

// GET /users/:id/favorites
func (h *FavoriteController) ListFavorites(c *gin.Context) {
	userID, ok := utils.ParseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	favorites, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to get favorites")
		return
	}
	c.JSON(http.StatusOK, favorites)
}

// POST /users/:id/favorites  { "food_id": 42 }
func (h *FavoriteController) AddFavorite(c *gin.Context) {
	var req addFavoriteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Food ID is required"})
		return
	}
	foodID, present := parseFoodID(req.FoodID)
	if !present {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Food ID is required"})
		return
	}

	userID, ok := utils.ParseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	fav, err := h.Svc.Add(c.Request.Context(), userID, foodID)
	if err != nil {
		respondError(c, err, "Failed to add favorite")
		return
	}
	c.JSON(http.StatusCreated, fav)
}

// DELETE /users/:id/favorites/:favoriteId
func (h *FavoriteController) RemoveFavorite(c *gin.Context) {
	userID, okUser := utils.ParseID(c.Param("id"))
	favoriteID, okFav := utils.ParseID(c.Param("favoriteId"))
	if !okUser || !okFav {
		c.JSON(http.StatusNotFound, gin.H{"error": "Favorite not found"})
		return
	}
	if err := h.Svc.Remove(c.Request.Context(), userID, favoriteID); err != nil {
		respondError(c, err, "Failed to remove favorite")
		return
	}
	c.Status(http.StatusNoContent)
}

// parseFoodID reports present=false for a missing, null, empty or zero id.
// A present but unusable id (e.g. "abc") yields 0, which no food has.
func parseFoodID(raw json.RawMessage) (id uint, present bool) {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" || s == `""` || s == "0" || s == `"0"` {
		return 0, false
	}
	if unq, err := strconv.Unquote(s); err == nil {
		s = unq
	}
	n, ok := utils.ParseID(s)
	if !ok {
		return 0, true
	}
	return n, true
}
