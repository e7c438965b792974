package controllers

import (
	"net/http"

	"github.com/arinkulshi/diet-recommendation-tool/services"
	"github.com/arinkulshi/diet-recommendation-tool/utils"

	"github.com/gin-gonic/gin"
)

type RecommendationController struct {
	Svc *services.RecService
}

func NewRecommendationController(svc *services.RecService) *RecommendationController {
	return &RecommendationController{Svc: svc}
}

// GET /users/:id/recommendations
func (h *RecommendationController) GetRecommendations(c *gin.Context) {
	userID, ok := utils.ParseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	out, err := h.Svc.ForUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to get recommendations")
		return
	}
	c.JSON(http.StatusOK, out)
}
