package controllers

import (
	"net/http"

	"github.com/arinkulshi/diet-recommendation-tool/services"
	"github.com/arinkulshi/diet-recommendation-tool/utils"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	Svc         *services.FoodService
	MaxPageSize int
}

func NewFoodController(svc *services.FoodService, maxPageSize int) *FoodController {
	return &FoodController{Svc: svc, MaxPageSize: maxPageSize}
}

// GET /foods/search?query=&category=&limit=&offset=
func (h *FoodController) SearchFoods(c *gin.Context) {
	params := services.SearchParams{
		Query:    c.Query("query"),
		Category: c.Query("category"),
		Limit:    utils.ParseLimit(c.Query("limit"), services.DefaultPageSize, h.MaxPageSize),
		Offset:   utils.ParseOffset(c.Query("offset")),
	}

	out, err := h.Svc.Search(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to search foods")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"results": out.Results,
		"pagination": gin.H{
			"total":  out.Total,
			"limit":  params.Limit,
			"offset": params.Offset,
		},
	})
}

// GET /foods/:id
func (h *FoodController) GetFood(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Food not found"})
		return
	}
	food, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get food details")
		return
	}
	c.JSON(http.StatusOK, food)
}
