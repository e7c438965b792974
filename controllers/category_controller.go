package controllers

import (
	"net/http"

	"github.com/arinkulshi/diet-recommendation-tool/services"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	Svc *services.CategoryService
}

func NewCategoryController(svc *services.CategoryService) *CategoryController {
	return &CategoryController{Svc: svc}
}

// GET /categories
func (h *CategoryController) ListCategories(c *gin.Context) {
	categories, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get categories")
		return
	}
	c.JSON(http.StatusOK, categories)
}
