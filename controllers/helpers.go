package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/arinkulshi/diet-recommendation-tool/services"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto HTTP statuses. Unclassified errors
// are logged and answered with the generic message only.
func respondError(c *gin.Context, err error, generic string) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case errors.Is(err, services.ErrFoodNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Food not found"})
	case errors.Is(err, services.ErrFavoriteNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Favorite not found"})
	default:
		if id, ok := services.IsDuplicate(err); ok {
			c.JSON(http.StatusConflict, gin.H{"error": "Food is already in favorites", "favorite_id": id})
			return
		}
		log.Printf("[%s] %s %s: %v", c.GetString("requestID"), c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": generic})
	}
}
