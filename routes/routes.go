package routes

import (
	"github.com/arinkulshi/diet-recommendation-tool/config"
	"github.com/arinkulshi/diet-recommendation-tool/controllers"
	"github.com/arinkulshi/diet-recommendation-tool/middlewares"
	"github.com/arinkulshi/diet-recommendation-tool/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Deps are the services behind the HTTP surface.
type Deps struct {
	Foods           *services.FoodService
	Categories      *services.CategoryService
	Users           *services.UserService
	Favorites       *services.FavoriteService
	Recommendations *services.RecService
	Hub             *services.RealtimeHub
}

// NewDeps builds every service over one storage handle.
func NewDeps(cfg *config.Config, db *gorm.DB) *Deps {
	hub := services.NewRealtimeHub()
	users := services.NewUserService(db)
	foods := services.NewFoodService(db)
	favorites := services.NewFavoriteService(db, users, foods, hub)
	return &Deps{
		Foods:           foods,
		Categories:      services.NewCategoryService(db),
		Users:           users,
		Favorites:       favorites,
		Recommendations: services.NewRecService(favorites, cfg.GeminiAPIKey, cfg.GeminiModel),
		Hub:             hub,
	}
}

func SetupRouter(cfg *config.Config, d *Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), middlewares.RequestID())

	corsCfg := cors.DefaultConfig()
	if len(cfg.CORSOrigins) == 0 || (len(cfg.CORSOrigins) == 1 && cfg.CORSOrigins[0] == "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSOrigins
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", middlewares.RequestIDHeader)
	r.Use(cors.New(corsCfg))

	r.GET("/health", controllers.Health)

	foodCtl := controllers.NewFoodController(d.Foods, cfg.MaxPageSize)
	categoryCtl := controllers.NewCategoryController(d.Categories)
	favoriteCtl := controllers.NewFavoriteController(d.Favorites)
	recCtl := controllers.NewRecommendationController(d.Recommendations)
	rtCtl := controllers.NewRealtimeController(d.Hub, d.Users)

	api := r.Group(cfg.APIPrefix)
	{
		api.GET("/foods/search", foodCtl.SearchFoods)
		api.GET("/foods/:id", foodCtl.GetFood)
		api.GET("/categories", categoryCtl.ListCategories)
	}

	users := api.Group("/users")
	users.Use(middlewares.UserGuard(cfg.JWTSecret))
	{
		users.GET("/:id/favorites", favoriteCtl.ListFavorites)
		users.POST("/:id/favorites", favoriteCtl.AddFavorite)
		users.DELETE("/:id/favorites/:favoriteId", favoriteCtl.RemoveFavorite)
		users.GET("/:id/favorites/stream", rtCtl.FavoritesWS)
		users.GET("/:id/recommendations", recCtl.GetRecommendations)
	}

	return r
}
