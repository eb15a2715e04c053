package routes

import (
	"time"

	"recipeshare-backend/internal/api/handlers"
	"recipeshare-backend/internal/api/middleware"
	"recipeshare-backend/internal/auth"
	"recipeshare-backend/internal/config"
	"recipeshare-backend/internal/repository"
	"recipeshare-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	tagRepo := repository.NewTagRepository(db)
	ingredientRepo := repository.NewIngredientRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	cartRepo := repository.NewShoppingCartRepository(db)
	followRepo := repository.NewFollowRepository(db)

	// Initialize auth
	authService := auth.NewAuthService(cfg.JWTSecret, time.Duration(cfg.JWTTTLHours)*time.Hour)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize services
	annotator := service.NewAnnotator(favoriteRepo, cartRepo, followRepo, recipeRepo)
	userService := service.NewUserService(userRepo, recipeRepo, annotator, authService, validator)
	tagService := service.NewTagService(tagRepo)
	ingredientService := service.NewIngredientService(ingredientRepo)
	recipeService := service.NewRecipeService(recipeRepo, tagRepo, ingredientRepo, annotator, validator)
	favoriteService := service.NewFavoriteService(favoriteRepo, recipeRepo)
	cartService := service.NewShoppingCartService(cartRepo, recipeRepo)
	followService := service.NewFollowService(followRepo, userRepo, recipeRepo, annotator)
	shoppingListService := service.NewShoppingListService(cartRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService, followService)
	tagHandler := handlers.NewTagHandler(tagService)
	ingredientHandler := handlers.NewIngredientHandler(ingredientService)
	recipeHandler := handlers.NewRecipeHandler(recipeService, shoppingListService, cfg.ShoppingListTitle)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService)
	cartHandler := handlers.NewShoppingCartHandler(cartService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")

	// Auth routes
	api.POST("/auth/token/login", authHandler.Login)

	// User routes
	users := api.Group("/users")
	{
		users.POST("/", userHandler.Register)
		users.GET("/", authMiddleware.OptionalAuth(), userHandler.List)
		users.GET("/me", authMiddleware.RequireAuth(), userHandler.Me)
		users.POST("/set_password", authMiddleware.RequireAuth(), userHandler.SetPassword)
		users.GET("/subscriptions", authMiddleware.RequireAuth(), userHandler.Subscriptions)
		users.GET("/:id", authMiddleware.OptionalAuth(), userHandler.Get)
		users.POST("/:id/subscribe", authMiddleware.RequireAuth(), userHandler.Subscribe)
		users.DELETE("/:id/subscribe", authMiddleware.RequireAuth(), userHandler.Unsubscribe)
	}

	// Tag routes
	tags := api.Group("/tags")
	{
		tags.GET("/", tagHandler.List)
		tags.GET("/:id", tagHandler.Get)
	}

	// Ingredient routes
	ingredients := api.Group("/ingredients")
	{
		ingredients.GET("/", ingredientHandler.List)
		ingredients.GET("/:id", ingredientHandler.Get)
		ingredients.DELETE("/:id", authMiddleware.RequireAuth(), ingredientHandler.Delete)
	}

	// Recipe routes
	recipes := api.Group("/recipes")
	{
		recipes.GET("/", authMiddleware.OptionalAuth(), recipeHandler.List)
		recipes.POST("/", authMiddleware.RequireAuth(), recipeHandler.Create)
		recipes.GET("/download_shopping_cart", authMiddleware.RequireAuth(), recipeHandler.DownloadShoppingCart)
		recipes.GET("/:id", authMiddleware.OptionalAuth(), recipeHandler.Get)
		recipes.PATCH("/:id", authMiddleware.RequireAuth(), recipeHandler.Update)
		recipes.DELETE("/:id", authMiddleware.RequireAuth(), recipeHandler.Delete)
		recipes.POST("/:id/favorite", authMiddleware.RequireAuth(), favoriteHandler.Add)
		recipes.DELETE("/:id/favorite", authMiddleware.RequireAuth(), favoriteHandler.Remove)
		recipes.POST("/:id/shopping_cart", authMiddleware.RequireAuth(), cartHandler.Add)
		recipes.DELETE("/:id/shopping_cart", authMiddleware.RequireAuth(), cartHandler.Remove)
	}

	return router
}
