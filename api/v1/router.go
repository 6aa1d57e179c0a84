package v1

import (
	"github.com/easylaptop/server/config"
	"github.com/easylaptop/server/middleware"
	"github.com/easylaptop/server/services"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.RouterGroup, cfg *config.Config) {
	authService := services.NewAuthService(cfg)
	laptopService := services.NewLaptopService(cfg)

	authController := NewAuthController(authService)
	userController := NewUserController(authService)
	laptopController := NewLaptopController(cfg, laptopService)

	requireAuth := middleware.AuthMiddleware(authService)
	optionalAuth := middleware.OptionalAuthMiddleware(authService)

	// Health check endpoint
	router.GET("/health", HealthCheck)

	// Auth endpoints
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", authController.Register)
		authGroup.POST("/login", authController.Login)
		authGroup.GET("/me", requireAuth, authController.GetCurrentUser)
	}

	// Laptop endpoints; browsing works anonymously, mutation requires auth
	laptopGroup := router.Group("/laptops")
	{
		laptopGroup.GET("", optionalAuth, laptopController.List)
		laptopGroup.GET("/:id", laptopController.Get)
		laptopGroup.POST("", requireAuth, laptopController.Create)
		laptopGroup.PUT("/:id", requireAuth, laptopController.Update)
		laptopGroup.DELETE("/:id", requireAuth, laptopController.Delete)
		laptopGroup.GET("/user/my-listings", requireAuth, laptopController.MyListings)
	}

	// User endpoints
	userGroup := router.Group("/users")
	userGroup.Use(requireAuth)
	{
		userGroup.PUT("/profile", userController.UpdateProfile)
	}
}
