package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/railmadad/internal/auth"
	"github.com/railmadad/internal/handlers"
)

// SetupAuthRoutes sets up the staff authentication routes.
func SetupAuthRoutes(router *gin.RouterGroup) {
	apiV1 := router.Group("/v1")
	{
		// Public auth routes (login).
		publicAuthGroup := apiV1.Group("/auth")
		{
			// POST /api/v1/auth/login
			publicAuthGroup.POST("/login", handlers.Login)
		}

		// Protected auth routes (logout).
		protectedAuthGroup := apiV1.Group("/auth")
		protectedAuthGroup.Use(auth.JWTMiddleware())
		{
			// POST /api/v1/auth/logout
			protectedAuthGroup.POST("/logout", handlers.LogoutHandler)
		}
	}
}
