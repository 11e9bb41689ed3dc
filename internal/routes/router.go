package routes

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/railmadad/configs"
)

// SetupRoutes initializes CORS and all route groups. The dashboard is served
// from a separate origin, so the allowed origins come from configuration.
func SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(configs.AppConfig.CORSAllowedOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := router.Group("/api")
	SetupAuthRoutes(api)
	SetupComplaintRoutes(api)
	SetupReportRoutes(api)
}
