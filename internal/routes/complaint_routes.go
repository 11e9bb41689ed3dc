package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/railmadad/internal/auth"
	"github.com/railmadad/internal/handlers"
	"github.com/railmadad/internal/repositories"
	"github.com/railmadad/internal/services"
	"github.com/railmadad/pkg/db"
)

// SetupComplaintRoutes sets up the portal-facing complaint routes.
func SetupComplaintRoutes(router *gin.RouterGroup) {
	repo := repositories.NewGormComplaintRepository(db.GetDB())
	service := services.NewComplaintService(repo)
	handler := handlers.NewComplaintHandler(service)

	apiV1 := router.Group("/v1")
	{
		complaints := apiV1.Group("/complaints")
		{
			// POST /api/v1/complaints
			complaints.POST("", handler.SubmitComplaint)
			// GET /api/v1/complaints — dashboard list with filters
			complaints.GET("", handler.ListComplaints)
			// GET /api/v1/complaints/categories
			complaints.GET("/categories", handler.ListCategories)
			// GET /api/v1/complaints/status/:referenceCode
			complaints.GET("/status/:referenceCode", handler.CheckStatus)
		}

		// Resolution is staff-only.
		protected := apiV1.Group("/complaints")
		protected.Use(auth.JWTMiddleware())
		{
			// PATCH /api/v1/complaints/:referenceCode/resolve
			protected.PATCH("/:referenceCode/resolve", handler.ResolveComplaint)
		}
	}
}
