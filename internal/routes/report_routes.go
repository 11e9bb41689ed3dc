package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/railmadad/internal/handlers"
	"github.com/railmadad/internal/repositories"
	"github.com/railmadad/internal/services"
	"github.com/railmadad/pkg/db"
)

// SetupReportRoutes sets up the dashboard's read-only aggregate views.
func SetupReportRoutes(router *gin.RouterGroup) {
	repo := repositories.NewGormComplaintRepository(db.GetDB())
	service := services.NewReportService(repo)
	handler := handlers.NewReportHandler(service)

	apiV1 := router.Group("/v1")
	{
		reports := apiV1.Group("/reports")
		{
			reports.GET("/overview", handler.Overview)
			reports.GET("/category-counts", handler.CategoryCounts)
			reports.GET("/resolution-rates", handler.ResolutionRates)
			reports.GET("/monthly-counts", handler.MonthlyCounts)
			reports.GET("/monthly-resolution-rates", handler.MonthlyResolutionRates)
			reports.GET("/word-frequency", handler.WordFrequency)
			reports.GET("/sample", handler.Sample)
		}
	}
}
