package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/railmadad/internal/services"
	"github.com/railmadad/pkg/utils"
)

// Default limits for the bounded report views, matching the dashboard's
// top-20 words chart and five-complaint sample panel.
const (
	defaultWordLimit   = 20
	defaultSampleLimit = 5
)

// ReportHandler wraps the HTTP handling for the dashboard's aggregate views.
// All endpoints are read-only and accept the shared category/date filters.
type ReportHandler struct {
	service services.ReportService
}

// NewReportHandler creates a new ReportHandler instance.
func NewReportHandler(service services.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// parseLimit reads a positive ?limit= override, falling back to def.
func parseLimit(c *gin.Context, def int) int {
	raw := c.Query("limit")
	if raw == "" {
		return def
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return def
	}
	return limit
}

// Overview godoc
// @Summary Overall complaint statistics
// @Description Total complaints, resolution rate and average description length over the filtered set.
// @Tags Reports
// @Produce json
// @Param categories query string false "Comma-separated category filter"
// @Param dateFrom query string false "Inclusive start date (YYYY-MM-DD)"
// @Param dateTo query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} utils.SuccessResponse{data=services.ReportOverview}
// @Failure 400 {object} utils.APIErrorResponse "Invalid filter parameters"
// @Failure 500 {object} utils.APIErrorResponse "Storage failure"
// @Router /reports/overview [get]
func (h *ReportHandler) Overview(c *gin.Context) {
	filter, ok := parseComplaintFilter(c)
	if !ok {
		return
	}

	overview, err := h.service.Overview(filter)
	if err != nil {
		utils.RespondInternalServerError(c, "Failed to compute overview", err.Error())
		return
	}
	utils.RespondSuccess(c, http.StatusOK, overview, "")
}

// CategoryCounts godoc
// @Summary Complaint counts per category
// @Tags Reports
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]services.CategoryCount}
// @Router /reports/category-counts [get]
func (h *ReportHandler) CategoryCounts(c *gin.Context) {
	filter, ok := parseComplaintFilter(c)
	if !ok {
		return
	}

	counts, err := h.service.CategoryCounts(filter)
	if err != nil {
		utils.RespondInternalServerError(c, "Failed to compute category counts", err.Error())
		return
	}
	utils.RespondSuccess(c, http.StatusOK, counts, "")
}

// ResolutionRates godoc
// @Summary Resolution rate per category
// @Tags Reports
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]services.CategoryRate}
// @Router /reports/resolution-rates [get]
func (h *ReportHandler) ResolutionRates(c *gin.Context) {
	filter, ok := parseComplaintFilter(c)
	if !ok {
		return
	}

	rates, err := h.service.ResolutionRateByCategory(filter)
	if err != nil {
		utils.RespondInternalServerError(c, "Failed to compute resolution rates", err.Error())
		return
	}
	utils.RespondSuccess(c, http.StatusOK, rates, "")
}

// MonthlyCounts godoc
// @Summary Complaint counts per month
// @Tags Reports
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]services.MonthlyCount}
// @Router /reports/monthly-counts [get]
func (h *ReportHandler) MonthlyCounts(c *gin.Context) {
	filter, ok := parseComplaintFilter(c)
	if !ok {
		return
	}

	counts, err := h.service.MonthlyCounts(filter)
	if err != nil {
		utils.RespondInternalServerError(c, "Failed to compute monthly counts", err.Error())
		return
	}
	utils.RespondSuccess(c, http.StatusOK, counts, "")
}

// MonthlyResolutionRates godoc
// @Summary Resolution rate per month
// @Tags Reports
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]services.MonthlyRate}
// @Router /reports/monthly-resolution-rates [get]
func (h *ReportHandler) MonthlyResolutionRates(c *gin.Context) {
	filter, ok := parseComplaintFilter(c)
	if !ok {
		return
	}

	rates, err := h.service.MonthlyResolutionRate(filter)
	if err != nil {
		utils.RespondInternalServerError(c, "Failed to compute monthly resolution rates", err.Error())
		return
	}
	utils.RespondSuccess(c, http.StatusOK, rates, "")
}

// WordFrequency godoc
// @Summary Most frequent words in descriptions
// @Description Case-insensitive alphanumeric token counts, top N (default 20).
// @Tags Reports
// @Produce json
// @Param limit query int false "Number of words to return"
// @Success 200 {object} utils.SuccessResponse{data=[]services.WordCount}
// @Router /reports/word-frequency [get]
func (h *ReportHandler) WordFrequency(c *gin.Context) {
	filter, ok := parseComplaintFilter(c)
	if !ok {
		return
	}

	words, err := h.service.TopWords(filter, parseLimit(c, defaultWordLimit))
	if err != nil {
		utils.RespondInternalServerError(c, "Failed to compute word frequency", err.Error())
		return
	}
	utils.RespondSuccess(c, http.StatusOK, words, "")
}

// Sample godoc
// @Summary Random sample of complaints
// @Description A bounded random sample of the filtered set (default 5) for the dashboard's sample panel.
// @Tags Reports
// @Produce json
// @Param limit query int false "Sample size"
// @Success 200 {object} utils.SuccessResponse{data=[]models.Complaint}
// @Router /reports/sample [get]
func (h *ReportHandler) Sample(c *gin.Context) {
	filter, ok := parseComplaintFilter(c)
	if !ok {
		return
	}

	sample, err := h.service.SampleComplaints(filter, parseLimit(c, defaultSampleLimit))
	if err != nil {
		utils.RespondInternalServerError(c, "Failed to sample complaints", err.Error())
		return
	}
	utils.RespondSuccess(c, http.StatusOK, sample, "")
}
