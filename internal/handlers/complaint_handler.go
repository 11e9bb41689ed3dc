package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/railmadad/internal/repositories"
	"github.com/railmadad/internal/services"
	"github.com/railmadad/pkg/utils"
)

// ComplaintHandler wraps the HTTP handling for complaint submission, status
// lookup and the staff resolution endpoint.
type ComplaintHandler struct {
	service services.ComplaintService
}

// NewComplaintHandler creates a new ComplaintHandler instance.
func NewComplaintHandler(service services.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{service: service}
}

// SubmitComplaintPayload binds and validates a complaint submission request.
// The binding tags catch absent fields; whitespace-only content is caught by
// the service layer, which trims before checking.
type SubmitComplaintPayload struct {
	Category    string `json:"category" binding:"required"`
	Description string `json:"description" binding:"required"`
	PNR         string `json:"pnr" binding:"required,max=50"`
	Station     string `json:"station" binding:"required,max=100"`
	SeatNumber  string `json:"seatNumber" binding:"required,max=50"`
}

// SubmitComplaintResponse carries the reference code back to the rider.
type SubmitComplaintResponse struct {
	ReferenceCode string `json:"referenceCode"`
}

// SubmitComplaint godoc
// @Summary Submit a new complaint
// @Description Persists a rider complaint and returns the generated reference number for later status checks.
// @Tags Complaints
// @Accept json
// @Produce json
// @Param complaint body SubmitComplaintPayload true "Complaint fields"
// @Success 201 {object} utils.SuccessResponse{data=SubmitComplaintResponse} "Reference number of the new complaint"
// @Failure 400 {object} utils.APIErrorResponse "Missing or blank fields, or unknown category"
// @Failure 500 {object} utils.APIErrorResponse "Storage failure or reference number generation exhausted"
// @Router /complaints [post]
func (h *ComplaintHandler) SubmitComplaint(c *gin.Context) {
	var payload SubmitComplaintPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	referenceCode, err := h.service.SubmitComplaint(services.ComplaintSubmission{
		Category:    payload.Category,
		Description: payload.Description,
		PNR:         payload.PNR,
		Station:     payload.Station,
		SeatNumber:  payload.SeatNumber,
	})
	if err != nil {
		if services.IsValidationError(err) {
			utils.RespondValidationError(c, err.Error())
		} else if errors.Is(err, services.ErrGenerationExhausted) {
			utils.RespondInternalServerError(c, services.ErrGenerationExhausted.Error())
		} else if errors.Is(err, repositories.ErrStorageUnavailable) {
			utils.RespondInternalServerError(c, repositories.ErrStorageUnavailable.Error(), err.Error())
		} else {
			utils.RespondInternalServerError(c, "Failed to submit complaint", err.Error())
		}
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, SubmitComplaintResponse{ReferenceCode: referenceCode},
		"Your complaint has been submitted. Keep the reference number to check its status.")
}

// CheckStatus godoc
// @Summary Check complaint status
// @Description Looks up a complaint by its reference number. No authentication; the reference number is the rider's handle.
// @Tags Complaints
// @Produce json
// @Param referenceCode path string true "8-character reference number"
// @Success 200 {object} utils.SuccessResponse{data=models.ComplaintStatusResponse} "Category, description preview and resolved flag"
// @Failure 404 {object} utils.APIErrorResponse "No complaint with this reference number"
// @Failure 500 {object} utils.APIErrorResponse "Storage failure"
// @Router /complaints/status/{referenceCode} [get]
func (h *ComplaintHandler) CheckStatus(c *gin.Context) {
	referenceCode := c.Param("referenceCode")

	status, err := h.service.CheckStatus(referenceCode)
	if err != nil {
		// A miss is an expected outcome of the lookup, rendered as 404 with a
		// regular body rather than treated as a server failure.
		if errors.Is(err, services.ErrComplaintNotFound) {
			utils.RespondNotFoundError(c, "Complaint with reference number "+referenceCode)
		} else {
			utils.RespondInternalServerError(c, "Failed to check complaint status", err.Error())
		}
		return
	}

	utils.RespondSuccess(c, http.StatusOK, status, "")
}

// ListComplaints godoc
// @Summary List complaints
// @Description Full (optionally filtered) complaint set, consumed by the dashboard.
// @Tags Complaints
// @Produce json
// @Param categories query string false "Comma-separated category filter"
// @Param dateFrom query string false "Inclusive start date (YYYY-MM-DD)"
// @Param dateTo query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} utils.SuccessResponse{data=[]models.Complaint}
// @Failure 400 {object} utils.APIErrorResponse "Invalid filter parameters"
// @Failure 500 {object} utils.APIErrorResponse "Storage failure"
// @Router /complaints [get]
func (h *ComplaintHandler) ListComplaints(c *gin.Context) {
	filter, ok := parseComplaintFilter(c)
	if !ok {
		return
	}

	complaints, err := h.service.ListComplaints(filter)
	if err != nil {
		utils.RespondInternalServerError(c, "Failed to list complaints", err.Error())
		return
	}

	utils.RespondSuccess(c, http.StatusOK, complaints, "")
}

// ListCategories godoc
// @Summary List complaint categories
// @Description The closed category set the portal form offers.
// @Tags Complaints
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]string}
// @Router /complaints/categories [get]
func (h *ComplaintHandler) ListCategories(c *gin.Context) {
	utils.RespondSuccess(c, http.StatusOK, h.service.Categories(), "")
}

// ResolveComplaint godoc
// @Summary Mark a complaint resolved
// @Description Flips the resolved flag on a complaint. Staff only; resolving twice is a no-op.
// @Tags Complaints
// @Security BearerAuth
// @Produce json
// @Param referenceCode path string true "8-character reference number"
// @Success 200 {object} utils.SuccessResponse{data=models.Complaint} "The resolved complaint"
// @Failure 401 {object} utils.APIErrorResponse "Not authenticated"
// @Failure 404 {object} utils.APIErrorResponse "No complaint with this reference number"
// @Failure 500 {object} utils.APIErrorResponse "Storage failure"
// @Router /complaints/{referenceCode}/resolve [patch]
func (h *ComplaintHandler) ResolveComplaint(c *gin.Context) {
	referenceCode := c.Param("referenceCode")

	complaint, err := h.service.ResolveComplaint(referenceCode)
	if err != nil {
		if errors.Is(err, services.ErrComplaintNotFound) {
			utils.RespondNotFoundError(c, "Complaint with reference number "+referenceCode)
		} else {
			utils.RespondInternalServerError(c, "Failed to resolve complaint", err.Error())
		}
		return
	}

	utils.RespondSuccess(c, http.StatusOK, complaint, "Complaint marked as resolved")
}
