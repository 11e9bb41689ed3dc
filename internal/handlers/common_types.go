package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/railmadad/internal/models"
	"github.com/railmadad/pkg/utils"
)

// FilterQuery binds the shared category/date-range query parameters used by
// the complaint list and all report endpoints. Dates are calendar days;
// dateTo is inclusive of its whole day.
type FilterQuery struct {
	Categories string `form:"categories"` // comma-separated subset of the category set
	DateFrom   string `form:"dateFrom"`   // YYYY-MM-DD
	DateTo     string `form:"dateTo"`     // YYYY-MM-DD
}

// parseComplaintFilter binds and converts the query parameters into a
// models.ComplaintFilter. On a bad date it writes the validation response
// itself and returns ok=false.
func parseComplaintFilter(c *gin.Context) (models.ComplaintFilter, bool) {
	var q FilterQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondValidationError(c, err.Error())
		return models.ComplaintFilter{}, false
	}

	var filter models.ComplaintFilter
	if q.Categories != "" {
		for _, cat := range strings.Split(q.Categories, ",") {
			if trimmed := strings.TrimSpace(cat); trimmed != "" {
				filter.Categories = append(filter.Categories, trimmed)
			}
		}
	}

	if q.DateFrom != "" {
		from, err := utils.ParseDate(q.DateFrom)
		if err != nil {
			utils.RespondValidationError(c, "dateFrom: "+err.Error())
			return models.ComplaintFilter{}, false
		}
		filter.DateFrom = &from
	}

	if q.DateTo != "" {
		to, err := utils.ParseDate(q.DateTo)
		if err != nil {
			utils.RespondValidationError(c, "dateTo: "+err.Error())
			return models.ComplaintFilter{}, false
		}
		// The repository treats DateTo as exclusive; shift to the start of
		// the next day so the requested day is fully included.
		endExclusive := to.Add(24 * time.Hour)
		filter.DateTo = &endExclusive
	}

	return filter, true
}
