package models

import (
	"time"
)

// Complaint corresponds to the complaints table in the database.
// A record is created once by the submission flow and is never updated afterwards,
// except for the resolved flag which staff can flip through the resolution endpoint.
type Complaint struct {
	ID            int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	PNR           string    `json:"pnr" gorm:"column:pnr;not null;size:50"`
	DateSubmitted time.Time `json:"dateSubmitted" gorm:"column:date_submitted;not null;autoCreateTime"`
	Category      string    `json:"category" gorm:"column:category;not null;size:100"`
	Description   string    `json:"description" gorm:"column:description;type:text;not null"`
	Resolved      bool      `json:"resolved" gorm:"column:resolved;not null;default:false"`
	Station       string    `json:"station" gorm:"column:station;not null;size:100"`
	SeatNumber    string    `json:"seatNumber" gorm:"column:seat_number;not null;size:50"`
	ReferenceCode string    `json:"referenceCode" gorm:"column:reference_code;uniqueIndex;not null;size:8"`
}

// TableName specifies the database table name for the Complaint struct.
func (Complaint) TableName() string {
	return "complaints"
}

// ComplaintCategories is the closed set of categories a rider can file under.
// The portal form renders exactly this list; anything else is rejected at submission.
var ComplaintCategories = []string{
	"Cleanliness Concerns",
	"Train Delays",
	"Fighting/Unruly Behavior",
	"Safety Concerns",
	"Ticket Booking Issues",
	"Food Quality",
	"Staff Behavior",
	"Other",
}

// IsValidCategory reports whether category belongs to the closed category set.
func IsValidCategory(category string) bool {
	for _, c := range ComplaintCategories {
		if c == category {
			return true
		}
	}
	return false
}

// ComplaintStatusResponse is what a rider gets back from a status lookup.
// Only a preview of the description is returned, not the full text.
type ComplaintStatusResponse struct {
	ReferenceCode      string `json:"referenceCode"`
	Category           string `json:"category"`
	DescriptionPreview string `json:"descriptionPreview"`
	Resolved           bool   `json:"resolved"`
}

// ComplaintFilter narrows a full-table read for the reporting screens.
// A nil/empty field means "no restriction on that dimension". DateTo is
// exclusive at the repository level; callers that want an inclusive calendar
// day pass the start of the following day.
type ComplaintFilter struct {
	Categories []string
	DateFrom   *time.Time
	DateTo     *time.Time
}
