package services

import (
	"errors"
	"time"

	"github.com/railmadad/internal/models"
	"github.com/railmadad/internal/repositories"
	"github.com/railmadad/pkg/utils"
)

// ErrComplaintNotFound signals that no complaint matches a reference code.
// For status lookups this is an expected outcome, not a failure.
var ErrComplaintNotFound = errors.New("no complaint found with this reference number")

// ErrGenerationExhausted signals that reference code generation kept colliding
// with existing codes. Fatal for the request, not for the process.
var ErrGenerationExhausted = errors.New("could not generate a unique reference number, please try again")

// Validation errors for the submission flow. All fields must be non-blank
// after trimming; content is otherwise unvalidated.
var (
	ErrEmptyDescription = errors.New("complaint description must not be empty")
	ErrEmptyPNR         = errors.New("PNR number must not be empty")
	ErrEmptyStation     = errors.New("station must not be empty")
	ErrEmptySeatNumber  = errors.New("seat number must not be empty")
	ErrUnknownCategory  = errors.New("complaint category is not one of the supported categories")
)

var validationErrors = []error{
	ErrEmptyDescription,
	ErrEmptyPNR,
	ErrEmptyStation,
	ErrEmptySeatNumber,
	ErrUnknownCategory,
}

// IsValidationError reports whether err is one of the submission validation errors.
func IsValidationError(err error) bool {
	for _, v := range validationErrors {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}

// descriptionPreviewLength is how much of the description a status lookup reveals.
const descriptionPreviewLength = 50

// refCodeAttempts bounds regeneration when a fresh code collides with an
// existing row. With 36^8 possible codes a second collision in a row already
// points at something other than bad luck.
const refCodeAttempts = 3

// ComplaintSubmission carries the rider-supplied fields of a new complaint.
type ComplaintSubmission struct {
	Category    string
	Description string
	PNR         string
	Station     string
	SeatNumber  string
}

// ComplaintService defines the portal-facing complaint operations.
type ComplaintService interface {
	// SubmitComplaint validates and persists a new complaint, returning the
	// generated reference code the rider uses for later lookups.
	SubmitComplaint(submission ComplaintSubmission) (string, error)
	// CheckStatus looks up a complaint by reference code and returns its
	// category, a truncated description preview and the resolved flag.
	CheckStatus(referenceCode string) (*models.ComplaintStatusResponse, error)
	// ResolveComplaint marks the complaint as resolved. Staff only.
	ResolveComplaint(referenceCode string) (*models.Complaint, error)
	// ListComplaints returns the (optionally filtered) complaint set for the
	// reporting collaborator.
	ListComplaints(filter models.ComplaintFilter) ([]models.Complaint, error)
	// Categories returns the closed category set the portal form offers.
	Categories() []string
}

// complaintService is the ComplaintService implementation.
type complaintService struct {
	repo repositories.ComplaintRepository
}

// NewComplaintService creates a new complaintService instance.
func NewComplaintService(repo repositories.ComplaintRepository) ComplaintService {
	return &complaintService{repo: repo}
}

// validateSubmission applies the non-blank checks of the submission flow.
func validateSubmission(submission ComplaintSubmission) error {
	if utils.IsBlank(submission.Description) {
		return ErrEmptyDescription
	}
	if utils.IsBlank(submission.PNR) {
		return ErrEmptyPNR
	}
	if utils.IsBlank(submission.Station) {
		return ErrEmptyStation
	}
	if utils.IsBlank(submission.SeatNumber) {
		return ErrEmptySeatNumber
	}
	if !models.IsValidCategory(submission.Category) {
		return ErrUnknownCategory
	}
	return nil
}

// SubmitComplaint turns rider input into a persisted complaint. Nothing is
// written when validation fails. The reference code is assigned exactly once,
// here; a collision with an existing code triggers regeneration up to
// refCodeAttempts times before giving up with ErrGenerationExhausted.
func (s *complaintService) SubmitComplaint(submission ComplaintSubmission) (string, error) {
	if err := validateSubmission(submission); err != nil {
		return "", err
	}

	for attempt := 0; attempt < refCodeAttempts; attempt++ {
		complaint := &models.Complaint{
			PNR:           submission.PNR,
			DateSubmitted: time.Now(),
			Category:      submission.Category,
			Description:   submission.Description,
			Resolved:      false,
			Station:       submission.Station,
			SeatNumber:    submission.SeatNumber,
			ReferenceCode: utils.GenerateReferenceCode(),
		}

		err := s.repo.Create(complaint)
		if err == nil {
			return complaint.ReferenceCode, nil
		}
		if !errors.Is(err, repositories.ErrReferenceCodeConflict) {
			return "", err
		}
	}
	return "", ErrGenerationExhausted
}

// CheckStatus retrieves the rider-visible state of a complaint. Absence of a
// match is reported as ErrComplaintNotFound, which the handler renders as a
// not-found result rather than a server error.
func (s *complaintService) CheckStatus(referenceCode string) (*models.ComplaintStatusResponse, error) {
	complaint, err := s.repo.FindByReferenceCode(referenceCode)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, ErrComplaintNotFound
		}
		return nil, err
	}

	return &models.ComplaintStatusResponse{
		ReferenceCode:      complaint.ReferenceCode,
		Category:           complaint.Category,
		DescriptionPreview: utils.TruncateRunes(complaint.Description, descriptionPreviewLength),
		Resolved:           complaint.Resolved,
	}, nil
}

// ResolveComplaint flips the resolved flag. Resolving twice is a no-op.
func (s *complaintService) ResolveComplaint(referenceCode string) (*models.Complaint, error) {
	complaint, err := s.repo.MarkResolved(referenceCode)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, ErrComplaintNotFound
		}
		return nil, err
	}
	return complaint, nil
}

// ListComplaints passes the filter through to the repository.
func (s *complaintService) ListComplaints(filter models.ComplaintFilter) ([]models.Complaint, error) {
	return s.repo.FindAll(filter)
}

// Categories returns a copy of the closed category set.
func (s *complaintService) Categories() []string {
	categories := make([]string, len(models.ComplaintCategories))
	copy(categories, models.ComplaintCategories)
	return categories
}
