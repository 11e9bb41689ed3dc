package services_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/railmadad/internal/models"
	"github.com/railmadad/internal/repositories"
	"github.com/railmadad/internal/services"
)

var refCodePattern = regexp.MustCompile(`^[A-Z0-9]{8}$`)

func validSubmission() services.ComplaintSubmission {
	return services.ComplaintSubmission{
		Category:    "Train Delays",
		Description: "Train arrived 3 hours late",
		PNR:         "PNR123",
		Station:     "Jaipur Jn",
		SeatNumber:  "B4-22",
	}
}

// TestSubmitComplaint_Success verifies the happy path: the record is persisted
// with the rider's fields, resolved=false, a server-side timestamp and an
// 8-character [A-Z0-9] reference code, which is returned to the caller.
func TestSubmitComplaint_Success(t *testing.T) {
	repo := new(MockComplaintRepository)
	service := services.NewComplaintService(repo)

	var persisted *models.Complaint
	repo.On("Create", mock.AnythingOfType("*models.Complaint")).Run(func(args mock.Arguments) {
		persisted = args.Get(0).(*models.Complaint)
	}).Return(nil).Once()

	code, err := service.SubmitComplaint(validSubmission())

	assert.NoError(t, err)
	assert.Regexp(t, refCodePattern, code)
	repo.AssertExpectations(t)

	assert.Equal(t, "Train Delays", persisted.Category)
	assert.Equal(t, "Train arrived 3 hours late", persisted.Description)
	assert.Equal(t, "PNR123", persisted.PNR)
	assert.Equal(t, "Jaipur Jn", persisted.Station)
	assert.Equal(t, "B4-22", persisted.SeatNumber)
	assert.False(t, persisted.Resolved)
	assert.False(t, persisted.DateSubmitted.IsZero())
	assert.Equal(t, code, persisted.ReferenceCode)
}

// TestSubmitComplaint_ValidationErrors verifies that blank fields and unknown
// categories are rejected without anything reaching the repository.
func TestSubmitComplaint_ValidationErrors(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*services.ComplaintSubmission)
		wantErr error
	}{
		{"whitespace-only description", func(s *services.ComplaintSubmission) { s.Description = "   " }, services.ErrEmptyDescription},
		{"empty pnr", func(s *services.ComplaintSubmission) { s.PNR = "" }, services.ErrEmptyPNR},
		{"blank station", func(s *services.ComplaintSubmission) { s.Station = "\t" }, services.ErrEmptyStation},
		{"empty seat number", func(s *services.ComplaintSubmission) { s.SeatNumber = " " }, services.ErrEmptySeatNumber},
		{"unknown category", func(s *services.ComplaintSubmission) { s.Category = "Lost Luggage" }, services.ErrUnknownCategory},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(MockComplaintRepository)
			service := services.NewComplaintService(repo)

			submission := validSubmission()
			tc.mutate(&submission)

			code, err := service.SubmitComplaint(submission)

			assert.ErrorIs(t, err, tc.wantErr)
			assert.True(t, services.IsValidationError(err))
			assert.Empty(t, code)
			repo.AssertNotCalled(t, "Create", mock.Anything)
		})
	}
}

// TestSubmitComplaint_RetriesOnReferenceCollision verifies that a unique-index
// collision triggers regeneration with a fresh code.
func TestSubmitComplaint_RetriesOnReferenceCollision(t *testing.T) {
	repo := new(MockComplaintRepository)
	service := services.NewComplaintService(repo)

	var codes []string
	record := func(args mock.Arguments) {
		codes = append(codes, args.Get(0).(*models.Complaint).ReferenceCode)
	}
	repo.On("Create", mock.AnythingOfType("*models.Complaint")).Run(record).Return(repositories.ErrReferenceCodeConflict).Once()
	repo.On("Create", mock.AnythingOfType("*models.Complaint")).Run(record).Return(nil).Once()

	code, err := service.SubmitComplaint(validSubmission())

	assert.NoError(t, err)
	repo.AssertExpectations(t)
	assert.Len(t, codes, 2)
	assert.NotEqual(t, codes[0], codes[1], "a fresh code must be generated after a collision")
	assert.Equal(t, codes[1], code)
}

// TestSubmitComplaint_GenerationExhausted verifies that persistent collisions
// end in ErrGenerationExhausted instead of looping forever.
func TestSubmitComplaint_GenerationExhausted(t *testing.T) {
	repo := new(MockComplaintRepository)
	service := services.NewComplaintService(repo)

	repo.On("Create", mock.AnythingOfType("*models.Complaint")).Return(repositories.ErrReferenceCodeConflict).Times(3)

	code, err := service.SubmitComplaint(validSubmission())

	assert.ErrorIs(t, err, services.ErrGenerationExhausted)
	assert.Empty(t, code)
	repo.AssertExpectations(t)
}

// TestCheckStatus_Found verifies the lookup result: category, truncated
// description preview and the resolved flag.
func TestCheckStatus_Found(t *testing.T) {
	repo := new(MockComplaintRepository)
	service := services.NewComplaintService(repo)

	longDescription := strings.Repeat("x", 80)
	repo.On("FindByReferenceCode", "AB12CD34").Return(&models.Complaint{
		ID:            7,
		Category:      "Food Quality",
		Description:   longDescription,
		Resolved:      false,
		ReferenceCode: "AB12CD34",
	}, nil).Once()

	status, err := service.CheckStatus("AB12CD34")

	assert.NoError(t, err)
	assert.Equal(t, "AB12CD34", status.ReferenceCode)
	assert.Equal(t, "Food Quality", status.Category)
	assert.Equal(t, longDescription[:50], status.DescriptionPreview)
	assert.False(t, status.Resolved)
}

// TestCheckStatus_ShortDescriptionUntouched verifies that descriptions under
// the preview length come back whole.
func TestCheckStatus_ShortDescriptionUntouched(t *testing.T) {
	repo := new(MockComplaintRepository)
	service := services.NewComplaintService(repo)

	repo.On("FindByReferenceCode", "ZZZZ9999").Return(&models.Complaint{
		Category:      "Other",
		Description:   "Broken window",
		ReferenceCode: "ZZZZ9999",
	}, nil).Once()

	status, err := service.CheckStatus("ZZZZ9999")

	assert.NoError(t, err)
	assert.Equal(t, "Broken window", status.DescriptionPreview)
}

// TestCheckStatus_NotFound verifies that an unknown reference code is a
// not-found result, not a storage error.
func TestCheckStatus_NotFound(t *testing.T) {
	repo := new(MockComplaintRepository)
	service := services.NewComplaintService(repo)

	repo.On("FindByReferenceCode", "NOPE0000").Return(nil, repositories.ErrRecordNotFound).Once()

	status, err := service.CheckStatus("NOPE0000")

	assert.ErrorIs(t, err, services.ErrComplaintNotFound)
	assert.Nil(t, status)
}

// TestResolveComplaint verifies resolution and its not-found translation.
func TestResolveComplaint(t *testing.T) {
	repo := new(MockComplaintRepository)
	service := services.NewComplaintService(repo)

	repo.On("MarkResolved", "AB12CD34").Return(&models.Complaint{
		ReferenceCode: "AB12CD34",
		Resolved:      true,
	}, nil).Once()
	repo.On("MarkResolved", "NOPE0000").Return(nil, repositories.ErrRecordNotFound).Once()

	resolved, err := service.ResolveComplaint("AB12CD34")
	assert.NoError(t, err)
	assert.True(t, resolved.Resolved)

	_, err = service.ResolveComplaint("NOPE0000")
	assert.ErrorIs(t, err, services.ErrComplaintNotFound)
}

// TestCategories verifies the closed set is returned as a defensive copy.
func TestCategories(t *testing.T) {
	service := services.NewComplaintService(new(MockComplaintRepository))

	categories := service.Categories()
	assert.Equal(t, models.ComplaintCategories, categories)

	categories[0] = "mutated"
	assert.NotEqual(t, "mutated", models.ComplaintCategories[0])
}
