package repositories

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/railmadad/internal/models"
)

// ErrRecordNotFound marks a lookup miss; reuses gorm's sentinel.
var ErrRecordNotFound = gorm.ErrRecordNotFound

// ErrReferenceCodeConflict indicates the generated reference code already
// exists in the table. The submission service reacts by generating a new code.
var ErrReferenceCodeConflict = errors.New("a complaint with this reference code already exists")

// ErrStorageUnavailable wraps persistent storage failures after retries are
// exhausted. The handler layer turns it into a user-visible message naming the
// initialization prerequisite.
var ErrStorageUnavailable = errors.New("complaint storage is unavailable, ensure the database file is initialized and writable")

const (
	// busyRetryAttempts bounds retries for transient SQLITE_BUSY conditions.
	busyRetryAttempts = 3
	busyRetryBackoff  = 50 * time.Millisecond
)

// ComplaintRepository defines the persistence contract for complaints.
type ComplaintRepository interface {
	// Create inserts a new complaint and fills in its assigned ID.
	Create(complaint *models.Complaint) error
	// FindByReferenceCode does an exact-match lookup on reference_code.
	FindByReferenceCode(code string) (*models.Complaint, error)
	// FindAll reads the table for reporting, optionally narrowed by filter.
	// Filtering beyond category/date stays in the caller.
	FindAll(filter models.ComplaintFilter) ([]models.Complaint, error)
	// CountAll returns the total number of complaint rows.
	CountAll() (int64, error)
	// MarkResolved flips the resolved flag for the complaint with the given
	// reference code. Resolving an already-resolved complaint is a no-op.
	MarkResolved(code string) (*models.Complaint, error)
}

// gormComplaintRepository is the GORM implementation of ComplaintRepository.
type gormComplaintRepository struct {
	db *gorm.DB
}

// NewGormComplaintRepository creates a new gormComplaintRepository instance.
func NewGormComplaintRepository(db *gorm.DB) ComplaintRepository {
	return &gormComplaintRepository{db: db}
}

// isBusyError detects SQLite's transient locked/busy conditions. Concurrent
// writers serialize at the file level, so these are retryable.
func isBusyError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "database is locked") || strings.Contains(msg, "SQLITE_BUSY")
}

// isUniqueConstraintError detects a violation of the reference_code unique index.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// Create inserts a new complaint record. The server-side timestamp is assigned
// here if the caller left it zero. Transient busy errors are retried a bounded
// number of times with backoff before surfacing ErrStorageUnavailable.
func (r *gormComplaintRepository) Create(complaint *models.Complaint) error {
	if complaint.DateSubmitted.IsZero() {
		complaint.DateSubmitted = time.Now()
	}

	var err error
	for attempt := 0; attempt < busyRetryAttempts; attempt++ {
		err = r.db.Create(complaint).Error
		if err == nil {
			return nil
		}
		if isUniqueConstraintError(err) {
			return ErrReferenceCodeConflict
		}
		if !isBusyError(err) {
			break
		}
		time.Sleep(busyRetryBackoff * time.Duration(attempt+1))
	}
	return errors.Join(ErrStorageUnavailable, err)
}

// FindByReferenceCode retrieves at most one complaint by its reference code.
// Uniqueness is enforced by the index, so First is an exact match.
func (r *gormComplaintRepository) FindByReferenceCode(code string) (*models.Complaint, error) {
	var complaint models.Complaint
	err := r.db.Where("reference_code = ?", code).First(&complaint).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &complaint, nil
}

// FindAll reads complaints for the reporting screens. Category and date
// restrictions are pushed down as WHERE clauses; an empty filter reads the
// whole table. DateTo is exclusive (callers pass the start of the day after
// the last day they want included).
func (r *gormComplaintRepository) FindAll(filter models.ComplaintFilter) ([]models.Complaint, error) {
	query := r.db
	if len(filter.Categories) > 0 {
		query = query.Where("category IN ?", filter.Categories)
	}
	if filter.DateFrom != nil {
		query = query.Where("date_submitted >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("date_submitted < ?", *filter.DateTo)
	}

	var complaints []models.Complaint
	if err := query.Order("date_submitted ASC").Find(&complaints).Error; err != nil {
		return nil, err
	}
	return complaints, nil
}

// CountAll returns the number of complaint rows in the table.
func (r *gormComplaintRepository) CountAll() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Complaint{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// MarkResolved sets resolved=true on the complaint with the given reference
// code and returns the updated record. The flag is monotonic: nothing ever
// sets it back to false.
func (r *gormComplaintRepository) MarkResolved(code string) (*models.Complaint, error) {
	complaint, err := r.FindByReferenceCode(code)
	if err != nil {
		return nil, err
	}
	if complaint.Resolved {
		return complaint, nil
	}
	if err := r.db.Model(complaint).Update("resolved", true).Error; err != nil {
		return nil, err
	}
	complaint.Resolved = true
	return complaint, nil
}
