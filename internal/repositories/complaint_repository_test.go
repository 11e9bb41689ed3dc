package repositories_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/railmadad/internal/models"
	"github.com/railmadad/internal/repositories"
)

// newTestDB opens a fresh in-memory SQLite database with the migrated schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// Every pooled connection would get its own empty in-memory database, so
	// pin the pool to a single connection.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Complaint{}))
	return db
}

func newComplaint(code, category string, submitted time.Time, resolved bool) *models.Complaint {
	return &models.Complaint{
		PNR:           "PNR123",
		DateSubmitted: submitted,
		Category:      category,
		Description:   "Train arrived 3 hours late",
		Resolved:      resolved,
		Station:       "Jaipur Jn",
		SeatNumber:    "B4-22",
		ReferenceCode: code,
	}
}

// TestMigrationIdempotent verifies that running the schema migration twice
// neither errors nor duplicates anything.
func TestMigrationIdempotent(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.AutoMigrate(&models.Complaint{}))

	repo := repositories.NewGormComplaintRepository(db)
	require.NoError(t, repo.Create(newComplaint("AAAA1111", "Other", time.Now(), false)))

	count, err := repo.CountAll()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

// TestCreateAndFindByReferenceCode verifies the write-then-lookup round trip
// and ID assignment by storage.
func TestCreateAndFindByReferenceCode(t *testing.T) {
	repo := repositories.NewGormComplaintRepository(newTestDB(t))

	complaint := newComplaint("AB12CD34", "Train Delays", time.Now(), false)
	require.NoError(t, repo.Create(complaint))
	assert.NotZero(t, complaint.ID, "storage must assign the id")

	found, err := repo.FindByReferenceCode("AB12CD34")
	require.NoError(t, err)
	assert.Equal(t, complaint.ID, found.ID)
	assert.Equal(t, "Train Delays", found.Category)
	assert.Equal(t, "PNR123", found.PNR)
	assert.False(t, found.Resolved)
}

func TestFindByReferenceCode_Missing(t *testing.T) {
	repo := repositories.NewGormComplaintRepository(newTestDB(t))

	found, err := repo.FindByReferenceCode("NOPE0000")
	assert.ErrorIs(t, err, repositories.ErrRecordNotFound)
	assert.Nil(t, found)
}

// TestCreate_ReferenceCodeConflict verifies the unique index on
// reference_code surfaces as ErrReferenceCodeConflict.
func TestCreate_ReferenceCodeConflict(t *testing.T) {
	repo := repositories.NewGormComplaintRepository(newTestDB(t))

	require.NoError(t, repo.Create(newComplaint("AB12CD34", "Other", time.Now(), false)))
	err := repo.Create(newComplaint("AB12CD34", "Food Quality", time.Now(), false))

	assert.ErrorIs(t, err, repositories.ErrReferenceCodeConflict)

	count, err := repo.CountAll()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "the conflicting row must not be inserted")
}

// TestFindAll_Filters verifies category and date-range pushdown. DateTo is
// exclusive at this layer.
func TestFindAll_Filters(t *testing.T) {
	repo := repositories.NewGormComplaintRepository(newTestDB(t))

	jan := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	feb := time.Date(2026, 2, 15, 10, 0, 0, 0, time.UTC)
	mar := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(newComplaint("CODE0001", "Train Delays", jan, false)))
	require.NoError(t, repo.Create(newComplaint("CODE0002", "Food Quality", feb, true)))
	require.NoError(t, repo.Create(newComplaint("CODE0003", "Train Delays", mar, false)))

	// No filter: everything, oldest first.
	all, err := repo.FindAll(models.ComplaintFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "CODE0001", all[0].ReferenceCode)

	// Category filter.
	delays, err := repo.FindAll(models.ComplaintFilter{Categories: []string{"Train Delays"}})
	require.NoError(t, err)
	assert.Len(t, delays, 2)

	// Date range: from Feb 1 up to (but excluding) Mar 1.
	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	febOnly, err := repo.FindAll(models.ComplaintFilter{DateFrom: &from, DateTo: &to})
	require.NoError(t, err)
	require.Len(t, febOnly, 1)
	assert.Equal(t, "CODE0002", febOnly[0].ReferenceCode)

	// Combined filter that matches nothing.
	none, err := repo.FindAll(models.ComplaintFilter{Categories: []string{"Food Quality"}, DateFrom: &to})
	require.NoError(t, err)
	assert.Empty(t, none)
}

// TestMarkResolved verifies the flag flip, its idempotence and the not-found case.
func TestMarkResolved(t *testing.T) {
	repo := repositories.NewGormComplaintRepository(newTestDB(t))

	require.NoError(t, repo.Create(newComplaint("AB12CD34", "Safety Concerns", time.Now(), false)))

	resolved, err := repo.MarkResolved("AB12CD34")
	require.NoError(t, err)
	assert.True(t, resolved.Resolved)

	// Resolving again is a no-op.
	again, err := repo.MarkResolved("AB12CD34")
	require.NoError(t, err)
	assert.True(t, again.Resolved)

	found, err := repo.FindByReferenceCode("AB12CD34")
	require.NoError(t, err)
	assert.True(t, found.Resolved)

	_, err = repo.MarkResolved("NOPE0000")
	assert.ErrorIs(t, err, repositories.ErrRecordNotFound)
}

// TestCreate_AssignsTimestamp verifies the server-side timestamp default.
func TestCreate_AssignsTimestamp(t *testing.T) {
	repo := repositories.NewGormComplaintRepository(newTestDB(t))

	complaint := newComplaint("AB12CD34", "Other", time.Time{}, false)
	before := time.Now()
	require.NoError(t, repo.Create(complaint))

	assert.False(t, complaint.DateSubmitted.IsZero())
	assert.WithinDuration(t, before, complaint.DateSubmitted, 5*time.Second)
}
