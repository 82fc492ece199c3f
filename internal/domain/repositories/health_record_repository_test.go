package repositories

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockDB opens a gorm connection over a sqlmock driver so repository SQL
// can be asserted without a live database.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err, "sqlmock.New() should not fail")
	t.Cleanup(func() { _ = db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err, "gorm.Open over sqlmock should not fail")
	return gdb, mock
}

func TestGormHealthRecordRepository_ExistsByExternalID(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewHealthRecordRepository(gdb)

	ownerID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT count(*) FROM "health_records" WHERE owner_id = $1 AND external_id = $2`)).
		WithArgs(ownerID, "rec-001").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.ExistsByExternalID(context.Background(), ownerID, "rec-001")
	assert.NoError(t, err)
	assert.True(t, exists, "a counted row should report existence")

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT count(*) FROM "health_records" WHERE owner_id = $1 AND external_id = $2`)).
		WithArgs(ownerID, "rec-002").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	exists, err = repo.ExistsByExternalID(context.Background(), ownerID, "rec-002")
	assert.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormHealthRecordRepository_FindByOwnerSince_All(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewHealthRecordRepository(gdb)

	ownerID := uuid.New()
	recordID := uuid.New()
	testDate := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "owner_id", "external_id", "test_type", "test_name", "test_date", "answers", "result", "created_at", "updated_at"}).
		AddRow(recordID, ownerID, "rec-001", "vision", "Vision Screening", testDate, []byte(`[1,2]`), []byte(`{"score":3}`), testDate, testDate)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT * FROM "health_records" WHERE owner_id = $1 ORDER BY test_date DESC`)).
		WithArgs(ownerID).
		WillReturnRows(rows)

	records, err := repo.FindByOwnerSince(context.Background(), ownerID, nil)
	assert.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "rec-001", records[0].ExternalID)
	assert.Equal(t, ownerID, records[0].OwnerID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormHealthRecordRepository_FindByOwnerSince_HighWaterMark(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewHealthRecordRepository(gdb)

	ownerID := uuid.New()
	since := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT * FROM "health_records" WHERE owner_id = $1 AND updated_at > $2 ORDER BY test_date DESC`)).
		WithArgs(ownerID, since).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	records, err := repo.FindByOwnerSince(context.Background(), ownerID, &since)
	assert.NoError(t, err)
	assert.Empty(t, records, "no rows newer than the high-water mark")

	assert.NoError(t, mock.ExpectationsWereMet())
}
