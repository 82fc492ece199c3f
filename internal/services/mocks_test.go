package services

import (
	"context"
	"errors"
	"sort"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"healthsync-service/internal/domain/entities"
	"healthsync-service/internal/domain/repositories"
)

// Compile-time check to ensure MockHealthRecordRepository implements
// HealthRecordRepositoryContract.
var _ repositories.HealthRecordRepositoryContract = (*MockHealthRecordRepository)(nil)

// MockHealthRecordRepository is a function-field mock of the record store.
// The call counters allow tests to assert that a path never reached the
// store.
type MockHealthRecordRepository struct {
	ExistsByExternalIDFunc func(ctx context.Context, ownerID uuid.UUID, externalID string) (bool, error)
	CreateFunc             func(ctx context.Context, record *entities.HealthRecord) error
	FindByOwnerSinceFunc   func(ctx context.Context, ownerID uuid.UUID, since *time.Time) ([]*entities.HealthRecord, error)

	ExistsCallCount int32
	CreateCallCount int32
	FindCallCount   int32
}

func (m *MockHealthRecordRepository) ExistsByExternalID(ctx context.Context, ownerID uuid.UUID, externalID string) (bool, error) {
	atomic.AddInt32(&m.ExistsCallCount, 1)
	if m.ExistsByExternalIDFunc != nil {
		return m.ExistsByExternalIDFunc(ctx, ownerID, externalID)
	}
	return false, errors.New("ExistsByExternalIDFunc not implemented in mock")
}

func (m *MockHealthRecordRepository) Create(ctx context.Context, record *entities.HealthRecord) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, record)
	}
	return errors.New("CreateFunc not implemented in mock")
}

func (m *MockHealthRecordRepository) FindByOwnerSince(ctx context.Context, ownerID uuid.UUID, since *time.Time) ([]*entities.HealthRecord, error) {
	atomic.AddInt32(&m.FindCallCount, 1)
	if m.FindByOwnerSinceFunc != nil {
		return m.FindByOwnerSinceFunc(ctx, ownerID, since)
	}
	return nil, errors.New("FindByOwnerSinceFunc not implemented in mock")
}

// fakeRecordStore is an in-memory store with the adapter's contract
// semantics: owner scoping, strict updated_at filter, test_date descending
// order. Used for the end-to-end sync properties.
type fakeRecordStore struct {
	records []*entities.HealthRecord
}

var _ repositories.HealthRecordRepositoryContract = (*fakeRecordStore)(nil)

func (f *fakeRecordStore) ExistsByExternalID(_ context.Context, ownerID uuid.UUID, externalID string) (bool, error) {
	for _, rec := range f.records {
		if rec.OwnerID == ownerID && rec.ExternalID == externalID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRecordStore) Create(_ context.Context, record *entities.HealthRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	stored := *record
	// Store-assigned timestamps, as gorm would fill them on insert.
	if stored.UpdatedAt.IsZero() {
		stored.UpdatedAt = time.Now()
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	f.records = append(f.records, &stored)
	return nil
}

func (f *fakeRecordStore) FindByOwnerSince(_ context.Context, ownerID uuid.UUID, since *time.Time) ([]*entities.HealthRecord, error) {
	var out []*entities.HealthRecord
	for _, rec := range f.records {
		if rec.OwnerID != ownerID {
			continue
		}
		if since != nil && !rec.UpdatedAt.After(*since) {
			continue
		}
		out = append(out, rec)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TestDate.After(out[j].TestDate)
	})
	return out, nil
}
