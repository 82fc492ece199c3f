package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"healthsync-service/internal/domain/entities"
)

// ErrDuplicateRecord reports an insert that violated the unique
// (owner_id, external_id) index. The sync engine treats it as a skip: the
// record is already durable via a concurrent upload.
var ErrDuplicateRecord = errors.New("record already exists for owner")

// HealthRecordRepositoryContract defines the store operations the sync
// engine depends on. Every operation is scoped to a single owner.
type HealthRecordRepositoryContract interface {
	// ExistsByExternalID reports whether the owner already has a record with
	// the given client-generated external id (the upload dedup probe).
	ExistsByExternalID(ctx context.Context, ownerID uuid.UUID, externalID string) (bool, error)
	// Create inserts a new record. The record's ID is assigned here if
	// unset. A uniqueness violation is reported as ErrDuplicateRecord.
	Create(ctx context.Context, record *entities.HealthRecord) error
	// FindByOwnerSince returns the owner's records, restricted to those with
	// updated_at strictly after since when since is non-nil, ordered by
	// test_date descending.
	FindByOwnerSince(ctx context.Context, ownerID uuid.UUID, since *time.Time) ([]*entities.HealthRecord, error)
}
