package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"healthsync-service/internal/domain/entities"
)

// GormHealthRecordRepository implements HealthRecordRepositoryContract on a
// gorm connection.
type GormHealthRecordRepository struct {
	db *gorm.DB
}

// NewHealthRecordRepository creates a new gorm-backed health record
// repository.
func NewHealthRecordRepository(db *gorm.DB) HealthRecordRepositoryContract {
	return &GormHealthRecordRepository{db: db}
}

func (r *GormHealthRecordRepository) ExistsByExternalID(ctx context.Context, ownerID uuid.UUID, externalID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.HealthRecord{}).
		Where("owner_id = ? AND external_id = ?", ownerID, externalID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormHealthRecordRepository) Create(ctx context.Context, record *entities.HealthRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	err := r.db.WithContext(ctx).Create(record).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateRecord
	}
	return err
}

func (r *GormHealthRecordRepository) FindByOwnerSince(ctx context.Context, ownerID uuid.UUID, since *time.Time) ([]*entities.HealthRecord, error) {
	query := r.db.WithContext(ctx).Where("owner_id = ?", ownerID)
	if since != nil {
		query = query.Where("updated_at > ?", *since)
	}
	var records []*entities.HealthRecord
	if err := query.Order("test_date DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
