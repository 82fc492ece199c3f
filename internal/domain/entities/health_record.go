package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// HealthRecord represents one synchronized health-test result owned by a user.
// Answers and Result are stored as JSONB and treated as opaque payloads. The
// unique composite index on (owner_id, external_id) backs upload
// deduplication when two concurrent uploads race past the engine's
// existence check.
type HealthRecord struct {
	ID         uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OwnerID    uuid.UUID      `json:"owner_id" gorm:"type:uuid;not null;uniqueIndex:idx_health_records_owner_external"`
	ExternalID string         `json:"external_id" gorm:"not null;uniqueIndex:idx_health_records_owner_external"`
	TestType   string         `json:"test_type" gorm:"not null"`
	TestName   string         `json:"test_name" gorm:"not null"`
	TestDate   time.Time      `json:"test_date" gorm:"not null"`
	Answers    datatypes.JSON `json:"answers" gorm:"type:jsonb;default:'[]'"`
	Result     datatypes.JSON `json:"result" gorm:"type:jsonb;default:'{}'"`
	CreatedAt  time.Time      `json:"created_at" gorm:"not null"`
	UpdatedAt  time.Time      `json:"updated_at" gorm:"not null"` // drives incremental download
}
