package services

import (
	"context"

	"github.com/google/uuid"

	"healthsync-service/internal/domain/dtos"
)

// SyncServiceContract defines the health-record synchronization operations.
// The owner id must come from a verified credential; the engine never touches
// records outside that partition.
type SyncServiceContract interface {
	// Upload merges a client batch into durable storage without creating
	// duplicates. On a mid-batch store failure the returned result still
	// carries the counts accumulated before the failure.
	Upload(ctx context.Context, ownerID uuid.UUID, records []dtos.ClientHealthRecord) (*dtos.UploadResult, error)
	// Download returns the owner's records changed strictly after
	// sinceMillis (epoch milliseconds; nil means everything), newest test
	// first, plus the syncTime to echo back on the next call.
	Download(ctx context.Context, ownerID uuid.UUID, sinceMillis *int64) (*dtos.DownloadResult, error)
}
