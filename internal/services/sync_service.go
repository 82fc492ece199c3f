package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"healthsync-service/internal/domain/dtos"
	"healthsync-service/internal/domain/repositories"
	"healthsync-service/internal/mappers"
)

// ErrEmptyBatch is returned when an upload carries no records. It is checked
// before any store access.
var ErrEmptyBatch = errors.New("records batch must not be empty")

// SyncServiceImpl implements SyncServiceContract against a health record
// repository.
type SyncServiceImpl struct {
	recordRepo repositories.HealthRecordRepositoryContract
	logger     *zap.Logger
	now        func() time.Time
}

// NewSyncService creates a new instance of SyncServiceImpl.
func NewSyncService(recordRepo repositories.HealthRecordRepositoryContract, logger *zap.Logger) SyncServiceContract {
	return &SyncServiceImpl{
		recordRepo: recordRepo,
		logger:     logger,
		now:        time.Now,
	}
}

// Upload processes the batch sequentially, in input order, so the skip and
// upload counts are deterministic. The check-then-insert pair is not atomic;
// two concurrent uploads of the same external id can both insert, which is
// tolerated (dedup is bookkeeping, not a correctness invariant here).
func (s *SyncServiceImpl) Upload(ctx context.Context, ownerID uuid.UUID, records []dtos.ClientHealthRecord) (*dtos.UploadResult, error) {
	if len(records) == 0 {
		return nil, ErrEmptyBatch
	}

	result := &dtos.UploadResult{Total: len(records)}
	for _, rec := range records {
		exists, err := s.recordRepo.ExistsByExternalID(ctx, ownerID, rec.ExternalID)
		if err != nil {
			s.logger.Error("dedup lookup failed",
				zap.String("owner_id", ownerID.String()),
				zap.String("external_id", rec.ExternalID),
				zap.Error(err))
			return result, fmt.Errorf("checking record %s: %w", rec.ExternalID, err)
		}
		if exists {
			// Idempotent no-op: the client already synced this record.
			result.Skipped++
			continue
		}

		entity := mappers.ToEntity(ownerID, rec, s.now())
		if err := s.recordRepo.Create(ctx, entity); err != nil {
			if errors.Is(err, repositories.ErrDuplicateRecord) {
				// Lost the check-then-insert race to a concurrent upload of
				// the same record; the unique index makes it a skip.
				result.Skipped++
				continue
			}
			s.logger.Error("record insert failed",
				zap.String("owner_id", ownerID.String()),
				zap.String("external_id", rec.ExternalID),
				zap.Error(err))
			// Records written so far stay durable; the counts in result let
			// the caller observe the partial progress.
			return result, fmt.Errorf("storing record %s: %w", rec.ExternalID, err)
		}
		result.Uploaded++
	}

	s.logger.Info("health data batch merged",
		zap.String("owner_id", ownerID.String()),
		zap.Int("uploaded", result.Uploaded),
		zap.Int("skipped", result.Skipped))
	return result, nil
}

// Download applies the high-water-mark filter at the store and reshapes every
// surviving row through the shared codec. SyncTime is captured before the
// query so a record updated while the query runs is re-sent next time rather
// than lost.
func (s *SyncServiceImpl) Download(ctx context.Context, ownerID uuid.UUID, sinceMillis *int64) (*dtos.DownloadResult, error) {
	var since *time.Time
	if sinceMillis != nil {
		t := time.UnixMilli(*sinceMillis)
		since = &t
	}

	syncTime := s.now().UnixMilli()
	rows, err := s.recordRepo.FindByOwnerSince(ctx, ownerID, since)
	if err != nil {
		s.logger.Error("record query failed",
			zap.String("owner_id", ownerID.String()),
			zap.Error(err))
		return nil, fmt.Errorf("querying records: %w", err)
	}

	views := make([]dtos.HealthRecordView, 0, len(rows))
	for _, row := range rows {
		views = append(views, mappers.ToView(row))
	}

	return &dtos.DownloadResult{Records: views, SyncTime: syncTime}, nil
}
