package handlers

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/google/uuid"

	"healthsync-service/internal/domain/dtos"
	"healthsync-service/internal/services"
)

// Compile-time check to ensure MockSyncService implements
// SyncServiceContract.
var _ services.SyncServiceContract = (*MockSyncService)(nil)

// MockSyncService is a function-field mock of the sync engine. The call
// counters let tests assert that rejected requests never reach it.
type MockSyncService struct {
	UploadFunc   func(ctx context.Context, ownerID uuid.UUID, records []dtos.ClientHealthRecord) (*dtos.UploadResult, error)
	DownloadFunc func(ctx context.Context, ownerID uuid.UUID, sinceMillis *int64) (*dtos.DownloadResult, error)

	UploadCallCount   int32
	DownloadCallCount int32
}

func (m *MockSyncService) Upload(ctx context.Context, ownerID uuid.UUID, records []dtos.ClientHealthRecord) (*dtos.UploadResult, error) {
	atomic.AddInt32(&m.UploadCallCount, 1)
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, ownerID, records)
	}
	return nil, errors.New("UploadFunc not implemented in mock")
}

func (m *MockSyncService) Download(ctx context.Context, ownerID uuid.UUID, sinceMillis *int64) (*dtos.DownloadResult, error) {
	atomic.AddInt32(&m.DownloadCallCount, 1)
	if m.DownloadFunc != nil {
		return m.DownloadFunc(ctx, ownerID, sinceMillis)
	}
	return nil, errors.New("DownloadFunc not implemented in mock")
}

// staticVerifier accepts exactly one token string and maps it to a fixed
// owner id.
type staticVerifier struct {
	token   string
	ownerID uuid.UUID
}

func (v staticVerifier) Verify(tokenString string) (uuid.UUID, error) {
	if tokenString != v.token {
		return uuid.Nil, errors.New("unknown token")
	}
	return v.ownerID, nil
}
