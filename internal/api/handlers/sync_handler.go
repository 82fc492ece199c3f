package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"healthsync-service/internal/auth"
	"healthsync-service/internal/domain/dtos"
	"healthsync-service/internal/services"
)

// SyncHandler exposes the health-record synchronization endpoint.
type SyncHandler struct {
	syncService services.SyncServiceContract
	logger      *zap.Logger
}

// NewSyncHandler creates a new SyncHandler.
func NewSyncHandler(syncService services.SyncServiceContract, logger *zap.Logger) *SyncHandler {
	return &SyncHandler{syncService: syncService, logger: logger}
}

// Sync dispatches the action envelope posted to /api/health/sync. The owner
// id comes from the verified credential stashed by the auth middleware.
func (h *SyncHandler) Sync(c *fiber.Ctx) error {
	ownerID, ok := c.Locals(auth.OwnerIDKey).(uuid.UUID)
	if !ok {
		return respondError(c, fiber.StatusUnauthorized, "invalid or missing credential")
	}

	var req dtos.SyncRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "could not parse request body")
	}

	switch req.Action {
	case dtos.SyncActionUpload:
		return h.upload(c, ownerID, req.Records)
	case dtos.SyncActionDownload:
		return h.download(c, ownerID, req.SinceTimestamp)
	default:
		return respondError(c, fiber.StatusBadRequest, "unrecognized action")
	}
}

func (h *SyncHandler) upload(c *fiber.Ctx, ownerID uuid.UUID, records []dtos.ClientHealthRecord) error {
	result, err := h.syncService.Upload(c.Context(), ownerID, records)
	if err != nil {
		if errors.Is(err, services.ErrEmptyBatch) {
			return respondError(c, fiber.StatusBadRequest, "records must be a non-empty list")
		}
		h.logger.Error("health data upload failed",
			zap.String("owner_id", ownerID.String()),
			zap.Error(err))
		if result != nil {
			// Partial counts stay observable so the client can reconcile
			// which part of the batch is durable.
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "failed to store health data",
				"data":    result,
			})
		}
		return respondError(c, fiber.StatusInternalServerError, "failed to store health data")
	}
	return respondOK(c, result)
}

func (h *SyncHandler) download(c *fiber.Ctx, ownerID uuid.UUID, sinceMillis *int64) error {
	result, err := h.syncService.Download(c.Context(), ownerID, sinceMillis)
	if err != nil {
		h.logger.Error("health data download failed",
			zap.String("owner_id", ownerID.String()),
			zap.Error(err))
		return respondError(c, fiber.StatusInternalServerError, "failed to fetch health data")
	}
	return respondOK(c, result)
}
