package handlers

import (
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"healthsync-service/internal/adapters"
)

// AttachmentHandler stores uploaded files through the object storage
// adapter.
type AttachmentHandler struct {
	storage adapters.ObjectStorage
	logger  *zap.Logger
}

// NewAttachmentHandler creates a new AttachmentHandler.
func NewAttachmentHandler(storage adapters.ObjectStorage, logger *zap.Logger) *AttachmentHandler {
	return &AttachmentHandler{storage: storage, logger: logger}
}

// Upload handles POST /api/attachments (multipart field "file"). Object keys
// are server-generated so client filenames never reach the filesystem.
func (h *AttachmentHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "file is required")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "could not read uploaded file")
	}
	defer src.Close()

	key := uuid.New().String() + filepath.Ext(fileHeader.Filename)
	url, err := h.storage.Put(c.Context(), key, src)
	if err != nil {
		h.logger.Error("attachment store failed",
			zap.String("key", key),
			zap.Error(err))
		return respondError(c, fiber.StatusInternalServerError, "failed to store file")
	}

	return respondOK(c, fiber.Map{"url": url})
}
