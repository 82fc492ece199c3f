package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"healthsync-service/internal/adapters"
	"healthsync-service/internal/domain/dtos"
)

// ChatHandler proxies conversational AI requests to the LLM provider.
type ChatHandler struct {
	chatProvider adapters.ChatProviderClient
	logger       *zap.Logger
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatProvider adapters.ChatProviderClient, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{chatProvider: chatProvider, logger: logger}
}

// Chat handles POST /api/chat.
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req dtos.ChatRequest
	if err := c.BodyParser(&req); err != nil || len(req.Messages) == 0 {
		return respondError(c, fiber.StatusBadRequest, "messages must be a non-empty list")
	}

	reply, err := h.chatProvider.Complete(c.Context(), req.Messages)
	if err != nil {
		h.logger.Error("chat provider request failed", zap.Error(err))
		return respondError(c, fiber.StatusBadGateway, "chat request failed")
	}
	return respondOK(c, dtos.ChatResult{Reply: reply})
}
