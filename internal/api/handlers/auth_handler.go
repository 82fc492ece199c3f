package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"healthsync-service/internal/adapters"
	"healthsync-service/internal/auth"
	"healthsync-service/internal/domain/dtos"
	"healthsync-service/internal/domain/entities"
	"healthsync-service/internal/domain/repositories"
)

// AuthHandler exchanges a provider login code for a session token.
type AuthHandler struct {
	provider adapters.IdentityProviderClient
	userRepo repositories.UserRepositoryContract
	tokens   *auth.TokenManager
	logger   *zap.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(
	provider adapters.IdentityProviderClient,
	userRepo repositories.UserRepositoryContract,
	tokens *auth.TokenManager,
	logger *zap.Logger,
) *AuthHandler {
	return &AuthHandler{
		provider: provider,
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// Login handles POST /api/auth/login. The user account is created on first
// login, keyed by the provider openid.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dtos.LoginRequest
	if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.Code) == "" {
		return respondError(c, fiber.StatusBadRequest, "code is required")
	}

	openID, err := h.provider.ExchangeCode(c.Context(), req.Code)
	if err != nil {
		h.logger.Warn("provider code exchange failed", zap.Error(err))
		return respondError(c, fiber.StatusBadGateway, "login with identity provider failed")
	}

	user, err := h.userRepo.FindByOpenID(c.Context(), openID)
	if err != nil {
		h.logger.Error("user lookup failed", zap.Error(err))
		return respondError(c, fiber.StatusInternalServerError, "login failed")
	}
	if user == nil {
		user = &entities.User{OpenID: openID}
		if err := h.userRepo.Create(c.Context(), user); err != nil {
			h.logger.Error("user creation failed", zap.Error(err))
			return respondError(c, fiber.StatusInternalServerError, "login failed")
		}
	}

	token, err := h.tokens.Issue(user.ID, openID)
	if err != nil {
		h.logger.Error("token issuance failed", zap.Error(err))
		return respondError(c, fiber.StatusInternalServerError, "login failed")
	}

	return respondOK(c, dtos.LoginResult{
		Token:     token,
		ExpiresIn: int64(h.tokens.TTL().Seconds()),
		UserID:    user.ID,
	})
}
