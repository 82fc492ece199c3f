package handlers

import "github.com/gofiber/fiber/v2"

// RegisterRoutes wires the API routes onto the fiber app. Everything except
// login sits behind the auth middleware, so credential verification happens
// before any store access.
func RegisterRoutes(
	app *fiber.App,
	requireAuth fiber.Handler,
	authHandler *AuthHandler,
	syncHandler *SyncHandler,
	chatHandler *ChatHandler,
	attachmentHandler *AttachmentHandler,
) {
	api := app.Group("/api")
	api.Post("/auth/login", authHandler.Login)

	protected := api.Group("", requireAuth)
	protected.Post("/health/sync", syncHandler.Sync)
	protected.Post("/chat", chatHandler.Chat)
	protected.Post("/attachments", attachmentHandler.Upload)
}
