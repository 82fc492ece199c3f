package handlers

import "github.com/gofiber/fiber/v2"

// All responses share the {success, data|message} envelope the mini-program
// client expects. Error messages stay generic; internal detail is logged
// only.

func respondOK(c *fiber.Ctx, data interface{}) error {
	return c.JSON(fiber.Map{"success": true, "data": data})
}

func respondError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "message": message})
}
