package handler

import (
	"career-compass/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// userIDFromCtx reads the authenticated user's ID set by the auth middleware.
func userIDFromCtx(c fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals(middleware.CtxUserIDKey)
	id, ok := v.(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	return id, nil
}
