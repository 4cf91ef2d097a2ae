package handler

import (
	"context"
	"time"

	"career-compass/internal/database"
	"career-compass/internal/infrastructure/cache"
	"career-compass/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	db    database.DB
	cache *cache.Redis
}

func NewHealthHandler(db database.DB, c *cache.Redis) *HealthHandler {
	return &HealthHandler{db: db, cache: c}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	dbStatus := "up"
	if h.db == nil {
		dbStatus = "not configured"
	} else if err := h.db.Ping(ctx); err != nil {
		dbStatus = "down"
	}

	cacheStatus := "up"
	if err := h.cache.Ping(ctx); err != nil {
		cacheStatus = "down"
	}

	data := map[string]any{
		"database": dbStatus,
		"cache":    cacheStatus,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
