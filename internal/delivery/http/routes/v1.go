package routes

import (
	"log"

	"career-compass/internal/config"
	"career-compass/internal/database"
	v1 "career-compass/internal/delivery/http/routes/v1"
	"career-compass/internal/infrastructure/cache"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, cfg config.Config, db database.DB, c *cache.Redis, logger *log.Logger) {
	if r == nil {
		return
	}

	v1.Register(r, cfg, db, c, logger)
}
