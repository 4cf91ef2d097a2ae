package routes

import (
	"log"

	"career-compass/internal/config"
	"career-compass/internal/database"
	"career-compass/internal/delivery/http/handler"
	"career-compass/internal/infrastructure/cache"
	"career-compass/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	cfg    config.Config
	db     database.DB
	cache  *cache.Redis
	hub    *ws.Hub
	logger *log.Logger

	health *handler.HealthHandler
}

func NewRegistry(cfg config.Config, db database.DB, c *cache.Redis, hub *ws.Hub, logger *log.Logger) *Registry {
	return &Registry{
		cfg:    cfg,
		db:     db,
		cache:  c,
		hub:    hub,
		logger: logger,
		health: handler.NewHealthHandler(db, c),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerWS(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	r.health.RegisterRoutes(app)
}

func (r *Registry) registerWS(app *fiber.App) {
	wsHandler := ws.NewHandler(r.hub, r.logger)
	app.Get("/ws/roadmaps", wsHandler.HandleRoadmapWS)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.cfg, r.db, r.cache, r.logger)
}
