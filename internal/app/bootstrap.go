package app

import (
	"fmt"
	"log"
	"os"
	"strings"

	"career-compass/internal/config"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/delivery/http/routes"
	"career-compass/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
	Hub       *ws.Hub
}

// Bootstrap builds the container, the websocket hub, and the fiber app with
// all routes registered. The returned cleanup closes infra connections.
func Bootstrap(cfg config.Config) (*App, func() error, error) {
	logger := newLogger(cfg)

	container, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	hub := ws.NewHub(logger)
	go hub.Run()
	ws.SetDefaultHub(hub)

	f := fiber.New(fiber.Config{
		AppName: cfg.App.AppName,
	})

	registerGlobalMiddleware(f, logger)
	routes.NewRegistry(cfg, container.DB, container.Cache, hub, logger).Register(f)

	app := &App{Fiber: f, Container: container, Hub: hub}
	return app, container.Close, nil
}

func newLogger(cfg config.Config) *log.Logger {
	prefix := "[" + cfg.App.AppName + "] "
	return log.New(os.Stdout, prefix, log.LstdFlags|log.Lmsgprefix)
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewErrorMiddleware().Middleware())
	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
