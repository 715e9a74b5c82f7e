package app

import (
	"fmt"
	"log"
	"strings"

	"liftout/internal/config"
	"liftout/internal/delivery/http/middleware"
	"liftout/internal/delivery/http/routes"
	"liftout/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
	Hub   *ws.Hub
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c)
	registry := routes.NewRegistry(c.Config, c.DB, c.Cache, c.Logger)
	registry.Register(f)

	hub := ws.NewHub(c.Logger)
	go hub.Run()
	ws.SetDefaultHub(hub)
	wsHandler := ws.NewHandler(hub, c.Logger)
	f.Get("/ws", wsHandler.HandleWS)

	return &App{Fiber: f, Hub: hub}
}

func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return New(c), c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	app.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())
	app.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
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
