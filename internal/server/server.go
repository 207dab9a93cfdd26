// Package server exposes scene building over HTTP for rendering hosts
// that fetch scene descriptions remotely.
package server

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/loftlab/roomforge/internal/config"
	"github.com/loftlab/roomforge/internal/scene"
	"github.com/loftlab/roomforge/internal/session"
)

// New builds the fiber application with all routes registered.
func New(cfg config.ServerConfig, builder *scene.Builder) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		AppName:      "roomforge",
	})

	app.Use(recover.New())
	app.Use(RequestLogger())

	app.Get("/health/live", liveness)
	app.Get("/health/ready", readiness)

	api := app.Group("/api/v1")
	api.Post("/scene", buildScene(builder))

	return app
}

func liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "alive"})
}

func readiness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ready", "time": time.Now().UTC()})
}

// buildScene turns a posted session document into a scene description.
// Session validation failures are client errors; building itself is total
// and never fails.
func buildScene(builder *scene.Builder) fiber.Handler {
	return func(c fiber.Ctx) error {
		doc, err := session.Parse(c.Body())
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.JSON(builder.Build(doc))
	}
}
