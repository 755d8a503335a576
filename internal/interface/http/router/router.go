package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// RouteRegistrar is implemented by every resource handler.
type RouteRegistrar interface {
	RegisterPublicRoutes(app *fiber.App)
}

// New builds the fiber app with the shared middleware stack, a /health
// probe and the routes of every given handler.
func New(handlers ...RouteRegistrar) *fiber.App {
	app := fiber.New(fiber.Config{UnescapePath: true})
	app.Use(recover.New())
	app.Use(logger.New())
	setupCORS(app)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	for _, h := range handlers {
		h.RegisterPublicRoutes(app)
	}
	return app
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
}
