package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"product-service/internal/product"
	"product-service/internal/response"
)

// New assembles the fiber app around the injected database handle.
func New(db *gorm.DB) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "ProductService",
		ErrorHandler: errorHandler,
	})

	app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	product.RegisterRoutes(app, db)

	return app
}

// errorHandler is the last boundary: anything a handler did not translate
// itself still leaves the process in the envelope shape.
func errorHandler(c *fiber.Ctx, err error) error {
	var e *fiber.Error
	if errors.As(err, &e) {
		return c.Status(e.Code).JSON(response.New(e.Message, nil, e.Code, nil))
	}

	log.Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
	return c.Status(fiber.StatusInternalServerError).
		JSON(response.New(response.MsgInternalError, nil, fiber.StatusInternalServerError, nil))
}
