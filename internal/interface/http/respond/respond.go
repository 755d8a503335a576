// Package respond holds the status helpers shared by every resource handler.
package respond

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// OK writes payload as JSON with status 200.
func OK(c *fiber.Ctx, payload any) error {
	return c.Status(fiber.StatusOK).JSON(payload)
}

// NotFound writes an empty 404.
func NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).Send(nil)
}

// NoContent writes an empty 204.
func NoContent(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNoContent).Send(nil)
}

// BadRequest writes a 400 with the error message.
func BadRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
}

// ServerError writes a 500 with the error message.
func ServerError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
}

// ParamID parses the named path parameter as an int64 id.
func ParamID(c *fiber.Ctx, name string) (int64, error) {
	return strconv.ParseInt(c.Params(name), 10, 64)
}
