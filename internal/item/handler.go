package item

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/wichananm65/shopping-mall-backend/internal/interface/http/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	api := app.Group("/api/items")
	api.Post("/save", h.save)
	api.Get("/fetch", h.fetch)
	api.Get("/search/name/:keyword", h.searchByName)
	api.Get("/search/price/:price", h.searchByPrice)
	api.Get("/:id", h.getByID)
	api.Delete("/:id", h.delete)
}

func (h *Handler) save(c *fiber.Ctx) error {
	payload := new(Item)
	if err := c.BodyParser(payload); err != nil {
		return respond.BadRequest(c, err)
	}

	saved, err := h.service.Save(c.UserContext(), *payload)
	if err != nil {
		return respond.ServerError(c, err)
	}
	return respond.OK(c, saved)
}

func (h *Handler) fetch(c *fiber.Ctx) error {
	items, err := h.service.List(c.UserContext())
	if errors.Is(err, ErrNotFound) {
		return respond.NotFound(c)
	}
	if err != nil {
		return respond.ServerError(c, err)
	}
	return respond.OK(c, items)
}

func (h *Handler) getByID(c *fiber.Ctx) error {
	it, err := h.service.FindByID(c.UserContext(), c.Params("id"))
	if errors.Is(err, ErrNotFound) {
		return respond.NotFound(c)
	}
	if err != nil {
		return respond.ServerError(c, err)
	}
	return respond.OK(c, it)
}

func (h *Handler) searchByName(c *fiber.Ctx) error {
	items, err := h.service.FindByNameContaining(c.UserContext(), c.Params("keyword"))
	if err != nil {
		return respond.ServerError(c, err)
	}
	return respond.OK(c, items)
}

func (h *Handler) searchByPrice(c *fiber.Ctx) error {
	price, err := strconv.ParseFloat(c.Params("price"), 64)
	if err != nil {
		return respond.BadRequest(c, err)
	}

	items, err := h.service.FindByPriceLessThanEqual(c.UserContext(), price)
	if err != nil {
		return respond.ServerError(c, err)
	}
	return respond.OK(c, items)
}

func (h *Handler) delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respond.ServerError(c, err)
	}
	return respond.NoContent(c)
}
