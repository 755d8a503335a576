package employee

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/wichananm65/shopping-mall-backend/internal/interface/http/respond"
)

type Handler struct {
	service *Service
	shops   ShopLookup
}

func NewHandler(service *Service, shops ShopLookup) *Handler {
	return &Handler{service: service, shops: shops}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	api := app.Group("/api/employees")
	api.Post("/save", h.save)
	api.Get("/fetch", h.fetch)
	api.Get("/search/name/:keyword", h.searchByName)
	api.Get("/position/:position", h.getByPosition)
	api.Get("/shop/:shopId", h.getByShop)
	api.Get("/:id", h.getByID)
	api.Delete("/:id", h.delete)
}

func (h *Handler) save(c *fiber.Ctx) error {
	payload := new(Employee)
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
	employees, err := h.service.List(c.UserContext())
	return optional(c, employees, err)
}

func (h *Handler) getByID(c *fiber.Ctx) error {
	id, err := respond.ParamID(c, "id")
	if err != nil {
		return respond.BadRequest(c, err)
	}

	e, err := h.service.FindByID(c.UserContext(), id)
	if errors.Is(err, ErrNotFound) {
		return respond.NotFound(c)
	}
	if err != nil {
		return respond.ServerError(c, err)
	}
	return respond.OK(c, e)
}

func (h *Handler) searchByName(c *fiber.Ctx) error {
	employees, err := h.service.FindByNameContaining(c.UserContext(), c.Params("keyword"))
	return optional(c, employees, err)
}

func (h *Handler) getByPosition(c *fiber.Ctx) error {
	employees, err := h.service.FindByPosition(c.UserContext(), c.Params("position"))
	return optional(c, employees, err)
}

func (h *Handler) getByShop(c *fiber.Ctx) error {
	shopID, err := respond.ParamID(c, "shopId")
	if err != nil {
		return respond.BadRequest(c, err)
	}

	exists, err := h.shops.ShopExists(c.UserContext(), shopID)
	if err != nil {
		return respond.ServerError(c, err)
	}
	if !exists {
		return respond.NotFound(c)
	}

	employees, err := h.service.FindByShop(c.UserContext(), shopID)
	return optional(c, employees, err)
}

func (h *Handler) delete(c *fiber.Ctx) error {
	id, err := respond.ParamID(c, "id")
	if err != nil {
		return respond.BadRequest(c, err)
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return respond.ServerError(c, err)
	}
	return respond.NoContent(c)
}

func optional(c *fiber.Ctx, employees []Employee, err error) error {
	if errors.Is(err, ErrNotFound) {
		return respond.NotFound(c)
	}
	if err != nil {
		return respond.ServerError(c, err)
	}
	return respond.OK(c, employees)
}
