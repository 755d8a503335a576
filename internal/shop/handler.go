package shop

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/wichananm65/shopping-mall-backend/internal/interface/http/respond"
	"github.com/wichananm65/shopping-mall-backend/internal/shopowner"
)

type Handler struct {
	service *Service
	owners  shopowner.ServiceInterface
}

func NewHandler(service *Service, owners shopowner.ServiceInterface) *Handler {
	return &Handler{service: service, owners: owners}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	api := app.Group("/api/shops")
	api.Post("/save", h.save)
	api.Get("", h.fetch)
	api.Get("/search/name/:keyword", h.searchByName)
	api.Get("/location/:location", h.getByLocation)
	api.Get("/category/:category", h.getByCategory)
	api.Get("/owner/:ownerId", h.getByOwner)
	api.Get("/:id", h.getByID)
	api.Delete("/:id", h.delete)
}

func (h *Handler) save(c *fiber.Ctx) error {
	payload := new(Shop)
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
	shops, err := h.service.List(c.UserContext())
	return optional(c, shops, err)
}

func (h *Handler) getByID(c *fiber.Ctx) error {
	id, err := respond.ParamID(c, "id")
	if err != nil {
		return respond.BadRequest(c, err)
	}

	shop, err := h.service.FindByID(c.UserContext(), id)
	if errors.Is(err, ErrNotFound) {
		return respond.NotFound(c)
	}
	if err != nil {
		return respond.ServerError(c, err)
	}
	return respond.OK(c, shop)
}

func (h *Handler) searchByName(c *fiber.Ctx) error {
	shops, err := h.service.FindByNameContaining(c.UserContext(), c.Params("keyword"))
	return optional(c, shops, err)
}

func (h *Handler) getByLocation(c *fiber.Ctx) error {
	shops, err := h.service.FindByLocation(c.UserContext(), c.Params("location"))
	return optional(c, shops, err)
}

func (h *Handler) getByCategory(c *fiber.Ctx) error {
	shops, err := h.service.FindByCategory(c.UserContext(), c.Params("category"))
	return optional(c, shops, err)
}

func (h *Handler) getByOwner(c *fiber.Ctx) error {
	ownerID, err := respond.ParamID(c, "ownerId")
	if err != nil {
		return respond.BadRequest(c, err)
	}

	if _, err := h.owners.FindByID(c.UserContext(), ownerID); err != nil {
		if errors.Is(err, shopowner.ErrNotFound) {
			return respond.NotFound(c)
		}
		return respond.ServerError(c, err)
	}

	shops, err := h.service.FindByShopOwner(c.UserContext(), ownerID)
	return optional(c, shops, err)
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

func optional(c *fiber.Ctx, shops []Shop, err error) error {
	if errors.Is(err, ErrNotFound) {
		return respond.NotFound(c)
	}
	if err != nil {
		return respond.ServerError(c, err)
	}
	return respond.OK(c, shops)
}
