package shopowner

import (
	"errors"

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
	api := app.Group("/api/shop-owners")
	api.Post("/save", h.save)
	api.Get("/fetch", h.fetch)
	api.Get("/shop-name/:shopName", h.getByShopName)
	api.Get("/search/shop-name/:keyword", h.searchByShopName)
	api.Get("/search/shop-name-prefix/:prefix", h.searchByShopNamePrefix)
	api.Get("/search/shop-name-suffix/:suffix", h.searchByShopNameSuffix)
	api.Get("/search/shop-name-exact/:shopName", h.searchByShopNameExact)
	api.Get("/:id", h.getByID)
	api.Delete("/:id", h.delete)
}

func (h *Handler) save(c *fiber.Ctx) error {
	payload := new(ShopOwner)
	if err := c.BodyParser(payload); err != nil {
		return respond.BadRequest(c, err)
	}

	saved, err := h.service.Save(c.UserContext(), *payload)
	if err != nil {
		return respond.ServerError(c, err)
	}
	return respond.OK(c, saved)
}

// fetch answers 204 rather than 404 when the service reports no owners.
func (h *Handler) fetch(c *fiber.Ctx) error {
	owners, err := h.service.List(c.UserContext())
	if errors.Is(err, ErrNotFound) {
		return respond.NoContent(c)
	}
	if err != nil {
		return respond.ServerError(c, err)
	}
	return respond.OK(c, owners)
}

func (h *Handler) getByID(c *fiber.Ctx) error {
	id, err := respond.ParamID(c, "id")
	if err != nil {
		return respond.BadRequest(c, err)
	}

	owner, err := h.service.FindByID(c.UserContext(), id)
	if errors.Is(err, ErrNotFound) {
		return respond.NotFound(c)
	}
	if err != nil {
		return respond.ServerError(c, err)
	}
	return respond.OK(c, owner)
}

func (h *Handler) getByShopName(c *fiber.Ctx) error {
	owners, err := h.service.FindByShopName(c.UserContext(), c.Params("shopName"))
	return list(c, owners, err)
}

func (h *Handler) searchByShopName(c *fiber.Ctx) error {
	owners, err := h.service.FindByShopNameContaining(c.UserContext(), c.Params("keyword"))
	return list(c, owners, err)
}

func (h *Handler) searchByShopNamePrefix(c *fiber.Ctx) error {
	owners, err := h.service.FindByShopNameStartingWith(c.UserContext(), c.Params("prefix"))
	return list(c, owners, err)
}

func (h *Handler) searchByShopNameSuffix(c *fiber.Ctx) error {
	owners, err := h.service.FindByShopNameEndingWith(c.UserContext(), c.Params("suffix"))
	return list(c, owners, err)
}

func (h *Handler) searchByShopNameExact(c *fiber.Ctx) error {
	owners, err := h.service.FindByShopNameIgnoreCase(c.UserContext(), c.Params("shopName"))
	return list(c, owners, err)
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

func list(c *fiber.Ctx, owners []ShopOwner, err error) error {
	if err != nil {
		return respond.ServerError(c, err)
	}
	return respond.OK(c, owners)
}
