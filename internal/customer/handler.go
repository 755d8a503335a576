package customer

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
	api := app.Group("/api/customers")
	api.Post("/save", h.save)
	api.Get("/fetch", h.fetch)
	api.Get("/phone/:phoneNumber", h.getByPhone)
	api.Get("/search/address/:keyword", h.searchByAddress)
	api.Get("/address/:address", h.getByAddress)
	api.Get("/address-ignore-case/:address", h.getByAddressIgnoreCase)
	api.Get("/:id", h.getByID)
	api.Delete("/:id", h.delete)
}

func (h *Handler) save(c *fiber.Ctx) error {
	payload := new(Customer)
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
	return optional(c, func() ([]Customer, error) {
		return h.service.List(c.UserContext())
	})
}

func (h *Handler) getByID(c *fiber.Ctx) error {
	id, err := respond.ParamID(c, "id")
	if err != nil {
		return respond.BadRequest(c, err)
	}

	customer, err := h.service.FindByID(c.UserContext(), id)
	if errors.Is(err, ErrNotFound) {
		return respond.NotFound(c)
	}
	if err != nil {
		return respond.ServerError(c, err)
	}
	return respond.OK(c, customer)
}

func (h *Handler) getByPhone(c *fiber.Ctx) error {
	return optional(c, func() ([]Customer, error) {
		return h.service.FindByPhoneNumberContaining(c.UserContext(), c.Params("phoneNumber"))
	})
}

func (h *Handler) searchByAddress(c *fiber.Ctx) error {
	return optional(c, func() ([]Customer, error) {
		return h.service.FindByAddressContaining(c.UserContext(), c.Params("keyword"))
	})
}

func (h *Handler) getByAddress(c *fiber.Ctx) error {
	return optional(c, func() ([]Customer, error) {
		return h.service.FindByAddress(c.UserContext(), c.Params("address"))
	})
}

func (h *Handler) getByAddressIgnoreCase(c *fiber.Ctx) error {
	return optional(c, func() ([]Customer, error) {
		return h.service.FindByAddressIgnoreCase(c.UserContext(), c.Params("address"))
	})
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

func optional(c *fiber.Ctx, lookup func() ([]Customer, error)) error {
	customers, err := lookup()
	if errors.Is(err, ErrNotFound) {
		return respond.NotFound(c)
	}
	if err != nil {
		return respond.ServerError(c, err)
	}
	return respond.OK(c, customers)
}
