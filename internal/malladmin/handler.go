package malladmin

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
	api := app.Group("/api/admins")
	api.Post("/save", h.save)
	api.Get("/fetch", h.fetch)
	api.Get("/role/:role", h.getByRole)
	api.Get("/search/username/:keyword", h.searchByUsername)
	api.Get("/search/username-prefix/:prefix", h.searchByUsernamePrefix)
	api.Get("/search/username-suffix/:suffix", h.searchByUsernameSuffix)
	api.Get("/search/username-exact/:username", h.searchByUsernameExact)
	api.Get("/:id", h.getByID)
	api.Delete("/:id", h.delete)
}

func (h *Handler) save(c *fiber.Ctx) error {
	payload := new(MallAdmin)
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
	admins, err := h.service.List(c.UserContext())
	return optional(c, admins, err)
}

func (h *Handler) getByID(c *fiber.Ctx) error {
	id, err := respond.ParamID(c, "id")
	if err != nil {
		return respond.BadRequest(c, err)
	}

	admin, err := h.service.FindByID(c.UserContext(), id)
	if errors.Is(err, ErrNotFound) {
		return respond.NotFound(c)
	}
	if err != nil {
		return respond.ServerError(c, err)
	}
	return respond.OK(c, admin)
}

func (h *Handler) getByRole(c *fiber.Ctx) error {
	admins, err := h.service.FindByRole(c.UserContext(), c.Params("role"))
	return optional(c, admins, err)
}

func (h *Handler) searchByUsername(c *fiber.Ctx) error {
	admins, err := h.service.FindByUsernameContaining(c.UserContext(), c.Params("keyword"))
	return optional(c, admins, err)
}

func (h *Handler) searchByUsernamePrefix(c *fiber.Ctx) error {
	admins, err := h.service.FindByUsernameStartingWith(c.UserContext(), c.Params("prefix"))
	return optional(c, admins, err)
}

func (h *Handler) searchByUsernameSuffix(c *fiber.Ctx) error {
	admins, err := h.service.FindByUsernameEndingWith(c.UserContext(), c.Params("suffix"))
	return optional(c, admins, err)
}

func (h *Handler) searchByUsernameExact(c *fiber.Ctx) error {
	admins, err := h.service.FindByUsernameIgnoreCase(c.UserContext(), c.Params("username"))
	return optional(c, admins, err)
}

// delete is the only delete route that reports a missing record as 404.
func (h *Handler) delete(c *fiber.Ctx) error {
	id, err := respond.ParamID(c, "id")
	if err != nil {
		return respond.BadRequest(c, err)
	}

	err = h.service.Delete(c.UserContext(), id)
	if errors.Is(err, ErrNotFound) {
		return respond.NotFound(c)
	}
	if err != nil {
		return respond.ServerError(c, err)
	}
	return respond.NoContent(c)
}

func optional(c *fiber.Ctx, admins []MallAdmin, err error) error {
	if errors.Is(err, ErrNotFound) {
		return respond.NotFound(c)
	}
	if err != nil {
		return respond.ServerError(c, err)
	}
	return respond.OK(c, admins)
}
