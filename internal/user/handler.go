package user

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
	api := app.Group("/api/users")
	api.Post("/save", h.save)
	api.Get("/fetch", h.fetch)
	api.Get("/username/:username", h.getByUsername)
	api.Get("/role/:role", h.getByRole)
	api.Get("/search/username/:keyword", h.searchByUsername)
	api.Get("/search/username-prefix/:prefix", h.searchByUsernamePrefix)
	api.Get("/search/username-suffix/:suffix", h.searchByUsernameSuffix)
	api.Get("/search/username-exact/:username", h.searchByUsernameExact)
	api.Get("/:id", h.getByID)
	api.Delete("/:id", h.delete)
}

func (h *Handler) save(c *fiber.Ctx) error {
	payload := new(User)
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
	users, err := h.service.List(c.UserContext())
	if errors.Is(err, ErrNotFound) {
		return respond.NotFound(c)
	}
	if err != nil {
		return respond.ServerError(c, err)
	}
	return respond.OK(c, users)
}

func (h *Handler) getByID(c *fiber.Ctx) error {
	id, err := respond.ParamID(c, "id")
	if err != nil {
		return respond.BadRequest(c, err)
	}

	u, err := h.service.FindByID(c.UserContext(), id)
	if errors.Is(err, ErrNotFound) {
		return respond.NotFound(c)
	}
	if err != nil {
		return respond.ServerError(c, err)
	}
	return respond.OK(c, u)
}

func (h *Handler) getByUsername(c *fiber.Ctx) error {
	u, err := h.service.FindByUsername(c.UserContext(), c.Params("username"))
	if errors.Is(err, ErrNotFound) {
		return respond.NotFound(c)
	}
	if err != nil {
		return respond.ServerError(c, err)
	}
	return respond.OK(c, u)
}

func (h *Handler) getByRole(c *fiber.Ctx) error {
	return list(c, func() ([]User, error) {
		return h.service.FindByRole(c.UserContext(), c.Params("role"))
	})
}

func (h *Handler) searchByUsername(c *fiber.Ctx) error {
	return list(c, func() ([]User, error) {
		return h.service.FindByUsernameContaining(c.UserContext(), c.Params("keyword"))
	})
}

func (h *Handler) searchByUsernamePrefix(c *fiber.Ctx) error {
	return list(c, func() ([]User, error) {
		return h.service.FindByUsernameStartingWith(c.UserContext(), c.Params("prefix"))
	})
}

func (h *Handler) searchByUsernameSuffix(c *fiber.Ctx) error {
	return list(c, func() ([]User, error) {
		return h.service.FindByUsernameEndingWith(c.UserContext(), c.Params("suffix"))
	})
}

func (h *Handler) searchByUsernameExact(c *fiber.Ctx) error {
	return list(c, func() ([]User, error) {
		return h.service.FindByUsernameIgnoreCase(c.UserContext(), c.Params("username"))
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

// list answers 200 with whatever the lookup returns, empty included.
func list(c *fiber.Ctx, lookup func() ([]User, error)) error {
	users, err := lookup()
	if err != nil {
		return respond.ServerError(c, err)
	}
	return respond.OK(c, users)
}
