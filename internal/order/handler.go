package order

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/wichananm65/shopping-mall-backend/internal/customer"
	"github.com/wichananm65/shopping-mall-backend/internal/interface/http/respond"
	"github.com/wichananm65/shopping-mall-backend/internal/shopowner"
)

// Handler serves /api/orders. Empty list lookups answer 204 rather than 404.
type Handler struct {
	service   *Service
	customers customer.ServiceInterface
	owners    shopowner.ServiceInterface
}

func NewHandler(service *Service, customers customer.ServiceInterface, owners shopowner.ServiceInterface) *Handler {
	return &Handler{service: service, customers: customers, owners: owners}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	api := app.Group("/api/orders")
	api.Post("/save", h.save)
	api.Get("/fetch", h.fetch)
	api.Get("/customer/:customerId", h.getByCustomer)
	api.Get("/shop-owner/:shopOwnerId", h.getByShopOwner)
	api.Get("/search/product/:keyword", h.searchByProduct)
	api.Get("/product/:productName", h.getByProduct)
	api.Get("/product-ignore-case/:productName", h.getByProductIgnoreCase)
	api.Get("/quantity/:min", h.getByQuantity)
	api.Get("/price", h.getByPrice)
	api.Get("/:id", h.getByID)
	api.Delete("/:id", h.delete)
}

func (h *Handler) save(c *fiber.Ctx) error {
	payload := new(OrderDetails)
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
	orders, err := h.service.List(c.UserContext())
	return optional(c, orders, err)
}

func (h *Handler) getByID(c *fiber.Ctx) error {
	id, err := respond.ParamID(c, "id")
	if err != nil {
		return respond.BadRequest(c, err)
	}

	o, err := h.service.FindByID(c.UserContext(), id)
	if errors.Is(err, ErrNotFound) {
		return respond.NotFound(c)
	}
	if err != nil {
		return respond.ServerError(c, err)
	}
	return respond.OK(c, o)
}

func (h *Handler) getByCustomer(c *fiber.Ctx) error {
	customerID, err := respond.ParamID(c, "customerId")
	if err != nil {
		return respond.BadRequest(c, err)
	}

	if _, err := h.customers.FindByID(c.UserContext(), customerID); err != nil {
		if errors.Is(err, customer.ErrNotFound) {
			return respond.NotFound(c)
		}
		return respond.ServerError(c, err)
	}

	orders, err := h.service.FindByCustomer(c.UserContext(), customerID)
	return optional(c, orders, err)
}

func (h *Handler) getByShopOwner(c *fiber.Ctx) error {
	ownerID, err := respond.ParamID(c, "shopOwnerId")
	if err != nil {
		return respond.BadRequest(c, err)
	}

	if _, err := h.owners.FindByID(c.UserContext(), ownerID); err != nil {
		if errors.Is(err, shopowner.ErrNotFound) {
			return respond.NotFound(c)
		}
		return respond.ServerError(c, err)
	}

	orders, err := h.service.FindByShopOwner(c.UserContext(), ownerID)
	return optional(c, orders, err)
}

func (h *Handler) searchByProduct(c *fiber.Ctx) error {
	orders, err := h.service.FindByProductNameContaining(c.UserContext(), c.Params("keyword"))
	return optional(c, orders, err)
}

func (h *Handler) getByProduct(c *fiber.Ctx) error {
	orders, err := h.service.FindByProductName(c.UserContext(), c.Params("productName"))
	return optional(c, orders, err)
}

func (h *Handler) getByProductIgnoreCase(c *fiber.Ctx) error {
	orders, err := h.service.FindByProductNameIgnoreCase(c.UserContext(), c.Params("productName"))
	return optional(c, orders, err)
}

func (h *Handler) getByQuantity(c *fiber.Ctx) error {
	min, err := strconv.Atoi(c.Params("min"))
	if err != nil {
		return respond.BadRequest(c, err)
	}

	orders, err := h.service.FindByQuantityAtLeast(c.UserContext(), min)
	return optional(c, orders, err)
}

func (h *Handler) getByPrice(c *fiber.Ctx) error {
	min, err := strconv.ParseFloat(c.Query("min"), 64)
	if err != nil {
		return respond.BadRequest(c, err)
	}
	max, err := strconv.ParseFloat(c.Query("max"), 64)
	if err != nil {
		return respond.BadRequest(c, err)
	}

	orders, err := h.service.FindByPriceBetween(c.UserContext(), min, max)
	return optional(c, orders, err)
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

func optional(c *fiber.Ctx, orders []OrderDetails, err error) error {
	if errors.Is(err, ErrNotFound) {
		return respond.NoContent(c)
	}
	if err != nil {
		return respond.ServerError(c, err)
	}
	return respond.OK(c, orders)
}
