package order

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wichananm65/shopping-mall-backend/internal/customer"
	"github.com/wichananm65/shopping-mall-backend/internal/shopowner"
	"github.com/wichananm65/shopping-mall-backend/internal/user"
)

func ptr(id int64) *int64 { return &id }

func setupApp(orders Repository) *fiber.App {
	customers := customer.NewService(customer.NewInMemoryRepository([]customer.Customer{
		{User: user.User{ID: 1, Username: "alice"}, PhoneNumber: "9372571406"},
		{User: user.User{ID: 2, Username: "bob"}},
	}))
	owners := shopowner.NewService(shopowner.NewInMemoryRepository([]shopowner.ShopOwner{
		{User: user.User{ID: 10, Username: "carol"}, ShopName: "Tech Mart"},
	}), nil)

	app := fiber.New(fiber.Config{UnescapePath: true})
	NewHandler(NewService(orders, customers, owners), customers, owners).RegisterPublicRoutes(app)
	return app
}

func seeded() *InMemoryRepository {
	return NewInMemoryRepository([]OrderDetails{
		{ID: 1, CustomerID: ptr(1), ShopOwnerID: ptr(10), ProductName: "Laptop", Quantity: 1, Price: 1200},
		{ID: 2, CustomerID: ptr(1), ShopOwnerID: ptr(10), ProductName: "Laptop Bag", Quantity: 3, Price: 80},
		{ID: 3, CustomerID: ptr(1), ProductName: "Mouse", Quantity: 5, Price: 25.5},
	})
}

func get(t *testing.T, app *fiber.App, path string) (int, []byte) {
	t.Helper()
	res, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, raw
}

func decode(t *testing.T, raw []byte) []OrderDetails {
	t.Helper()
	var orders []OrderDetails
	require.NoError(t, json.Unmarshal(raw, &orders))
	return orders
}

func TestFetch_EmptyIsNoContent(t *testing.T) {
	status, body := get(t, setupApp(NewInMemoryRepository(nil)), "/api/orders/fetch")
	assert.Equal(t, fiber.StatusNoContent, status)
	assert.Empty(t, body)
}

func TestFetch_HydratesParties(t *testing.T) {
	status, body := get(t, setupApp(seeded()), "/api/orders/fetch")
	require.Equal(t, fiber.StatusOK, status)

	orders := decode(t, body)
	require.Len(t, orders, 3)
	require.NotNil(t, orders[0].Customer)
	assert.Equal(t, "alice", orders[0].Customer.Username)
	require.NotNil(t, orders[0].ShopOwner)
	assert.Equal(t, "Tech Mart", orders[0].ShopOwner.ShopName)
	assert.Nil(t, orders[2].ShopOwner)
}

func TestGetByCustomer(t *testing.T) {
	app := setupApp(seeded())

	status, body := get(t, app, "/api/orders/customer/1")
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, decode(t, body), 3)

	status, _ = get(t, app, "/api/orders/customer/2")
	assert.Equal(t, fiber.StatusNoContent, status)

	status, _ = get(t, app, "/api/orders/customer/99")
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = get(t, app, "/api/orders/customer/abc")
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestGetByShopOwner(t *testing.T) {
	app := setupApp(seeded())

	status, body := get(t, app, "/api/orders/shop-owner/10")
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, decode(t, body), 2)

	status, _ = get(t, app, "/api/orders/shop-owner/11")
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestProductLookups(t *testing.T) {
	app := setupApp(seeded())

	cases := []struct {
		path   string
		status int
		count  int
	}{
		{"/api/orders/search/product/Laptop", fiber.StatusOK, 2},
		{"/api/orders/search/product/Phone", fiber.StatusNoContent, 0},
		{"/api/orders/product/Laptop", fiber.StatusOK, 1},
		{"/api/orders/product/laptop", fiber.StatusNoContent, 0},
		{"/api/orders/product-ignore-case/laptop%20bag", fiber.StatusOK, 1},
	}
	for _, tc := range cases {
		status, body := get(t, app, tc.path)
		require.Equal(t, tc.status, status, tc.path)
		if tc.count > 0 {
			assert.Len(t, decode(t, body), tc.count, tc.path)
		}
	}
}

func TestQuantityAndPriceRanges(t *testing.T) {
	app := setupApp(seeded())

	status, body := get(t, app, "/api/orders/quantity/3")
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, decode(t, body), 2)

	status, _ = get(t, app, "/api/orders/quantity/6")
	assert.Equal(t, fiber.StatusNoContent, status)

	status, _ = get(t, app, "/api/orders/quantity/many")
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, body = get(t, app, "/api/orders/price?min=25.5&max=80")
	require.Equal(t, fiber.StatusOK, status)
	orders := decode(t, body)
	require.Len(t, orders, 2)
	assert.Equal(t, int64(2), orders[0].ID)
	assert.Equal(t, int64(3), orders[1].ID)

	status, _ = get(t, app, "/api/orders/price?min=1")
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestSaveGetDelete(t *testing.T) {
	app := setupApp(NewInMemoryRepository(nil))

	req := httptest.NewRequest("POST", "/api/orders/save", strings.NewReader(
		`{"customer":{"id":2},"shopOwner":{"id":10},"productName":"Desk","quantity":1,"price":300}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	var saved OrderDetails
	require.NoError(t, json.NewDecoder(res.Body).Decode(&saved))
	require.NotZero(t, saved.ID)
	require.NotNil(t, saved.Customer)
	assert.Equal(t, "bob", saved.Customer.Username)

	status, _ := get(t, app, "/api/orders/customer/2")
	assert.Equal(t, fiber.StatusOK, status)

	res, err = app.Test(httptest.NewRequest("DELETE", "/api/orders/1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, res.StatusCode)

	status, _ = get(t, app, "/api/orders/1")
	assert.Equal(t, fiber.StatusNotFound, status)
}

type failingRepository struct{ InMemoryRepository }

func (*failingRepository) List(context.Context) ([]OrderDetails, error) {
	return nil, errors.New("connection refused")
}

func TestFetch_StoreFailure(t *testing.T) {
	status, body := get(t, setupApp(&failingRepository{}), "/api/orders/fetch")
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Contains(t, string(body), "connection refused")
}
