package shop

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wichananm65/shopping-mall-backend/internal/cascade"
	"github.com/wichananm65/shopping-mall-backend/internal/employee"
	"github.com/wichananm65/shopping-mall-backend/internal/shopowner"
)

type fixture struct {
	app       *fiber.App
	shops     *InMemoryRepository
	employees *employee.InMemoryRepository
	owners    *shopowner.InMemoryRepository
}

func newFixture() *fixture {
	f := &fixture{
		shops:     NewInMemoryRepository(nil),
		employees: employee.NewInMemoryRepository(nil),
		owners:    shopowner.NewInMemoryRepository(nil),
	}
	store := &cascade.RepoStore{Employees: f.employees, Shops: f.shops, Owners: f.owners}

	employeeService := employee.NewService(f.employees)
	ownerService := shopowner.NewService(f.owners, store)
	shopService := NewService(f.shops, ownerService, employeeService, store)

	f.app = fiber.New(fiber.Config{UnescapePath: true})
	NewHandler(shopService, ownerService).RegisterPublicRoutes(f.app)
	employee.NewHandler(employeeService, shopService).RegisterPublicRoutes(f.app)
	shopowner.NewHandler(ownerService).RegisterPublicRoutes(f.app)
	return f
}

func (f *fixture) do(t *testing.T, method, path, body string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	res, err := f.app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, raw
}

const techMart = `{
	"name": "Tech Mart",
	"location": "Level 2",
	"category": "Electronics",
	"shopOwner": {"username": "ann", "password": "pw", "shopName": "Tech Mart"},
	"employees": [
		{"username": "sam", "password": "pw", "position": "Cashier"},
		{"username": "kim", "password": "pw", "position": "Manager"}
	]
}`

func TestSave_CascadesOwnerAndEmployees(t *testing.T) {
	f := newFixture()

	code, body := f.do(t, "POST", "/api/shops/save", techMart)
	require.Equal(t, fiber.StatusOK, code)

	var saved Shop
	require.NoError(t, json.Unmarshal(body, &saved))
	require.NotNil(t, saved.ShopOwner)
	assert.NotZero(t, saved.ShopOwner.ID)
	require.Len(t, saved.Employees, 2)
	assert.NotContains(t, string(body), `"shop":`)

	stored, err := f.employees.FindByShop(context.Background(), saved.ID)
	require.NoError(t, err)
	assert.Len(t, stored, 2)

	code, body = f.do(t, "GET", "/api/shops/1", "")
	require.Equal(t, fiber.StatusOK, code)

	var fetched Shop
	require.NoError(t, json.Unmarshal(body, &fetched))
	assert.Equal(t, "Tech Mart", fetched.Name)
	assert.Len(t, fetched.Employees, 2)
	require.NotNil(t, fetched.ShopOwner)
	assert.Equal(t, saved.ShopOwner.ID, fetched.ShopOwner.ID)

	code, _ = f.do(t, "GET", "/api/employees/shop/1", "")
	assert.Equal(t, fiber.StatusOK, code)
}

func TestLookups(t *testing.T) {
	f := newFixture()
	code, _ := f.do(t, "GET", "/api/shops", "")
	assert.Equal(t, fiber.StatusNotFound, code)

	code, _ = f.do(t, "POST", "/api/shops/save", techMart)
	require.Equal(t, fiber.StatusOK, code)

	cases := []struct {
		path string
		code int
	}{
		{"/api/shops", fiber.StatusOK},
		{"/api/shops/search/name/Tech", fiber.StatusOK},
		{"/api/shops/search/name/Food", fiber.StatusNotFound},
		{"/api/shops/location/Level%202", fiber.StatusOK},
		{"/api/shops/category/Electronics", fiber.StatusOK},
		{"/api/shops/category/Food", fiber.StatusNotFound},
		{"/api/shops/owner/1", fiber.StatusOK},
		{"/api/shops/owner/99", fiber.StatusNotFound},
		{"/api/shops/99", fiber.StatusNotFound},
	}
	for _, tc := range cases {
		code, _ := f.do(t, "GET", tc.path, "")
		assert.Equal(t, tc.code, code, tc.path)
	}
}

func TestShopsOfOwnerWithoutShops(t *testing.T) {
	f := newFixture()
	code, _ := f.do(t, "POST", "/api/shop-owners/save", `{"username":"ann","shopName":"None"}`)
	require.Equal(t, fiber.StatusOK, code)

	code, _ = f.do(t, "GET", "/api/shops/owner/1", "")
	assert.Equal(t, fiber.StatusNotFound, code)
}

func TestDeleteShop_RemovesEmployees(t *testing.T) {
	f := newFixture()
	code, _ := f.do(t, "POST", "/api/shops/save", techMart)
	require.Equal(t, fiber.StatusOK, code)

	code, _ = f.do(t, "DELETE", "/api/shops/1", "")
	assert.Equal(t, fiber.StatusNoContent, code)

	all, err := f.employees.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)

	code, _ = f.do(t, "GET", "/api/employees/shop/1", "")
	assert.Equal(t, fiber.StatusNotFound, code)

	_, err = f.owners.FindByID(context.Background(), 1)
	assert.NoError(t, err, "deleting a shop keeps its owner")
}

func TestDeleteOwner_RemovesShopsAndEmployees(t *testing.T) {
	f := newFixture()
	code, _ := f.do(t, "POST", "/api/shops/save", techMart)
	require.Equal(t, fiber.StatusOK, code)

	code, _ = f.do(t, "DELETE", "/api/shop-owners/1", "")
	assert.Equal(t, fiber.StatusNoContent, code)

	shops, err := f.shops.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, shops)

	all, err := f.employees.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}
