package item

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(repo Repository) *fiber.App {
	app := fiber.New()
	NewHandler(NewService(repo)).RegisterPublicRoutes(app)
	return app
}

func seeded() *InMemoryRepository {
	return NewInMemoryRepository([]Item{
		{ID: "a", Name: "Laptop", Price: 1200, Quantity: 3},
		{ID: "b", Name: "Laptop Bag", Price: 1000.00, Quantity: 10},
		{ID: "c", Name: "Mouse", Price: 25.5, Quantity: 40},
	})
}

func TestSearchByPrice_Inclusive(t *testing.T) {
	app := setupApp(seeded())

	res, err := app.Test(httptest.NewRequest("GET", "/api/items/search/price/1000.00", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	var items []Item
	require.NoError(t, json.NewDecoder(res.Body).Decode(&items))
	require.Len(t, items, 2)
	assert.Equal(t, "b", items[0].ID)
	assert.Equal(t, "c", items[1].ID)
}

func TestSearchByPrice_BadPrice(t *testing.T) {
	res, err := setupApp(seeded()).Test(httptest.NewRequest("GET", "/api/items/search/price/cheap", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)
}

func TestSearchByName_AlwaysOK(t *testing.T) {
	app := setupApp(seeded())

	for path, want := range map[string]int{
		"/api/items/search/name/Laptop": 2,
		"/api/items/search/name/Phone":  0,
	} {
		res, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, res.StatusCode, path)

		var items []Item
		require.NoError(t, json.NewDecoder(res.Body).Decode(&items))
		assert.Len(t, items, want, path)
	}
}

func TestSaveFetchDelete(t *testing.T) {
	app := setupApp(NewInMemoryRepository(nil))

	res, err := app.Test(httptest.NewRequest("GET", "/api/items/fetch", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, res.StatusCode)

	req := httptest.NewRequest("POST", "/api/items/save", strings.NewReader(`{"name":"Desk","description":"Oak","price":300,"quantity":2}`))
	req.Header.Set("Content-Type", "application/json")
	res, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	var saved Item
	require.NoError(t, json.NewDecoder(res.Body).Decode(&saved))
	require.NotEmpty(t, saved.ID)

	res, err = app.Test(httptest.NewRequest("GET", "/api/items/"+saved.ID, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	var fetched Item
	require.NoError(t, json.NewDecoder(res.Body).Decode(&fetched))
	assert.Equal(t, saved, fetched)

	res, err = app.Test(httptest.NewRequest("DELETE", "/api/items/"+saved.ID, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, res.StatusCode)

	res, err = app.Test(httptest.NewRequest("GET", "/api/items/"+saved.ID, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, res.StatusCode)
}
