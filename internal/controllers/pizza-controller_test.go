package controllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adamingor/dodo-pizza-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newPizzaRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewPizzaController(services.NewPizzaService(db))

	router := gin.New()
	group := router.Group("/pizza")
	group.GET("/search", controller.SearchPizzas)
	group.GET("/type", controller.GetPizzaTypes)
	group.GET("/ingredients", controller.GetIngredients)
	group.GET("/recomended/:pizzaId", controller.GetRecommended)
	group.GET("", controller.GetAllPizzas)
	group.GET("/:pizzaId", controller.GetPizzaByID)
	group.DELETE("/:pizzaId", controller.DeletePizza)
	return router
}

func getRequest(router *gin.Engine, url string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", url, nil))
	return w
}

func TestSearchRoute(t *testing.T) {
	db := setupTestDB(t)
	catalog := seedTestCatalog(t, db)
	router := newPizzaRouter(db)

	t.Run("name facet", func(t *testing.T) {
		w := getRequest(router, "/pizza/search?search=marg")
		assert.Equal(t, http.StatusOK, w.Code)

		pizzas := decodeBody(t, w)["data"].([]any)
		require.Len(t, pizzas, 1)
		assert.Equal(t, "Margherita", pizzas[0].(map[string]any)["name"])
	})

	t.Run("empty result is an array", func(t *testing.T) {
		w := getRequest(router, "/pizza/search?search=nothing-matches")
		assert.Equal(t, http.StatusOK, w.Code)

		pizzas, ok := decodeBody(t, w)["data"].([]any)
		require.True(t, ok)
		assert.Empty(t, pizzas)
	})

	t.Run("comma separated ingredients", func(t *testing.T) {
		url := fmt.Sprintf("/pizza/search?ingredients=%d,%d", catalog.Tomato.ID, catalog.Mozzarella.ID)
		w := getRequest(router, url)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decodeBody(t, w)["data"].([]any), 1)
	})

	t.Run("repeated ingredients params", func(t *testing.T) {
		url := fmt.Sprintf("/pizza/search?ingredients=%d&ingredients=%d", catalog.Tomato.ID, catalog.Mozzarella.ID)
		w := getRequest(router, url)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decodeBody(t, w)["data"].([]any), 1)
	})

	t.Run("price range", func(t *testing.T) {
		w := getRequest(router, "/pizza/search?minPrice=10&maxPrice=20")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decodeBody(t, w)["data"].([]any), 1)
	})
}

func TestSearchRouteRejectsBadParams(t *testing.T) {
	db := setupTestDB(t)
	seedTestCatalog(t, db)
	router := newPizzaRouter(db)

	testCases := []struct {
		name string
		url  string
	}{
		{"non numeric ingredients", "/pizza/search?ingredients=abc"},
		{"non numeric minPrice", "/pizza/search?minPrice=cheap"},
		{"negative minPrice", "/pizza/search?minPrice=-5"},
		{"zero maxPrice", "/pizza/search?maxPrice=0"},
		{"zero page", "/pizza/search?page=0"},
		{"non numeric page", "/pizza/search?page=two"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			w := getRequest(router, tt.url)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestGetPizzaByIDRoute(t *testing.T) {
	db := setupTestDB(t)
	catalog := seedTestCatalog(t, db)
	router := newPizzaRouter(db)

	w := getRequest(router, fmt.Sprintf("/pizza/%d", catalog.Pizza.ID))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Margherita", decodeBody(t, w)["data"].(map[string]any)["name"])

	w = getRequest(router, "/pizza/9999")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "The pizza was not found", decodeBody(t, w)["error"])

	w = getRequest(router, "/pizza/abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPizzaTypesRoute(t *testing.T) {
	db := setupTestDB(t)
	seedTestCatalog(t, db)
	router := newPizzaRouter(db)

	w := getRequest(router, "/pizza/type")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []any{"classic"}, decodeBody(t, w)["data"])
}

func TestGetRecommendedRoute(t *testing.T) {
	db := setupTestDB(t)
	catalog := seedTestCatalog(t, db)
	router := newPizzaRouter(db)

	// the only pizza is the excluded one
	w := getRequest(router, fmt.Sprintf("/pizza/recomended/%d", catalog.Pizza.ID))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeBody(t, w)["data"])
}

func TestDeletePizzaRoute(t *testing.T) {
	db := setupTestDB(t)
	catalog := seedTestCatalog(t, db)
	router := newPizzaRouter(db)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("DELETE", fmt.Sprintf("/pizza/%d", catalog.Pizza.ID), nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("DELETE", fmt.Sprintf("/pizza/%d", catalog.Pizza.ID), nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
