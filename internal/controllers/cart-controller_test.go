package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adamingor/dodo-pizza-api/internal/database"
	"github.com/adamingor/dodo-pizza-api/internal/models"
	"github.com/adamingor/dodo-pizza-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testUserID uint = 7

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = database.Migrate(db)
	require.NoError(t, err)

	return db
}

// stubAuth stands in for the session middleware and pins the user identity.
func stubAuth(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	}
}

// testCatalog is the minimal catalog the route tests need: one pizza with a
// single priced variation, two base ingredients and one paid extra.
type testCatalog struct {
	Pizza      models.Pizza
	Variation  models.PizzaVariation
	Tomato     models.Ingredient
	Mozzarella models.Ingredient
	Bacon      models.AdditionalIngredient
}

func seedTestCatalog(t *testing.T, db *gorm.DB) testCatalog {
	c := testCatalog{
		Tomato:     models.Ingredient{Name: "Tomato sauce"},
		Mozzarella: models.Ingredient{Name: "Mozzarella"},
		Bacon:      models.AdditionalIngredient{Name: "Bacon", Price: 2, Image: "bacon.png"},
	}
	require.NoError(t, db.Create(&c.Tomato).Error)
	require.NoError(t, db.Create(&c.Mozzarella).Error)
	require.NoError(t, db.Create(&c.Bacon).Error)

	c.Pizza = models.Pizza{
		Name:        "Margherita",
		Type:        "classic",
		Ingredients: []models.Ingredient{c.Tomato, c.Mozzarella},
		Variations: []models.PizzaVariation{
			{
				Image:                 "margherita.png",
				Price:                 12,
				Ingredients:           []models.Ingredient{c.Tomato, c.Mozzarella},
				AdditionalIngredients: []models.AdditionalIngredient{c.Bacon},
			},
		},
	}
	require.NoError(t, db.Create(&c.Pizza).Error)
	c.Variation = c.Pizza.Variations[0]
	return c
}

func jsonBody(t *testing.T, payload any) *bytes.Buffer {
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	return bytes.NewBuffer(data)
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func newCartRouter(db *gorm.DB, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewCartController(services.NewCartService(db))

	router := gin.New()
	group := router.Group("/cart", stubAuth(userID))
	group.POST("", controller.AddToCart)
	group.GET("", controller.GetCart)
	group.PUT("/:cartItemId", controller.UpdateQuantity)
	group.DELETE("/:cartItemId", controller.RemoveFromCart)
	return router
}

func addCartItemRequest(t *testing.T, router *gin.Engine, catalog testCatalog) *httptest.ResponseRecorder {
	payload := gin.H{
		"pizzaId":                 catalog.Pizza.ID,
		"pizzaVariationId":        catalog.Variation.ID,
		"ingredientsId":           []uint{catalog.Tomato.ID, catalog.Mozzarella.ID},
		"additionalIngredientsId": []uint{catalog.Bacon.ID},
	}
	req := httptest.NewRequest("POST", "/cart", jsonBody(t, payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAddToCartRoute(t *testing.T) {
	db := setupTestDB(t)
	catalog := seedTestCatalog(t, db)
	router := newCartRouter(db, testUserID)

	w := addCartItemRequest(t, router, catalog)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Successfully added product", decodeBody(t, w)["data"])
}

func TestAddToCartRouteInvalidBody(t *testing.T) {
	db := setupTestDB(t)
	seedTestCatalog(t, db)
	router := newCartRouter(db, testUserID)

	req := httptest.NewRequest("POST", "/cart", bytes.NewBufferString(`{"pizzaId": "not-a-number"}`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request body", decodeBody(t, w)["error"])
}

func TestAddToCartRouteUnknownPizza(t *testing.T) {
	db := setupTestDB(t)
	catalog := seedTestCatalog(t, db)
	router := newCartRouter(db, testUserID)

	payload := gin.H{
		"pizzaId":          9999,
		"pizzaVariationId": catalog.Variation.ID,
		"ingredientsId":    []uint{catalog.Tomato.ID},
	}
	req := httptest.NewRequest("POST", "/cart", jsonBody(t, payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "The pizza was not found", decodeBody(t, w)["error"])
}

func TestGetCartRoute(t *testing.T) {
	db := setupTestDB(t)
	catalog := seedTestCatalog(t, db)
	router := newCartRouter(db, testUserID)

	addCartItemRequest(t, router, catalog)

	req := httptest.NewRequest("GET", "/cart", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	lines, ok := decodeBody(t, w)["data"].([]any)
	require.True(t, ok)
	require.Len(t, lines, 1)

	line := lines[0].(map[string]any)
	// (bacon 2.00 + variation 12.00) * quantity 1
	assert.InDelta(t, 14.0, line["itemPrice"], 1e-9)
	assert.Equal(t, "Margherita", line["pizza"].(map[string]any)["name"])
}

func TestUpdateQuantityRoute(t *testing.T) {
	db := setupTestDB(t)
	catalog := seedTestCatalog(t, db)
	router := newCartRouter(db, testUserID)

	addCartItemRequest(t, router, catalog)

	var item models.CartItem
	require.NoError(t, db.First(&item).Error)

	t.Run("valid quantity", func(t *testing.T) {
		req := httptest.NewRequest("PUT", fmt.Sprintf("/cart/%d", item.ID), bytes.NewBufferString(`{"quantity": 3}`))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Successfully updated quantity", decodeBody(t, w)["message"])
	})

	t.Run("negative quantity", func(t *testing.T) {
		req := httptest.NewRequest("PUT", fmt.Sprintf("/cart/%d", item.ID), bytes.NewBufferString(`{"quantity": -2}`))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Quantity must be a positive integer", decodeBody(t, w)["error"])
	})

	t.Run("malformed id", func(t *testing.T) {
		req := httptest.NewRequest("PUT", "/cart/abc", bytes.NewBufferString(`{"quantity": 3}`))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid cart item ID format", decodeBody(t, w)["error"])
	})
}

func TestRemoveFromCartRoute(t *testing.T) {
	db := setupTestDB(t)
	catalog := seedTestCatalog(t, db)
	router := newCartRouter(db, testUserID)

	addCartItemRequest(t, router, catalog)

	var item models.CartItem
	require.NoError(t, db.First(&item).Error)

	req := httptest.NewRequest("DELETE", fmt.Sprintf("/cart/%d", item.ID), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Removed item successfully", decodeBody(t, w)["data"])

	// removing it again is a miss
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("DELETE", fmt.Sprintf("/cart/%d", item.ID), nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Cart item was not found", decodeBody(t, w)["error"])
}
