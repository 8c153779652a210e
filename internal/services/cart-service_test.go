package services

import (
	"testing"

	"github.com/adamingor/dodo-pizza-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const (
	cartUserID  uint = 1
	otherUserID uint = 2
)

// largeMargherita picks the 12.00 variation, the one seeded with the full
// nested ingredient and additional sets.
func largeMargherita(t *testing.T, f catalogFixture) models.PizzaVariation {
	for _, v := range f.Margherita.Variations {
		if v.Price == 12 {
			return v
		}
	}
	t.Fatal("fixture is missing the large Margherita variation")
	return models.PizzaVariation{}
}

func addFixtureItem(t *testing.T, db *gorm.DB, f catalogFixture, userID uint) {
	service := NewCartService(db)
	err := service.AddItem(userID, AddCartItemInput{
		PizzaID:                 f.Margherita.ID,
		PizzaVariationID:        largeMargherita(t, f).ID,
		IngredientIDs:           []uint{f.Tomato.ID, f.Mozzarella.ID},
		AdditionalIngredientIDs: []uint{f.ExtraCheese.ID},
	})
	require.NoError(t, err)
}

func TestAddItemCreatesAssociationRows(t *testing.T) {
	db := setupTestDB(t)
	f := seedCatalog(t, db)

	addFixtureItem(t, db, f, cartUserID)

	assert.Equal(t, int64(1), countRows(t, db, "cart_items"))
	assert.Equal(t, int64(2), countRows(t, db, "cart_items_to_ingredients"))
	assert.Equal(t, int64(1), countRows(t, db, "cart_items_to_additionals"))

	var item models.CartItem
	require.NoError(t, db.First(&item).Error)
	assert.Equal(t, 1, item.Quantity)
	assert.Equal(t, cartUserID, item.UserID)
}

func TestAddItemUnknownPizza(t *testing.T) {
	db := setupTestDB(t)
	f := seedCatalog(t, db)
	service := NewCartService(db)

	err := service.AddItem(cartUserID, AddCartItemInput{
		PizzaID:          9999,
		PizzaVariationID: largeMargherita(t, f).ID,
		IngredientIDs:    []uint{f.Tomato.ID},
	})
	assert.ErrorIs(t, err, models.ErrPizzaMissing)
	assert.Zero(t, countRows(t, db, "cart_items"))
}

func TestAddItemDanglingIngredientWritesNothing(t *testing.T) {
	db := setupTestDB(t)
	f := seedCatalog(t, db)
	service := NewCartService(db)

	err := service.AddItem(cartUserID, AddCartItemInput{
		PizzaID:          f.Margherita.ID,
		PizzaVariationID: largeMargherita(t, f).ID,
		IngredientIDs:    []uint{f.Tomato.ID, 9999},
	})
	assert.ErrorIs(t, err, models.ErrIngredientMissing)
	assert.Zero(t, countRows(t, db, "cart_items"))
	assert.Zero(t, countRows(t, db, "cart_items_to_ingredients"))
}

func TestListItemsComputesLinePrice(t *testing.T) {
	db := setupTestDB(t)
	f := seedCatalog(t, db)
	service := NewCartService(db)

	addFixtureItem(t, db, f, cartUserID)

	lines, err := service.ListItems(cartUserID)
	require.NoError(t, err)
	require.Len(t, lines, 1)

	// (extra cheese 1.50 + variation 12.00) * quantity 1
	assert.InDelta(t, 13.5, lines[0].ItemPrice, 1e-9)
	assert.Len(t, lines[0].Ingredients, 2)
	require.Len(t, lines[0].AdditionalIngredients, 1)
	assert.Equal(t, f.ExtraCheese.ID, lines[0].AdditionalIngredients[0].ID)
	assert.Equal(t, "Margherita", lines[0].Pizza.Name)

	require.NoError(t, service.UpdateQuantity(cartUserID, lines[0].ID, 3))

	lines, err = service.ListItems(cartUserID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.InDelta(t, 40.5, lines[0].ItemPrice, 1e-9)
}

func TestListItemsPriceWithoutAdditionals(t *testing.T) {
	db := setupTestDB(t)
	f := seedCatalog(t, db)
	service := NewCartService(db)

	variation := largeMargherita(t, f)
	err := service.AddItem(cartUserID, AddCartItemInput{
		PizzaID:          f.Margherita.ID,
		PizzaVariationID: variation.ID,
		IngredientIDs:    []uint{f.Tomato.ID, f.Mozzarella.ID},
	})
	require.NoError(t, err)

	lines, err := service.ListItems(cartUserID)
	require.NoError(t, err)
	require.Len(t, lines, 1)

	// chosen ingredients never contribute to the price
	assert.Len(t, lines[0].Ingredients, 2)
	assert.InDelta(t, variation.Price, lines[0].ItemPrice, 1e-9)
}

func TestListItemsScopedToUser(t *testing.T) {
	db := setupTestDB(t)
	f := seedCatalog(t, db)
	service := NewCartService(db)

	addFixtureItem(t, db, f, cartUserID)

	lines, err := service.ListItems(otherUserID)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestUpdateQuantityRejectsNonPositive(t *testing.T) {
	db := setupTestDB(t)
	f := seedCatalog(t, db)
	service := NewCartService(db)

	addFixtureItem(t, db, f, cartUserID)

	var item models.CartItem
	require.NoError(t, db.First(&item).Error)

	for _, quantity := range []int{0, -3} {
		assert.ErrorIs(t, service.UpdateQuantity(cartUserID, item.ID, quantity), models.ErrInvalidQuantity)
	}

	require.NoError(t, db.First(&item).Error)
	assert.Equal(t, 1, item.Quantity)
}

func TestUpdateQuantityOwnershipScoped(t *testing.T) {
	db := setupTestDB(t)
	f := seedCatalog(t, db)
	service := NewCartService(db)

	addFixtureItem(t, db, f, cartUserID)

	var item models.CartItem
	require.NoError(t, db.First(&item).Error)

	// another user's id never reaches the row
	assert.ErrorIs(t, service.UpdateQuantity(otherUserID, item.ID, 5), models.ErrCartItemMissing)
	assert.ErrorIs(t, service.UpdateQuantity(cartUserID, 9999, 5), models.ErrCartItemMissing)

	require.NoError(t, db.First(&item).Error)
	assert.Equal(t, 1, item.Quantity)
}

func TestRemoveItemCascadesAssociations(t *testing.T) {
	db := setupTestDB(t)
	f := seedCatalog(t, db)
	service := NewCartService(db)

	addFixtureItem(t, db, f, cartUserID)

	var item models.CartItem
	require.NoError(t, db.First(&item).Error)

	assert.ErrorIs(t, service.RemoveItem(otherUserID, item.ID), models.ErrCartItemMissing)

	require.NoError(t, service.RemoveItem(cartUserID, item.ID))
	assert.Zero(t, countRows(t, db, "cart_items"))
	assert.Zero(t, countRows(t, db, "cart_items_to_ingredients"))
	assert.Zero(t, countRows(t, db, "cart_items_to_additionals"))
}
