package services

import (
	"errors"

	"github.com/adamingor/dodo-pizza-api/internal/models"
	"gorm.io/gorm"
)

// AddCartItemInput is the payload for adding one pizza configuration to the
// cart. All referenced ids must exist; a dangling reference fails the whole
// unit and nothing is written.
type AddCartItemInput struct {
	PizzaID                 uint   `json:"pizzaId" binding:"required"`
	PizzaVariationID        uint   `json:"pizzaVariationId" binding:"required"`
	IngredientIDs           []uint `json:"ingredientsId" binding:"required"`
	AdditionalIngredientIDs []uint `json:"additionalIngredientsId"`
}

// CartLine is a cart item annotated with its derived line price. The price
// is never persisted; it is recomputed from catalog prices on every read.
type CartLine struct {
	models.CartItem
	ItemPrice float64 `json:"itemPrice"`
}

// CartService provides the per-user cart operations
type CartService interface {
	// AddItem inserts a cart item with its ingredient and additional
	// associations as one atomic unit. Quantity starts at 1.
	AddItem(userID uint, input AddCartItemInput) error
	// ListItems returns the user's cart, each line hydrated with its pizza,
	// compact variation and chosen association subsets, plus the computed
	// line price (chosen additional prices + variation price) * quantity.
	ListItems(userID uint) ([]CartLine, error)
	// UpdateQuantity sets the quantity of a cart item. Scoped to rows owned
	// by the user so an id of someone else's cart line is a miss, never a
	// cross-user write.
	UpdateQuantity(userID, cartItemID uint, quantity int) error
	// RemoveItem deletes the user's cart item and cascades its association
	// rows away in the same transaction.
	RemoveItem(userID, cartItemID uint) error
}

type cartService struct {
	db *gorm.DB
}

// NewCartService creates a new instance of CartService
func NewCartService(db *gorm.DB) CartService {
	return &cartService{db: db}
}

func (s *cartService) AddItem(userID uint, input AddCartItemInput) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var pizza models.Pizza
		if err := tx.First(&pizza, input.PizzaID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrPizzaMissing
			}
			return err
		}

		var variation models.PizzaVariation
		if err := tx.First(&variation, input.PizzaVariationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrVariationMissing
			}
			return err
		}

		ingredients, err := resolveIngredients(tx, input.IngredientIDs, nil)
		if err != nil {
			return err
		}
		additionals, err := resolveAdditionals(tx, input.AdditionalIngredientIDs, nil)
		if err != nil {
			return err
		}

		item := models.CartItem{
			Quantity:              1,
			PizzaID:               input.PizzaID,
			PizzaVariationID:      input.PizzaVariationID,
			UserID:                userID,
			Ingredients:           ingredients,
			AdditionalIngredients: additionals,
		}
		return tx.Create(&item).Error
	})
}

func (s *cartService) ListItems(userID uint) ([]CartLine, error) {
	items := []models.CartItem{}
	err := s.db.
		Where("user_id = ?", userID).
		Preload("Pizza.Ingredients").
		Preload("Pizza.Variations").
		Preload("PizzaVariation", func(db *gorm.DB) *gorm.DB {
			// compact variation: id, image and price only
			return db.Select("id", "image", "total_price")
		}).
		Preload("PizzaVariation.Attributes").
		Preload("PizzaVariation.AdditionalIngredients").
		Preload("Ingredients").
		Preload("AdditionalIngredients").
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	lines := make([]CartLine, 0, len(items))
	for _, item := range items {
		var extras float64
		for _, a := range item.AdditionalIngredients {
			extras += a.Price
		}
		lines = append(lines, CartLine{
			CartItem:  item,
			ItemPrice: (extras + item.PizzaVariation.Price) * float64(item.Quantity),
		})
	}
	return lines, nil
}

func (s *cartService) UpdateQuantity(userID, cartItemID uint, quantity int) error {
	if quantity < 1 {
		return models.ErrInvalidQuantity
	}

	result := s.db.Model(&models.CartItem{}).
		Where("id = ? AND user_id = ?", cartItemID, userID).
		Update("quantity", quantity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.ErrCartItemMissing
	}
	return nil
}

func (s *cartService) RemoveItem(userID, cartItemID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var item models.CartItem
		err := tx.Where("id = ? AND user_id = ?", cartItemID, userID).First(&item).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrCartItemMissing
			}
			return err
		}

		if err := tx.Where("cart_item_id = ?", item.ID).Delete(&models.CartItemIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("cart_item_id = ?", item.ID).Delete(&models.CartItemAdditional{}).Error; err != nil {
			return err
		}
		return tx.Delete(&item).Error
	})
}
