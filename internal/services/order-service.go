package services

import (
	"errors"
	"time"

	"github.com/adamingor/dodo-pizza-api/internal/models"
	"gorm.io/gorm"
)

// CreateOrderInput carries the caller-supplied contact, delivery and pricing
// fields of a new order. TotalPrice is taken verbatim; the conversion never
// recomputes it from catalog prices.
type CreateOrderInput struct {
	Name            string
	Surname         string
	Email           string
	Phone           string
	AdditionalNotes *string
	TimeOfDelivery  time.Time
	TotalPrice      float64
	Address         *AddressInput
}

// AddressInput is the optional delivery address of a new order.
type AddressInput struct {
	City    string
	Zipcode string
	Address string
}

// OrderService converts carts into orders and serves order reads
type OrderService interface {
	// CreateFromCart atomically converts the user's cart into an order with
	// one snapshotted order item per cart line, clearing the cart in the
	// same transaction. The order status is forced to pending regardless of
	// caller input. An empty cart fails with models.ErrEmptyCart and writes
	// nothing; a concurrent conversion that loses the race on the cart rows
	// fails the same way.
	CreateFromCart(userID uint, input CreateOrderInput) (models.Order, error)
	// ListOrders returns the user's orders deep-hydrated with items,
	// variations, ingredients, additionals and attributes.
	ListOrders(userID uint) ([]models.Order, error)
	// GetOrder fetches one order scoped by user id AND order id.
	GetOrder(userID, orderID uint) (models.Order, error)
	// UpdateStatus sets the status of the given order, scoped to the owner.
	UpdateStatus(userID, orderID uint, status string) error
	// DeleteOrder removes an order by id, scoped to the owner.
	DeleteOrder(userID, orderID uint) error
}

type orderService struct {
	db *gorm.DB
}

// NewOrderService creates a new instance of OrderService
func NewOrderService(db *gorm.DB) OrderService {
	return &orderService{db: db}
}

func (s *orderService) CreateFromCart(userID uint, input CreateOrderInput) (models.Order, error) {
	var order models.Order

	err := s.db.Transaction(func(tx *gorm.DB) error {
		// The variation association sets are batch-preloaded here instead
		// of per cart item to avoid an N+1 fan-out.
		var cartItems []models.CartItem
		err := tx.Where("user_id = ?", userID).
			Preload("PizzaVariation.Ingredients").
			Preload("PizzaVariation.AdditionalIngredients").
			Find(&cartItems).Error
		if err != nil {
			return err
		}
		if len(cartItems) == 0 {
			return models.ErrEmptyCart
		}

		// The cart rows are consumed up front. A concurrent conversion of
		// the same cart blocks on the row locks here; once the winner
		// commits, the loser's delete matches zero rows and its whole
		// transaction rolls back, so the cart is converted at most once
		// even under READ COMMITTED.
		cartIDs := tx.Model(&models.CartItem{}).Select("id").Where("user_id = ?", userID)
		if err := tx.Where("cart_item_id IN (?)", cartIDs).Delete(&models.CartItemIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("cart_item_id IN (?)", cartIDs).Delete(&models.CartItemAdditional{}).Error; err != nil {
			return err
		}
		result := tx.Where("user_id = ?", userID).Delete(&models.CartItem{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return models.ErrEmptyCart
		}

		order = models.Order{
			Name:            input.Name,
			Surname:         input.Surname,
			Email:           input.Email,
			Phone:           input.Phone,
			AdditionalNotes: input.AdditionalNotes,
			TimeOfDelivery:  input.TimeOfDelivery,
			TotalPrice:      input.TotalPrice,
			Status:          models.OrderStatusPending,
			UserID:          userID,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		if input.Address != nil {
			address := models.Address{
				City:    input.Address.City,
				Zipcode: input.Address.Zipcode,
				Address: input.Address.Address,
				OrderID: order.ID,
			}
			if err := tx.Create(&address).Error; err != nil {
				return err
			}
			order.Address = &address
		}

		for _, cartItem := range cartItems {
			orderItem := models.OrderItem{
				Quantity:         cartItem.Quantity,
				PizzaID:          cartItem.PizzaID,
				PizzaVariationID: cartItem.PizzaVariationID,
				UserID:           userID,
				OrderID:          order.ID,
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return err
			}

			// The snapshot records the variation's full recipe, not the
			// customer's customized subset: order-item ingredients mean
			// "what the variation contains", immune to later catalog edits.
			ingredientRows := make([]models.OrderItemIngredient, 0, len(cartItem.PizzaVariation.Ingredients))
			for _, ingredient := range cartItem.PizzaVariation.Ingredients {
				ingredientRows = append(ingredientRows, models.OrderItemIngredient{
					OrderItemID:  orderItem.ID,
					IngredientID: ingredient.ID,
				})
			}
			if len(ingredientRows) > 0 {
				if err := tx.Create(&ingredientRows).Error; err != nil {
					return err
				}
			}

			if len(cartItem.PizzaVariation.AdditionalIngredients) > 0 {
				additionalRows := make([]models.OrderItemAdditional, 0, len(cartItem.PizzaVariation.AdditionalIngredients))
				for _, additional := range cartItem.PizzaVariation.AdditionalIngredients {
					additionalRows = append(additionalRows, models.OrderItemAdditional{
						OrderItemID:            orderItem.ID,
						AdditionalIngredientID: additional.ID,
					})
				}
				if err := tx.Create(&additionalRows).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return models.Order{}, err
	}

	return order, nil
}

func (s *orderService) ListOrders(userID uint) ([]models.Order, error) {
	orders := []models.Order{}
	err := s.db.
		Where("user_id = ?", userID).
		Preload("Address").
		Preload("Items.Pizza").
		Preload("Items.PizzaVariation.Ingredients").
		Preload("Items.PizzaVariation.AdditionalIngredients").
		Preload("Items.PizzaVariation.Attributes").
		Preload("Items.Ingredients").
		Preload("Items.AdditionalIngredients").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *orderService) GetOrder(userID, orderID uint) (models.Order, error) {
	var order models.Order
	err := s.db.
		Where("user_id = ? AND id = ?", userID, orderID).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Order{}, models.ErrOrderMissing
		}
		return models.Order{}, err
	}
	return order, nil
}

func (s *orderService) UpdateStatus(userID, orderID uint, status string) error {
	if !models.ValidOrderStatus(status) {
		return models.ErrInvalidOrderStatus
	}

	result := s.db.Model(&models.Order{}).
		Where("user_id = ? AND id = ?", userID, orderID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.ErrOrderMissing
	}
	return nil
}

func (s *orderService) DeleteOrder(userID, orderID uint) error {
	result := s.db.Where("user_id = ? AND id = ?", userID, orderID).Delete(&models.Order{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.ErrOrderMissing
	}
	return nil
}
