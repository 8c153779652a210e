package models

import (
	"time"
)

// CartItem is one line of a user's cart: a pizza in a concrete variation,
// with the customer's chosen ingredient subset and optional paid extras.
type CartItem struct {
	ID                    uint                   `gorm:"primaryKey" json:"id"`
	Quantity              int                    `gorm:"not null;default:1;check:quantity >= 1" json:"quantity"`
	PizzaID               uint                   `gorm:"not null" json:"pizzaId"`
	Pizza                 Pizza                  `gorm:"foreignKey:PizzaID" json:"pizza,omitempty"`
	PizzaVariationID      uint                   `gorm:"not null" json:"pizzaVariationId"`
	PizzaVariation        PizzaVariation         `gorm:"foreignKey:PizzaVariationID" json:"pizzaVariation,omitempty"`
	UserID                uint                   `gorm:"not null;index" json:"userId"`
	Ingredients           []Ingredient           `gorm:"many2many:cart_items_to_ingredients;constraint:OnDelete:CASCADE" json:"ingredients,omitempty"`
	AdditionalIngredients []AdditionalIngredient `gorm:"many2many:cart_items_to_additionals;constraint:OnDelete:CASCADE" json:"additionalIngredients,omitempty"`
	CreatedAt             time.Time              `json:"createdAt"`
	UpdatedAt             time.Time              `json:"updatedAt"`
}

// CartItemIngredient and CartItemAdditional are the cart association rows.
// They are registered with SetupJoinTable so they can be queried and deleted
// directly: cart associations are removed together with their cart item,
// unlike the order variants which are kept as history.

type CartItemIngredient struct {
	CartItemID   uint      `gorm:"primaryKey" json:"cartItemId"`
	IngredientID uint      `gorm:"primaryKey" json:"ingredientId"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (CartItemIngredient) TableName() string { return "cart_items_to_ingredients" }

type CartItemAdditional struct {
	CartItemID             uint                 `gorm:"primaryKey" json:"cartItemId"`
	AdditionalIngredientID uint                 `gorm:"primaryKey" json:"additionalIngredientId"`
	AdditionalIngredient   AdditionalIngredient `gorm:"foreignKey:AdditionalIngredientID" json:"additionalIngredient,omitempty"`
	CreatedAt              time.Time            `json:"createdAt"`
}

func (CartItemAdditional) TableName() string { return "cart_items_to_additionals" }
