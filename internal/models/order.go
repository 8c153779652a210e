package models

import (
	"time"
)

// Order statuses. Transitions are unconstrained: the owning user may set any
// of these through the status update endpoint.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// ValidOrderStatus reports whether s is one of the known order statuses.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Order is a placed order. It is created only by cart conversion and never
// mutated afterwards except for its status field.
type Order struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	AdditionalNotes *string     `json:"additionalNotes,omitempty"`
	Name            string      `gorm:"not null" json:"name"`
	Surname         string      `gorm:"not null" json:"surname"`
	Email           string      `gorm:"not null" json:"email"`
	Phone           string      `gorm:"not null" json:"phone"`
	TimeOfDelivery  time.Time   `gorm:"not null" json:"timeOfDelivery"`
	TotalPrice      float64     `gorm:"not null" json:"totalPrice"`
	Status          string      `gorm:"not null" json:"status"`
	UserID          uint        `gorm:"not null;index" json:"userId"`
	Address         *Address    `gorm:"foreignKey:OrderID" json:"address,omitempty"`
	Items           []OrderItem `gorm:"foreignKey:OrderID" json:"orderItems,omitempty"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// OrderItem is a snapshot of a cart item taken at conversion time. Its
// ingredient and additional associations record the variation's full recipe
// as it stood when the order was placed, immune to later catalog edits.
type OrderItem struct {
	ID                    uint                   `gorm:"primaryKey" json:"id"`
	Quantity              int                    `gorm:"not null;default:1" json:"quantity"`
	PizzaID               uint                   `gorm:"not null" json:"pizzaId"`
	Pizza                 Pizza                  `gorm:"foreignKey:PizzaID" json:"pizza,omitempty"`
	PizzaVariationID      uint                   `gorm:"not null" json:"pizzaVariationId"`
	PizzaVariation        PizzaVariation         `gorm:"foreignKey:PizzaVariationID" json:"pizzaVariation,omitempty"`
	UserID                uint                   `gorm:"not null" json:"userId"`
	OrderID               uint                   `gorm:"not null;index" json:"orderId"`
	Ingredients           []Ingredient           `gorm:"many2many:order_items_to_ingredients" json:"ingredients,omitempty"`
	AdditionalIngredients []AdditionalIngredient `gorm:"many2many:order_items_to_additionals" json:"additionalIngredients,omitempty"`
	CreatedAt             time.Time              `json:"createdAt"`
	UpdatedAt             time.Time              `json:"updatedAt"`
}

// Address holds the delivery address fields of an order.
type Address struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	City    string `gorm:"not null" json:"city"`
	Zipcode string `gorm:"not null" json:"zipcode"`
	Address string `gorm:"not null" json:"address"`
	OrderID uint   `gorm:"not null;index" json:"orderId"`
}

// Order association rows. Unlike the cart variants these are never cascade
// deleted: they are historical records and persist even if the cart-origin
// rows are long gone.

type OrderItemIngredient struct {
	OrderItemID  uint      `gorm:"primaryKey" json:"orderItemId"`
	IngredientID uint      `gorm:"primaryKey" json:"ingredientId"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (OrderItemIngredient) TableName() string { return "order_items_to_ingredients" }

type OrderItemAdditional struct {
	OrderItemID            uint      `gorm:"primaryKey" json:"orderItemId"`
	AdditionalIngredientID uint      `gorm:"primaryKey" json:"additionalIngredientId"`
	CreatedAt              time.Time `json:"createdAt"`
}

func (OrderItemAdditional) TableName() string { return "order_items_to_additionals" }
