package models

import (
	"time"
)

// Pizza is a catalog entry. Its concrete size/dough configurations live in
// Variations; Ingredients is the base recipe shared by all of them.
type Pizza struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	Name        string           `gorm:"not null" json:"name"`
	Type        string           `gorm:"not null" json:"type"`
	Ingredients []Ingredient     `gorm:"many2many:pizzas_to_ingredients" json:"ingredients,omitempty"`
	Variations  []PizzaVariation `gorm:"many2many:pizzas_to_variations" json:"variations,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// PizzaVariation is one purchasable configuration of a pizza, carrying its
// own price and image plus the full catalog of ingredients, paid extras and
// attributes available for it.
type PizzaVariation struct {
	ID                    uint                   `gorm:"primaryKey" json:"id"`
	Image                 string                 `gorm:"not null" json:"image"`
	Price                 float64                `gorm:"column:total_price;not null;check:total_price > 0" json:"totalPrice"`
	Ingredients           []Ingredient           `gorm:"many2many:pizza_variations_to_ingredients" json:"ingredients,omitempty"`
	AdditionalIngredients []AdditionalIngredient `gorm:"many2many:pizza_variations_to_additionals" json:"additionalIngredients,omitempty"`
	Attributes            []Attribute            `gorm:"many2many:pizza_variations_to_attributes" json:"attributes,omitempty"`
	CreatedAt             time.Time              `json:"createdAt"`
	UpdatedAt             time.Time              `json:"updatedAt"`
}

// Ingredient is a base recipe component. Removable ingredients can be taken
// off a pizza by the customer; non-removable ones cannot.
type Ingredient struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	IsRemovable bool      `gorm:"default:false" json:"isRemovable"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// AdditionalIngredient is a paid optional topping, distinct from the base
// recipe ingredients.
type AdditionalIngredient struct {
	ID    uint    `gorm:"primaryKey" json:"id"`
	Name  string  `gorm:"not null" json:"name"`
	Price float64 `gorm:"not null;check:price > 0" json:"price"`
	Image string  `gorm:"not null" json:"image"`
}

// Attribute is a categorical tag on a variation, e.g. type "size" name "30cm"
// or type "dough" name "thin".
type Attribute struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Type string `gorm:"not null" json:"type"`
	Name string `gorm:"not null" json:"name"`
}
