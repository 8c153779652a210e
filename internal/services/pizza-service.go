package services

import (
	"errors"
	"strings"

	"github.com/adamingor/dodo-pizza-api/internal/models"
	"gorm.io/gorm"
)

// SearchPageSize is the fixed page size of the catalog search.
const SearchPageSize = 10

// SearchParams are the optional facets of a catalog search. A zero MinPrice
// and a nil MaxPrice mean the price filter is inactive; an empty
// IngredientIDs set means the ingredient filter is inactive.
type SearchParams struct {
	Search        string
	IngredientIDs []uint
	MinPrice      float64
	MaxPrice      *float64
	Page          int
}

// NewIngredientInput describes an ingredient created inline with a pizza.
type NewIngredientInput struct {
	Name        string `json:"name" binding:"required"`
	IsRemovable bool   `json:"isRemovable"`
}

// NewAdditionalInput describes a paid topping created inline with a variation.
type NewAdditionalInput struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price" binding:"required,gt=0"`
	Image string  `json:"image" binding:"required"`
}

// AttributeInput describes a size/dough tag attached to a variation.
type AttributeInput struct {
	Type string `json:"type" binding:"required"`
	Name string `json:"name" binding:"required"`
}

// VariationInput describes one variation of a new pizza. Ingredient and
// additional sets may reference existing rows by id or create new ones.
type VariationInput struct {
	Image                   string               `json:"image" binding:"required"`
	Price                   float64              `json:"price" binding:"required,gt=0"`
	IngredientIDs           []uint               `json:"ingredientsId"`
	NewIngredients          []NewIngredientInput `json:"newIngredients"`
	AdditionalIngredientIDs []uint               `json:"additionalIngredientsId"`
	NewAdditionals          []NewAdditionalInput `json:"newAdditionalIngredients"`
	Attributes              []AttributeInput     `json:"attributes"`
}

// CreatePizzaInput is the payload for creating a pizza with its variations.
type CreatePizzaInput struct {
	Name           string               `json:"name" binding:"required"`
	Type           string               `json:"type" binding:"required"`
	IngredientIDs  []uint               `json:"ingredientsId"`
	NewIngredients []NewIngredientInput `json:"newIngredients"`
	Variations     []VariationInput     `json:"variations"`
}

// PizzaService provides catalog reads, the faceted search and catalog admin
type PizzaService interface {
	// SearchPizzas runs the faceted catalog search: free-text name match,
	// price-range over variation prices and ingredient-superset filter,
	// intersected and paged at SearchPageSize per page.
	SearchPizzas(params SearchParams) ([]models.Pizza, error)
	// GetAllPizzas returns every pizza with ingredients and variations
	GetAllPizzas() ([]models.Pizza, error)
	// GetPizzaByID returns one pizza with its full nested catalog
	GetPizzaByID(id uint) (models.Pizza, error)
	// GetPizzaTypes returns all type labels ordered by descending frequency
	GetPizzaTypes() ([]string, error)
	// GetIngredients returns the whole ingredient catalog
	GetIngredients() ([]models.Ingredient, error)
	// GetRecommended returns up to 6 pizzas other than the given one
	GetRecommended(excludeID uint) ([]models.Pizza, error)
	// CreatePizza creates a pizza with its variations in one transaction
	CreatePizza(input CreatePizzaInput) (models.Pizza, error)
	// DeletePizza removes a pizza by id
	DeletePizza(id uint) error
}

type pizzaService struct {
	db *gorm.DB
}

// NewPizzaService creates a new instance of PizzaService
func NewPizzaService(db *gorm.DB) PizzaService {
	return &pizzaService{db: db}
}

func (s *pizzaService) SearchPizzas(params SearchParams) ([]models.Pizza, error) {
	query := s.db.Model(&models.Pizza{})

	// Price facet: a pizza qualifies when any of its variations falls in
	// the bound. Min-only and max-only bounds each apply on their own.
	if params.MinPrice > 0 || params.MaxPrice != nil {
		priceQuery := s.db.Table("pizzas_to_variations").
			Joins("JOIN pizza_variations ON pizza_variations.id = pizzas_to_variations.pizza_variation_id")
		if params.MinPrice > 0 {
			priceQuery = priceQuery.Where("pizza_variations.total_price >= ?", params.MinPrice)
		}
		if params.MaxPrice != nil {
			priceQuery = priceQuery.Where("pizza_variations.total_price <= ?", *params.MaxPrice)
		}

		var priceIDs []uint
		if err := priceQuery.Group("pizzas_to_variations.pizza_id").
			Pluck("pizzas_to_variations.pizza_id", &priceIDs).Error; err != nil {
			return nil, err
		}
		if len(priceIDs) == 0 {
			return []models.Pizza{}, nil
		}
		query = query.Where("pizzas.id IN ?", priceIDs)
	}

	// Ingredient facet: superset semantics. Grouping the association rows
	// and requiring the distinct-match count to equal the requested set
	// size keeps only pizzas that contain every requested ingredient.
	if len(params.IngredientIDs) > 0 {
		var ingredientIDs []uint
		err := s.db.Table("pizzas_to_ingredients").
			Where("ingredient_id IN ?", params.IngredientIDs).
			Group("pizza_id").
			Having("COUNT(DISTINCT ingredient_id) = ?", len(params.IngredientIDs)).
			Pluck("pizza_id", &ingredientIDs).Error
		if err != nil {
			return nil, err
		}
		if len(ingredientIDs) == 0 {
			return []models.Pizza{}, nil
		}
		query = query.Where("pizzas.id IN ?", ingredientIDs)
	}

	if params.Search != "" {
		query = query.Where("LOWER(pizzas.name) LIKE ?", "%"+strings.ToLower(params.Search)+"%")
	}

	page := params.Page
	if page < 1 {
		page = 1
	}

	pizzas := []models.Pizza{}
	err := query.
		Preload("Ingredients").
		Preload("Variations").
		Limit(SearchPageSize).
		Offset((page - 1) * SearchPageSize).
		Find(&pizzas).Error
	if err != nil {
		return nil, err
	}
	return pizzas, nil
}

func (s *pizzaService) GetAllPizzas() ([]models.Pizza, error) {
	pizzas := []models.Pizza{}
	err := s.db.
		Preload("Ingredients").
		Preload("Variations").
		Find(&pizzas).Error
	if err != nil {
		return nil, err
	}
	return pizzas, nil
}

func (s *pizzaService) GetPizzaByID(id uint) (models.Pizza, error) {
	var pizza models.Pizza
	err := s.db.
		Preload("Ingredients").
		Preload("Variations.Ingredients").
		Preload("Variations.AdditionalIngredients").
		Preload("Variations.Attributes").
		First(&pizza, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Pizza{}, models.ErrPizzaMissing
		}
		return models.Pizza{}, err
	}
	return pizza, nil
}

func (s *pizzaService) GetPizzaTypes() ([]string, error) {
	types := []string{}
	err := s.db.Model(&models.Pizza{}).
		Select("type").
		Group("type").
		Order("COUNT(*) DESC").
		Pluck("type", &types).Error
	if err != nil {
		return nil, err
	}
	return types, nil
}

func (s *pizzaService) GetIngredients() ([]models.Ingredient, error) {
	ingredients := []models.Ingredient{}
	if err := s.db.Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (s *pizzaService) GetRecommended(excludeID uint) ([]models.Pizza, error) {
	pizzas := []models.Pizza{}
	err := s.db.
		Where("id <> ?", excludeID).
		Limit(6).
		Preload("Ingredients").
		Preload("Variations").
		Find(&pizzas).Error
	if err != nil {
		return nil, err
	}
	return pizzas, nil
}

func (s *pizzaService) CreatePizza(input CreatePizzaInput) (models.Pizza, error) {
	var created models.Pizza
	err := s.db.Transaction(func(tx *gorm.DB) error {
		pizza := models.Pizza{Name: input.Name, Type: input.Type}

		ingredients, err := resolveIngredients(tx, input.IngredientIDs, input.NewIngredients)
		if err != nil {
			return err
		}
		pizza.Ingredients = ingredients

		for _, v := range input.Variations {
			variation := models.PizzaVariation{Image: v.Image, Price: v.Price}

			variation.Ingredients, err = resolveIngredients(tx, v.IngredientIDs, v.NewIngredients)
			if err != nil {
				return err
			}
			variation.AdditionalIngredients, err = resolveAdditionals(tx, v.AdditionalIngredientIDs, v.NewAdditionals)
			if err != nil {
				return err
			}
			for _, a := range v.Attributes {
				variation.Attributes = append(variation.Attributes, models.Attribute{Type: a.Type, Name: a.Name})
			}
			pizza.Variations = append(pizza.Variations, variation)
		}

		if err := tx.Create(&pizza).Error; err != nil {
			return err
		}
		created = pizza
		return nil
	})
	if err != nil {
		return models.Pizza{}, err
	}
	return created, nil
}

func (s *pizzaService) DeletePizza(id uint) error {
	result := s.db.Delete(&models.Pizza{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.ErrPizzaMissing
	}
	return nil
}

// resolveIngredients loads the referenced ingredient rows and appends the
// inline-created ones. A referenced id that matches no row fails the whole
// unit so the caller's transaction rolls back.
func resolveIngredients(tx *gorm.DB, ids []uint, inline []NewIngredientInput) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	if len(ids) > 0 {
		if err := tx.Where("id IN ?", ids).Find(&ingredients).Error; err != nil {
			return nil, err
		}
		if len(ingredients) != len(ids) {
			return nil, models.ErrIngredientMissing
		}
	}
	for _, in := range inline {
		ingredients = append(ingredients, models.Ingredient{Name: in.Name, IsRemovable: in.IsRemovable})
	}
	return ingredients, nil
}

// resolveAdditionals does the same for paid toppings.
func resolveAdditionals(tx *gorm.DB, ids []uint, inline []NewAdditionalInput) ([]models.AdditionalIngredient, error) {
	var additionals []models.AdditionalIngredient
	if len(ids) > 0 {
		if err := tx.Where("id IN ?", ids).Find(&additionals).Error; err != nil {
			return nil, err
		}
		if len(additionals) != len(ids) {
			return nil, models.ErrAdditionalMissing
		}
	}
	for _, in := range inline {
		additionals = append(additionals, models.AdditionalIngredient{Name: in.Name, Price: in.Price, Image: in.Image})
	}
	return additionals, nil
}
