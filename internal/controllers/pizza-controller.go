package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/adamingor/dodo-pizza-api/internal/models"
	"github.com/adamingor/dodo-pizza-api/internal/services"
	"github.com/gin-gonic/gin"
)

// PizzaController handles HTTP requests related to the pizza catalog
type PizzaController interface {
	// SearchPizzas runs the faceted catalog search
	SearchPizzas(c *gin.Context)
	// GetAllPizzas retrieves all pizzas
	GetAllPizzas(c *gin.Context)
	// GetPizzaByID retrieves a pizza by its ID
	GetPizzaByID(c *gin.Context)
	// GetPizzaTypes lists type labels by frequency
	GetPizzaTypes(c *gin.Context)
	// GetIngredients lists the ingredient catalog
	GetIngredients(c *gin.Context)
	// GetRecommended lists pizzas other than the given one
	GetRecommended(c *gin.Context)
	// CreatePizza creates a new pizza with its variations
	CreatePizza(c *gin.Context)
	// DeletePizza deletes a pizza by its ID
	DeletePizza(c *gin.Context)
}

type pizzaController struct {
	service services.PizzaService
}

// NewPizzaController creates a new instance of PizzaController
func NewPizzaController(service services.PizzaService) PizzaController {
	return &pizzaController{service: service}
}

// SearchPizzas godoc
// @Summary Search the catalog
// @Description Faceted search combining free text, a required-ingredient set and a price range, paged at 10 per page
// @Tags pizzas
// @Produce json
// @Param search query string false "Name substring, case-insensitive"
// @Param ingredients query []int false "Ingredient ids that must all be present"
// @Param minPrice query number false "Minimum variation price"
// @Param maxPrice query number false "Maximum variation price"
// @Param page query int false "1-based page number"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /pizza/search [get]
func (pc *pizzaController) SearchPizzas(ctx *gin.Context) {
	params := services.SearchParams{
		Search: ctx.Query("search"),
		Page:   1,
	}

	ingredientIDs, err := parseIDList(ctx.QueryArray("ingredients"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ingredients filter"})
		return
	}
	params.IngredientIDs = ingredientIDs

	if raw := ctx.Query("minPrice"); raw != "" {
		minPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil || minPrice < 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid minPrice"})
			return
		}
		params.MinPrice = minPrice
	}
	if raw := ctx.Query("maxPrice"); raw != "" {
		maxPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil || maxPrice <= 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid maxPrice"})
			return
		}
		params.MaxPrice = &maxPrice
	}
	if raw := ctx.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page"})
			return
		}
		params.Page = page
	}

	pizzas, err := pc.service.SearchPizzas(params)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search pizzas"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": pizzas})
}

// GetAllPizzas godoc
// @Summary Get all pizzas
// @Tags pizzas
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /pizza [get]
func (pc *pizzaController) GetAllPizzas(ctx *gin.Context) {
	pizzas, err := pc.service.GetAllPizzas()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve pizzas"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": pizzas})
}

// GetPizzaByID godoc
// @Summary Get pizza by ID
// @Description Get a single pizza with its full nested catalog
// @Tags pizzas
// @Produce json
// @Param pizzaId path int true "Pizza ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /pizza/{pizzaId} [get]
func (pc *pizzaController) GetPizzaByID(ctx *gin.Context) {
	pizzaID, err := parseIDParam(ctx, "pizzaId")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pizza ID format"})
		return
	}

	pizza, err := pc.service.GetPizzaByID(pizzaID)
	if err != nil {
		ctx.JSON(models.StatusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": pizza})
}

func (pc *pizzaController) GetPizzaTypes(ctx *gin.Context) {
	types, err := pc.service.GetPizzaTypes()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve pizza types"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": types})
}

func (pc *pizzaController) GetIngredients(ctx *gin.Context) {
	ingredients, err := pc.service.GetIngredients()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve ingredients"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": ingredients})
}

func (pc *pizzaController) GetRecommended(ctx *gin.Context) {
	pizzaID, err := parseIDParam(ctx, "pizzaId")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pizza ID format"})
		return
	}

	pizzas, err := pc.service.GetRecommended(pizzaID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve recommendations"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": pizzas})
}

// CreatePizza godoc
// @Summary Create a new pizza
// @Description Create a pizza with nested variations, ingredient sets and attributes in one transaction
// @Tags pizzas
// @Accept json
// @Produce json
// @Param pizza body services.CreatePizzaInput true "Pizza payload"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /pizza [post]
func (pc *pizzaController) CreatePizza(ctx *gin.Context) {
	var input services.CreatePizzaInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	pizza, err := pc.service.CreatePizza(input)
	if err != nil {
		ctx.JSON(models.StatusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": pizza})
}

func (pc *pizzaController) DeletePizza(ctx *gin.Context) {
	pizzaID, err := parseIDParam(ctx, "pizzaId")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pizza ID format"})
		return
	}

	if err := pc.service.DeletePizza(pizzaID); err != nil {
		ctx.JSON(models.StatusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": "Pizza removed successfully"})
}

// parseIDParam reads a positive integer path parameter.
func parseIDParam(ctx *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// parseIDList accepts both repeated query values and comma separated lists.
func parseIDList(values []string) ([]uint, error) {
	var ids []uint
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.ParseUint(part, 10, 32)
			if err != nil {
				return nil, err
			}
			ids = append(ids, uint(id))
		}
	}
	return ids, nil
}
