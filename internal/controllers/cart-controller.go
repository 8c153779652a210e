package controllers

import (
	"net/http"

	"github.com/adamingor/dodo-pizza-api/internal/middleware"
	"github.com/adamingor/dodo-pizza-api/internal/models"
	"github.com/adamingor/dodo-pizza-api/internal/services"
	"github.com/gin-gonic/gin"
)

// CartController handles the per-user cart endpoints
type CartController interface {
	// AddToCart inserts a cart item with its associations
	AddToCart(c *gin.Context)
	// GetCart lists the user's cart with computed line prices
	GetCart(c *gin.Context)
	// UpdateQuantity changes the quantity of one cart item
	UpdateQuantity(c *gin.Context)
	// RemoveFromCart deletes one cart item
	RemoveFromCart(c *gin.Context)
}

type cartController struct {
	service services.CartService
}

// NewCartController creates a new instance of CartController
func NewCartController(service services.CartService) CartController {
	return &cartController{service: service}
}

// AddToCart godoc
// @Summary Add a configured pizza to the cart
// @Tags cart
// @Accept json
// @Produce json
// @Param item body services.AddCartItemInput true "Cart item payload"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Security CookieAuth
// @Router /cart [post]
func (cc *cartController) AddToCart(ctx *gin.Context) {
	userID, err := middleware.CurrentUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Please sign in to continue"})
		return
	}

	var input services.AddCartItemInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := cc.service.AddItem(userID, input); err != nil {
		ctx.JSON(models.StatusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": "Successfully added product"})
}

// GetCart godoc
// @Summary List the user's cart
// @Tags cart
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security CookieAuth
// @Router /cart [get]
func (cc *cartController) GetCart(ctx *gin.Context) {
	userID, err := middleware.CurrentUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Please sign in to continue"})
		return
	}

	lines, err := cc.service.ListItems(userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve cart"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": lines})
}

// UpdateQuantity godoc
// @Summary Update a cart item's quantity
// @Tags cart
// @Accept json
// @Produce json
// @Param cartItemId path int true "Cart item ID"
// @Param body body object true "New quantity"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Security CookieAuth
// @Router /cart/{cartItemId} [put]
func (cc *cartController) UpdateQuantity(ctx *gin.Context) {
	userID, err := middleware.CurrentUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Please sign in to continue"})
		return
	}

	cartItemID, err := parseIDParam(ctx, "cartItemId")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item ID format"})
		return
	}

	var req struct {
		Quantity int `json:"quantity" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be a positive integer"})
		return
	}

	if err := cc.service.UpdateQuantity(userID, cartItemID, req.Quantity); err != nil {
		ctx.JSON(models.StatusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Successfully updated quantity"})
}

// RemoveFromCart godoc
// @Summary Remove a cart item
// @Tags cart
// @Produce json
// @Param cartItemId path int true "Cart item ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security CookieAuth
// @Router /cart/{cartItemId} [delete]
func (cc *cartController) RemoveFromCart(ctx *gin.Context) {
	userID, err := middleware.CurrentUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Please sign in to continue"})
		return
	}

	cartItemID, err := parseIDParam(ctx, "cartItemId")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item ID format"})
		return
	}

	if err := cc.service.RemoveItem(userID, cartItemID); err != nil {
		ctx.JSON(models.StatusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": "Removed item successfully"})
}
