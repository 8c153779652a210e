package controllers

import (
	"net/http"
	"time"

	"github.com/adamingor/dodo-pizza-api/internal/middleware"
	"github.com/adamingor/dodo-pizza-api/internal/models"
	"github.com/adamingor/dodo-pizza-api/internal/services"
	"github.com/gin-gonic/gin"
)

// CreateOrderRequest mirrors the order schema of the storefront client. The
// pizza/variation/ingredient fields are accepted for compatibility but the
// conversion does not read them, and any supplied status is ignored: new
// orders always start pending.
type CreateOrderRequest struct {
	Name            string    `json:"name" binding:"required"`
	Surname         string    `json:"surname" binding:"required"`
	Email           string    `json:"email" binding:"required,email"`
	Phone           string    `json:"phone" binding:"required,min=10"`
	AdditionalNotes *string   `json:"additionalNotes"`
	TimeOfDelivery  time.Time `json:"timeOfDelivery" binding:"required"`
	TotalPrice      float64   `json:"totalPrice"`
	Status          string    `json:"status"`
	Address         *struct {
		City    string `json:"city" binding:"required"`
		Zipcode string `json:"zipcode" binding:"required"`
		Address string `json:"address" binding:"required"`
	} `json:"address"`

	PizzaID                 uint   `json:"pizzaId"`
	PizzaVariationID        uint   `json:"pizzaVariationId"`
	IngredientIDs           []uint `json:"ingredientsId"`
	AdditionalIngredientIDs []uint `json:"additionalIngredientsId"`
}

// OrderController handles order placement and retrieval
type OrderController interface {
	// CreateOrder converts the user's cart into an order
	CreateOrder(c *gin.Context)
	// GetOrders lists the user's orders, deep-hydrated
	GetOrders(c *gin.Context)
	// GetOrderByID fetches one order scoped to the user
	GetOrderByID(c *gin.Context)
	// UpdateStatus sets the status of one order
	UpdateStatus(c *gin.Context)
	// DeleteOrder removes one order
	DeleteOrder(c *gin.Context)
}

type orderController struct {
	service services.OrderService
}

// NewOrderController creates a new instance of OrderController
func NewOrderController(service services.OrderService) OrderController {
	return &orderController{service: service}
}

// CreateOrder godoc
// @Summary Place an order from the cart
// @Description Atomically converts the user's cart into an order with snapshotted items. Fails when the cart is empty.
// @Tags orders
// @Accept json
// @Produce json
// @Param order body CreateOrderRequest true "Order payload"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Security CookieAuth
// @Router /order [post]
func (oc *orderController) CreateOrder(ctx *gin.Context) {
	userID, err := middleware.CurrentUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Please sign in to continue"})
		return
	}

	var req CreateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	input := services.CreateOrderInput{
		Name:            req.Name,
		Surname:         req.Surname,
		Email:           req.Email,
		Phone:           req.Phone,
		AdditionalNotes: req.AdditionalNotes,
		TimeOfDelivery:  req.TimeOfDelivery,
		TotalPrice:      req.TotalPrice,
	}
	if req.Address != nil {
		input.Address = &services.AddressInput{
			City:    req.Address.City,
			Zipcode: req.Address.Zipcode,
			Address: req.Address.Address,
		}
	}

	_, err = oc.service.CreateFromCart(userID, input)
	if err != nil {
		ctx.JSON(models.StatusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Order has been created"})
}

// GetOrders godoc
// @Summary List the user's orders
// @Tags orders
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security CookieAuth
// @Router /order [get]
func (oc *orderController) GetOrders(ctx *gin.Context) {
	userID, err := middleware.CurrentUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Please sign in to continue"})
		return
	}

	orders, err := oc.service.ListOrders(userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve orders"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": orders})
}

func (oc *orderController) GetOrderByID(ctx *gin.Context) {
	userID, err := middleware.CurrentUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Please sign in to continue"})
		return
	}

	orderID, err := parseIDParam(ctx, "orderId")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID format"})
		return
	}

	order, err := oc.service.GetOrder(userID, orderID)
	if err != nil {
		ctx.JSON(models.StatusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": order})
}

// UpdateStatus godoc
// @Summary Update an order's status
// @Tags orders
// @Accept json
// @Produce json
// @Param orderId path int true "Order ID"
// @Param body body object true "New status"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Security CookieAuth
// @Router /order/{orderId} [put]
func (oc *orderController) UpdateStatus(ctx *gin.Context) {
	userID, err := middleware.CurrentUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Please sign in to continue"})
		return
	}

	orderID, err := parseIDParam(ctx, "orderId")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID format"})
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := oc.service.UpdateStatus(userID, orderID, req.Status); err != nil {
		ctx.JSON(models.StatusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Succesfully updated"})
}

func (oc *orderController) DeleteOrder(ctx *gin.Context) {
	userID, err := middleware.CurrentUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Please sign in to continue"})
		return
	}

	orderID, err := parseIDParam(ctx, "orderId")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID format"})
		return
	}

	if err := oc.service.DeleteOrder(userID, orderID); err != nil {
		ctx.JSON(models.StatusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Order has been removed"})
}
