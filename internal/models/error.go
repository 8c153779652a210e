package models

import (
	"errors"
	"net/http"
)

// Domain sentinel errors. Message strings are part of the API contract and
// are returned verbatim in the {error: ...} body.
var (
	ErrEmptyCart            = errors.New("Cart is empty")
	ErrPizzaMissing         = errors.New("The pizza was not found")
	ErrOrderMissing         = errors.New("Order was not found")
	ErrCartItemMissing      = errors.New("Cart item was not found")
	ErrIngredientMissing    = errors.New("One or more ingredients were not found")
	ErrAdditionalMissing    = errors.New("One or more additional ingredients were not found")
	ErrVariationMissing     = errors.New("The pizza variation was not found")
	ErrUserMissing          = errors.New("User with this email was not found")
	ErrEmailExists          = errors.New("User with this email already exists")
	ErrNoPasswordSet        = errors.New("Invalid credentials, please register")
	ErrWrongPassword        = errors.New("Passwords do not match")
	ErrBadResetToken        = errors.New("Incorrect token provided")
	ErrResetTokenExpired    = errors.New("Token has expired")
	ErrInvalidQuantity      = errors.New("Quantity must be a positive integer")
	ErrInvalidOrderStatus   = errors.New("Invalid order status")
	ErrNotAuthenticated     = errors.New("Please sign in to continue")
)

// StatusFor maps a domain error to the HTTP status code of its error kind.
// Unknown errors are treated as plain client failures.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrPizzaMissing),
		errors.Is(err, ErrOrderMissing),
		errors.Is(err, ErrCartItemMissing),
		errors.Is(err, ErrIngredientMissing),
		errors.Is(err, ErrAdditionalMissing),
		errors.Is(err, ErrVariationMissing),
		errors.Is(err, ErrUserMissing):
		return http.StatusNotFound
	case errors.Is(err, ErrEmptyCart),
		errors.Is(err, ErrEmailExists):
		return http.StatusConflict
	case errors.Is(err, ErrNotAuthenticated),
		errors.Is(err, ErrNoPasswordSet),
		errors.Is(err, ErrWrongPassword):
		return http.StatusUnauthorized
	default:
		return http.StatusBadRequest
	}
}
