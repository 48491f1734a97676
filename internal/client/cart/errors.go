package cart

import "errors"

var (
	ErrInvalidQuantity = errors.New("please enter a valid quantity (1-99)")
	ErrInvalidPrice    = errors.New("unit price must not be negative")
	ErrInvalidName     = errors.New("item name is required")
	// ErrAlreadyEmpty is informational; the cart is left untouched.
	ErrAlreadyEmpty = errors.New("cart is already empty")
)
