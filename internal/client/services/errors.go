package services

import "errors"

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrCorruptHistory     = errors.New("order history is corrupt")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNoSession          = errors.New("no active session")
	ErrUnknownItem        = errors.New("item is not on the menu")
)
