package services

import "errors"

// Sentinel errors; controller yang memetakan ke kode HTTP.
var (
	ErrEmptyItems        = errors.New("order must contain at least one item")
	ErrInvalidQuantity   = errors.New("quantity must be at least 1")
	ErrUnknownOption     = errors.New("option does not belong to this menu item")
	ErrMenuItemNotFound  = errors.New("menu item not found")
	ErrOptionNotFound    = errors.New("option not found")
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("invalid order status transition")
)
