package errors

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrProductNotFound     = errors.New("product not found")
	ErrOutOfStock          = errors.New("product is out of stock")
	ErrNoValidItems        = errors.New("no valid items in cart")
	ErrEmptyOrder          = errors.New("order must contain at least one item")
	ErrInvalidQuantity     = errors.New("item quantity must be positive")
	ErrInvalidUnitPrice    = errors.New("item unit price must not be negative")
	ErrInvalidDiscountCode = errors.New("invalid discount code")
	ErrBelowMinimumOrder   = errors.New("order total below minimum")
	ErrOrderNotModifiable  = errors.New("order is not in a modifiable state")
	ErrNoItemsToReturn     = errors.New("no items specified for return")
	ErrNonPositiveRefund   = errors.New("calculated refund amount is zero or negative")
)
