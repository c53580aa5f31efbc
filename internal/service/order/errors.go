package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidStatus         = errors.New("invalid order status")
	ErrInvalidTransition     = errors.New("invalid status transition")

	ErrOrderNotFound    = errors.New("order not found")
	ErrDuplicateProduct = errors.New("duplicate product in order")
	ErrOrderArchived    = errors.New("order is archived")
	ErrOrderPending     = errors.New("order is still pending")
)
