package checkout

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidName           = errors.New("invalid customer name")
	ErrInvalidPhone          = errors.New("invalid customer phone")
	ErrInvalidPayment        = errors.New("invalid payment method")
	ErrInvalidAddress        = errors.New("invalid delivery address")
	ErrInvalidDelivery       = errors.New("invalid delivery option")
	ErrEmptyCart             = errors.New("empty cart")
	ErrInvalidQuantity       = errors.New("invalid quantity")
	ErrUnknownProduct        = errors.New("unknown product")
)
