package domain

import "errors"

var (
	// Validation failures: the transition guard rejected the operation.
	ErrEmptyCart             = errors.New("cart is empty")
	ErrRegionRequired        = errors.New("region is not chosen")
	ErrPaymentMethodRequired = errors.New("payment method is not chosen")
	ErrPaymentMethodUnknown  = errors.New("unknown payment method")
	ErrPaymentMethodRegion   = errors.New("payment method is not available in region")

	ErrIndexOutOfRange   = errors.New("cart index out of range")
	ErrInvalidTransition = errors.New("invalid checkout transition")
)
