package pos

import "errors"

// All expected failure modes are recoverable and reported to the caller;
// handlers map them to status codes at the HTTP boundary.
var (
	ErrOutOfStock        = errors.New("out of stock")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrUnknownCustomer   = errors.New("unknown customer")
	ErrNotFound          = errors.New("not found")
)
