package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Catalog errors
	ErrProductNotFound = errors.New("product not found")
	ErrOutOfStock      = errors.New("insufficient stock")

	// Cart errors
	ErrCartNotFound = errors.New("cart not found")
	ErrEmptyCart    = errors.New("cart is empty")

	// Checkout errors
	ErrPaymentProvider = errors.New("payment provider request failed")
	ErrInvalidStage    = errors.New("invalid checkout stage")
	ErrStageValidation = errors.New("checkout stage validation failed")

	// Order errors
	ErrOrderNotFound           = errors.New("order not found")
	ErrInvalidStatusTransition = errors.New("invalid order status transition")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
