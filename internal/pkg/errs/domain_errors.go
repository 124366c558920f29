package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase and handler layers
var (
	// Catalog errors
	ErrProductNotFound  = errors.New("product not found")
	ErrUnknownBarcode   = errors.New("unknown barcode")
	ErrInvalidSelection = errors.New("invalid variant or customization selection")

	// Cart errors
	ErrLineNotFound      = errors.New("cart line not found")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrHeldOrderNotFound = errors.New("held order not found")
	ErrCartNotResumable  = errors.New("cart must be empty to resume a held order")

	// Checkout errors
	ErrNoOpenCheckout = errors.New("no open checkout")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrStoreOperationFailed = errors.New("store operation failed")
	ErrUpstreamUnavailable  = errors.New("upstream unavailable")
)
