package shared

import (
	"sync"

	"pos-terminal/internal/domain/payment"
)

// Till serializes read-modify-write cycles on the terminal's cart and holds the checkout
// that is currently open, if any. Callers must hold the lock while touching Checkout.
type Till struct {
	sync.Mutex
	Checkout *payment.Checkout
}

func NewTill() *Till {
	return &Till{}
}
