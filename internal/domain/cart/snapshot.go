package cart

import (
	"errors"
	"time"

	"pos-terminal/internal/domain/catalog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrEmptyHold = errors.New("cannot hold an empty cart")

// Snapshot is the serializable form of a cart.
type Snapshot struct {
	Lines     []LineSnapshot `json:"lines"`
	Customer  string         `json:"customer,omitempty"`
	Table     string         `json:"table,omitempty"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

type LineSnapshot struct {
	ProductID      string                  `json:"productId"`
	ProductName    string                  `json:"productName"`
	VariantID      string                  `json:"variantId,omitempty"`
	VariantName    string                  `json:"variantName,omitempty"`
	UnitPrice      decimal.Decimal         `json:"unitPrice"`
	Quantity       int                     `json:"quantity"`
	StockCeiling   int                     `json:"stockCeiling"`
	TaxRate        decimal.Decimal         `json:"taxRate"`
	DiscountRate   decimal.Decimal         `json:"discountRate"`
	Customizations []catalog.SelectedGroup `json:"customizations,omitempty"`
	Note           string                  `json:"note,omitempty"`
}

func (c *Cart) Snapshot() Snapshot {
	s := Snapshot{
		Lines:     make([]LineSnapshot, 0, len(c.lines)),
		Customer:  c.customer,
		Table:     c.table,
		UpdatedAt: c.updatedAt,
	}
	for _, l := range c.lines {
		s.Lines = append(s.Lines, LineSnapshot{
			ProductID:      l.productID,
			ProductName:    l.productName,
			VariantID:      l.variantID,
			VariantName:    l.variantName,
			UnitPrice:      l.unitPrice,
			Quantity:       l.quantity,
			StockCeiling:   l.stockCeiling,
			TaxRate:        l.taxRate,
			DiscountRate:   l.discountRate,
			Customizations: l.customizations.Groups(),
			Note:           l.note,
		})
	}
	return s
}

// Restore rebuilds a cart from a snapshot, re-applying quantity clamping.
func Restore(s Snapshot) *Cart {
	c := &Cart{
		customer:  s.Customer,
		table:     s.Table,
		updatedAt: s.UpdatedAt,
	}
	for _, ls := range s.Lines {
		ceiling := ls.StockCeiling
		if ceiling <= 0 {
			ceiling = catalog.DefaultStockCeiling
		}
		c.lines = append(c.lines, &LineItem{
			productID:      ls.ProductID,
			productName:    ls.ProductName,
			variantID:      ls.VariantID,
			variantName:    ls.VariantName,
			unitPrice:      ls.UnitPrice,
			quantity:       clamp(ls.Quantity, ceiling),
			stockCeiling:   ceiling,
			taxRate:        ls.TaxRate,
			discountRate:   ls.DiscountRate,
			customizations: catalog.NewSelection(ls.Customizations),
			note:           ls.Note,
		})
	}
	return c
}

// HeldOrder is a cart parked for later.
type HeldOrder struct {
	ID     uuid.UUID `json:"id"`
	Cart   Snapshot  `json:"cart"`
	HeldAt time.Time `json:"heldAt"`
}

// Hold parks the cart's contents under a new id and clears it.
func (c *Cart) Hold(now time.Time) (HeldOrder, error) {
	if c.IsEmpty() {
		return HeldOrder{}, ErrEmptyHold
	}
	held := HeldOrder{
		ID:     uuid.New(),
		Cart:   c.Snapshot(),
		HeldAt: now,
	}
	c.Clear(now)
	return held, nil
}
