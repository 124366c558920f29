package cart

import (
	"errors"
	"time"

	"pos-terminal/internal/domain/catalog"
	"pos-terminal/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

var (
	ErrLineNotFound    = errors.New("cart line not found")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrNoteTooLong     = errors.New("special instructions are too long")
)

const MaxNoteLength = 500

// LineItem is one row of the cart.
type LineItem struct {
	productID      string
	productName    string
	variantID      string
	variantName    string
	unitPrice      decimal.Decimal
	quantity       int
	stockCeiling   int
	taxRate        decimal.Decimal
	discountRate   decimal.Decimal
	customizations catalog.Selection
	note           string
}

// NewLineItem builds a line from a priced offer. Quantity is clamped to [1, stock ceiling].
func NewLineItem(offer catalog.Offer, quantity int, note string) (*LineItem, error) {
	if len([]rune(note)) > MaxNoteLength {
		return nil, ErrNoteTooLong
	}

	ceiling := offer.StockCeiling
	if ceiling <= 0 {
		ceiling = catalog.DefaultStockCeiling
	}

	return &LineItem{
		productID:      offer.ProductID,
		productName:    offer.ProductName,
		variantID:      offer.VariantID,
		variantName:    offer.VariantName,
		unitPrice:      offer.UnitPrice,
		quantity:       clamp(quantity, ceiling),
		stockCeiling:   ceiling,
		taxRate:        offer.TaxRate,
		discountRate:   offer.DiscountRate,
		customizations: offer.Customizations,
		note:           note,
	}, nil
}

// Key is the merge identity: product, variant and customization set.
func (l *LineItem) Key() string {
	return l.productID + "|" + l.variantID + "|" + l.customizations.Key()
}

// DisplayName is "Product (Variant)" when a variant is chosen.
func (l *LineItem) DisplayName() string {
	if l.variantName == "" {
		return l.productName
	}
	return l.productName + " (" + l.variantName + ")"
}

// LineTotal is unit price times quantity, before tax and discount.
func (l *LineItem) LineTotal() decimal.Decimal {
	return l.unitPrice.Mul(decimal.NewFromInt(int64(l.quantity)))
}

func (l *LineItem) ProductID() string                 { return l.productID }
func (l *LineItem) ProductName() string               { return l.productName }
func (l *LineItem) VariantID() string                 { return l.variantID }
func (l *LineItem) VariantName() string               { return l.variantName }
func (l *LineItem) UnitPrice() decimal.Decimal        { return l.unitPrice }
func (l *LineItem) Quantity() int                     { return l.quantity }
func (l *LineItem) StockCeiling() int                 { return l.stockCeiling }
func (l *LineItem) TaxRate() decimal.Decimal          { return l.taxRate }
func (l *LineItem) DiscountRate() decimal.Decimal     { return l.discountRate }
func (l *LineItem) Customizations() catalog.Selection { return l.customizations }
func (l *LineItem) Note() string                      { return l.note }

// Cart is the order being rung up. It is not safe for concurrent use.
type Cart struct {
	lines     []*LineItem
	customer  string
	table     string
	updatedAt time.Time
}

func New() *Cart {
	return &Cart{}
}

// Add merges item into an identical line (summing quantity up to the line's ceiling) or appends it.
func (c *Cart) Add(item *LineItem, now time.Time) {
	defer c.touch(now)

	key := item.Key()
	for _, l := range c.lines {
		if l.Key() == key {
			l.quantity = clamp(l.quantity+item.quantity, l.stockCeiling)
			return
		}
	}
	cp := *item
	c.lines = append(c.lines, &cp)
}

// UpdateQuantity sets a line's quantity, clamped to its ceiling. Zero or less removes the line.
func (c *Cart) UpdateQuantity(index, quantity int, now time.Time) error {
	if index < 0 || index >= len(c.lines) {
		return ErrLineNotFound
	}
	if quantity <= 0 {
		return c.Remove(index, now)
	}
	c.lines[index].quantity = clamp(quantity, c.lines[index].stockCeiling)
	c.touch(now)
	return nil
}

func (c *Cart) Remove(index int, now time.Time) error {
	if index < 0 || index >= len(c.lines) {
		return ErrLineNotFound
	}
	c.lines = append(c.lines[:index], c.lines[index+1:]...)
	c.touch(now)
	return nil
}

// Clear empties the cart and forgets the selected customer and table.
func (c *Cart) Clear(now time.Time) {
	c.lines = nil
	c.customer = ""
	c.table = ""
	c.touch(now)
}

func (c *Cart) SetCustomer(customer string, now time.Time) {
	c.customer = customer
	c.touch(now)
}

func (c *Cart) SetTable(table string, now time.Time) {
	c.table = table
	c.touch(now)
}

func (c *Cart) Lines() []LineItem {
	out := make([]LineItem, len(c.lines))
	for i, l := range c.lines {
		out[i] = *l
	}
	return out
}

// PricingLines adapts the cart for a pricing.Calculator.
func (c *Cart) PricingLines() []pricing.Line {
	out := make([]pricing.Line, len(c.lines))
	for i, l := range c.lines {
		out[i] = l
	}
	return out
}

func (c *Cart) Totals(calc pricing.Calculator) pricing.Totals {
	return calc.Calculate(c.PricingLines())
}

func (c *Cart) IsEmpty() bool        { return len(c.lines) == 0 }
func (c *Cart) Len() int             { return len(c.lines) }
func (c *Cart) Customer() string     { return c.customer }
func (c *Cart) Table() string        { return c.table }
func (c *Cart) UpdatedAt() time.Time { return c.updatedAt }

// ItemCount is the number of units across all lines.
func (c *Cart) ItemCount() int {
	n := 0
	for _, l := range c.lines {
		n += l.quantity
	}
	return n
}

func (c *Cart) touch(now time.Time) {
	c.updatedAt = now
}

func clamp(quantity, ceiling int) int {
	if quantity < 1 {
		return 1
	}
	if quantity > ceiling {
		return ceiling
	}
	return quantity
}
