package pricing

import (
	"github.com/shopspring/decimal"
)

var (
	DefaultTaxRate      = decimal.RequireFromString("0.08")
	DefaultDiscountRate = decimal.Zero
)

// Line is anything the calculator can price. Rates are fractions (0.08 == 8%).
type Line interface {
	UnitPrice() decimal.Decimal
	Quantity() int
	TaxRate() decimal.Decimal
	DiscountRate() decimal.Decimal
}

// Totals are kept at full precision; round only for display.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

func (t Totals) IsZero() bool {
	return t.Subtotal.IsZero() && t.Tax.IsZero() && t.Discount.IsZero()
}

type Calculator interface {
	Calculate(lines []Line) Totals
}

type DefaultCalculator struct {
	defaultTaxRate decimal.Decimal
}

func NewDefaultCalculator() *DefaultCalculator {
	return &DefaultCalculator{defaultTaxRate: DefaultTaxRate}
}

// NewCalculatorWithTaxRate uses taxRate for lines that carry no rate of their own.
func NewCalculatorWithTaxRate(taxRate decimal.Decimal) *DefaultCalculator {
	return &DefaultCalculator{defaultTaxRate: taxRate}
}

func (c *DefaultCalculator) Calculate(lines []Line) Totals {
	subtotal := decimal.Zero
	tax := decimal.Zero
	discount := decimal.Zero

	for _, l := range lines {
		gross := l.UnitPrice().Mul(decimal.NewFromInt(int64(l.Quantity())))
		subtotal = subtotal.Add(gross)
		tax = tax.Add(gross.Mul(rateOrDefault(l.TaxRate(), c.defaultTaxRate)))
		discount = discount.Add(gross.Mul(rateOrDefault(l.DiscountRate(), DefaultDiscountRate)))
	}

	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Discount: discount,
		Total:    subtotal.Add(tax).Sub(discount),
	}
}

// a zero rate counts as unset
func rateOrDefault(rate, fallback decimal.Decimal) decimal.Decimal {
	if rate.IsZero() {
		return fallback
	}
	return rate
}

func RoundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Display formats an amount with exactly two decimals.
func Display(d decimal.Decimal) string {
	return d.StringFixed(2)
}
