package queries

import (
	"pos-terminal/internal/domain/cart"
	"pos-terminal/internal/domain/catalog"
	"pos-terminal/internal/domain/payment"
	"pos-terminal/internal/domain/pricing"
)

func NewProductView(p *catalog.Product) ProductView {
	v := ProductView{
		ID:             p.ID(),
		Name:           p.Name(),
		CategoryID:     p.CategoryID(),
		Price:          p.Price(),
		Stock:          p.Stock(),
		TaxRate:        p.TaxRate(),
		Discount:       p.Discount(),
		Customizable:   p.IsCustomizable(),
		Customizations: p.Customizations(),
		Barcodes:       p.Barcodes(),
	}
	for _, variant := range p.Variants() {
		v.Variants = append(v.Variants, VariantView{
			ID:       variant.ID(),
			Name:     variant.Name(),
			Price:    variant.Price(),
			TaxRate:  variant.TaxRate(),
			Discount: variant.Discount(),
		})
	}
	return v
}

func NewTotalsView(t pricing.Totals) TotalsView {
	return TotalsView{Subtotal: t.Subtotal, Tax: t.Tax, Discount: t.Discount, Total: t.Total}
}

func NewCartView(c *cart.Cart, calc pricing.Calculator) *CartView {
	lines := c.Lines()
	v := &CartView{
		Lines:     make([]CartLineView, 0, len(lines)),
		Customer:  c.Customer(),
		Table:     c.Table(),
		ItemCount: c.ItemCount(),
		Totals:    NewTotalsView(c.Totals(calc)),
		UpdatedAt: c.UpdatedAt(),
	}
	for i := range lines {
		l := &lines[i]
		v.Lines = append(v.Lines, CartLineView{
			Index:          i,
			Key:            l.Key(),
			ProductID:      l.ProductID(),
			ProductName:    l.ProductName(),
			VariantID:      l.VariantID(),
			VariantName:    l.VariantName(),
			DisplayName:    l.DisplayName(),
			UnitPrice:      l.UnitPrice(),
			Quantity:       l.Quantity(),
			StockCeiling:   l.StockCeiling(),
			TaxRate:        l.TaxRate(),
			DiscountRate:   l.DiscountRate(),
			LineTotal:      l.LineTotal(),
			Customizations: l.Customizations().Groups(),
			Note:           l.Note(),
		})
	}
	return v
}

func NewHeldOrderView(h cart.HeldOrder, calc pricing.Calculator) HeldOrderView {
	c := cart.Restore(h.Cart)
	return HeldOrderView{
		ID:        h.ID,
		HeldAt:    h.HeldAt,
		Customer:  c.Customer(),
		Table:     c.Table(),
		ItemCount: c.ItemCount(),
		Total:     c.Totals(calc).Total,
	}
}

func NewCheckoutView(co *payment.Checkout, tipPresets []int) *CheckoutView {
	v := &CheckoutView{
		Total:         co.Total(),
		TipAmount:     co.Tip().Amount(),
		TotalWithTip:  co.TotalWithTip(),
		Split:         co.IsSplit(),
		CurrentAmount: co.CurrentAmount(),
		Remaining:     co.Remaining(),
		CashReceived:  co.CashReceived(),
		Change:        co.Change(),
		Method:        co.Method().String(),
		PrintReceipt:  co.PrintReceipt(),
		EmailReceipt:  co.EmailReceipt(),
		TipPresets:    tipPresets,
		OpenedAt:      co.OpenedAt(),
	}
	if p, ok := co.Tip().Percent(); ok {
		v.TipPercent = &p
	}
	return v
}

func NewCompletionView(c payment.Completion) *CompletionView {
	return &CompletionView{
		Kind:         string(c.Kind),
		Total:        c.Total,
		Tip:          c.Tip,
		Amount:       c.Amount,
		Remaining:    c.Remaining,
		Change:       c.Change,
		Method:       c.Method.String(),
		PrintReceipt: c.PrintReceipt,
		EmailReceipt: c.EmailReceipt,
		CompletedAt:  c.CompletedAt,
	}
}
