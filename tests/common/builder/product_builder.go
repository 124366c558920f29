//go:build unit || e2e

package builder

import (
	"pos-terminal/internal/domain/catalog"

	"github.com/shopspring/decimal"
)

type ProductBuilder struct {
	ID         string
	Name       string
	CategoryID string
	Price      string
	Stock      int
	TaxRate    string
	Discount   string
	Variants   []catalog.Variant
	Groups     []catalog.CustomizationGroup
	Barcodes   []string
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		ID:         "p-coffee",
		Name:       "Coffee",
		CategoryID: "3",
		Price:      "3.50",
		Stock:      100,
		TaxRate:    "0.08",
		Discount:   "0",
		Barcodes:   []string{"4006381333931"},
	}
}

func (p *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(p)
	return p
}

func (p *ProductBuilder) Build() *catalog.Product {
	opts := []catalog.ProductOption{
		catalog.WithStock(p.Stock),
		catalog.WithTaxRate(decimal.RequireFromString(p.TaxRate)),
		catalog.WithDiscount(decimal.RequireFromString(p.Discount)),
		catalog.WithBarcodes(p.Barcodes...),
	}
	if len(p.Variants) > 0 {
		opts = append(opts, catalog.WithVariants(p.Variants...))
	}
	if len(p.Groups) > 0 {
		opts = append(opts, catalog.WithCustomizations(p.Groups...))
	}
	return catalog.NewProduct(p.ID, p.Name, p.CategoryID, decimal.RequireFromString(p.Price), opts...)
}

// Offer prices the built product with no variant and no customizations.
func (p *ProductBuilder) Offer() catalog.Offer {
	offer, err := p.Build().Offer("", nil)
	if err != nil {
		panic(err)
	}
	return offer
}

func (p *ProductBuilder) WithVariant(id, name, price string) *ProductBuilder {
	p.Variants = append(p.Variants, catalog.NewVariant(id, name, decimal.RequireFromString(price), decimal.Zero, decimal.Zero))
	return p
}

// WithBurgerGroups attaches a required size choice and optional toppings.
func (p *ProductBuilder) WithBurgerGroups() *ProductBuilder {
	p.Groups = []catalog.CustomizationGroup{
		{
			ID: "size", Name: "Size", Type: catalog.GroupTypeRadio, Required: true,
			Options: []catalog.Option{
				{ID: "small", Name: "Small", Price: decimal.Zero},
				{ID: "large", Name: "Large", Price: decimal.RequireFromString("3")},
			},
		},
		{
			ID: "toppings", Name: "Toppings", Type: catalog.GroupTypeCheckbox,
			Options: []catalog.Option{
				{ID: "cheese", Name: "Extra Cheese", Price: decimal.RequireFromString("1")},
				{ID: "bacon", Name: "Bacon", Price: decimal.RequireFromString("1.5")},
			},
		},
	}
	return p
}
