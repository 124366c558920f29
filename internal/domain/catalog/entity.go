package catalog

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrVariantRequired = errors.New("product requires a variant")
	ErrVariantNotFound = errors.New("variant not found")
	ErrNoVariants      = errors.New("product has no variants")
)

// DefaultStockCeiling applies when a product does not declare its stock.
const DefaultStockCeiling = 999

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AllCategoryID matches every product.
const AllCategoryID = "1"

type Variant struct {
	id       string
	name     string
	price    decimal.Decimal
	taxRate  decimal.Decimal
	discount decimal.Decimal
}

func NewVariant(id, name string, price, taxRate, discount decimal.Decimal) Variant {
	return Variant{id: id, name: name, price: price, taxRate: taxRate, discount: discount}
}

func (v Variant) ID() string                { return v.id }
func (v Variant) Name() string              { return v.name }
func (v Variant) Price() decimal.Decimal    { return v.price }
func (v Variant) TaxRate() decimal.Decimal  { return v.taxRate }
func (v Variant) Discount() decimal.Decimal { return v.discount }

type Product struct {
	id           string
	name         string
	price        decimal.Decimal
	categoryID   string
	customizable bool
	variants     []Variant
	groups       []CustomizationGroup
	stock        int
	taxRate      decimal.Decimal
	discount     decimal.Decimal
	barcodes     []string
}

type ProductOption func(*Product)

func WithStock(stock int) ProductOption {
	return func(p *Product) { p.stock = stock }
}

func WithTaxRate(rate decimal.Decimal) ProductOption {
	return func(p *Product) { p.taxRate = rate }
}

func WithDiscount(rate decimal.Decimal) ProductOption {
	return func(p *Product) { p.discount = rate }
}

func WithVariants(variants ...Variant) ProductOption {
	return func(p *Product) { p.variants = append(p.variants, variants...) }
}

// WithCustomizations marks the product customizable and attaches its option groups.
func WithCustomizations(groups ...CustomizationGroup) ProductOption {
	return func(p *Product) {
		p.customizable = true
		p.groups = append(p.groups, groups...)
	}
}

func Customizable() ProductOption {
	return func(p *Product) { p.customizable = true }
}

func WithBarcodes(codes ...string) ProductOption {
	return func(p *Product) { p.barcodes = append(p.barcodes, codes...) }
}

func NewProduct(id, name, categoryID string, price decimal.Decimal, opts ...ProductOption) *Product {
	p := &Product{
		id:         id,
		name:       name,
		categoryID: categoryID,
		price:      price,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Product) ID() string                           { return p.id }
func (p *Product) Name() string                         { return p.name }
func (p *Product) Price() decimal.Decimal               { return p.price }
func (p *Product) CategoryID() string                   { return p.categoryID }
func (p *Product) IsCustomizable() bool                 { return p.customizable }
func (p *Product) Variants() []Variant                  { return append([]Variant(nil), p.variants...) }
func (p *Product) Customizations() []CustomizationGroup { return append([]CustomizationGroup(nil), p.groups...) }
func (p *Product) Stock() int                           { return p.stock }
func (p *Product) TaxRate() decimal.Decimal             { return p.taxRate }
func (p *Product) Discount() decimal.Decimal            { return p.discount }
func (p *Product) Barcodes() []string                   { return append([]string(nil), p.barcodes...) }

func (p *Product) HasVariants() bool {
	return len(p.variants) > 0
}

// StockCeiling is the most units of the product a single line may hold.
func (p *Product) StockCeiling() int {
	if p.stock <= 0 {
		return DefaultStockCeiling
	}
	return p.stock
}

// Matches reports whether the product passes a name search and a category filter.
func (p *Product) Matches(search, categoryID string) bool {
	if categoryID != "" && categoryID != AllCategoryID && p.categoryID != categoryID {
		return false
	}
	return strings.Contains(strings.ToLower(p.name), strings.ToLower(strings.TrimSpace(search)))
}

func (p *Product) variant(id string) (Variant, bool) {
	for _, v := range p.variants {
		if v.id == id {
			return v, true
		}
	}
	return Variant{}, false
}

func (p *Product) group(id string) (CustomizationGroup, bool) {
	for _, g := range p.groups {
		if g.ID == id {
			return g, true
		}
	}
	return CustomizationGroup{}, false
}
