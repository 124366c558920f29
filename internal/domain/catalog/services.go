package catalog

import (
	"pos-terminal/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

// Offer is a product priced for the cart, with the chosen variant and customizations applied.
type Offer struct {
	ProductID      string
	ProductName    string
	VariantID      string
	VariantName    string
	UnitPrice      decimal.Decimal
	TaxRate        decimal.Decimal
	DiscountRate   decimal.Decimal
	StockCeiling   int
	Customizations Selection
}

// Offer prices the product for a variant and a set of customization choices keyed by group id.
//
// A variant overrides the base price; its tax rate and discount apply when set, otherwise the
// product's. For customizable products the unit price is (price + option surcharges) reduced by
// the discount rate and rounded to cents.
func (p *Product) Offer(variantID string, choices map[string][]string) (Offer, error) {
	offer := Offer{
		ProductID:    p.id,
		ProductName:  p.name,
		UnitPrice:    p.price,
		TaxRate:      p.taxRate,
		DiscountRate: p.discount,
		StockCeiling: p.StockCeiling(),
	}

	switch {
	case p.HasVariants():
		if variantID == "" {
			return Offer{}, ErrVariantRequired
		}
		v, ok := p.variant(variantID)
		if !ok {
			return Offer{}, ErrVariantNotFound
		}
		offer.VariantID = v.id
		offer.VariantName = v.name
		offer.UnitPrice = v.price
		offer.TaxRate = orFallback(v.taxRate, p.taxRate)
		offer.DiscountRate = orFallback(v.discount, p.discount)
	case variantID != "":
		return Offer{}, ErrNoVariants
	}

	if !p.customizable {
		if len(choices) > 0 {
			return Offer{}, ErrNotCustomizable
		}
		return offer, nil
	}

	sel, err := p.ResolveSelection(choices)
	if err != nil {
		return Offer{}, err
	}
	offer.Customizations = sel
	offer.UnitPrice = CustomizedUnitPrice(offer.UnitPrice, sel, offer.DiscountRate)

	return offer, nil
}

// CustomizedUnitPrice is (base + surcharge) x (1 - discount), rounded to cents.
func CustomizedUnitPrice(base decimal.Decimal, sel Selection, discount decimal.Decimal) decimal.Decimal {
	price := base.Add(sel.Surcharge())
	if discount.IsPositive() {
		price = price.Mul(decimal.NewFromInt(1).Sub(discount))
	}
	return pricing.RoundCents(price)
}

// ResolveSelection validates raw choices against the product's groups. Required single-choice
// groups left empty default to their first option.
func (p *Product) ResolveSelection(choices map[string][]string) (Selection, error) {
	if !p.customizable && len(choices) > 0 {
		return Selection{}, ErrNotCustomizable
	}

	resolved := make(map[string]SelectedGroup, len(p.groups))
	for groupID, optionIDs := range choices {
		g, ok := p.group(groupID)
		if !ok {
			return Selection{}, ErrUnknownGroup
		}

		opts, err := resolveOptions(g, optionIDs)
		if err != nil {
			return Selection{}, err
		}
		if len(opts) == 0 {
			continue
		}
		resolved[groupID] = SelectedGroup{GroupID: g.ID, GroupName: g.Name, Type: g.Type, Options: opts}
	}

	for _, g := range p.groups {
		if !g.Required {
			continue
		}
		if _, ok := resolved[g.ID]; ok {
			continue
		}
		if g.Type != GroupTypeRadio || len(g.Options) == 0 {
			return Selection{}, ErrRequiredGroupEmpty
		}
		resolved[g.ID] = SelectedGroup{GroupID: g.ID, GroupName: g.Name, Type: g.Type, Options: []Option{g.Options[0]}}
	}

	groups := make([]SelectedGroup, 0, len(resolved))
	for _, sg := range resolved {
		groups = append(groups, sg)
	}
	return NewSelection(groups), nil
}

func resolveOptions(g CustomizationGroup, optionIDs []string) ([]Option, error) {
	seen := make(map[string]struct{}, len(optionIDs))
	opts := make([]Option, 0, len(optionIDs))
	for _, id := range optionIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		o, ok := g.option(id)
		if !ok {
			return nil, ErrUnknownOption
		}
		opts = append(opts, o)
	}

	if g.Type == GroupTypeRadio && len(opts) > 1 {
		return nil, ErrSingleChoiceExceeded
	}
	return opts, nil
}

func orFallback(rate, fallback decimal.Decimal) decimal.Decimal {
	if rate.IsZero() {
		return fallback
	}
	return rate
}
