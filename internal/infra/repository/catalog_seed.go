package repository

import (
	"pos-terminal/internal/domain/catalog"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func seedCategories() []catalog.Category {
	return []catalog.Category{
		{ID: catalog.AllCategoryID, Name: "All"},
		{ID: "2", Name: "Food"},
		{ID: "3", Name: "Beverages"},
		{ID: "4", Name: "Electronics"},
		{ID: "5", Name: "Clothing"},
		{ID: "6", Name: "Home"},
	}
}

func variant(id, name, price, tax string) catalog.Variant {
	return catalog.NewVariant(id, name, d(price), d(tax), decimal.Zero)
}

func burgerCustomizations() []catalog.CustomizationGroup {
	return []catalog.CustomizationGroup{
		{
			ID: "burger-size", Name: "Size", Type: catalog.GroupTypeRadio, Required: true,
			Options: []catalog.Option{
				{ID: "small", Name: "Small", Price: d("0")},
				{ID: "medium", Name: "Medium", Price: d("1.5")},
				{ID: "large", Name: "Large", Price: d("3")},
			},
		},
		{
			ID: "burger-toppings", Name: "Toppings", Type: catalog.GroupTypeCheckbox,
			Options: []catalog.Option{
				{ID: "cheese", Name: "Extra Cheese", Price: d("1")},
				{ID: "bacon", Name: "Bacon", Price: d("1.5")},
				{ID: "avocado", Name: "Avocado", Price: d("1")},
				{ID: "egg", Name: "Fried Egg", Price: d("1")},
			},
		},
		{
			ID: "burger-preparation", Name: "Preparation", Type: catalog.GroupTypeCheckbox,
			Options: []catalog.Option{
				{ID: "no-onions", Name: "No Onions", Price: d("0")},
				{ID: "no-tomato", Name: "No Tomato", Price: d("0")},
				{ID: "no-lettuce", Name: "No Lettuce", Price: d("0")},
				{ID: "no-pickle", Name: "No Pickle", Price: d("0")},
			},
		},
	}
}

func sandwichCustomizations() []catalog.CustomizationGroup {
	return []catalog.CustomizationGroup{
		{
			ID: "sandwich-size", Name: "Size", Type: catalog.GroupTypeRadio, Required: true,
			Options: []catalog.Option{
				{ID: "small", Name: "Small", Price: d("0")},
				{ID: "medium", Name: "Medium", Price: d("1")},
				{ID: "large", Name: "Large", Price: d("2")},
			},
		},
		{
			ID: "sandwich-extras", Name: "Extras", Type: catalog.GroupTypeCheckbox,
			Options: []catalog.Option{
				{ID: "cheese", Name: "Extra Cheese", Price: d("1.5")},
				{ID: "bacon", Name: "Bacon", Price: d("2")},
				{ID: "avocado", Name: "Avocado", Price: d("1.5")},
				{ID: "mushrooms", Name: "Mushrooms", Price: d("1")},
				{ID: "jalapenos", Name: "Jalapeños", Price: d("0.5")},
			},
		},
		{
			ID: "sandwich-preparation", Name: "Preparation", Type: catalog.GroupTypeCheckbox,
			Options: []catalog.Option{
				{ID: "no-onions", Name: "No Onions", Price: d("0")},
				{ID: "no-tomato", Name: "No Tomato", Price: d("0")},
				{ID: "no-lettuce", Name: "No Lettuce", Price: d("0")},
			},
		},
	}
}

func seedProducts() []*catalog.Product {
	return []*catalog.Product{
		catalog.NewProduct("1", "Burger", "2", d("5.99"),
			catalog.WithStock(50), catalog.WithTaxRate(d("0.05")),
			catalog.WithVariants(
				variant("1-1", "Classic Burger", "5.99", "0.05"),
				variant("1-2", "Cheese Burger", "6.99", "0.05"),
				variant("1-3", "Bacon Burger", "7.99", "0.05"),
			),
			catalog.WithCustomizations(burgerCustomizations()...),
			catalog.WithBarcodes("5901234123457"),
		),
		catalog.NewProduct("2", "Pizza", "2", d("8.99"),
			catalog.WithStock(30), catalog.WithTaxRate(d("0.05")),
			catalog.WithVariants(
				variant("2-1", "Margherita", "8.99", "0.05"),
				variant("2-2", "Pepperoni", "9.99", "0.05"),
				variant("2-3", "Vegetarian", "10.99", "0.05"),
			),
			catalog.Customizable(),
			catalog.WithBarcodes("4001234567890"),
		),
		catalog.NewProduct("3", "Coca Cola", "3", d("1.99"),
			catalog.WithStock(100), catalog.WithTaxRate(d("0.08")),
			catalog.WithBarcodes("9781234567897"),
		),
		catalog.NewProduct("4", "Headphones", "4", d("29.99"),
			catalog.WithStock(15), catalog.WithTaxRate(d("0.1")),
		),
		catalog.NewProduct("5", "T-Shirt", "5", d("15.99"),
			catalog.WithStock(25), catalog.WithTaxRate(d("0.08")), catalog.WithDiscount(d("0.1")),
			catalog.WithVariants(
				catalog.NewVariant("5-1", "Small", d("15.99"), d("0.08"), d("0.1")),
				catalog.NewVariant("5-2", "Medium", d("15.99"), d("0.08"), d("0.1")),
				catalog.NewVariant("5-3", "Large", d("17.99"), d("0.08"), d("0.1")),
			),
			catalog.Customizable(),
		),
		catalog.NewProduct("6", "Coffee Mug", "6", d("4.99"),
			catalog.WithStock(40), catalog.WithTaxRate(d("0.08")),
		),
		catalog.NewProduct("7", "Salad", "2", d("6.99"),
			catalog.WithStock(20), catalog.WithTaxRate(d("0.05")),
			catalog.WithVariants(
				variant("7-1", "Caesar Salad", "6.99", "0.05"),
				variant("7-2", "Greek Salad", "7.99", "0.05"),
				variant("7-3", "Garden Salad", "5.99", "0.05"),
			),
			catalog.Customizable(),
		),
		catalog.NewProduct("8", "Water Bottle", "3", d("0.99"),
			catalog.WithStock(200), catalog.WithTaxRate(d("0.05")),
		),
		catalog.NewProduct("9", "Smartphone", "4", d("299.99"),
			catalog.WithStock(10), catalog.WithTaxRate(d("0.1")), catalog.WithDiscount(d("0.05")),
		),
		catalog.NewProduct("10", "Jeans", "5", d("39.99"),
			catalog.WithStock(35), catalog.WithTaxRate(d("0.08")),
			catalog.WithVariants(
				variant("10-1", "Slim Fit", "39.99", "0.08"),
				variant("10-2", "Regular Fit", "39.99", "0.08"),
				variant("10-3", "Relaxed Fit", "42.99", "0.08"),
			),
			catalog.Customizable(),
		),
		catalog.NewProduct("11", "Lamp", "6", d("24.99"),
			catalog.WithStock(15), catalog.WithTaxRate(d("0.08")),
		),
		catalog.NewProduct("12", "Sandwich", "2", d("4.99"),
			catalog.WithStock(45), catalog.WithTaxRate(d("0.05")),
			catalog.WithVariants(
				variant("12-1", "Turkey", "4.99", "0.05"),
				variant("12-2", "Ham & Cheese", "5.49", "0.05"),
				variant("12-3", "Vegetarian", "4.49", "0.05"),
			),
			catalog.WithCustomizations(sandwichCustomizations()...),
		),
	}
}
