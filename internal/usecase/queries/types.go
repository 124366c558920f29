package queries

import (
	"time"

	"pos-terminal/internal/domain/catalog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserView is the signed-in operator's profile as the account service reports it.
type UserView struct {
	ID        string `json:"id,omitempty"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type VariantView struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	TaxRate  decimal.Decimal `json:"taxRate"`
	Discount decimal.Decimal `json:"discount"`
}

type ProductView struct {
	ID             string                       `json:"id"`
	Name           string                       `json:"name"`
	CategoryID     string                       `json:"category"`
	Price          decimal.Decimal              `json:"price"`
	Stock          int                          `json:"stock"`
	TaxRate        decimal.Decimal              `json:"taxRate"`
	Discount       decimal.Decimal              `json:"discount"`
	Customizable   bool                         `json:"customizable"`
	Variants       []VariantView                `json:"variants,omitempty"`
	Customizations []catalog.CustomizationGroup `json:"customizations,omitempty"`
	Barcodes       []string                     `json:"barcodes,omitempty"`
}

// TotalsView carries unrounded figures; rounding happens at display.
type TotalsView struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

type CartLineView struct {
	Index          int
	Key            string
	ProductID      string
	ProductName    string
	VariantID      string
	VariantName    string
	DisplayName    string
	UnitPrice      decimal.Decimal
	Quantity       int
	StockCeiling   int
	TaxRate        decimal.Decimal
	DiscountRate   decimal.Decimal
	LineTotal      decimal.Decimal
	Customizations []catalog.SelectedGroup
	Note           string
}

type CartView struct {
	Lines     []CartLineView
	Customer  string
	Table     string
	ItemCount int
	Totals    TotalsView
	UpdatedAt time.Time
}

type HeldOrderView struct {
	ID        uuid.UUID
	HeldAt    time.Time
	Customer  string
	Table     string
	ItemCount int
	Total     decimal.Decimal
}

type CheckoutView struct {
	Total         decimal.Decimal
	TipAmount     decimal.Decimal
	TipPercent    *int
	TotalWithTip  decimal.Decimal
	Split         bool
	CurrentAmount decimal.Decimal
	Remaining     decimal.Decimal
	CashReceived  decimal.Decimal
	Change        decimal.Decimal
	Method        string
	PrintReceipt  bool
	EmailReceipt  bool
	TipPresets    []int
	OpenedAt      time.Time
}

type CompletionView struct {
	Kind         string
	Total        decimal.Decimal
	Tip          decimal.Decimal
	Amount       decimal.Decimal
	Remaining    decimal.Decimal
	Change       decimal.Decimal
	Method       string
	PrintReceipt bool
	EmailReceipt bool
	CompletedAt  time.Time
}
