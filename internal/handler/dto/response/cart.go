package response

import (
	"time"

	"pos-terminal/internal/domain/catalog"
	"pos-terminal/internal/usecase/queries"
)

type TotalsResponse struct {
	Subtotal string `json:"subtotal"`
	Tax      string `json:"tax"`
	Discount string `json:"discount"`
	Total    string `json:"total"`
}

type CartLineResponse struct {
	Index          int                     `json:"index"`
	ProductID      string                  `json:"productId"`
	ProductName    string                  `json:"productName"`
	VariantID      string                  `json:"variantId,omitempty"`
	VariantName    string                  `json:"variantName,omitempty"`
	DisplayName    string                  `json:"displayName"`
	UnitPrice      string                  `json:"unitPrice"`
	Quantity       int                     `json:"quantity"`
	StockCeiling   int                     `json:"stock"`
	LineTotal      string                  `json:"lineTotal"`
	Customizations []catalog.SelectedGroup `json:"customizations,omitempty"`
	Note           string                  `json:"note,omitempty"`
}

type CartResponse struct {
	Lines     []CartLineResponse `json:"items" copier:"-"`
	Customer  string             `json:"customer,omitempty"`
	Table     string             `json:"table,omitempty"`
	ItemCount int                `json:"itemCount"`
	Totals    TotalsResponse     `json:"totals" copier:"-"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

type HeldOrderResponse struct {
	ID        string    `json:"id"`
	HeldAt    time.Time `json:"heldAt"`
	Customer  string    `json:"customer,omitempty"`
	Table     string    `json:"table,omitempty"`
	ItemCount int       `json:"itemCount"`
	Total     string    `json:"total"`
}

type HoldResponse struct {
	ID string `json:"id"`
}

type ScanResponse struct {
	ProductID string `json:"productId"`
	Added     bool   `json:"added"`
	// NeedsVariant tells the UI to open the variant picker for ProductID.
	NeedsVariant bool          `json:"needsVariant"`
	Cart         *CartResponse `json:"cart,omitempty"`
}

func FromCartView(v *queries.CartView) (*CartResponse, error) {
	res := &CartResponse{}
	if err := copyView(res, v); err != nil {
		return nil, err
	}
	if err := copyView(&res.Totals, &v.Totals); err != nil {
		return nil, err
	}
	res.Lines = make([]CartLineResponse, len(v.Lines))
	for i := range v.Lines {
		if err := copyView(&res.Lines[i], &v.Lines[i]); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func FromHeldOrderViews(views []queries.HeldOrderView) ([]HeldOrderResponse, error) {
	res := make([]HeldOrderResponse, len(views))
	for i := range views {
		if err := copyView(&res[i], &views[i]); err != nil {
			return nil, err
		}
		res[i].ID = views[i].ID.String()
	}
	return res, nil
}
