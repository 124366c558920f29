package request

type AddItemRequest struct {
	ProductID string              `json:"productId" binding:"required"`
	VariantID string              `json:"variantId"`
	Choices   map[string][]string `json:"customizations"`
	Quantity  int                 `json:"quantity" binding:"omitempty,min=1"`
	Note      string              `json:"note" binding:"max=500"`
}

type ScanRequest struct {
	Barcode string `json:"barcode" binding:"required"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type SetCustomerRequest struct {
	Customer string `json:"customer"`
}

type SetTableRequest struct {
	Table string `json:"table"`
}
