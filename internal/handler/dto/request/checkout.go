package request

import "github.com/shopspring/decimal"

type TipRequest struct {
	Percent *int             `json:"percent" binding:"omitempty,min=0,max=100"`
	Amount  *decimal.Decimal `json:"amount"`
}

type AmountRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type MethodRequest struct {
	Method string `json:"method" binding:"required,oneof=cash card mobile qr"`
}

type ReceiptRequest struct {
	Print bool `json:"print"`
	Email bool `json:"email"`
}
