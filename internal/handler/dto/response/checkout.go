package response

import (
	"time"

	"pos-terminal/internal/usecase/queries"
)

type CheckoutResponse struct {
	Total         string    `json:"total"`
	TipAmount     string    `json:"tipAmount"`
	TipPercent    *int      `json:"tipPercent"`
	TotalWithTip  string    `json:"totalWithTip"`
	Split         bool      `json:"isSplit"`
	CurrentAmount string    `json:"currentAmount"`
	Remaining     string    `json:"remaining"`
	CashReceived  string    `json:"cashReceived"`
	Change        string    `json:"change"`
	Method        string    `json:"method"`
	PrintReceipt  bool      `json:"printReceipt"`
	EmailReceipt  bool      `json:"emailReceipt"`
	TipPresets    []int     `json:"tipPresets"`
	OpenedAt      time.Time `json:"openedAt"`
}

type CompletionResponse struct {
	Kind         string    `json:"kind"`
	Total        string    `json:"total"`
	Tip          string    `json:"tip"`
	Amount       string    `json:"amount"`
	Remaining    string    `json:"remaining"`
	Change       string    `json:"change"`
	Method       string    `json:"method"`
	PrintReceipt bool      `json:"printReceipt"`
	EmailReceipt bool      `json:"emailReceipt"`
	CompletedAt  time.Time `json:"completedAt"`
}

func FromCheckoutView(v *queries.CheckoutView) (*CheckoutResponse, error) {
	res := &CheckoutResponse{}
	if err := copyView(res, v); err != nil {
		return nil, err
	}
	return res, nil
}

func FromCompletionView(v *queries.CompletionView) (*CompletionResponse, error) {
	res := &CompletionResponse{}
	if err := copyView(res, v); err != nil {
		return nil, err
	}
	return res, nil
}
