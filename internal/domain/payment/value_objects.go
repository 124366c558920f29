package payment

import (
	"errors"
	"strings"
)

var ErrInvalidMethod = errors.New("invalid payment method")

type Method string

const (
	MethodCash   Method = "cash"
	MethodCard   Method = "card"
	MethodMobile Method = "mobile"
	MethodQR     Method = "qr"
)

func NewMethod(s string) (Method, error) {
	m := Method(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case MethodCash, MethodCard, MethodMobile, MethodQR:
		return m, nil
	default:
		return "", ErrInvalidMethod
	}
}

func (m Method) String() string {
	return string(m)
}

type CompletionKind string

const (
	CompletionFull    CompletionKind = "full"
	CompletionPartial CompletionKind = "partial"
)
