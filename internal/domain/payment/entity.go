package payment

import (
	"errors"
	"time"

	"pos-terminal/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

var (
	ErrNegativeAmount = errors.New("amount cannot be negative")
	ErrNothingToPay   = errors.New("order total must be positive")
)

// Checkout is an open payment for one order total.
//
// The current amount is what is being collected now. Outside split mode it follows total + tip;
// in split mode the operator enters it and it is capped at total + tip.
type Checkout struct {
	total        decimal.Decimal
	tip          pricing.Tip
	split        bool
	current      decimal.Decimal
	cashReceived decimal.Decimal
	method       Method
	printReceipt bool
	emailReceipt bool
	openedAt     time.Time
}

func Open(total decimal.Decimal, now time.Time) (*Checkout, error) {
	if !total.IsPositive() {
		return nil, ErrNothingToPay
	}
	return &Checkout{
		total:        total,
		tip:          pricing.NoTip(),
		current:      pricing.RoundCents(total),
		method:       MethodCash,
		printReceipt: true,
		openedAt:     now,
	}, nil
}

func (c *Checkout) SelectTipPercent(percent int) error {
	tip, err := pricing.PercentTip(c.total, percent)
	if err != nil {
		return err
	}
	c.applyTip(tip)
	return nil
}

func (c *Checkout) SetCustomTip(amount decimal.Decimal) error {
	tip, err := pricing.CustomTip(amount)
	if err != nil {
		return err
	}
	c.applyTip(tip)
	return nil
}

func (c *Checkout) applyTip(tip pricing.Tip) {
	c.tip = tip
	if !c.split {
		c.current = pricing.RoundCents(c.TotalWithTip())
	}
}

// Rebase moves the checkout onto a new order total after the cart changed. A percentage tip
// is recalculated and the current amount follows the new total + tip.
func (c *Checkout) Rebase(total decimal.Decimal) error {
	if !total.IsPositive() {
		return ErrNothingToPay
	}
	c.total = total
	c.tip = c.tip.Recalculate(total)
	limit := c.TotalWithTip()
	if !c.split || c.current.GreaterThan(limit) {
		c.current = pricing.RoundCents(limit)
	}
	return nil
}

// ToggleSplit flips split mode. Entering it resets the current amount to total + tip.
func (c *Checkout) ToggleSplit() {
	if !c.split {
		c.current = pricing.RoundCents(c.TotalWithTip())
	}
	c.split = !c.split
}

// SetCurrentAmount sets the amount collected now, capped at total + tip.
func (c *Checkout) SetCurrentAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrNegativeAmount
	}
	limit := c.TotalWithTip()
	if amount.GreaterThan(limit) {
		c.current = pricing.RoundCents(limit)
		return nil
	}
	c.current = amount
	return nil
}

func (c *Checkout) SetCashReceived(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrNegativeAmount
	}
	c.cashReceived = amount
	return nil
}

func (c *Checkout) SetMethod(m Method) {
	c.method = m
}

func (c *Checkout) SetReceipt(print, email bool) {
	c.printReceipt = print
	c.emailReceipt = email
}

func (c *Checkout) TotalWithTip() decimal.Decimal {
	return c.total.Add(c.tip.Amount())
}

// Remaining is max(0, total + tip - current).
func (c *Checkout) Remaining() decimal.Decimal {
	return decimal.Max(decimal.Zero, c.TotalWithTip().Sub(c.current))
}

// Change is max(0, cash - current) once cash has been entered.
func (c *Checkout) Change() decimal.Decimal {
	if !c.cashReceived.IsPositive() {
		return decimal.Zero
	}
	return decimal.Max(decimal.Zero, c.cashReceived.Sub(c.current))
}

// Completion is the outcome of settling a checkout.
type Completion struct {
	Kind         CompletionKind
	Total        decimal.Decimal
	Tip          decimal.Decimal
	Amount       decimal.Decimal
	Remaining    decimal.Decimal
	Change       decimal.Decimal
	Method       Method
	PrintReceipt bool
	EmailReceipt bool
	CompletedAt  time.Time
}

// Complete settles the checkout. In split mode with an amount still outstanding the result is a
// partial payment; the order total is left as it was.
func (c *Checkout) Complete(now time.Time) Completion {
	kind := CompletionFull
	if c.split && c.Remaining().IsPositive() {
		kind = CompletionPartial
	}
	return Completion{
		Kind:         kind,
		Total:        c.total,
		Tip:          c.tip.Amount(),
		Amount:       c.current,
		Remaining:    c.Remaining(),
		Change:       c.Change(),
		Method:       c.method,
		PrintReceipt: c.printReceipt,
		EmailReceipt: c.emailReceipt,
		CompletedAt:  now,
	}
}

func (c *Checkout) Total() decimal.Decimal         { return c.total }
func (c *Checkout) Tip() pricing.Tip               { return c.tip }
func (c *Checkout) IsSplit() bool                  { return c.split }
func (c *Checkout) CurrentAmount() decimal.Decimal { return c.current }
func (c *Checkout) CashReceived() decimal.Decimal  { return c.cashReceived }
func (c *Checkout) Method() Method                 { return c.method }
func (c *Checkout) PrintReceipt() bool             { return c.printReceipt }
func (c *Checkout) EmailReceipt() bool             { return c.emailReceipt }
func (c *Checkout) OpenedAt() time.Time            { return c.openedAt }
