package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commandsmock

import (
	"context"

	"pos-terminal/internal/domain/payment"
	"pos-terminal/internal/domain/pricing"
	"pos-terminal/internal/pkg/clock"
	"pos-terminal/internal/pkg/errs"
	"pos-terminal/internal/usecase/queries"
	"pos-terminal/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

type CheckoutCommands interface {
	// Open starts a checkout for the cart total. An already open checkout is kept and returned.
	Open(ctx context.Context) (*queries.CheckoutView, error)
	Current(ctx context.Context) (*queries.CheckoutView, error)
	SelectTip(ctx context.Context, percent int) (*queries.CheckoutView, error)
	SetCustomTip(ctx context.Context, amount decimal.Decimal) (*queries.CheckoutView, error)
	ToggleSplit(ctx context.Context) (*queries.CheckoutView, error)
	SetAmount(ctx context.Context, amount decimal.Decimal) (*queries.CheckoutView, error)
	SetCashReceived(ctx context.Context, amount decimal.Decimal) (*queries.CheckoutView, error)
	SetMethod(ctx context.Context, method string) (*queries.CheckoutView, error)
	SetReceipt(ctx context.Context, print, email bool) (*queries.CheckoutView, error)
	Cancel(ctx context.Context) error
	// Complete settles the checkout. A full payment empties the cart; a partial one leaves it.
	Complete(ctx context.Context) (*queries.CompletionView, error)
}

type checkoutCommandsImpl struct {
	till       *shared.Till
	carts      CartStore
	calc       pricing.Calculator
	clock      clock.Clock
	tipPresets []int
}

func NewCheckoutCommands(till *shared.Till, carts CartStore, calc pricing.Calculator, clk clock.Clock, tipPresets []int) CheckoutCommands {
	return &checkoutCommandsImpl{
		till:       till,
		carts:      carts,
		calc:       calc,
		clock:      clk,
		tipPresets: tipPresets,
	}
}

func (c *checkoutCommandsImpl) Open(ctx context.Context) (*queries.CheckoutView, error) {
	c.till.Lock()
	defer c.till.Unlock()

	ct, err := c.carts.Load(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	if ct.IsEmpty() {
		return nil, errs.ErrEmptyCart
	}
	total := ct.Totals(c.calc).Total

	if c.till.Checkout != nil {
		if err := c.till.Checkout.Rebase(total); err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
		return c.view(), nil
	}

	co, err := payment.Open(total, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	c.till.Checkout = co
	return c.view(), nil
}

func (c *checkoutCommandsImpl) Current(ctx context.Context) (*queries.CheckoutView, error) {
	return c.update(func(*payment.Checkout) error { return nil })
}

func (c *checkoutCommandsImpl) SelectTip(ctx context.Context, percent int) (*queries.CheckoutView, error) {
	return c.update(func(co *payment.Checkout) error {
		return co.SelectTipPercent(percent)
	})
}

func (c *checkoutCommandsImpl) SetCustomTip(ctx context.Context, amount decimal.Decimal) (*queries.CheckoutView, error) {
	return c.update(func(co *payment.Checkout) error {
		return co.SetCustomTip(amount)
	})
}

func (c *checkoutCommandsImpl) ToggleSplit(ctx context.Context) (*queries.CheckoutView, error) {
	return c.update(func(co *payment.Checkout) error {
		co.ToggleSplit()
		return nil
	})
}

func (c *checkoutCommandsImpl) SetAmount(ctx context.Context, amount decimal.Decimal) (*queries.CheckoutView, error) {
	return c.update(func(co *payment.Checkout) error {
		return co.SetCurrentAmount(amount)
	})
}

func (c *checkoutCommandsImpl) SetCashReceived(ctx context.Context, amount decimal.Decimal) (*queries.CheckoutView, error) {
	return c.update(func(co *payment.Checkout) error {
		return co.SetCashReceived(amount)
	})
}

func (c *checkoutCommandsImpl) SetMethod(ctx context.Context, method string) (*queries.CheckoutView, error) {
	m, err := payment.NewMethod(method)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	return c.update(func(co *payment.Checkout) error {
		co.SetMethod(m)
		return nil
	})
}

func (c *checkoutCommandsImpl) SetReceipt(ctx context.Context, print, email bool) (*queries.CheckoutView, error) {
	return c.update(func(co *payment.Checkout) error {
		co.SetReceipt(print, email)
		return nil
	})
}

func (c *checkoutCommandsImpl) Cancel(ctx context.Context) error {
	c.till.Lock()
	defer c.till.Unlock()

	if c.till.Checkout == nil {
		return errs.ErrNoOpenCheckout
	}
	c.till.Checkout = nil
	return nil
}

func (c *checkoutCommandsImpl) Complete(ctx context.Context) (*queries.CompletionView, error) {
	c.till.Lock()
	defer c.till.Unlock()

	co := c.till.Checkout
	if co == nil {
		return nil, errs.ErrNoOpenCheckout
	}

	now := c.clock.Now()
	done := co.Complete(now)
	if done.Kind == payment.CompletionFull {
		ct, err := c.carts.Load(ctx)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
		}
		ct.Clear(now)
		if err := c.carts.Save(ctx, ct); err != nil {
			return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
		}
	}
	c.till.Checkout = nil

	return queries.NewCompletionView(done), nil
}

func (c *checkoutCommandsImpl) update(fn func(*payment.Checkout) error) (*queries.CheckoutView, error) {
	c.till.Lock()
	defer c.till.Unlock()

	if c.till.Checkout == nil {
		return nil, errs.ErrNoOpenCheckout
	}
	if err := fn(c.till.Checkout); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	return c.view(), nil
}

// caller holds the till lock
func (c *checkoutCommandsImpl) view() *queries.CheckoutView {
	return queries.NewCheckoutView(c.till.Checkout, c.tipPresets)
}
