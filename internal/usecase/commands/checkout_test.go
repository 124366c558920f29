//go:build unit

package commands_test

import (
	"testing"

	"pos-terminal/internal/pkg/errs"
	"pos-terminal/internal/usecase/commands"
	"pos-terminal/internal/usecase/queries"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CheckoutCommandsTestSuite struct {
	suite.Suite
	*tillFixture
}

func TestCheckoutCommandsSuite(t *testing.T) {
	suite.Run(t, new(CheckoutCommandsTestSuite))
}

func (s *CheckoutCommandsTestSuite) SetupTest() {
	s.tillFixture = newTillFixture()
}

func (s *CheckoutCommandsTestSuite) amount(want string, got decimal.Decimal, field string) {
	s.True(decimal.RequireFromString(want).Equal(got), "%s: want %s, got %s", field, want, got)
}

// headphones: 29.99 + 10% tax = 32.989
func (s *CheckoutCommandsTestSuite) openWithHeadphones() *queries.CheckoutView {
	s.Require().NoError(s.cart.AddItem(s.ctx, commands.AddItemRequest{ProductID: headphonesID, Quantity: 1}))
	v, err := s.checkout.Open(s.ctx)
	s.Require().NoError(err)
	return v
}

func (s *CheckoutCommandsTestSuite) TestOpenOnEmptyCart() {
	_, err := s.checkout.Open(s.ctx)
	s.True(errs.Is(err, errs.ErrEmptyCart))
	s.Nil(s.till.Checkout)
}

func (s *CheckoutCommandsTestSuite) TestOpen() {
	v := s.openWithHeadphones()

	s.amount("32.989", v.Total, "total")
	s.amount("32.99", v.CurrentAmount, "current")
	s.True(v.Remaining.IsZero())
	s.Equal("cash", v.Method)
	s.True(v.PrintReceipt)
	s.Equal([]int{15, 18, 20, 25}, v.TipPresets)

	again, err := s.checkout.Open(s.ctx)
	s.Require().NoError(err)
	s.Equal(v.OpenedAt, again.OpenedAt, "an open checkout is kept")
}

func (s *CheckoutCommandsTestSuite) TestWithoutOpenCheckout() {
	_, err := s.checkout.Current(s.ctx)
	s.True(errs.Is(err, errs.ErrNoOpenCheckout))

	_, err = s.checkout.SelectTip(s.ctx, 15)
	s.True(errs.Is(err, errs.ErrNoOpenCheckout))

	s.True(errs.Is(s.checkout.Cancel(s.ctx), errs.ErrNoOpenCheckout))

	_, err = s.checkout.Complete(s.ctx)
	s.True(errs.Is(err, errs.ErrNoOpenCheckout))
}

func (s *CheckoutCommandsTestSuite) TestTips() {
	s.openWithHeadphones()

	v, err := s.checkout.SelectTip(s.ctx, 20)
	s.Require().NoError(err)
	s.amount("6.60", v.TipAmount, "tip")
	s.Require().NotNil(v.TipPercent)
	s.Equal(20, *v.TipPercent)
	s.amount("39.589", v.TotalWithTip, "total with tip")
	s.amount("39.59", v.CurrentAmount, "current")

	v, err = s.checkout.SetCustomTip(s.ctx, decimal.RequireFromString("5"))
	s.Require().NoError(err)
	s.amount("5", v.TipAmount, "custom tip")
	s.Nil(v.TipPercent)

	_, err = s.checkout.SelectTip(s.ctx, 101)
	s.True(errs.Is(err, errs.ErrDomainValidation))
	_, err = s.checkout.SetCustomTip(s.ctx, decimal.RequireFromString("-1"))
	s.True(errs.Is(err, errs.ErrDomainValidation))
}

func (s *CheckoutCommandsTestSuite) TestCartChangesRebaseCheckout() {
	s.openWithHeadphones()
	_, err := s.checkout.SelectTip(s.ctx, 20)
	s.Require().NoError(err)

	// cola: 1.99 + 8% tax = 2.1492
	s.Require().NoError(s.cart.AddItem(s.ctx, commands.AddItemRequest{ProductID: colaID, Quantity: 1}))

	v, err := s.checkout.Current(s.ctx)
	s.Require().NoError(err)
	s.amount("35.1382", v.Total, "total")
	s.amount("7.03", v.TipAmount, "tip follows the new total")

	s.Require().NoError(s.cart.Clear(s.ctx))
	_, err = s.checkout.Current(s.ctx)
	s.True(errs.Is(err, errs.ErrNoOpenCheckout), "emptying the cart closes the checkout")
}

func (s *CheckoutCommandsTestSuite) TestCashAndChange() {
	s.openWithHeadphones()

	v, err := s.checkout.SetCashReceived(s.ctx, decimal.RequireFromString("50"))
	s.Require().NoError(err)
	s.amount("17.01", v.Change, "change")

	_, err = s.checkout.SetCashReceived(s.ctx, decimal.RequireFromString("-1"))
	s.True(errs.Is(err, errs.ErrDomainValidation))
}

func (s *CheckoutCommandsTestSuite) TestMethodAndReceipt() {
	s.openWithHeadphones()

	v, err := s.checkout.SetMethod(s.ctx, " Card ")
	s.Require().NoError(err)
	s.Equal("card", v.Method)

	_, err = s.checkout.SetMethod(s.ctx, "cheque")
	s.True(errs.Is(err, errs.ErrDomainValidation))

	v, err = s.checkout.SetReceipt(s.ctx, false, true)
	s.Require().NoError(err)
	s.False(v.PrintReceipt)
	s.True(v.EmailReceipt)
}

func (s *CheckoutCommandsTestSuite) TestFullPaymentClearsCart() {
	s.openWithHeadphones()

	done, err := s.checkout.Complete(s.ctx)
	s.Require().NoError(err)
	s.Equal("full", done.Kind)
	s.amount("32.99", done.Amount, "amount")
	s.Equal(s.clock.Now(), done.CompletedAt)

	view, err := s.query.GetCart(s.ctx)
	s.Require().NoError(err)
	s.Empty(view.Lines)
	s.Nil(s.till.Checkout)
}

func (s *CheckoutCommandsTestSuite) TestSplitPaymentKeepsCart() {
	s.openWithHeadphones()

	v, err := s.checkout.ToggleSplit(s.ctx)
	s.Require().NoError(err)
	s.True(v.Split)

	v, err = s.checkout.SetAmount(s.ctx, decimal.RequireFromString("20"))
	s.Require().NoError(err)
	s.amount("12.989", v.Remaining, "remaining")

	v, err = s.checkout.SetAmount(s.ctx, decimal.RequireFromString("100"))
	s.Require().NoError(err)
	s.amount("32.99", v.CurrentAmount, "amount is capped")

	_, err = s.checkout.SetAmount(s.ctx, decimal.RequireFromString("10"))
	s.Require().NoError(err)

	done, err := s.checkout.Complete(s.ctx)
	s.Require().NoError(err)
	s.Equal("partial", done.Kind)
	s.amount("22.989", done.Remaining, "remaining")

	view, err := s.query.GetCart(s.ctx)
	s.Require().NoError(err)
	s.Len(view.Lines, 1, "a partial payment leaves the order in place")
	s.Nil(s.till.Checkout)
}

func (s *CheckoutCommandsTestSuite) TestCancel() {
	s.openWithHeadphones()
	s.Require().NoError(s.checkout.Cancel(s.ctx))
	s.Nil(s.till.Checkout)

	view, err := s.query.GetCart(s.ctx)
	s.Require().NoError(err)
	s.Len(view.Lines, 1)
}
