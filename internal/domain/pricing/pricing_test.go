//go:build unit

package pricing_test

import (
	"testing"

	"pos-terminal/internal/domain/pricing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) }),
}

type line struct {
	unit     string
	qty      int
	tax      string
	discount string
}

func (l line) UnitPrice() decimal.Decimal    { return decimal.RequireFromString(l.unit) }
func (l line) Quantity() int                 { return l.qty }
func (l line) TaxRate() decimal.Decimal      { return decimal.RequireFromString(l.tax) }
func (l line) DiscountRate() decimal.Decimal { return decimal.RequireFromString(l.discount) }

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func lines(ls ...line) []pricing.Line {
	out := make([]pricing.Line, len(ls))
	for i, l := range ls {
		out[i] = l
	}
	return out
}

func TestCalculate(t *testing.T) {
	calc := pricing.NewDefaultCalculator()

	t.Run("three line receipt", func(t *testing.T) {
		got := calc.Calculate(lines(
			line{unit: "5.99", qty: 2, tax: "0.05", discount: "0"},
			line{unit: "1.99", qty: 1, tax: "0.08", discount: "0"},
			line{unit: "15.99", qty: 1, tax: "0.08", discount: "0.10"},
		))

		want := pricing.Totals{
			Subtotal: d("29.96"),
			Tax:      d("2.0374"),
			Discount: d("1.599"),
			Total:    d("30.4004"),
		}
		if diff := cmp.Diff(want, got, cmpOpts...); diff != "" {
			t.Errorf("Totals mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, "30.40", pricing.Display(got.Total))
	})

	t.Run("empty cart is all zeros", func(t *testing.T) {
		got := calc.Calculate(nil)
		assert.True(t, got.IsZero())
		assert.True(t, got.Total.IsZero())
	})

	t.Run("zero tax rate falls back to the default", func(t *testing.T) {
		got := calc.Calculate(lines(line{unit: "10", qty: 1, tax: "0", discount: "0"}))
		assert.True(t, d("0.8").Equal(got.Tax), got.Tax.String())
	})

	t.Run("configured default tax rate", func(t *testing.T) {
		got := pricing.NewCalculatorWithTaxRate(d("0.2")).
			Calculate(lines(line{unit: "10", qty: 3, tax: "0", discount: "0"}))
		assert.True(t, d("6").Equal(got.Tax), got.Tax.String())
		assert.True(t, d("36").Equal(got.Total), got.Total.String())
	})

	t.Run("total is subtotal plus tax minus discount", func(t *testing.T) {
		cases := [][]line{
			{{unit: "0.01", qty: 999, tax: "0.19", discount: "0.5"}},
			{{unit: "3.33", qty: 3, tax: "0.07", discount: "0.15"}, {unit: "12.5", qty: 2, tax: "0.08", discount: "0"}},
			{{unit: "99.99", qty: 1, tax: "0.1", discount: "1"}},
		}
		for _, ls := range cases {
			got := calc.Calculate(lines(ls...))
			require.True(t, got.Total.Equal(got.Subtotal.Add(got.Tax).Sub(got.Discount)))
		}
	})
}

func TestRounding(t *testing.T) {
	assert.Equal(t, "2.04", pricing.Display(d("2.0374")))
	assert.Equal(t, "1.60", pricing.Display(d("1.599")))
	assert.Equal(t, "0.00", pricing.Display(decimal.Zero))
	assert.True(t, d("1.6").Equal(pricing.RoundCents(d("1.599"))))
}

func TestTip(t *testing.T) {
	t.Run("percentage of total rounded to cents", func(t *testing.T) {
		tip, err := pricing.PercentTip(d("30.4004"), 18)
		require.NoError(t, err)
		assert.True(t, d("5.47").Equal(tip.Amount()), tip.Amount().String())

		p, ok := tip.Percent()
		assert.True(t, ok)
		assert.Equal(t, 18, p)
	})

	t.Run("percentage bounds", func(t *testing.T) {
		_, err := pricing.PercentTip(d("10"), -1)
		assert.ErrorIs(t, err, pricing.ErrInvalidTipPercent)
		_, err = pricing.PercentTip(d("10"), 101)
		assert.ErrorIs(t, err, pricing.ErrInvalidTipPercent)
		_, err = pricing.PercentTip(d("10"), 100)
		assert.NoError(t, err)
	})

	t.Run("custom tip", func(t *testing.T) {
		tip, err := pricing.CustomTip(d("2.5"))
		require.NoError(t, err)
		_, ok := tip.Percent()
		assert.False(t, ok)

		_, err = pricing.CustomTip(d("-0.01"))
		assert.ErrorIs(t, err, pricing.ErrNegativeTip)
	})

	t.Run("recalculate follows the total for percentage tips only", func(t *testing.T) {
		pct, err := pricing.PercentTip(d("100"), 20)
		require.NoError(t, err)
		assert.True(t, d("10").Equal(pct.Recalculate(d("50")).Amount()))

		custom, err := pricing.CustomTip(d("4"))
		require.NoError(t, err)
		assert.True(t, d("4").Equal(custom.Recalculate(d("50")).Amount()))

		assert.True(t, pricing.NoTip().Recalculate(d("50")).Amount().IsZero())
	})
}
