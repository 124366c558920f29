package pricing

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrNegativeTip       = errors.New("tip cannot be negative")
	ErrInvalidTipPercent = errors.New("tip percentage must be between 0 and 100")
)

var DefaultTipPresets = []int{15, 18, 20, 25}

var hundred = decimal.NewFromInt(100)

// Tip is a flat add-on to the order total, chosen either as a percentage of the total or as a
// custom amount.
type Tip struct {
	amount  decimal.Decimal
	percent *int
}

func NoTip() Tip {
	return Tip{amount: decimal.Zero}
}

// PercentTip is percent of total rounded to cents.
func PercentTip(total decimal.Decimal, percent int) (Tip, error) {
	if percent < 0 || percent > 100 {
		return Tip{}, ErrInvalidTipPercent
	}
	amount := RoundCents(total.Mul(decimal.NewFromInt(int64(percent))).Div(hundred))
	return Tip{amount: amount, percent: &percent}, nil
}

func CustomTip(amount decimal.Decimal) (Tip, error) {
	if amount.IsNegative() {
		return Tip{}, ErrNegativeTip
	}
	return Tip{amount: amount}, nil
}

// Recalculate re-derives a percentage tip against a new total. Custom tips keep their amount.
func (t Tip) Recalculate(total decimal.Decimal) Tip {
	if t.percent == nil {
		return t
	}
	next, err := PercentTip(total, *t.percent)
	if err != nil {
		return t
	}
	return next
}

func (t Tip) Amount() decimal.Decimal { return t.amount }

func (t Tip) Percent() (int, bool) {
	if t.percent == nil {
		return 0, false
	}
	return *t.percent, true
}
