//go:build unit

package payment_test

import (
	"testing"
	"time"

	"pos-terminal/internal/domain/payment"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertAmount(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, d(want).Equal(got), "want %s, got %s", want, got)
}

func open(t *testing.T, total string) *payment.Checkout {
	t.Helper()
	co, err := payment.Open(d(total), now)
	require.NoError(t, err)
	return co
}

func TestOpen(t *testing.T) {
	co := open(t, "30.4004")

	assertAmount(t, "30.40", co.CurrentAmount())
	assertAmount(t, "0", co.Tip().Amount())
	assert.Equal(t, payment.MethodCash, co.Method())
	assert.True(t, co.PrintReceipt())
	assert.False(t, co.IsSplit())

	_, err := payment.Open(decimal.Zero, now)
	assert.ErrorIs(t, err, payment.ErrNothingToPay)
}

func TestTip(t *testing.T) {
	co := open(t, "50")

	require.NoError(t, co.SelectTipPercent(20))
	assertAmount(t, "10", co.Tip().Amount())
	assertAmount(t, "60", co.TotalWithTip())
	assertAmount(t, "60", co.CurrentAmount())

	require.NoError(t, co.SetCustomTip(d("2.5")))
	assertAmount(t, "52.5", co.CurrentAmount())

	assert.Error(t, co.SelectTipPercent(120))
	assert.Error(t, co.SetCustomTip(d("-1")))
}

func TestSplit(t *testing.T) {
	t.Run("amount is capped at total plus tip", func(t *testing.T) {
		co := open(t, "40")
		co.ToggleSplit()
		require.True(t, co.IsSplit())

		require.NoError(t, co.SetCurrentAmount(d("15")))
		assertAmount(t, "15", co.CurrentAmount())
		assertAmount(t, "25", co.Remaining())

		require.NoError(t, co.SetCurrentAmount(d("100")))
		assertAmount(t, "40", co.CurrentAmount())
		assertAmount(t, "0", co.Remaining())

		assert.ErrorIs(t, co.SetCurrentAmount(d("-1")), payment.ErrNegativeAmount)
	})

	t.Run("entering split mode resets the amount", func(t *testing.T) {
		co := open(t, "40")
		co.ToggleSplit()
		require.NoError(t, co.SetCurrentAmount(d("10")))
		co.ToggleSplit()
		co.ToggleSplit()
		assertAmount(t, "40", co.CurrentAmount())
	})

	t.Run("partial completion", func(t *testing.T) {
		co := open(t, "40")
		co.ToggleSplit()
		require.NoError(t, co.SetCurrentAmount(d("15")))

		done := co.Complete(now)
		assert.Equal(t, payment.CompletionPartial, done.Kind)
		assertAmount(t, "25", done.Remaining)
		assertAmount(t, "15", done.Amount)
	})
}

func TestChange(t *testing.T) {
	co := open(t, "18.75")
	assertAmount(t, "0", co.Change())

	require.NoError(t, co.SetCashReceived(d("20")))
	assertAmount(t, "1.25", co.Change())

	require.NoError(t, co.SetCashReceived(d("10")))
	assertAmount(t, "0", co.Change())

	assert.ErrorIs(t, co.SetCashReceived(d("-5")), payment.ErrNegativeAmount)
}

func TestRebase(t *testing.T) {
	t.Run("percentage tip follows the new total", func(t *testing.T) {
		co := open(t, "100")
		require.NoError(t, co.SelectTipPercent(10))

		require.NoError(t, co.Rebase(d("50")))
		assertAmount(t, "5", co.Tip().Amount())
		assertAmount(t, "55", co.CurrentAmount())
	})

	t.Run("split amount is kept when still within the limit", func(t *testing.T) {
		co := open(t, "100")
		co.ToggleSplit()
		require.NoError(t, co.SetCurrentAmount(d("30")))

		require.NoError(t, co.Rebase(d("80")))
		assertAmount(t, "30", co.CurrentAmount())

		require.NoError(t, co.Rebase(d("20")))
		assertAmount(t, "20", co.CurrentAmount())
	})

	t.Run("nothing left to pay", func(t *testing.T) {
		co := open(t, "100")
		assert.ErrorIs(t, co.Rebase(decimal.Zero), payment.ErrNothingToPay)
	})
}

func TestComplete(t *testing.T) {
	co := open(t, "25")
	co.SetMethod(payment.MethodCard)
	co.SetReceipt(false, true)

	done := co.Complete(now)
	assert.Equal(t, payment.CompletionFull, done.Kind)
	assert.Equal(t, payment.MethodCard, done.Method)
	assert.False(t, done.PrintReceipt)
	assert.True(t, done.EmailReceipt)
	assertAmount(t, "25", done.Amount)
	assert.Equal(t, now, done.CompletedAt)
}

func TestNewMethod(t *testing.T) {
	for _, s := range []string{"cash", "Card", " mobile ", "QR"} {
		_, err := payment.NewMethod(s)
		assert.NoError(t, err, s)
	}
	_, err := payment.NewMethod("cheque")
	assert.ErrorIs(t, err, payment.ErrInvalidMethod)
}
