//go:build unit

package cart_test

import (
	"strings"
	"testing"
	"time"

	"pos-terminal/internal/domain/cart"
	"pos-terminal/internal/domain/catalog"
	"pos-terminal/internal/domain/pricing"
	"pos-terminal/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

func item(t *testing.T, offer catalog.Offer, qty int) *cart.LineItem {
	t.Helper()
	l, err := cart.NewLineItem(offer, qty, "")
	require.NoError(t, err)
	return l
}

func burgerOffer(t *testing.T, choices map[string][]string) catalog.Offer {
	t.Helper()
	offer, err := builder.NewProductBuilder().
		With(func(b *builder.ProductBuilder) { b.ID = "p-burger"; b.Name = "Burger"; b.Price = "8.99" }).
		WithBurgerGroups().
		Build().
		Offer("", choices)
	require.NoError(t, err)
	return offer
}

func TestAdd(t *testing.T) {
	t.Run("identical lines merge", func(t *testing.T) {
		c := cart.New()
		offer := builder.NewProductBuilder().Offer()

		c.Add(item(t, offer, 2), now)
		c.Add(item(t, offer, 3), now)

		require.Equal(t, 1, c.Len())
		assert.Equal(t, 5, c.Lines()[0].Quantity())
		assert.Equal(t, 5, c.ItemCount())
		assert.Equal(t, now, c.UpdatedAt())
	})

	t.Run("merged quantity is clamped to stock", func(t *testing.T) {
		c := cart.New()
		offer := builder.NewProductBuilder().With(func(b *builder.ProductBuilder) { b.Stock = 4 }).Offer()

		c.Add(item(t, offer, 3), now)
		c.Add(item(t, offer, 3), now)

		assert.Equal(t, 4, c.Lines()[0].Quantity())
	})

	t.Run("different customizations stay separate", func(t *testing.T) {
		c := cart.New()
		c.Add(item(t, burgerOffer(t, map[string][]string{"toppings": {"cheese"}}), 1), now)
		c.Add(item(t, burgerOffer(t, map[string][]string{"toppings": {"bacon"}}), 1), now)
		c.Add(item(t, burgerOffer(t, map[string][]string{"toppings": {"cheese"}}), 1), now)

		require.Equal(t, 2, c.Len())
		assert.Equal(t, 2, c.Lines()[0].Quantity())
		assert.Equal(t, 1, c.Lines()[1].Quantity())
	})

	t.Run("variant is part of the display name", func(t *testing.T) {
		p := builder.NewProductBuilder().WithVariant("v-large", "Large", "4.25").Build()
		offer, err := p.Offer("v-large", nil)
		require.NoError(t, err)

		assert.Equal(t, "Coffee (Large)", item(t, offer, 1).DisplayName())
		assert.Equal(t, "Coffee", item(t, builder.NewProductBuilder().Offer(), 1).DisplayName())
	})
}

func TestNewLineItem(t *testing.T) {
	offer := builder.NewProductBuilder().With(func(b *builder.ProductBuilder) { b.Stock = 10 }).Offer()

	l, err := cart.NewLineItem(offer, 0, "")
	require.NoError(t, err)
	assert.Equal(t, 1, l.Quantity())

	l, err = cart.NewLineItem(offer, 50, "")
	require.NoError(t, err)
	assert.Equal(t, 10, l.Quantity())

	_, err = cart.NewLineItem(offer, 1, strings.Repeat("a", cart.MaxNoteLength))
	assert.NoError(t, err)
	_, err = cart.NewLineItem(offer, 1, strings.Repeat("a", cart.MaxNoteLength+1))
	assert.ErrorIs(t, err, cart.ErrNoteTooLong)
}

func TestUpdateQuantity(t *testing.T) {
	newCart := func() *cart.Cart {
		c := cart.New()
		c.Add(item(t, builder.NewProductBuilder().With(func(b *builder.ProductBuilder) { b.Stock = 5 }).Offer(), 1), now)
		return c
	}

	t.Run("above the ceiling clamps", func(t *testing.T) {
		c := newCart()
		require.NoError(t, c.UpdateQuantity(0, 12, now))
		assert.Equal(t, 5, c.Lines()[0].Quantity())
	})

	t.Run("zero removes the line", func(t *testing.T) {
		c := newCart()
		require.NoError(t, c.UpdateQuantity(0, 0, now))
		assert.True(t, c.IsEmpty())
	})

	t.Run("out of range index", func(t *testing.T) {
		c := newCart()
		assert.ErrorIs(t, c.UpdateQuantity(1, 2, now), cart.ErrLineNotFound)
		assert.ErrorIs(t, c.UpdateQuantity(-1, 2, now), cart.ErrLineNotFound)
		assert.ErrorIs(t, c.Remove(3, now), cart.ErrLineNotFound)
	})
}

func TestClear(t *testing.T) {
	c := cart.New()
	c.Add(item(t, builder.NewProductBuilder().Offer(), 1), now)
	c.SetCustomer("Walk-in", now)
	c.SetTable("T4", now)

	c.Clear(now)

	assert.True(t, c.IsEmpty())
	assert.Empty(t, c.Customer())
	assert.Empty(t, c.Table())
}

func TestTotals(t *testing.T) {
	c := cart.New()
	c.Add(item(t, builder.NewProductBuilder().Offer(), 2), now)

	totals := c.Totals(pricing.NewDefaultCalculator())
	assert.True(t, decimal.RequireFromString("7").Equal(totals.Subtotal))
	assert.True(t, decimal.RequireFromString("0.56").Equal(totals.Tax))
	assert.True(t, decimal.RequireFromString("7.56").Equal(totals.Total))
}

func TestHoldAndRestore(t *testing.T) {
	c := cart.New()
	c.Add(item(t, burgerOffer(t, map[string][]string{"size": {"large"}, "toppings": {"bacon"}}), 2), now)
	c.SetTable("T4", now)
	before := c.Snapshot()

	held, err := c.Hold(now.Add(time.Minute))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, held.ID)
	assert.True(t, c.IsEmpty())
	assert.Empty(t, c.Table())

	restored := cart.Restore(held.Cart)
	if diff := cmp.Diff(before, restored.Snapshot(), cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })); diff != "" {
		t.Errorf("restored cart mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, restored.Lines()[0].Key(), largeBaconKey(t))

	_, err = cart.New().Hold(now)
	assert.ErrorIs(t, err, cart.ErrEmptyHold)
}

func largeBaconKey(t *testing.T) string {
	t.Helper()
	return item(t, burgerOffer(t, map[string][]string{"toppings": {"bacon"}, "size": {"large"}}), 1).Key()
}
