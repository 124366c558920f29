package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/$GOFILE -package=queriesmock

import (
	"context"

	"pos-terminal/internal/domain/cart"
	"pos-terminal/internal/domain/pricing"
)

type CartQueries interface {
	GetCart(ctx context.Context) (*CartView, error)
	ListHeldOrders(ctx context.Context) ([]HeldOrderView, error)
}

type CartReadStore interface {
	Load(ctx context.Context) (*cart.Cart, error)
}

type HeldOrderReadStore interface {
	List(ctx context.Context) ([]cart.HeldOrder, error)
}

type cartQueriesImpl struct {
	carts CartReadStore
	held  HeldOrderReadStore
	calc  pricing.Calculator
}

func NewCartQueries(carts CartReadStore, held HeldOrderReadStore, calc pricing.Calculator) CartQueries {
	return &cartQueriesImpl{carts: carts, held: held, calc: calc}
}

func (q *cartQueriesImpl) GetCart(ctx context.Context) (*CartView, error) {
	c, err := q.carts.Load(ctx)
	if err != nil {
		return nil, err
	}
	return NewCartView(c, q.calc), nil
}

func (q *cartQueriesImpl) ListHeldOrders(ctx context.Context) ([]HeldOrderView, error) {
	orders, err := q.held.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]HeldOrderView, len(orders))
	for i, o := range orders {
		views[i] = NewHeldOrderView(o, q.calc)
	}
	return views, nil
}
