package repository

import (
	"context"
	"errors"
	"log/slog"

	"pos-terminal/internal/domain/cart"
	"pos-terminal/internal/infra"
	"pos-terminal/internal/infra/kvstore"
)

const activeCartKey = "cart:active"

// CartRepository persists the terminal's single active cart.
type CartRepository struct {
	store  kvstore.Store
	logger *slog.Logger
}

func NewCartRepository(store kvstore.Store, logger *slog.Logger) *CartRepository {
	return &CartRepository{store: store, logger: logger}
}

// Load returns the active cart, or an empty one when none has been saved.
func (r *CartRepository) Load(ctx context.Context) (*cart.Cart, error) {
	var snap cart.Snapshot
	err := kvstore.GetJSON(ctx, r.store, activeCartKey, &snap)
	if errors.Is(err, kvstore.ErrNotFound) {
		return cart.New(), nil
	}
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindStoreFailure, "failed to load cart", err)
	}
	return cart.Restore(snap), nil
}

func (r *CartRepository) Save(ctx context.Context, c *cart.Cart) error {
	if err := kvstore.SetJSON(ctx, r.store, activeCartKey, c.Snapshot(), 0); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindStoreFailure, "failed to save cart", err)
	}
	return nil
}
