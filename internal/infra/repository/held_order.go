package repository

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"time"

	"pos-terminal/internal/domain/cart"
	"pos-terminal/internal/infra"
	"pos-terminal/internal/infra/kvstore"

	"github.com/google/uuid"
)

const heldIndexKey = "cart:held:index"

func heldOrderKey(id uuid.UUID) string {
	return "cart:held:" + id.String()
}

// HeldOrderRepository keeps parked carts. Each order expires after ttl; an index key lists
// the ids so they can be enumerated on stores without key scans.
type HeldOrderRepository struct {
	store  kvstore.Store
	ttl    time.Duration
	logger *slog.Logger
}

func NewHeldOrderRepository(store kvstore.Store, ttl time.Duration, logger *slog.Logger) *HeldOrderRepository {
	return &HeldOrderRepository{store: store, ttl: ttl, logger: logger}
}

func (r *HeldOrderRepository) Save(ctx context.Context, order cart.HeldOrder) error {
	if err := kvstore.SetJSON(ctx, r.store, heldOrderKey(order.ID), order, r.ttl); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindStoreFailure, "failed to save held order", err)
	}

	ids, err := r.index(ctx)
	if err != nil {
		return err
	}
	if !slices.Contains(ids, order.ID) {
		ids = append(ids, order.ID)
	}
	return r.writeIndex(ctx, ids)
}

func (r *HeldOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*cart.HeldOrder, error) {
	var order cart.HeldOrder
	err := kvstore.GetJSON(ctx, r.store, heldOrderKey(id), &order)
	if errors.Is(err, kvstore.ErrNotFound) {
		return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "held order not found", err)
	}
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindCorruptRecord, "failed to read held order", err)
	}
	return &order, nil
}

// List returns the orders still held, oldest first. Expired ids are pruned from the index.
func (r *HeldOrderRepository) List(ctx context.Context) ([]cart.HeldOrder, error) {
	ids, err := r.index(ctx)
	if err != nil {
		return nil, err
	}

	orders := make([]cart.HeldOrder, 0, len(ids))
	live := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		var order cart.HeldOrder
		err := kvstore.GetJSON(ctx, r.store, heldOrderKey(id), &order)
		if errors.Is(err, kvstore.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindCorruptRecord, "failed to read held order", err)
		}
		orders = append(orders, order)
		live = append(live, id)
	}

	if len(live) != len(ids) {
		if err := r.writeIndex(ctx, live); err != nil {
			return nil, err
		}
	}
	slices.SortStableFunc(orders, func(a, b cart.HeldOrder) int {
		return a.HeldAt.Compare(b.HeldAt)
	})
	return orders, nil
}

func (r *HeldOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.store.Delete(ctx, heldOrderKey(id)); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindStoreFailure, "failed to delete held order", err)
	}
	ids, err := r.index(ctx)
	if err != nil {
		return err
	}
	return r.writeIndex(ctx, slices.DeleteFunc(ids, func(x uuid.UUID) bool { return x == id }))
}

func (r *HeldOrderRepository) index(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := kvstore.GetJSON(ctx, r.store, heldIndexKey, &ids)
	if errors.Is(err, kvstore.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindStoreFailure, "failed to read held order index", err)
	}
	return ids, nil
}

func (r *HeldOrderRepository) writeIndex(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		if err := r.store.Delete(ctx, heldIndexKey); err != nil {
			return infra.WrapRepoErr(r.logger, infra.KindStoreFailure, "failed to clear held order index", err)
		}
		return nil
	}
	if err := kvstore.SetJSON(ctx, r.store, heldIndexKey, ids, 0); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindStoreFailure, "failed to write held order index", err)
	}
	return nil
}
