package repository

import (
	"context"
	"errors"
	"log/slog"

	"pos-terminal/internal/domain/settings"
	"pos-terminal/internal/infra"
	"pos-terminal/internal/infra/kvstore"
)

type PreferencesRepository struct {
	store  kvstore.Store
	logger *slog.Logger
}

func NewPreferencesRepository(store kvstore.Store, logger *slog.Logger) *PreferencesRepository {
	return &PreferencesRepository{store: store, logger: logger}
}

// Load returns the stored preferences. A missing entry is reported as KindNotFound.
func (r *PreferencesRepository) Load(ctx context.Context) (settings.Preferences, error) {
	var p settings.Preferences
	err := kvstore.GetJSON(ctx, r.store, settings.StorageKey, &p)
	if errors.Is(err, kvstore.ErrNotFound) {
		return settings.Preferences{}, infra.WrapRepoErr(r.logger, infra.KindNotFound, "no stored preferences", err)
	}
	if err != nil {
		return settings.Preferences{}, infra.WrapRepoErr(r.logger, infra.KindCorruptRecord, "failed to read preferences", err)
	}
	return p, nil
}

func (r *PreferencesRepository) Save(ctx context.Context, p settings.Preferences) error {
	if err := kvstore.SetJSON(ctx, r.store, settings.StorageKey, p, 0); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindStoreFailure, "failed to save preferences", err)
	}
	return nil
}
