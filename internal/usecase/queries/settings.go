package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/$GOFILE -package=queriesmock

import (
	"context"

	"pos-terminal/internal/domain/settings"
	"pos-terminal/internal/infra"
)

type SettingsQueries interface {
	// GetPreferences returns the stored preferences, or the defaults for the given system
	// theme when nothing usable has been saved.
	GetPreferences(ctx context.Context, systemDark bool) (settings.Preferences, error)
}

type PreferencesReadStore interface {
	Load(ctx context.Context) (settings.Preferences, error)
}

type settingsQueriesImpl struct {
	readStore PreferencesReadStore
}

func NewSettingsQueries(readStore PreferencesReadStore) SettingsQueries {
	return &settingsQueriesImpl{readStore: readStore}
}

func (q *settingsQueriesImpl) GetPreferences(ctx context.Context, systemDark bool) (settings.Preferences, error) {
	p, err := q.readStore.Load(ctx)
	if infra.IsKind(err, infra.KindNotFound) || infra.IsKind(err, infra.KindCorruptRecord) {
		return settings.Defaults(systemDark), nil
	}
	if err != nil {
		return settings.Preferences{}, err
	}
	return p, nil
}
