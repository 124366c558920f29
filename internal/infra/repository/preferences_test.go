//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"pos-terminal/internal/domain/settings"
	"pos-terminal/internal/infra"
	"pos-terminal/internal/infra/kvstore"
	"pos-terminal/internal/infra/repository"
	"pos-terminal/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferencesRepository(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore(clock.NewMockClock(time.Now()))
	repo := repository.NewPreferencesRepository(store, discard)

	_, err := repo.Load(ctx)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))

	prefs := settings.Defaults(false).WithDarkMode(true)
	require.NoError(t, repo.Save(ctx, prefs))

	raw, err := store.Get(ctx, settings.StorageKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"isSidebarCollapsed":true,"isDarkMode":true,"isSystemTheme":false}`, raw)

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, prefs, got)
}
