package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commandsmock

import (
	"context"

	"pos-terminal/internal/domain/settings"
	reqdto "pos-terminal/internal/handler/dto/request"
	"pos-terminal/internal/infra"
	"pos-terminal/internal/pkg/errs"
	"pos-terminal/internal/pkg/patch"
)

type SettingsCommands interface {
	SetSidebarCollapsed(ctx context.Context, collapsed, systemDark bool) (settings.Preferences, error)
	SetDarkMode(ctx context.Context, dark, systemDark bool) (settings.Preferences, error)
	ResetToSystemTheme(ctx context.Context, systemDark bool) (settings.Preferences, error)
	// Update applies every flag present in req in one write.
	Update(ctx context.Context, req reqdto.PreferencesRequest) (settings.Preferences, error)
}

type settingsCommandsImpl struct {
	store PreferencesStore
}

func NewSettingsCommands(store PreferencesStore) SettingsCommands {
	return &settingsCommandsImpl{store: store}
}

func (s *settingsCommandsImpl) SetSidebarCollapsed(ctx context.Context, collapsed, systemDark bool) (settings.Preferences, error) {
	return s.apply(ctx, systemDark, func(p settings.Preferences) settings.Preferences {
		return p.WithSidebarCollapsed(collapsed)
	})
}

func (s *settingsCommandsImpl) SetDarkMode(ctx context.Context, dark, systemDark bool) (settings.Preferences, error) {
	return s.apply(ctx, systemDark, func(p settings.Preferences) settings.Preferences {
		return p.WithDarkMode(dark)
	})
}

func (s *settingsCommandsImpl) ResetToSystemTheme(ctx context.Context, systemDark bool) (settings.Preferences, error) {
	return s.apply(ctx, systemDark, func(p settings.Preferences) settings.Preferences {
		return p.WithSystemTheme(systemDark)
	})
}

func (s *settingsCommandsImpl) Update(ctx context.Context, req reqdto.PreferencesRequest) (settings.Preferences, error) {
	return s.apply(ctx, req.SystemDark, func(p settings.Preferences) settings.Preferences {
		p = p.WithSidebarCollapsed(patch.Coalesce(req.SidebarCollapsed, p.SidebarCollapsed))
		if req.DarkMode != nil {
			p = p.WithDarkMode(*req.DarkMode)
		}
		if patch.Coalesce(req.SystemTheme, false) {
			p = p.WithSystemTheme(req.SystemDark)
		}
		return p
	})
}

func (s *settingsCommandsImpl) apply(ctx context.Context, systemDark bool, fn func(settings.Preferences) settings.Preferences) (settings.Preferences, error) {
	current, err := s.store.Load(ctx)
	switch {
	case infra.IsKind(err, infra.KindNotFound), infra.IsKind(err, infra.KindCorruptRecord):
		current = settings.Defaults(systemDark)
	case err != nil:
		return settings.Preferences{}, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	next := fn(current)
	if err := s.store.Save(ctx, next); err != nil {
		return settings.Preferences{}, errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	return next, nil
}
