//go:build unit

package usecase_test

import (
	"log/slog"
	"testing"

	"pos-terminal/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestSession(t *testing.T) {
	t.Run("loading until the probe settles", func(t *testing.T) {
		s := usecase.NewSession(slog.New(slog.DiscardHandler))
		assert.Equal(t, usecase.SessionState{IsLoading: true}, s.State())

		s.FinishLoading(true)
		assert.Equal(t, usecase.SessionState{IsAuthenticated: true}, s.State())
	})

	t.Run("gateway notifications flip the flag", func(t *testing.T) {
		s := usecase.NewSession(slog.New(slog.DiscardHandler))
		s.FinishLoading(false)

		s.Authenticated()
		assert.True(t, s.IsAuthenticated())

		s.LoggedOut()
		assert.False(t, s.IsAuthenticated())
		assert.False(t, s.State().IsLoading)
	})

	t.Run("announcement during the probe outlives its result", func(t *testing.T) {
		s := usecase.NewSession(slog.New(slog.DiscardHandler))
		s.Authenticated()

		s.FinishLoading(false)
		assert.Equal(t, usecase.SessionState{IsAuthenticated: true}, s.State())
	})

	t.Run("forced logout during the probe outlives its result", func(t *testing.T) {
		s := usecase.NewSession(slog.New(slog.DiscardHandler))
		s.Authenticated()
		s.LoggedOut()

		s.FinishLoading(true)
		assert.Equal(t, usecase.SessionState{}, s.State())
	})

	t.Run("only the first probe result counts", func(t *testing.T) {
		s := usecase.NewSession(slog.New(slog.DiscardHandler))
		s.FinishLoading(true)
		s.FinishLoading(false)
		assert.True(t, s.IsAuthenticated())
	})
}
