package usecase

import (
	"log/slog"
	"sync"
)

// SessionState is what the till UI needs to decide between the login screen and the dashboard.
type SessionState struct {
	IsAuthenticated bool `json:"isAuthenticated"`
	IsLoading       bool `json:"isLoading"`
}

// Session tracks whether the terminal operator is signed in. The gateway reports credential
// changes through Authenticated and LoggedOut; IsLoading stays true until the startup probe
// has settled.
type Session struct {
	mu            sync.RWMutex
	authenticated bool
	loading       bool
	announced     bool // the gateway has reported a credential change
	logger        *slog.Logger
}

func NewSession(logger *slog.Logger) *Session {
	return &Session{loading: true, logger: logger}
}

func (s *Session) Authenticated() {
	s.mu.Lock()
	changed := !s.authenticated
	s.authenticated = true
	s.announced = true
	s.mu.Unlock()
	if changed {
		s.logger.Info("session authenticated")
	}
}

func (s *Session) LoggedOut() {
	s.mu.Lock()
	changed := s.authenticated
	s.authenticated = false
	s.announced = true
	s.mu.Unlock()
	if changed {
		s.logger.Info("session logged out")
	}
}

// FinishLoading records the outcome of the startup probe. A login, refresh or forced logout
// reported while the probe was running is newer than its result and is kept.
func (s *Session) FinishLoading(authenticated bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loading {
		return
	}
	s.loading = false
	if s.announced {
		s.logger.Debug("session changed during startup probe, keeping it", "authenticated", s.authenticated)
		return
	}
	s.authenticated = authenticated
}

func (s *Session) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return SessionState{IsAuthenticated: s.authenticated, IsLoading: s.loading}
}

func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}
