package authstub

import (
	"errors"
	"sync"

	"pos-terminal/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrEmailTaken   = errors.New("user with this email already exists")
	ErrUserNotFound = errors.New("user not found")
)

// userStore keeps accounts in memory, keyed by id and by normalized email. Lookups return
// copies; changes go through update.
type userStore struct {
	mu          sync.RWMutex
	byID        map[uuid.UUID]*user.User
	byEmail     map[string]uuid.UUID
	resetTokens map[uuid.UUID]string
	revoked     map[string]struct{}
}

func newUserStore() *userStore {
	return &userStore{
		byID:        make(map[uuid.UUID]*user.User),
		byEmail:     make(map[string]uuid.UUID),
		resetTokens: make(map[uuid.UUID]string),
		revoked:     make(map[string]struct{}),
	}
}

func (s *userStore) add(u *user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := u.Email().Normalized()
	if _, ok := s.byEmail[key]; ok {
		return ErrEmailTaken
	}
	s.byID[u.ID()] = u
	s.byEmail[key] = u.ID()
	return nil
}

func (s *userStore) findByEmail(email user.Email) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[email.Normalized()]
	if !ok {
		return nil, ErrUserNotFound
	}
	cp := *s.byID[id]
	return &cp, nil
}

func (s *userStore) findByID(id uuid.UUID) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

// update runs fn on the stored user under the write lock.
func (s *userStore) update(id uuid.UUID, fn func(*user.User) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byID[id]
	if !ok {
		return ErrUserNotFound
	}
	return fn(u)
}

func (s *userStore) setResetToken(id uuid.UUID, token string) {
	s.mu.Lock()
	s.resetTokens[id] = token
	s.mu.Unlock()
}

// consumeResetToken reports whether token was issued for id, and forgets it if so.
func (s *userStore) consumeResetToken(id uuid.UUID, token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.resetTokens[id]; !ok || t != token {
		return false
	}
	delete(s.resetTokens, id)
	return true
}

func (s *userStore) revoke(jti string) {
	s.mu.Lock()
	s.revoked[jti] = struct{}{}
	s.mu.Unlock()
}

func (s *userStore) isRevoked(jti string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.revoked[jti]
	return ok
}
