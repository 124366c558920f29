package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"pos-terminal/internal/domain/auth"
	"pos-terminal/internal/infra/kvstore"
	"pos-terminal/internal/pkg/errs"
)

// TTLs are the lifetimes of the three persisted session values.
type TTLs struct {
	Access  time.Duration
	Refresh time.Duration
	UserID  time.Duration
}

func DefaultTTLs() TTLs {
	return TTLs{
		Access:  72 * time.Hour,
		Refresh: 7 * 24 * time.Hour,
		UserID:  7 * 24 * time.Hour,
	}
}

type credentials struct {
	store kvstore.Store
	ttl   TTLs
}

func (c credentials) get(ctx context.Context, key string) (string, error) {
	v, err := c.store.Get(ctx, key)
	if errors.Is(err, kvstore.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", errs.Wrapf(err, "read %s", key)
	}
	return v, nil
}

func (c credentials) accessToken(ctx context.Context) (string, error) {
	return c.get(ctx, auth.KeyAccessToken)
}

func (c credentials) refreshToken(ctx context.Context) (string, error) {
	return c.get(ctx, auth.KeyRefreshToken)
}

// save persists only the non-empty fields of t.
func (c credentials) save(ctx context.Context, t auth.TokenSet) error {
	writes := []struct {
		key   string
		value string
		ttl   time.Duration
	}{
		{auth.KeyAccessToken, t.Access, c.ttl.Access},
		{auth.KeyRefreshToken, t.Refresh, c.ttl.Refresh},
		{auth.KeyUserID, t.UserID, c.ttl.UserID},
	}
	for _, w := range writes {
		if w.value == "" {
			continue
		}
		if err := c.store.Set(ctx, w.key, w.value, w.ttl); err != nil {
			return errs.Wrapf(err, "persist %s", w.key)
		}
	}
	return nil
}

func (c credentials) clear(ctx context.Context) error {
	if err := c.store.Delete(ctx, auth.CredentialKeys...); err != nil {
		return errs.Wrap(err, "delete credentials")
	}
	return nil
}

// tokenPayload is the body of /jwt/create/ and /jwt/refresh/.
type tokenPayload struct {
	Access  string     `json:"access"`
	Refresh string     `json:"refresh"`
	ID      flexibleID `json:"id"`
}

func (p tokenPayload) tokenSet() auth.TokenSet {
	return auth.TokenSet{Access: p.Access, Refresh: p.Refresh, UserID: string(p.ID)}
}

// flexibleID accepts the user id as either a JSON string or number.
type flexibleID string

func (f *flexibleID) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = flexibleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexibleID(n.String())
	return nil
}
