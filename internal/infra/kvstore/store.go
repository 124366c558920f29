// Package kvstore persists small string values under expiring keys.
// Credentials, preferences, the active cart and held orders all live here.
package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var ErrNotFound = errors.New("key not found")

// Store is a string key-value store with per-key expiry.
// A ttl <= 0 keeps the value until it is deleted.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

func GetJSON(ctx context.Context, s Store, key string, v any) error {
	raw, err := s.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func SetJSON(ctx context.Context, s Store, key string, v any, ttl time.Duration) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.Set(ctx, key, string(raw), ttl)
}
