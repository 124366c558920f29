//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// DtoMap turns a request DTO into its JSON object form and applies muts, so tests can send
// payloads the DTO type itself cannot express.
func DtoMap(t *testing.T, v any, muts ...func(map[string]any)) map[string]any {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	for _, f := range muts {
		f(m)
	}
	return m
}

// Field sets key to value, or removes key when value is nil.
func Field(key string, value any) func(map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}
