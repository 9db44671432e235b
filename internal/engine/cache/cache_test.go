package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/ghgfocus/internal/engine"
	"github.com/rshade/ghgfocus/internal/gwp"
	"github.com/rshade/ghgfocus/internal/schema"
)

func testRoles(t *testing.T, columns ...string) schema.RoleMap {
	t.Helper()
	return schema.Resolve(columns, schema.DefaultCandidates())
}

func TestBuildKey(t *testing.T) {
	registry := gwp.NewRegistry()
	ar4, err := registry.Lookup("AR4")
	require.NoError(t, err)
	ar6, err := registry.Lookup("AR6")
	require.NoError(t, err)

	roles := testRoles(t, "Year", "CO2", "Usage")

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, BuildKey("fp", roles, ar4), BuildKey("fp", roles, ar4))
	})

	t.Run("sensitive to dataset fingerprint", func(t *testing.T) {
		assert.NotEqual(t, BuildKey("fp1", roles, ar4), BuildKey("fp2", roles, ar4))
	})

	t.Run("sensitive to scenario", func(t *testing.T) {
		assert.NotEqual(t, BuildKey("fp", roles, ar4), BuildKey("fp", roles, ar6))
	})

	t.Run("sensitive to role resolution", func(t *testing.T) {
		other := testRoles(t, "Year", "CO2")
		assert.NotEqual(t, BuildKey("fp", roles, ar4), BuildKey("fp", other, ar4))
	})

	t.Run("sensitive to factor edits under the same name", func(t *testing.T) {
		edited := gwp.Scenario{Name: ar4.Name, Factors: map[gwp.Gas]float64{gwp.GasCO2: 1, gwp.GasCH4: 26}}
		assert.NotEqual(t, BuildKey("fp", roles, ar4), BuildKey("fp", roles, edited))
	})
}

func TestStore(t *testing.T) {
	result := &engine.Result{}

	t.Run("set then get", func(t *testing.T) {
		s := NewStore(true, time.Minute)
		require.NoError(t, s.Set("k", result))

		got, err := s.Get("k")
		require.NoError(t, err)
		assert.Same(t, result, got)
	})

	t.Run("missing key", func(t *testing.T) {
		s := NewStore(true, time.Minute)
		_, err := s.Get("missing")
		assert.ErrorIs(t, err, ErrCacheNotFound)
	})

	t.Run("empty key rejected", func(t *testing.T) {
		s := NewStore(true, time.Minute)
		assert.ErrorIs(t, s.Set("", result), ErrInvalidCacheKey)
		_, err := s.Get("")
		assert.ErrorIs(t, err, ErrInvalidCacheKey)
	})

	t.Run("disabled store rejects everything", func(t *testing.T) {
		s := NewStore(false, time.Minute)
		assert.ErrorIs(t, s.Set("k", result), ErrCacheDisabled)
		_, err := s.Get("k")
		assert.ErrorIs(t, err, ErrCacheDisabled)
		assert.ErrorIs(t, s.Clear(), ErrCacheDisabled)
	})

	t.Run("expired entry is dropped", func(t *testing.T) {
		s := NewStore(true, time.Minute)
		require.NoError(t, s.Set("k", result))

		s.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
		_, err := s.Get("k")
		assert.ErrorIs(t, err, ErrCacheExpired)
		assert.Equal(t, 0, s.Len(), "expired entries are evicted on access")
	})

	t.Run("zero TTL never expires", func(t *testing.T) {
		s := NewStore(true, 0)
		require.NoError(t, s.Set("k", result))

		s.now = func() time.Time { return time.Now().Add(24 * time.Hour) }
		_, err := s.Get("k")
		assert.NoError(t, err)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		s := NewStore(true, time.Minute)
		require.NoError(t, s.Set("k", result))
		require.NoError(t, s.Delete("k"))
		require.NoError(t, s.Delete("k"))
		_, err := s.Get("k")
		assert.ErrorIs(t, err, ErrCacheNotFound)
	})

	t.Run("clear empties the store", func(t *testing.T) {
		s := NewStore(true, time.Minute)
		require.NoError(t, s.Set("a", result))
		require.NoError(t, s.Set("b", result))
		require.NoError(t, s.Clear())
		assert.Equal(t, 0, s.Len())
	})
}
