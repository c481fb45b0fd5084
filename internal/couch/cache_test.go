package couch

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryNamesCache(t *testing.T) {
	cache := NewMemoryNamesCache()

	_, valid := cache.Get()
	require.False(t, valid)

	cache.Set([]string{"inventory", "orders"})
	names, valid := cache.Get()
	require.True(t, valid)
	require.Equal(t, []string{"inventory", "orders"}, names)

	// An empty listing is still a valid cached value.
	cache.Set(nil)
	names, valid = cache.Get()
	require.True(t, valid)
	require.Empty(t, names)

	cache.Invalidate()
	_, valid = cache.Get()
	require.False(t, valid)
}

func TestInjectedNamesCacheIsUsed(t *testing.T) {
	client, err := New("http://localhost:5984", "", "", "")
	require.NoError(t, err)

	cache := NewMemoryNamesCache()
	cache.Set([]string{"warm"})
	client.SetNamesCache(cache)

	// The warm cache answers without any server behind the URL.
	names, err := client.ListDatabases()
	require.NoError(t, err)
	require.Equal(t, []string{"warm"}, names)
}
