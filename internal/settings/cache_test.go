package settings

import (
	"errors"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestCacheRoundTrip(t *testing.T) {
	readTestSettings(t)

	SetCache("test_names", 60, []string{"inventory", "orders"})
	names, err := GetCache[[]string]("test_names")
	require.NoError(t, err)
	require.Equal(t, []string{"inventory", "orders"}, names)
}

func TestCacheExpiry(t *testing.T) {
	readTestSettings(t)

	viper.Set(cacheKey("stale"), Entry[[]string]{
		Expiration: time.Now().Add(-time.Minute).Unix(),
		Data:       []string{"old"},
	})

	_, err := GetCache[[]string]("stale")
	require.True(t, errors.Is(err, ErrExpired))
}

func TestCacheWithoutTTLNeverExpires(t *testing.T) {
	readTestSettings(t)

	SetCache("pinned", 0, "value")
	value, err := GetCache[string]("pinned")
	require.NoError(t, err)
	require.Equal(t, "value", value)
}

func TestInvalidateCache(t *testing.T) {
	readTestSettings(t)

	SetCache("doomed", 60, []string{"inventory"})
	InvalidateCache[[]string]("doomed")

	_, err := GetCache[[]string]("doomed")
	require.True(t, errors.Is(err, ErrExpired))
}
