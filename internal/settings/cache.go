package settings

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Entry is a persisted cache value with an optional expiration. A zero
// Expiration never expires.
type Entry[T any] struct {
	Expiration int64 `json:"expiration"`
	Data       T     `json:"data"`
}

var ErrExpired = errors.New("cache entry expired")

func cacheKey(key string) string {
	return "cache." + key
}

func SetCache[T any](key string, ttlSeconds int64, value T) {
	entry := Entry[T]{Data: value}
	if ttlSeconds > 0 {
		entry.Expiration = time.Now().Unix() + ttlSeconds
	}
	viper.Set(cacheKey(key), entry)
	if err := viper.WriteConfig(); err != nil {
		fmt.Fprintln(os.Stderr, "Error saving settings: ", err)
	}
}

func GetCache[T any](key string) (T, error) {
	entry := Entry[T]{}
	value := viper.Get(cacheKey(key))
	if err := mapstructure.Decode(value, &entry); err != nil {
		return entry.Data, fmt.Errorf("failed to get cache data for %s", key)
	}

	if entry.Expiration != 0 && entry.Expiration < time.Now().Unix() {
		return entry.Data, ErrExpired
	}

	return entry.Data, nil
}

func InvalidateCache[T any](key string) {
	viper.Set(cacheKey(key), Entry[T]{Expiration: 1})
	if err := viper.WriteConfig(); err != nil {
		fmt.Fprintln(os.Stderr, "Error saving settings: ", err)
	}
}
