package cmd

import (
	"github.com/sofadb/sofa-cli/internal/settings"
)

const (
	DB_CACHE_KEY         = "database_names"
	DB_CACHE_TTL_SECONDS = 30 * 60
)

func setDatabasesCache(names []string) {
	settings.SetCache(DB_CACHE_KEY, DB_CACHE_TTL_SECONDS, names)
}

func databasesCache() []string {
	data, err := settings.GetCache[[]string](DB_CACHE_KEY)
	if err != nil {
		return nil
	}
	return data
}

func invalidateDatabasesCache() {
	settings.InvalidateCache[[]string](DB_CACHE_KEY)
}

// settingsNamesCache adapts the persisted settings cache to the client's
// NamesCache, so database listings made by one invocation feed shell
// completion in the next.
type settingsNamesCache struct{}

func (settingsNamesCache) Get() ([]string, bool) {
	names := databasesCache()
	if names == nil {
		return nil, false
	}
	return names, true
}

func (settingsNamesCache) Set(names []string) {
	setDatabasesCache(names)
}

func (settingsNamesCache) Invalidate() {
	invalidateDatabasesCache()
}
