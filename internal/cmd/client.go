package cmd

import (
	"fmt"
	"os"

	"github.com/sofadb/sofa-cli/internal"
	"github.com/sofadb/sofa-cli/internal/couch"
	"github.com/sofadb/sofa-cli/internal/settings"
)

const (
	ENV_URL      = "SOFA_URL"
	ENV_USERNAME = "SOFA_USERNAME"
	ENV_PASSWORD = "SOFA_PASSWORD"
	ENV_CA_CERT  = "SOFA_CA_CERT"
)

// envOr prefers the environment variable over the persisted setting.
func envOr(env, setting string) string {
	if v := os.Getenv(env); v != "" {
		return v
	}
	return setting
}

// couchClient builds a client from environment variables and persisted
// settings, wired to the settings-backed names cache so listings survive
// across invocations.
func couchClient() (*couch.Client, error) {
	config, err := settings.ReadSettings()
	if err != nil {
		return nil, fmt.Errorf("could not read local settings: %w", err)
	}

	url := envOr(ENV_URL, config.GetURL())
	if url == "" {
		return nil, fmt.Errorf("no server configured, set one with %s or the %s environment variable", internal.Emph("sofa config set url <url>"), internal.Emph(ENV_URL))
	}

	client, err := couch.New(
		url,
		envOr(ENV_USERNAME, config.GetUsername()),
		envOr(ENV_PASSWORD, config.GetPassword()),
		envOr(ENV_CA_CERT, config.GetCACert()),
	)
	if err != nil {
		return nil, err
	}
	client.SetNamesCache(settingsNamesCache{})
	return client, nil
}
