package settings

import (
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func readTestSettings(t *testing.T) *Settings {
	t.Helper()
	viper.Reset()
	viper.Set("config-path", t.TempDir())
	s, err := ReadSettings()
	require.NoError(t, err)
	return s
}

func TestReadSettingsCreatesConfigFile(t *testing.T) {
	viper.Reset()
	dir := t.TempDir()
	viper.Set("config-path", dir)

	_, err := ReadSettings()
	require.NoError(t, err)
	require.FileExists(t, filepath.Join(dir, "settings.json"))
}

func TestSettingsRoundTrip(t *testing.T) {
	s := readTestSettings(t)

	require.NoError(t, s.SetURL("https://couch.example.com:6984"))
	require.NoError(t, s.SetUsername("admin"))
	require.NoError(t, s.SetPassword("secret"))
	require.NoError(t, s.SetCACert("/etc/ssl/couch-ca.pem"))

	require.Equal(t, "https://couch.example.com:6984", s.GetURL())
	require.Equal(t, "admin", s.GetUsername())
	require.Equal(t, "secret", s.GetPassword())
	require.Equal(t, "/etc/ssl/couch-ca.pem", s.GetCACert())
}

func TestSettingsDefaultsToEmpty(t *testing.T) {
	s := readTestSettings(t)

	require.Empty(t, s.GetURL())
	require.Empty(t, s.GetUsername())
	require.Empty(t, s.GetPassword())
	require.Empty(t, s.GetCACert())
}
