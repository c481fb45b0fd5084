package settings

import (
	"github.com/kirsle/configdir"
	"github.com/spf13/viper"
)

// Settings is the persisted CLI configuration, stored as JSON in the user's
// config directory. All access goes through viper's global instance.
type Settings struct{}

func ReadSettings() (*Settings, error) {
	configPath := configdir.LocalConfig("sofa")
	if flagPath := viper.GetString("config-path"); flagPath != "" {
		configPath = flagPath
	}
	if err := configdir.MakePath(configPath); err != nil {
		return nil, err
	}

	viper.SetConfigName("settings")
	viper.SetConfigType("json")
	viper.AddConfigPath(configPath)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Force config creation
			if err := viper.SafeWriteConfig(); err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}
	return &Settings{}, nil
}

func (s *Settings) SetURL(url string) error {
	viper.Set("url", url)
	return viper.WriteConfig()
}

func (s *Settings) GetURL() string {
	return viper.GetString("url")
}

func (s *Settings) SetUsername(username string) error {
	viper.Set("username", username)
	return viper.WriteConfig()
}

func (s *Settings) GetUsername() string {
	return viper.GetString("username")
}

func (s *Settings) SetPassword(password string) error {
	viper.Set("password", password)
	return viper.WriteConfig()
}

func (s *Settings) GetPassword() string {
	return viper.GetString("password")
}

func (s *Settings) SetCACert(path string) error {
	viper.Set("ca_cert", path)
	return viper.WriteConfig()
}

func (s *Settings) GetCACert() string {
	return viper.GetString("ca_cert")
}
