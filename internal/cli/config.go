package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables that override config.
const EnvPrefix = "BOXCAR"

// ConfigName is the config file looked up in the working directory when
// --config is not given.
const ConfigName = "boxcar"

// Config holds defaults for flags that were not set on the command line.
type Config struct {
	App        string `mapstructure:"app"`
	Recipe     string `mapstructure:"recipe"`
	SkipBundle bool   `mapstructure:"skip_bundle"`
	Journal    string `mapstructure:"journal"`
}

// LoadConfig reads path, or boxcar.yaml in dir when path is empty, and
// applies BOXCAR_* environment overrides. A missing boxcar.yaml is not an
// error; a missing explicit path is.
func LoadConfig(path, dir string) (Config, error) {
	v := viper.New()
	v.SetDefault("app", "")
	v.SetDefault("recipe", "")
	v.SetDefault("skip_bundle", false)
	v.SetDefault("journal", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}
