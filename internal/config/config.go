package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/wheelibin/lifxd/internal/lifx"
)

type Config struct {
	APIURL           string        `mapstructure:"apiUrl"`
	DBPath           string        `mapstructure:"dbPath"`
	ListenAddr       string        `mapstructure:"listenAddr"`
	LogLevel         string        `mapstructure:"logLevel"`
	LogFile          string        `mapstructure:"logFile"`
	RequestTimeout   time.Duration `mapstructure:"requestTimeout"`
	ThrottleInterval time.Duration `mapstructure:"throttleInterval"`
	DaemonURL        string        `mapstructure:"daemonUrl"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("apiUrl", lifx.DefaultBaseURL)
	v.SetDefault("dbPath", "lifxd.db")
	v.SetDefault("listenAddr", ":8090")
	v.SetDefault("logLevel", "info")
	v.SetDefault("logFile", "")
	v.SetDefault("requestTimeout", 30*time.Second)
	v.SetDefault("throttleInterval", 500*time.Millisecond)
	v.SetDefault("daemonUrl", "http://localhost:8090")
}

// InitialiseConfig reads config.(json|yaml) from the usual places, a missing
// file is fine and leaves the defaults (and LIFXD_ env vars) in place
func InitialiseConfig() (*Config, error) {
	v := viper.GetViper()
	v.SetConfigName("config")
	// search paths, first match wins
	v.AddConfigPath("/etc/lifxd/")
	v.AddConfigPath("$HOME/.config/lifxd/")
	v.AddConfigPath(".")
	return load(v)
}

// ReadConfigFile loads config from an explicit file
func ReadConfigFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	v.SetEnvPrefix("lifxd")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("fatal error config file: %w", err)
		}
	}

	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error reading config: %w", err)
	}

	return &cfg, nil
}
