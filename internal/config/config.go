// Package config loads ecoleta settings from defaults, an optional TOML file
// and ECOLETA_ environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultBaseURL is the public IBGE localidades API.
const DefaultBaseURL = "https://servicodados.ibge.gov.br/api/v1"

// Config holds application configuration.
type Config struct {
	IBGE  IBGEConfig  `mapstructure:"ibge"`
	Log   LogConfig   `mapstructure:"log"`
	Trace TraceConfig `mapstructure:"trace"`
}

// IBGEConfig configures the lookup client.
type IBGEConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// LogConfig configures the zap logger. An empty Path disables logging.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Debug bool   `mapstructure:"debug"`
}

// TraceConfig names the service reported to the OTLP collector.
type TraceConfig struct {
	ServiceName string `mapstructure:"service_name"`
}

// New returns a viper instance with ecoleta defaults and env bindings.
// cfgPath, when non-empty, names the config file to read; otherwise
// ECOLETA_CONFIG or ~/.config/ecoleta/config.toml is tried.
func New(cfgPath string) *viper.Viper {
	v := viper.New()

	v.SetDefault("ibge.base_url", DefaultBaseURL)
	v.SetDefault("ibge.timeout", 10*time.Second)
	v.SetDefault("log.path", "")
	v.SetDefault("log.debug", false)
	v.SetDefault("trace.service_name", "ecoleta")

	v.SetConfigType("toml")
	if cfgPath == "" {
		cfgPath = os.Getenv("ECOLETA_CONFIG")
	}
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "ecoleta"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("ECOLETA")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

// Load reads the config file if present and unmarshals the merged settings.
// A missing default config file is not an error.
func Load(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.IBGE.BaseURL == "" {
		return Config{}, errors.New("ibge.base_url must not be empty")
	}
	if c.IBGE.Timeout <= 0 {
		return Config{}, fmt.Errorf("ibge.timeout must be positive, got %s", c.IBGE.Timeout)
	}
	c.IBGE.BaseURL = strings.TrimRight(c.IBGE.BaseURL, "/")
	return c, nil
}
