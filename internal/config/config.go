// Package config loads clubledger settings from YAML and the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Address string `mapstructure:"address"`
	Port    int    `mapstructure:"port"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type FinanceConfig struct {
	DiningCap      string `mapstructure:"dining_cap"`
	BailoutHandler string `mapstructure:"bailout_handler"`
}

// AuthConfig enables operator login when JWTSecret is set.
// Operators maps an operator name to a bcrypt hash.
type AuthConfig struct {
	JWTSecret  string            `mapstructure:"jwt_secret"`
	TokenHours int               `mapstructure:"token_hours"`
	Operators  map[string]string `mapstructure:"operators"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	Finance  FinanceConfig  `mapstructure:"finance"`
	Auth     AuthConfig     `mapstructure:"auth"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", "")
	v.SetDefault("server.port", 8080)
	v.SetDefault("database.path", "./data/clubledger.db")
	// Empty defers to LOG_LEVEL in logging.ParseLevel.
	v.SetDefault("log.level", "")
	v.SetDefault("log.format", "text")
	v.SetDefault("finance.dining_cap", "100")
	v.SetDefault("finance.bailout_handler", "treasurer")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_hours", 24)
}

// Load reads configuration from path (e.g. "config.yaml").
// If path is empty, it looks for config.yaml in the working directory and
// falls back to defaults when there is none.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path == "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	} else {
		v.SetConfigFile(path)
	}

	// environment overrides, e.g. CLUB_SERVER_PORT=9000
	v.SetEnvPrefix("CLUB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if _, err := c.Finance.Cap(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Addr is the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Address, s.Port)
}

// Cap parses the per-person dining cap.
func (f FinanceConfig) Cap() (decimal.Decimal, error) {
	limit, err := decimal.NewFromString(f.DiningCap)
	if err != nil {
		return decimal.Zero, fmt.Errorf("finance.dining_cap %q: %w", f.DiningCap, err)
	}
	if !limit.IsPositive() {
		return decimal.Zero, fmt.Errorf("finance.dining_cap must be positive, got %s", limit)
	}
	return limit, nil
}

// Enabled reports whether RPCs require an operator token.
func (a AuthConfig) Enabled() bool {
	return a.JWTSecret != ""
}

// TokenDuration is how long issued tokens stay valid.
func (a AuthConfig) TokenDuration() time.Duration {
	return time.Duration(a.TokenHours) * time.Hour
}
