package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Settings are the application settings shared by the binaries.
type Settings struct {
	Log    LogSettings    `mapstructure:"log"`
	Store  StoreSettings  `mapstructure:"store"`
	Server ServerSettings `mapstructure:"server"`
	Output OutputSettings `mapstructure:"output"`
}

// LogSettings selects the zap logger configuration.
type LogSettings struct {
	Level  string `mapstructure:"level"`  // debug | info | warn | error
	Format string `mapstructure:"format"` // console | json
}

// StoreSettings locates the case calculation store.
type StoreSettings struct {
	Driver string `mapstructure:"driver"` // sqlite | postgres
	DSN    string `mapstructure:"dsn"`
}

// ServerSettings configures the HTTP surface.
type ServerSettings struct {
	Addr string `mapstructure:"addr"`
}

// OutputSettings holds CLI output defaults.
type OutputSettings struct {
	Format string `mapstructure:"format"`
}

// EnvPrefix prefixes every environment override, e.g. DINTILHAC_STORE_DSN.
const EnvPrefix = "DINTILHAC"

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.dsn", "dintilhac.db")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("output.format", "console")
}

// LoadSettings reads settings from path, or from dintilhac.yaml in the
// working directory or ~/.config/dintilhac when path is empty. A missing
// settings file is not an error. Environment variables and a .env file in
// the working directory override file values.
func LoadSettings(path string) (*Settings, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("dintilhac")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "dintilhac"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading settings: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return &s, nil
}

// Validate checks enumerated settings.
func (s *Settings) Validate() error {
	switch s.Store.Driver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("store.driver must be 'sqlite' or 'postgres', got %q", s.Store.Driver)
	}
	switch s.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be 'console' or 'json', got %q", s.Log.Format)
	}
	if s.Store.DSN == "" {
		return fmt.Errorf("store.dsn is required")
	}
	return nil
}
