package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefix of every environment override, e.g. CATALOG_SEED_PATH
const EnvPrefix = "CATALOG"

// Config application configuration
type Config struct {
	SeedPath    string `mapstructure:"seed_path"`    // xlsx/json/yaml catalog; empty uses the built-in one
	DBPath      string `mapstructure:"db_path"`      // sqlite catalog; takes precedence over SeedPath
	LogLevel    string `mapstructure:"log_level"`    // debug, info, warn, error
	LogFile     string `mapstructure:"log_file"`     // browse always logs here
	ExportPath  string `mapstructure:"export_path"`  // where the export key writes the visible set
	TableHeight int    `mapstructure:"table_height"` // rows shown at once
}

// SetDefaults registers default values on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("seed_path", "")
	v.SetDefault("db_path", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "data/catalog-table.log")
	v.SetDefault("export_path", "data/visible.xlsx")
	v.SetDefault("table_height", 12)
}

// Load reads .env (when present), then the optional YAML file at path, then
// CATALOG_* environment variables. Later sources win.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()
	return load(viper.New(), path)
}

func load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail later
func (c *Config) Validate() error {
	var errs []error
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level %q is not a valid level", c.LogLevel))
	}
	if c.TableHeight < 1 {
		errs = append(errs, fmt.Errorf("table_height must be positive, got %d", c.TableHeight))
	}
	return errors.Join(errs...)
}
