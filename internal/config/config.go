package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Supported database drivers. DriverNone disables history recording.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverNone     = "none"
)

// MaxPlayers is the largest number of stands a game can have.
const MaxPlayers = 30

// Config holds all application configuration.
type Config struct {
	Players  int    `yaml:"players"`
	Seed     int64  `yaml:"seed"`
	LogLevel string `yaml:"log_level"`
	Database struct {
		Driver string `yaml:"driver"`
		DSN    string `yaml:"dsn"`
	} `yaml:"database"`
	Autoplay struct {
		Enabled bool   `yaml:"enabled"`
		Cron    string `yaml:"cron"`
		MaxDays int    `yaml:"max_days"`
		Glasses int    `yaml:"glasses"`
		Signs   int    `yaml:"signs"`
		Price   int    `yaml:"price"`
	} `yaml:"autoplay"`
}

// Load reads config from a YAML file, then an optional .env file, then
// applies environment variable overrides and defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("LEMONADE_PLAYERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("LEMONADE_PLAYERS: %w", err)
		}
		c.Players = n
	}
	if v := os.Getenv("LEMONADE_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("LEMONADE_SEED: %w", err)
		}
		c.Seed = n
	}
	if v := os.Getenv("LEMONADE_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("LEMONADE_DB_DRIVER"); v != "" {
		c.Database.Driver = v
	}
	if v := os.Getenv("LEMONADE_DB_DSN"); v != "" {
		c.Database.DSN = v
	}
	if v := os.Getenv("LEMONADE_AUTOPLAY"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("LEMONADE_AUTOPLAY: %w", err)
		}
		c.Autoplay.Enabled = b
	}
	if v := os.Getenv("LEMONADE_AUTOPLAY_CRON"); v != "" {
		c.Autoplay.Cron = v
	}
	return nil
}

func (c *Config) applyDefaults() {
	c.LogLevel = strings.ToLower(c.LogLevel)
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Database.Driver == "" {
		c.Database.Driver = DriverSQLite
	}
	if c.Database.DSN == "" {
		switch c.Database.Driver {
		case DriverSQLite:
			c.Database.DSN = "data/lemonade.db"
		case DriverPostgres:
			c.Database.DSN = os.Getenv("DATABASE_URL")
		}
	}
	if c.Autoplay.Cron == "" {
		c.Autoplay.Cron = "@every 1s"
	}
	if c.Autoplay.MaxDays == 0 {
		c.Autoplay.MaxDays = 30
	}
	if c.Autoplay.Glasses == 0 {
		c.Autoplay.Glasses = 30
	}
	if c.Autoplay.Signs == 0 {
		c.Autoplay.Signs = 2
	}
	if c.Autoplay.Price == 0 {
		c.Autoplay.Price = 10
	}
}

// Validate checks that all values are in range.
func (c *Config) Validate() error {
	if c.Players < 0 || c.Players > MaxPlayers {
		return fmt.Errorf("players must be between 0 and %d", MaxPlayers)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level %q is not one of debug, info, warn, error", c.LogLevel)
	}
	switch c.Database.Driver {
	case DriverSQLite, DriverPostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for driver %s", c.Database.Driver)
		}
	case DriverNone:
	default:
		return fmt.Errorf("database.driver %q is not one of sqlite, postgres, none", c.Database.Driver)
	}
	if c.Autoplay.Enabled {
		if c.Autoplay.MaxDays < 0 {
			return fmt.Errorf("autoplay.max_days must not be negative")
		}
		if c.Autoplay.Glasses < 0 || c.Autoplay.Signs < 0 || c.Autoplay.Price < 0 {
			return fmt.Errorf("autoplay plan must not be negative")
		}
	}
	return nil
}
