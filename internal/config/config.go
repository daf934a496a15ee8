package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Environment variables that override values read from the config file.
const (
	EnvListenAddr  = "CLINIC_LISTEN_ADDR"
	EnvStoreDriver = "CLINIC_STORE_DRIVER"
	EnvLogLevel    = "CLINIC_LOG_LEVEL"
)

// Config holds the complete application configuration
type Config struct {
	Server ServerConfig `toml:"server"`
	Store  StoreConfig  `toml:"store"`
	Log    LogConfig    `toml:"log"`
	Seed   SeedConfig   `toml:"seed"`
	Export ExportConfig `toml:"export"`
}

// ServerConfig holds HTTP API settings
type ServerConfig struct {
	ListenAddr      string   `toml:"listen_addr"`
	ShutdownTimeout Duration `toml:"shutdown_timeout"`
}

// StoreConfig selects the record store. Both drivers live only as long as the process.
type StoreConfig struct {
	Driver string `toml:"driver"` // memory | sqlite
	DSN    string `toml:"dsn"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Pretty bool   `toml:"pretty"`
}

type SeedConfig struct {
	Enabled bool `toml:"enabled"`
}

type ExportConfig struct {
	QueueBuffer int `toml:"queue_buffer"`
}

// Duration wraps time.Duration for TOML parsing
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			ListenAddr:      ":8080",
			ShutdownTimeout: Duration{10 * time.Second},
		},
		Store:  StoreConfig{Driver: "memory"},
		Log:    LogConfig{Level: "info"},
		Seed:   SeedConfig{Enabled: true},
		Export: ExportConfig{QueueBuffer: 100},
	}
}

// Load reads the TOML file at path over the defaults and applies environment
// overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		path = os.ExpandEnv(path)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvListenAddr); v != "" {
		c.Server.ListenAddr = v
	}
	if v := os.Getenv(EnvStoreDriver); v != "" {
		c.Store.Driver = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
}

// applyDefaults fills values a config file may have blanked out.
func (c *Config) applyDefaults() {
	def := Default()
	if c.Server.ListenAddr == "" {
		c.Server.ListenAddr = def.Server.ListenAddr
	}
	if c.Server.ShutdownTimeout.Duration <= 0 {
		c.Server.ShutdownTimeout = def.Server.ShutdownTimeout
	}
	if c.Store.Driver == "" {
		c.Store.Driver = def.Store.Driver
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	if c.Export.QueueBuffer <= 0 {
		c.Export.QueueBuffer = def.Export.QueueBuffer
	}
}
