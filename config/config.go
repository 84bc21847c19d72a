package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Configs struct {
	Env string `env:"DRAWHUB_ENV, default=production" toml:"env"`

	API     APIConfigs     `env:", prefix=DRAWHUB_API_" toml:"api"`
	Storage StorageConfigs `env:", prefix=DRAWHUB_STORAGE_" toml:"storage"`
	Log     LogConfigs     `env:", prefix=DRAWHUB_LOG_" toml:"log"`
}

type APIConfigs struct {
	// BaseURL is resolved once at startup; every request is built from it.
	BaseURL string        `env:"BASE_URL, default=http://localhost:3000/api" toml:"base_url"`
	Timeout time.Duration `env:"TIMEOUT, default=10s" toml:"timeout"`

	// RateLimit is requests per second, 0 disables throttling.
	RateLimit float64 `env:"RATE_LIMIT, default=0" toml:"rate_limit"`
}

type StorageConfigs struct {
	// Dir holds the durable session state (token, cached profile).
	// Empty means <user config dir>/drawctl.
	Dir string `env:"DIR" toml:"dir"`
}

type LogConfigs struct {
	Level string `env:"LEVEL, default=info" toml:"level"`
}

// Load resolves configuration once. Precedence from highest to lowest:
// environment (after an optional .env file), the TOML file, the struct
// defaults. The file sits behind the real environment in one lookup chain,
// so an env variable always wins over the file and a file value always wins
// over a default.
func Load(ctx context.Context, tomlPath string) (Configs, error) {
	_ = godotenv.Load()

	lookupers := []envconfig.Lookuper{envconfig.OsLookuper()}
	if tomlPath != "" {
		var file Configs
		if _, err := toml.DecodeFile(tomlPath, &file); err != nil {
			if !os.IsNotExist(err) {
				return Configs{}, fmt.Errorf("parse config file %s: %w", tomlPath, err)
			}
		} else {
			lookupers = append(lookupers, envconfig.MapLookuper(file.lookupMap()))
		}
	}

	var cfg Configs
	err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: envconfig.MultiLookuper(lookupers...),
	})
	if err != nil {
		return Configs{}, err
	}

	return cfg, nil
}

// lookupMap renders the file values as environment entries so they can feed
// the same lookup chain as the real environment. Zero values are left out,
// letting the defaults through.
func (c Configs) lookupMap() map[string]string {
	m := make(map[string]string)
	put := func(key, value string) {
		if value != "" {
			m[key] = value
		}
	}

	put("DRAWHUB_ENV", c.Env)
	put("DRAWHUB_API_BASE_URL", c.API.BaseURL)
	if c.API.Timeout > 0 {
		m["DRAWHUB_API_TIMEOUT"] = c.API.Timeout.String()
	}
	if c.API.RateLimit > 0 {
		m["DRAWHUB_API_RATE_LIMIT"] = strconv.FormatFloat(c.API.RateLimit, 'f', -1, 64)
	}
	put("DRAWHUB_STORAGE_DIR", c.Storage.Dir)
	put("DRAWHUB_LOG_LEVEL", c.Log.Level)

	return m
}

// DefaultConfigPath is where drawctl looks for its TOML file unless told
// otherwise.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}

	return filepath.Join(dir, "drawctl", "config.toml")
}

// StateDir resolves the directory for durable client state.
func (c Configs) StateDir() (string, error) {
	if c.Storage.Dir != "" {
		return c.Storage.Dir, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, "drawctl"), nil
}
