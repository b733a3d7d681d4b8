package shared

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/subosito/gotenv"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration.
//
// Values are loaded in order of precedence: embedded defaults, an optional
// TOML file, an optional .env file, then the process environment.
type Config struct {
	Spotify  SpotifyConfig  `toml:"spotify"`
	Cache    CacheConfig    `toml:"cache"`
	Database DatabaseConfig `toml:"database"`
}

// SpotifyConfig contains Spotify API credentials.
type SpotifyConfig struct {
	ClientID     string `toml:"client_id" env:"SPOTIFY_CLIENT_ID"`
	ClientSecret string `toml:"client_secret" env:"SPOTIFY_CLIENT_SECRET"`
	RedirectURI  string `toml:"redirect_uri" env:"SPOTIFY_REDIRECT_URI"`
}

// Validate checks that all three credential values are present.
// The returned error names the environment variable that is missing.
func (c SpotifyConfig) Validate() error {
	for _, pair := range []struct {
		value string
		name  string
	}{
		{c.ClientID, "SPOTIFY_CLIENT_ID"},
		{c.ClientSecret, "SPOTIFY_CLIENT_SECRET"},
		{c.RedirectURI, "SPOTIFY_REDIRECT_URI"},
	} {
		if pair.value == "" {
			return fmt.Errorf("%w: %s is not set", ErrMissingCredentials, pair.name)
		}
	}
	return nil
}

// CacheConfig contains settings for the flat-file resumption caches.
type CacheConfig struct {
	Dir string `toml:"dir"`
}

// DatabaseConfig contains settings for the optional sqlite match memo.
// An empty path disables the memo entirely.
type DatabaseConfig struct {
	Path         string `toml:"path"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// LoadEnv overlays Spotify credentials from a .env file (when present) and
// the process environment onto the given config.
func LoadEnv(config *Config) error {
	if err := gotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to load .env file: %w", err)
	}

	if err := env.Parse(&config.Spotify); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}

	return nil
}
