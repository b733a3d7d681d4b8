package shared

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Cache.Dir != "." {
			t.Errorf("expected cache dir ., got %s", config.Cache.Dir)
		}

		if config.Database.Path != "" {
			t.Errorf("expected match memo disabled by default, got path %s", config.Database.Path)
		}

		if config.Spotify.ClientID != "" {
			t.Errorf("expected empty default client_id, got %s", config.Spotify.ClientID)
		}

		if config.Spotify.RedirectURI != "http://localhost:8080/callback" {
			t.Errorf("unexpected default redirect URI: %s", config.Spotify.RedirectURI)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		if config.Cache.Dir != DefaultConfig().Cache.Dir {
			t.Error("created config cache dir doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		content := `
[spotify]
client_id = "file_client_id"
client_secret = "file_client_secret"

[cache]
dir = "/tmp/mixtape"
`
		if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Spotify.ClientID != "file_client_id" {
			t.Errorf("expected file_client_id, got %s", config.Spotify.ClientID)
		}

		if config.Cache.Dir != "/tmp/mixtape" {
			t.Errorf("expected /tmp/mixtape, got %s", config.Cache.Dir)
		}

		// Values absent from the file keep their defaults
		if config.Spotify.RedirectURI != "http://localhost:8080/callback" {
			t.Errorf("expected default redirect URI, got %s", config.Spotify.RedirectURI)
		}

		if _, err := LoadConfig(filepath.Join(tmpDir, "missing.toml")); err == nil {
			t.Error("expected error for missing config file")
		}
	})

	t.Run("LoadEnv", func(t *testing.T) {
		t.Run("Environment Overrides File", func(t *testing.T) {
			config := DefaultConfig()
			config.Spotify.ClientID = "file_client_id"

			t.Setenv("SPOTIFY_CLIENT_ID", "env_client_id")
			t.Setenv("SPOTIFY_CLIENT_SECRET", "env_client_secret")

			if err := LoadEnv(config); err != nil {
				t.Fatalf("failed to load env: %v", err)
			}

			if config.Spotify.ClientID != "env_client_id" {
				t.Errorf("expected env_client_id, got %s", config.Spotify.ClientID)
			}

			if config.Spotify.ClientSecret != "env_client_secret" {
				t.Errorf("expected env_client_secret, got %s", config.Spotify.ClientSecret)
			}
		})

		t.Run("Unset Variables Keep Existing Values", func(t *testing.T) {
			config := DefaultConfig()
			config.Spotify.ClientID = "file_client_id"

			if err := LoadEnv(config); err != nil {
				t.Fatalf("failed to load env: %v", err)
			}

			if config.Spotify.ClientID != "file_client_id" {
				t.Errorf("expected file_client_id to survive, got %s", config.Spotify.ClientID)
			}
		})
	})

	t.Run("Validate", func(t *testing.T) {
		valid := SpotifyConfig{
			ClientID:     "id",
			ClientSecret: "secret",
			RedirectURI:  "http://localhost:8080/callback",
		}

		if err := valid.Validate(); err != nil {
			t.Errorf("expected valid credentials, got %v", err)
		}

		cases := []struct {
			name    string
			mutate  func(*SpotifyConfig)
			missing string
		}{
			{"Missing Client ID", func(c *SpotifyConfig) { c.ClientID = "" }, "SPOTIFY_CLIENT_ID"},
			{"Missing Client Secret", func(c *SpotifyConfig) { c.ClientSecret = "" }, "SPOTIFY_CLIENT_SECRET"},
			{"Missing Redirect URI", func(c *SpotifyConfig) { c.RedirectURI = "" }, "SPOTIFY_REDIRECT_URI"},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				creds := valid
				tc.mutate(&creds)

				err := creds.Validate()
				if err == nil {
					t.Fatal("expected validation error")
				}

				if !errors.Is(err, ErrMissingCredentials) {
					t.Errorf("expected ErrMissingCredentials, got %v", err)
				}

				if got := err.Error(); !strings.Contains(got, tc.missing) {
					t.Errorf("expected error to name %s, got %q", tc.missing, got)
				}
			})
		}
	})
}
