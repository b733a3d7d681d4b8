package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/desertthunder/mixtape/internal/services"
	"github.com/desertthunder/mixtape/internal/shared"
	mocks "github.com/desertthunder/mixtape/internal/testing"
)

func TestScanCommand(t *testing.T) {
	ctx := context.Background()

	t.Run("lists eligible files with queries", func(t *testing.T) {
		runner, out, _ := newTestRunner(t, nil)
		folder := newMusicFolder(t, "Song A.mp3", "Song B.wav", "notes.txt")

		err := newTestApp(runner).Run(ctx, []string{"mixtape", "scan", "-f", folder})
		if err != nil {
			t.Fatalf("Scan failed: %v", err)
		}

		if !strings.Contains(out.String(), "Song A.mp3") {
			t.Errorf("Expected file listing, got %q", out.String())
		}
		if !strings.Contains(out.String(), `"Song A"`) {
			t.Errorf("Expected query preview, got %q", out.String())
		}
		if strings.Contains(out.String(), "notes.txt") {
			t.Errorf("Expected ineligible file to be skipped, got %q", out.String())
		}
		if !strings.Contains(out.String(), "2 eligible files") {
			t.Errorf("Expected file count, got %q", out.String())
		}
	})

	t.Run("fails for a missing folder", func(t *testing.T) {
		runner, _, _ := newTestRunner(t, nil)

		err := newTestApp(runner).Run(ctx, []string{"mixtape", "scan", "-f", "/nonexistent/music"})
		if err == nil {
			t.Error("Expected error for missing folder")
		}
	})
}

func TestAuthCommand(t *testing.T) {
	ctx := context.Background()

	t.Run("saves the token after authorization", func(t *testing.T) {
		catalog := &mocks.MockCatalog{}
		runner, out, _ := newTestRunner(t, catalog)
		runner.tokenPath = filepath.Join(t.TempDir(), "token.json")

		err := newTestApp(runner).Run(ctx, []string{"mixtape", "auth"})
		if err != nil {
			t.Fatalf("Auth failed: %v", err)
		}

		token, err := services.LoadToken(runner.tokenPath)
		if err != nil {
			t.Fatalf("Failed to load saved token: %v", err)
		}
		if token.AccessToken != "mock_access" {
			t.Errorf("Unexpected token: %v", token.AccessToken)
		}
		if !strings.Contains(out.String(), "Authorization complete") {
			t.Errorf("Expected confirmation, got %q", out.String())
		}
	})

	t.Run("requires credentials", func(t *testing.T) {
		runner, _, _ := newTestRunner(t, nil)

		err := newTestApp(runner).Run(ctx, []string{"mixtape", "auth"})
		if !errors.Is(err, shared.ErrMissingCredentials) {
			t.Errorf("Expected ErrMissingCredentials, got %v", err)
		}
	})

	t.Run("propagates authorization failure", func(t *testing.T) {
		catalog := &mocks.MockCatalog{AuthorizeErr: errors.New("denied")}
		runner, _, _ := newTestRunner(t, catalog)
		runner.tokenPath = filepath.Join(t.TempDir(), "token.json")

		err := newTestApp(runner).Run(ctx, []string{"mixtape", "auth"})
		if err == nil {
			t.Fatal("Expected authorization error")
		}
		mocks.AssertFileAbsent(t, runner.tokenPath)
	})
}

func TestSetupCommand(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the config file", func(t *testing.T) {
		runner, out, _ := newTestRunner(t, nil)
		configPath := filepath.Join(t.TempDir(), "config.toml")

		err := newTestApp(runner).Run(ctx, []string{"mixtape", "setup", "-c", configPath})
		if err != nil {
			t.Fatalf("Setup failed: %v", err)
		}

		mocks.AssertFileExists(t, configPath)
		if !strings.Contains(out.String(), "Match memo disabled") {
			t.Errorf("Expected memo notice, got %q", out.String())
		}
	})

	t.Run("initializes the database when configured", func(t *testing.T) {
		runner, _, _ := newTestRunner(t, nil)
		dir := t.TempDir()
		configPath := filepath.Join(dir, "config.toml")
		dbPath := filepath.Join(dir, "mixtape.db")

		content := "[database]\npath = \"" + dbPath + "\"\nmax_open_conns = 1\nmax_idle_conns = 1\n"
		if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write config: %v", err)
		}

		err := newTestApp(runner).Run(ctx, []string{"mixtape", "setup", "-c", configPath})
		if err != nil {
			t.Fatalf("Setup failed: %v", err)
		}

		mocks.AssertFileExists(t, dbPath)
	})

	t.Run("is idempotent for an existing config", func(t *testing.T) {
		runner, _, _ := newTestRunner(t, nil)
		configPath := filepath.Join(t.TempDir(), "config.toml")

		for i := 0; i < 2; i++ {
			if err := newTestApp(runner).Run(ctx, []string{"mixtape", "setup", "-c", configPath}); err != nil {
				t.Fatalf("Setup run %d failed: %v", i+1, err)
			}
		}
	})
}
