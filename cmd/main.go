package main

import (
	"context"
	"os"

	"github.com/desertthunder/mixtape/internal/services"
	"github.com/desertthunder/mixtape/internal/shared"
	"github.com/urfave/cli/v3"
)

const version = "0.1.0"

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		loaded, err := shared.LoadConfig("config.toml")
		if err != nil {
			logger.Fatalf("failed to load config.toml: %v", err)
		}
		config = loaded
	}

	if err := shared.LoadEnv(config); err != nil {
		logger.Fatalf("failed to load environment: %v", err)
	}

	var catalog services.Catalog
	if config.Spotify.Validate() == nil {
		c, err := services.NewSpotifyCatalog(config.Spotify)
		if err != nil {
			logger.Fatalf("failed to create Spotify client: %v", err)
		}
		catalog = c
	}

	runner := NewRunner(RunnerOpts{Config: config, Catalog: catalog, Logger: logger})

	app := &cli.Command{
		Name:     "mixtape",
		Usage:    "Build Spotify playlists from local music folders",
		Version:  version,
		Flags:    createFlags(),
		Action:   runner.Create,
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}
