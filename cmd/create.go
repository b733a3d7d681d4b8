package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/mixtape/internal/formatter"
	"github.com/desertthunder/mixtape/internal/repositories"
	"github.com/desertthunder/mixtape/internal/services"
	"github.com/desertthunder/mixtape/internal/shared"
	"github.com/desertthunder/mixtape/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Create scans the music folder, searches Spotify for each file and
// publishes the matched tracks as a new playlist. Matched ids and
// unmatched names are cached to flat files so an interrupted run can
// resume, and the caches are removed once a real run succeeds.
func (r *Runner) Create(ctx context.Context, cmd *cli.Command) error {
	folder := cmd.String("music-folder")
	playlist := cmd.String("playlist-name")
	dryRun := cmd.Bool("dry-run")
	report := cmd.String("report")

	if playlist == "" {
		return fmt.Errorf("%w: playlist-name", shared.ErrMissingArgument)
	}

	if dryRun {
		r.logger.Info("dry run, skipping playlist creation and track addition")
	}

	if r.catalog == nil {
		return fmt.Errorf("%w: set SPOTIFY_CLIENT_ID, SPOTIFY_CLIENT_SECRET and SPOTIFY_REDIRECT_URI", shared.ErrMissingCredentials)
	}

	token, err := services.LoadToken(r.tokenPath)
	if err != nil {
		return fmt.Errorf("run 'mixtape auth' first: %w", err)
	}

	if err := r.catalog.Authenticate(ctx, token); err != nil {
		return err
	}

	user, err := r.catalog.CurrentUser(ctx)
	if err != nil {
		return err
	}

	r.logger.Info("authenticated", "user", user.ID, "service", r.catalog.Name())

	engine := r.engine
	if r.config.Database.Path != "" {
		db, err := shared.NewDatabase(r.config.Database.Path)
		if err != nil {
			r.logger.Warn("match memo unavailable", "error", err)
		} else {
			defer db.Close()
			shared.ConfigureDatabase(db, r.config.Database.MaxOpenConns, r.config.Database.MaxIdleConns)
			if err := shared.RunMigrations(db); err != nil {
				return err
			}
			engine = tasks.NewEngine(r.catalog, r.store, repositories.NewMatchRepository(db))
		}
	}

	progress := make(chan tasks.ProgressUpdate, 100)
	done := make(chan struct{})
	finish := func() {
		close(progress)
		<-done
	}
	go func() {
		defer close(done)
		for update := range progress {
			switch update.Phase {
			case tasks.ReadCache, tasks.ScanLibrary:
				r.writePlain("📁 %v\n", update.Message)
			case tasks.CreatePlaylist:
				r.writePlain("\n📝 %v\n", update.Message)
			default:
				r.writePlain("   %v\n", update.Message)
			}
		}
	}()

	tracklist, err := engine.Build(ctx, folder, playlist, progress)
	if err != nil {
		finish()
		return err
	}

	tracksFile := r.store.TracksFile(playlist)
	unmatchedFile := r.store.UnmatchedFile(playlist)
	if err := r.store.WriteList(tracklist.Matched, tracksFile); err != nil {
		finish()
		return err
	}
	if err := r.store.WriteList(tracklist.Unmatched, unmatchedFile); err != nil {
		finish()
		return err
	}

	r.writePlainln("Found %v unmatched tracks", len(tracklist.Unmatched))
	r.writePlain("Found %v tracks for playlist: %v\n", len(tracklist.Matched), playlist)

	result, err := engine.Publish(ctx, user.ID, playlist, tracklist.Matched, dryRun, progress)
	finish()
	if err != nil {
		return err
	}

	if !dryRun {
		if err := r.store.Remove(tracksFile, unmatchedFile); err != nil {
			return err
		}
	}

	if report != "" {
		if err := formatter.WriteReport(report, playlist, tracklist.Matched, tracklist.Unmatched); err != nil {
			return err
		}
		r.logger.Info("wrote run report", "path", report)
	}

	r.writePlainHeader("Summary")
	if result.DryRun {
		r.writePlain("Dry run: would add %v tracks in %v batches\n", len(tracklist.Matched), result.Batches)
	} else {
		r.writePlain("Created playlist: %v (%v)\n", result.PlaylistName, result.PlaylistID)
		r.writePlain("Added %v tracks in %v batches\n", result.Added, result.Batches)
	}
	r.writePlain("Unmatched: %v\n", len(tracklist.Unmatched))

	return nil
}
