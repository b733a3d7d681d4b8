package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/mixtape/internal/services"
	"github.com/desertthunder/mixtape/internal/shared"
	"github.com/urfave/cli/v3"
)

// Auth runs the Spotify authorization code flow in the browser and
// saves the resulting token for later create runs.
func (r *Runner) Auth(ctx context.Context, cmd *cli.Command) error {
	if r.catalog == nil {
		return fmt.Errorf("%w: set SPOTIFY_CLIENT_ID, SPOTIFY_CLIENT_SECRET and SPOTIFY_REDIRECT_URI", shared.ErrMissingCredentials)
	}

	r.writePlain("Authorizing with %v...\n", r.catalog.Name())

	token, err := r.catalog.Authorize(ctx, func(url string) error {
		r.writePlain("If the browser does not open, visit:\n%v\n", url)
		if err := shared.OpenBrowser(url); err != nil {
			r.logger.Warn("failed to open browser", "error", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := services.SaveToken(r.tokenPath, token); err != nil {
		return err
	}

	r.writePlainln("✅ Authorization complete, token saved to %v", r.tokenPath)

	return nil
}
