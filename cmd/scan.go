package main

import (
	"context"

	"github.com/desertthunder/mixtape/internal/library"
	"github.com/urfave/cli/v3"
)

// Scan lists the eligible audio files under the music folder together
// with the search query each would produce. No network calls are made.
func (r *Runner) Scan(ctx context.Context, cmd *cli.Command) error {
	folder := cmd.String("music-folder")

	files, err := library.NewScanner(folder).Scan()
	if err != nil {
		return err
	}

	for i, file := range files {
		r.writePlain("%3d. %v → %q\n", i+1, file.Name, file.Query())
	}
	r.writePlainln("%v eligible files under %v", len(files), folder)

	return nil
}
