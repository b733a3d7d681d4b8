// package main contains CLI command definitions and application
// entrypoints for the mixtape playlist builder.
package main

import (
	"github.com/adrg/xdg"
	"github.com/urfave/cli/v3"
)

// createFlags defines the flag set shared by the root command and
// the create subcommand.
func createFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "music-folder",
			Aliases: []string{"f"},
			Usage:   "folder to scan for audio files",
			Value:   xdg.UserDirs.Music,
		},
		&cli.StringFlag{
			Name:    "playlist-name",
			Aliases: []string{"p"},
			Usage:   "name of the playlist to create",
		},
		&cli.BoolFlag{
			Name:    "dry-run",
			Aliases: []string{"d"},
			Usage:   "skip playlist creation and track addition",
		},
		&cli.StringFlag{
			Name:  "report",
			Usage: "write a CSV run report to the given path",
		},
	}
}

// createCommand builds a playlist from the files in a local music folder.
func createCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "create",
		Aliases: []string{"c"},
		Usage:   "Scan a folder and create a Spotify playlist from its tracks",
		Flags:   createFlags(),
		Action:  r.Create,
	}
}

// scanCommand previews the files a create run would pick up, without
// touching the network.
func scanCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "scan",
		Aliases: []string{"s"},
		Usage:   "List the audio files a create run would search for",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "music-folder",
				Aliases: []string{"f"},
				Usage:   "folder to scan for audio files",
				Value:   xdg.UserDirs.Music,
			},
		},
		Action: r.Scan,
	}
}

// authCommand runs the Spotify authorization code flow and stores the
// resulting token for later runs.
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "auth",
		Usage:  "Authorize with Spotify and save the access token",
		Action: r.Auth,
	}
}

// setupCommand creates the config file and prepares the match memo
// database when one is configured.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Create the configuration file and initialize the database",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to the configuration file",
				Value:   "config.toml",
			},
		},
		Action: r.Setup,
	}
}
