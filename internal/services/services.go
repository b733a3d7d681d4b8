// package services defines interface Catalog for a remote music catalog
//
// Spotify is the only implementation; the interface keeps the task layer
// and CLI testable without network access.
package services

import (
	"context"

	"golang.org/x/oauth2"
)

// Catalog defines the operations the application needs from a remote
// music-streaming catalog.
type Catalog interface {
	// Authorize runs the interactive authorization-code flow and returns
	// the resulting token. openURL is invoked with the authorization URL
	// the user must visit. Blocks until the callback fires or ctx is done.
	Authorize(ctx context.Context, openURL func(string) error) (*oauth2.Token, error)

	// Authenticate prepares the client with a previously obtained token.
	// Token refresh is handled by the underlying OAuth transport.
	Authenticate(ctx context.Context, token *oauth2.Token) error

	// CurrentUser retrieves the authenticated user's profile.
	CurrentUser(ctx context.Context) (*User, error)

	// SearchTrack performs a single search limited to one track result.
	// Returns (nil, nil) when the catalog has no match for the query;
	// that outcome is not an error.
	SearchTrack(ctx context.Context, query string) (*Track, error)

	// CreatePlaylist creates a playlist owned by the given user.
	CreatePlaylist(ctx context.Context, userID, name string) (*Playlist, error)

	// AddTracks appends track identifiers to a playlist in order.
	AddTracks(ctx context.Context, playlistID string, trackIDs []string) error

	// Name returns the name of the catalog (e.g., "Spotify")
	Name() string
}

// User represents the authenticated catalog account.
type User struct {
	ID          string
	DisplayName string
}

// Track represents a single catalog track.
type Track struct {
	ID     string
	Title  string
	Artist string
	Album  string
}

// Playlist represents a catalog playlist.
type Playlist struct {
	ID     string
	Name   string
	Public bool
}
