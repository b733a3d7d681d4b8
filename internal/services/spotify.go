// Spotify implementation of [Catalog]
//
// Wraps the zmb3/spotify client; OAuth token exchange and refresh are
// delegated to its spotifyauth.Authenticator and the oauth2 transport.
package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/desertthunder/mixtape/internal/server"
	"github.com/desertthunder/mixtape/internal/shared"
	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2"
)

// SpotifyCatalog implements the Catalog interface for the Spotify Web API.
type SpotifyCatalog struct {
	auth        *spotifyauth.Authenticator
	client      *spotify.Client
	redirectURI string
}

// NewSpotifyCatalog creates a Spotify catalog from credentials, requesting
// the playlist-modify-public scope. Credentials are validated up front so a
// missing variable fails before any remote call.
func NewSpotifyCatalog(credentials shared.SpotifyConfig) (*SpotifyCatalog, error) {
	if err := credentials.Validate(); err != nil {
		return nil, err
	}

	auth := spotifyauth.New(
		spotifyauth.WithClientID(credentials.ClientID),
		spotifyauth.WithClientSecret(credentials.ClientSecret),
		spotifyauth.WithRedirectURL(credentials.RedirectURI),
		spotifyauth.WithScopes(spotifyauth.ScopePlaylistModifyPublic),
	)

	return &SpotifyCatalog{
		auth:        auth,
		redirectURI: credentials.RedirectURI,
	}, nil
}

func (s *SpotifyCatalog) Name() string {
	return "Spotify"
}

// Authorize performs the authorization-code flow: starts a callback server
// on the redirect URI, hands the authorization URL to openURL, and waits for
// the callback to deliver a token.
func (s *SpotifyCatalog) Authorize(ctx context.Context, openURL func(string) error) (*oauth2.Token, error) {
	state := shared.GenerateID()

	handler := server.NewOAuthHandler(func(r *http.Request) (*oauth2.Token, error) {
		return s.auth.Token(r.Context(), state, r)
	})

	srv, err := server.NewCallbackServer(s.redirectURI, handler)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAuthFailed, err)
	}

	listenErr := srv.Start()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	if openURL != nil {
		if err := openURL(s.auth.AuthURL(state)); err != nil {
			return nil, fmt.Errorf("%w: %v", shared.ErrAuthFailed, err)
		}
	}

	select {
	case result := <-handler.Result():
		if result.Error() != nil {
			return nil, fmt.Errorf("%w: %v", shared.ErrAuthFailed, result.Error())
		}
		return result.Token, nil
	case err := <-listenErr:
		return nil, fmt.Errorf("%w: callback server: %v", shared.ErrAuthFailed, err)
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Authenticate prepares the API client from a stored token. The oauth2
// transport refreshes the token transparently when it expires.
func (s *SpotifyCatalog) Authenticate(ctx context.Context, token *oauth2.Token) error {
	if token == nil || (token.AccessToken == "" && token.RefreshToken == "") {
		return shared.ErrNotAuthenticated
	}

	s.client = spotify.New(s.auth.Client(ctx, token))
	return nil
}

// CurrentUser retrieves the authenticated user's profile.
func (s *SpotifyCatalog) CurrentUser(ctx context.Context) (*User, error) {
	if s.client == nil {
		return nil, shared.ErrNotAuthenticated
	}

	user, err := s.client.CurrentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: current user lookup: %v", shared.ErrAPIRequest, err)
	}

	return &User{ID: user.ID, DisplayName: user.DisplayName}, nil
}

// SearchTrack performs one search request limited to a single track result.
// A query with no results returns (nil, nil).
func (s *SpotifyCatalog) SearchTrack(ctx context.Context, query string) (*Track, error) {
	if s.client == nil {
		return nil, shared.ErrNotAuthenticated
	}

	results, err := s.client.Search(ctx, query, spotify.SearchTypeTrack, spotify.Limit(1))
	if err != nil {
		return nil, fmt.Errorf("%w: search %q: %v", shared.ErrAPIRequest, query, err)
	}

	if results.Tracks == nil || len(results.Tracks.Tracks) == 0 {
		return nil, nil
	}

	return fullTrackToTrack(results.Tracks.Tracks[0]), nil
}

// CreatePlaylist creates a public playlist owned by userID. No description
// is set; visibility follows the provider's creation default.
func (s *SpotifyCatalog) CreatePlaylist(ctx context.Context, userID, name string) (*Playlist, error) {
	if s.client == nil {
		return nil, shared.ErrNotAuthenticated
	}

	playlist, err := s.client.CreatePlaylistForUser(ctx, userID, name, "", true, false)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", shared.ErrPlaylistCreate, name, err)
	}

	return &Playlist{
		ID:     string(playlist.ID),
		Name:   playlist.Name,
		Public: playlist.IsPublic,
	}, nil
}

// AddTracks appends trackIDs to the playlist in the given order with a
// single API call.
func (s *SpotifyCatalog) AddTracks(ctx context.Context, playlistID string, trackIDs []string) error {
	if s.client == nil {
		return shared.ErrNotAuthenticated
	}

	ids := make([]spotify.ID, len(trackIDs))
	for i, id := range trackIDs {
		ids[i] = spotify.ID(id)
	}

	if _, err := s.client.AddTracksToPlaylist(ctx, spotify.ID(playlistID), ids...); err != nil {
		return fmt.Errorf("%w: add %d tracks to %s: %v", shared.ErrAPIRequest, len(trackIDs), playlistID, err)
	}

	return nil
}

func fullTrackToTrack(ft spotify.FullTrack) *Track {
	track := &Track{
		ID:    string(ft.ID),
		Title: ft.Name,
		Album: ft.Album.Name,
	}
	if len(ft.Artists) > 0 {
		track.Artist = ft.Artists[0].Name
	}
	return track
}
