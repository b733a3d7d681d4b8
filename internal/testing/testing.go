// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/desertthunder/mixtape/internal/services"
	"golang.org/x/oauth2"
)

// MockCatalog is a configurable test double for [services.Catalog]
type MockCatalog struct {
	SearchResults map[string]*services.Track
	SearchErr     error
	SearchCalls   []string
	User          *services.User
	UserErr       error
	Playlist      *services.Playlist
	CreateErr     error
	CreateCalls   int
	AddErr        error
	AddCalls      [][]string
	Token         *oauth2.Token
	AuthorizeErr  error
}

func (m *MockCatalog) Name() string { return "mock" }

func (m *MockCatalog) Authorize(ctx context.Context, openURL func(string) error) (*oauth2.Token, error) {
	if m.AuthorizeErr != nil {
		return nil, m.AuthorizeErr
	}
	if openURL != nil {
		if err := openURL("http://localhost/authorize"); err != nil {
			return nil, err
		}
	}
	if m.Token != nil {
		return m.Token, nil
	}
	return &oauth2.Token{AccessToken: "mock_access"}, nil
}

func (m *MockCatalog) Authenticate(ctx context.Context, token *oauth2.Token) error {
	if token == nil {
		return errors.New("nil token")
	}
	return nil
}

func (m *MockCatalog) CurrentUser(ctx context.Context) (*services.User, error) {
	if m.UserErr != nil {
		return nil, m.UserErr
	}
	if m.User != nil {
		return m.User, nil
	}
	return &services.User{ID: "mock_user", DisplayName: "Mock User"}, nil
}

func (m *MockCatalog) SearchTrack(ctx context.Context, query string) (*services.Track, error) {
	m.SearchCalls = append(m.SearchCalls, query)
	if m.SearchErr != nil {
		return nil, m.SearchErr
	}
	return m.SearchResults[query], nil
}

func (m *MockCatalog) CreatePlaylist(ctx context.Context, userID, name string) (*services.Playlist, error) {
	m.CreateCalls++
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	if m.Playlist != nil {
		return m.Playlist, nil
	}
	return &services.Playlist{ID: "mock_playlist", Name: name, Public: true}, nil
}

func (m *MockCatalog) AddTracks(ctx context.Context, playlistID string, trackIDs []string) error {
	m.AddCalls = append(m.AddCalls, trackIDs)
	return m.AddErr
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func AssertFileAbsent(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("File should not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
