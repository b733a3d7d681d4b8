package services

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/desertthunder/mixtape/internal/shared"
	"golang.org/x/oauth2"
)

// DefaultTokenPath returns the location of the persisted OAuth token,
// under the XDG config home.
func DefaultTokenPath() string {
	return filepath.Join(xdg.ConfigHome, "mixtape", "token.json")
}

// SaveToken writes the token as JSON at path with owner-only permissions,
// creating parent directories as needed.
func SaveToken(path string, token *oauth2.Token) error {
	if token == nil {
		return fmt.Errorf("cannot save nil token")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}

	data, err := json.MarshalIndent(token, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal token: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}

	return nil
}

// LoadToken reads a previously saved token. A missing file maps to
// [shared.ErrNotAuthenticated] so callers can direct the user to `mixtape auth`.
func LoadToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: no token at %s", shared.ErrNotAuthenticated, path)
		}
		return nil, fmt.Errorf("failed to read token file: %w", err)
	}

	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("failed to parse token file: %w", err)
	}

	return &token, nil
}
