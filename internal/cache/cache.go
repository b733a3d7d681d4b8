// package cache persists ordered string lists as flat text files.
//
// The two files written per playlist act as a resumption checkpoint: their
// joint presence at startup short-circuits the scan and search phase, and a
// successful publish removes them.
package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	tracksSuffix    = "-tracks_to_add.txt"
	unmatchedSuffix = "-unmatched_tracks.txt"
)

// Store reads and writes newline-delimited list files under a base directory.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at dir. An empty dir means the current
// working directory.
func NewStore(dir string) *Store {
	if dir == "" {
		dir = "."
	}
	return &Store{dir: dir}
}

// TracksFile returns the path of the matched-track cache file for a playlist.
func (s *Store) TracksFile(playlist string) string {
	return filepath.Join(s.dir, playlist+tracksSuffix)
}

// UnmatchedFile returns the path of the unmatched-name cache file for a playlist.
func (s *Store) UnmatchedFile(playlist string) string {
	return filepath.Join(s.dir, playlist+unmatchedSuffix)
}

// WriteList writes each item as its own line, overwriting any existing file.
func (s *Store) WriteList(items []string, filename string) error {
	var b strings.Builder
	for _, item := range items {
		b.WriteString(item)
		b.WriteString("\n")
	}

	if err := os.WriteFile(filename, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write list file %s: %w", filename, err)
	}

	return nil
}

// ReadList reads newline-delimited records preserving order. No validation
// or deduplication is performed; content shape is the caller's concern.
func (s *Store) ReadList(filename string) ([]string, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read list file %s: %w", filename, err)
	}

	text := strings.TrimRight(string(data), "\n")
	if text == "" {
		return nil, nil
	}

	return strings.Split(text, "\n"), nil
}

// Exists reports whether filename is present and a regular file.
func (s *Store) Exists(filename string) bool {
	info, err := os.Stat(filename)
	return err == nil && info.Mode().IsRegular()
}

// Remove deletes the given files. Missing files are not an error so cleanup
// stays idempotent.
func (s *Store) Remove(filenames ...string) error {
	for _, filename := range filenames {
		if err := os.Remove(filename); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove %s: %w", filename, err)
		}
	}
	return nil
}
