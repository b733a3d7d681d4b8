// package library enumerates audio files under a music folder.
package library

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// DefaultExtensions are the audio file extensions considered eligible when a
// Scanner is created without an explicit list.
var DefaultExtensions = []string{".mp3", ".wav"}

// File is a single eligible audio file discovered during a scan.
type File struct {
	Path string // Absolute or root-relative path to the file
	Name string // Base name including extension
}

// Query derives the catalog search term from the file name by dropping the
// last four characters (a dot plus a three-character extension). The
// truncation is positional, not a parse: names shorter than four characters
// yield an empty query.
func (f File) Query() string {
	runes := []rune(f.Name)
	if len(runes) < 4 {
		return ""
	}
	return string(runes[:len(runes)-4])
}

// Scanner walks a root folder recursively and collects files whose extension
// matches one of the configured extensions, case-insensitively.
type Scanner struct {
	root       string
	extensions []string
}

// NewScanner creates a Scanner over root. When no extensions are given,
// [DefaultExtensions] is used.
func NewScanner(root string, extensions ...string) *Scanner {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	return &Scanner{root: root, extensions: extensions}
}

// Scan walks the root and returns every eligible file in filesystem walk
// order. The order is deterministic per platform but not sorted by any
// musical criterion.
func (s *Scanner) Scan() ([]File, error) {
	var files []File

	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if s.eligible(d.Name()) {
			files = append(files, File{Path: path, Name: d.Name()})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", s.root, err)
	}

	return files, nil
}

func (s *Scanner) eligible(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, want := range s.extensions {
		if ext == want {
			return true
		}
	}
	return false
}
