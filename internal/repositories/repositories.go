// package repositories provides the persistence layer for the optional
// sqlite match memo.
//
// The memo stores previously resolved query → track id pairs so repeat runs
// skip the remote search for files already matched once. It is disabled
// unless a database path is configured.
package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/desertthunder/mixtape/internal/shared"
)

// MatchRepository reads and writes memoized search matches.
type MatchRepository struct {
	db *sql.DB
}

// NewMatchRepository creates a MatchRepository with the given database connection
func NewMatchRepository(db *sql.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

// Get retrieves the memoized track id for a query. The boolean reports
// whether a memo entry exists.
func (r *MatchRepository) Get(query string) (string, bool, error) {
	var trackID string
	err := r.db.QueryRow("SELECT track_id FROM matches WHERE query = ?", query).Scan(&trackID)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to query match memo: %w", err)
	}
	return trackID, true, nil
}

// Put stores a resolved match. Re-inserting the same query is a no-op so
// concurrent runs or rescans stay quiet.
func (r *MatchRepository) Put(query, trackID string) error {
	_, err := r.db.Exec(
		"INSERT INTO matches (id, query, track_id, created_at) VALUES (?, ?, ?, ?) ON CONFLICT(query) DO NOTHING",
		shared.GenerateID(), query, trackID, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to store match memo: %w", err)
	}
	return nil
}

// Count returns the number of memoized matches.
func (r *MatchRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM matches").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count match memo: %w", err)
	}
	return count, nil
}

// Purge removes every memoized match.
func (r *MatchRepository) Purge() error {
	if _, err := r.db.Exec("DELETE FROM matches"); err != nil {
		return fmt.Errorf("failed to purge match memo: %w", err)
	}
	return nil
}
