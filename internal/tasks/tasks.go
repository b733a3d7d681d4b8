// package tasks implements the playlist build and publish operations.
//
// The core abstraction is Engine, which turns a music folder into an ordered
// track list (resuming from the flat-file caches when both are present) and
// publishes the matched tracks to the remote catalog in fixed-size batches.
// Operations emit progress updates via channels for non-blocking status
// reporting to the CLI layer.
package tasks

import (
	"context"
	"fmt"

	"github.com/desertthunder/mixtape/internal/cache"
	"github.com/desertthunder/mixtape/internal/library"
	"github.com/desertthunder/mixtape/internal/services"
	"github.com/desertthunder/mixtape/internal/shared"
)

// BatchSize is the maximum number of track identifiers sent per add-call.
const BatchSize = 100

// MatchMemo memoizes resolved query → track id pairs across runs.
// Implemented by repositories.MatchRepository; nil disables memoization.
type MatchMemo interface {
	Get(query string) (string, bool, error)
	Put(query, trackID string) error
}

// Tracklist is the outcome of a build: matched identifiers and unmatched
// file names, both in discovery order.
type Tracklist struct {
	Matched   []string // Remote track identifiers
	Unmatched []string // Local file names with no catalog match
	Resumed   bool     // True when loaded from the cache files
}

// PublishResult describes a publish run.
type PublishResult struct {
	PlaylistID   string // Empty on dry run
	PlaylistName string
	Batches      int // ceil(len(matched) / BatchSize)
	Added        int // Tracks actually sent (0 on dry run)
	DryRun       bool
}

// Engine orchestrates scanning, matching, caching, and publishing.
type Engine struct {
	catalog services.Catalog
	store   *cache.Store
	memo    MatchMemo
}

// NewEngine creates an Engine. memo may be nil, in which case every file
// goes to the remote search.
func NewEngine(catalog services.Catalog, store *cache.Store, memo MatchMemo) *Engine {
	return &Engine{
		catalog: catalog,
		store:   store,
		memo:    memo,
	}
}

// sendProgress sends a progress update through the channel without blocking.
// Uses select with default to ensure progress reporting never blocks execution.
func (e *Engine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}

// Build produces the track list for a playlist.
//
// When both cache files for the playlist exist they are authoritative: their
// contents are returned verbatim and neither the scanner nor the catalog is
// touched. Otherwise the folder is scanned and each file's derived query is
// searched once; the first failure of a remote call aborts the build. Build
// writes nothing to disk; persisting the result is the caller's concern.
func (e *Engine) Build(ctx context.Context, folder, playlist string, progress chan<- ProgressUpdate) (*Tracklist, error) {
	tracksFile := e.store.TracksFile(playlist)
	unmatchedFile := e.store.UnmatchedFile(playlist)

	if e.store.Exists(tracksFile) && e.store.Exists(unmatchedFile) {
		e.sendProgress(progress, resumeUpdate())

		matched, err := e.store.ReadList(tracksFile)
		if err != nil {
			return nil, err
		}

		unmatched, err := e.store.ReadList(unmatchedFile)
		if err != nil {
			return nil, err
		}

		return &Tracklist{Matched: matched, Unmatched: unmatched, Resumed: true}, nil
	}

	if e.catalog == nil {
		return nil, fmt.Errorf("%w: catalog not initialized", shared.ErrServiceUnavailable)
	}

	e.sendProgress(progress, scanUpdate(folder))

	files, err := library.NewScanner(folder).Scan()
	if err != nil {
		return nil, err
	}

	e.sendProgress(progress, scannedUpdate(len(files)))

	tracklist := &Tracklist{}
	total := len(files)

	for i, file := range files {
		query := file.Query()

		if e.memo != nil {
			if id, ok, err := e.memo.Get(query); err == nil && ok {
				tracklist.Matched = append(tracklist.Matched, id)
				e.sendProgress(progress, trackMemoUpdate(i+1, total, file.Name))
				continue
			}
		}

		track, err := e.catalog.SearchTrack(ctx, query)
		if err != nil {
			return nil, err
		}

		if track == nil {
			tracklist.Unmatched = append(tracklist.Unmatched, file.Name)
			e.sendProgress(progress, trackUnmatchedUpdate(i+1, total, file.Name))
			continue
		}

		tracklist.Matched = append(tracklist.Matched, track.ID)
		e.sendProgress(progress, trackFoundUpdate(i+1, total, file.Name))

		if e.memo != nil {
			// The memo is best effort; a write failure never aborts a run.
			e.memo.Put(query, track.ID)
		}
	}

	return tracklist, nil
}

// Publish creates the playlist for userID and adds matched identifiers in
// consecutive batches of at most BatchSize, preserving order within and
// across batches. Each batch call is independent; the first failure aborts
// and may leave the playlist partially populated.
//
// On dry run no remote mutation happens, but batch counts are still computed
// and reported and the returned result carries an empty playlist id.
func (e *Engine) Publish(ctx context.Context, userID, name string, matched []string, dryRun bool, progress chan<- ProgressUpdate) (*PublishResult, error) {
	result := &PublishResult{
		PlaylistName: name,
		Batches:      (len(matched) + BatchSize - 1) / BatchSize,
		DryRun:       dryRun,
	}

	e.sendProgress(progress, createPlaylistUpdate(name, dryRun))

	if !dryRun {
		if e.catalog == nil {
			return nil, fmt.Errorf("%w: catalog not initialized", shared.ErrServiceUnavailable)
		}

		playlist, err := e.catalog.CreatePlaylist(ctx, userID, name)
		if err != nil {
			return nil, err
		}
		result.PlaylistID = playlist.ID
	}

	for start := 0; start < len(matched); start += BatchSize {
		end := min(start+BatchSize, len(matched))
		batch := matched[start:end]

		e.sendProgress(progress, addBatchUpdate(start/BatchSize+1, result.Batches, len(batch)))

		if dryRun {
			continue
		}

		if err := e.catalog.AddTracks(ctx, result.PlaylistID, batch); err != nil {
			return result, err
		}
		result.Added += len(batch)
	}

	return result, nil
}
