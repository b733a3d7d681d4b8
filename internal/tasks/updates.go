package tasks

import "fmt"

// ProgressUpdate represents a progress event during a build or publish run.
//
// Used to send real-time updates to the CLI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
}

// Operation phase enumeration
type Phase int

const (
	ReadCache Phase = iota
	ScanLibrary
	SearchTracks
	CreatePlaylist
	AddTracks
)

func (p Phase) String() string {
	switch p {
	case ReadCache:
		return "read_cache"
	case ScanLibrary:
		return "scan_library"
	case SearchTracks:
		return "search_tracks"
	case CreatePlaylist:
		return "create_playlist"
	case AddTracks:
		return "add_tracks"
	default:
		return ""
	}
}

func resumeUpdate() ProgressUpdate {
	return ProgressUpdate{
		Phase:   ReadCache,
		Step:    1,
		Total:   1,
		Message: "Reading tracks from cache files",
	}
}

func scanUpdate(folder string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ScanLibrary,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Scanning %s for audio files...", folder),
	}
}

func scannedUpdate(count int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ScanLibrary,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Found %d audio files", count),
	}
}

func trackFoundUpdate(step, total int, name string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   SearchTracks,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Found track for: %s", name),
	}
}

func trackMemoUpdate(step, total int, name string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   SearchTracks,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Found track for: %s (memoized)", name),
	}
}

func trackUnmatchedUpdate(step, total int, name string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   SearchTracks,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Track %s unmatched", name),
	}
}

func createPlaylistUpdate(name string, dryRun bool) ProgressUpdate {
	message := fmt.Sprintf("Creating playlist: %s", name)
	if dryRun {
		message = fmt.Sprintf("Dry run, would create playlist: %s", name)
	}
	return ProgressUpdate{
		Phase:   CreatePlaylist,
		Step:    1,
		Total:   1,
		Message: message,
	}
}

func addBatchUpdate(batch, batches, size int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   AddTracks,
		Step:    batch,
		Total:   batches,
		Message: fmt.Sprintf("Adding %d tracks to playlist (batch %d/%d)", size, batch, batches),
	}
}
