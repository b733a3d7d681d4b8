// package formatter renders run results to exportable formats
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
)

// ReportCSV converts a build result to CSV with columns: Status, Entry.
// Matched rows carry track identifiers, unmatched rows the file names that
// found no match, in their original order.
func ReportCSV(playlist string, matched, unmatched []string) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"Playlist", "Status", "Entry"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, id := range matched {
		if err := writer.Write([]string{playlist, "matched", id}); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	for _, name := range unmatched {
		if err := writer.Write([]string{playlist, "unmatched", name}); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// WriteReport writes the CSV report to path.
func WriteReport(path, playlist string, matched, unmatched []string) error {
	data, err := ReportCSV(playlist, matched, unmatched)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report to %s: %w", path, err)
	}

	return nil
}
