package formatter

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReportCSV(t *testing.T) {
	t.Run("Matched And Unmatched Rows", func(t *testing.T) {
		data, err := ReportCSV("mix", []string{"id_A", "id_B"}, []string{"Unknown Noise.mp3"})
		if err != nil {
			t.Fatalf("failed to render report: %v", err)
		}

		records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
		if err != nil {
			t.Fatalf("report is not valid CSV: %v", err)
		}

		if len(records) != 4 {
			t.Fatalf("expected header plus 3 rows, got %d", len(records))
		}

		if records[0][1] != "Status" {
			t.Errorf("unexpected header: %v", records[0])
		}
		if records[1][1] != "matched" || records[1][2] != "id_A" {
			t.Errorf("unexpected first row: %v", records[1])
		}
		if records[3][1] != "unmatched" || records[3][2] != "Unknown Noise.mp3" {
			t.Errorf("unexpected unmatched row: %v", records[3])
		}
	})

	t.Run("Entries With Commas Are Quoted", func(t *testing.T) {
		data, err := ReportCSV("mix", nil, []string{"Song, With Commas.mp3"})
		if err != nil {
			t.Fatalf("failed to render report: %v", err)
		}

		records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
		if err != nil {
			t.Fatalf("report is not valid CSV: %v", err)
		}

		if records[1][2] != "Song, With Commas.mp3" {
			t.Errorf("comma not preserved: %v", records[1])
		}
	})

	t.Run("WriteReport", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "report.csv")

		if err := WriteReport(path, "mix", []string{"id_A"}, nil); err != nil {
			t.Fatalf("failed to write report: %v", err)
		}

		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("report file missing: %v", err)
		}

		if !strings.Contains(string(content), "id_A") {
			t.Errorf("report missing content: %s", content)
		}
	})
}
