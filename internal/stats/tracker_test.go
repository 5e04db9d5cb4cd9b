package stats

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Nicolas2912/ChessCoordinateTraining/internal/game"
)

func sampleSummary(score int) game.Summary {
	return game.Summary{
		Score:    score,
		Correct:  8,
		Wrong:    2,
		Accuracy: 80.0,
		AvgTime:  1.25,
		Fastest:  0.4,
		Slowest:  3.1,
	}
}

// TestRecord tests series growth and HasData
func TestRecord(t *testing.T) {
	tracker := NewTracker(nil)
	if tracker.HasData() {
		t.Fatal("New tracker should have no data")
	}

	tracker.Record(sampleSummary(900))
	tracker.Record(sampleSummary(1100))

	if !tracker.HasData() {
		t.Error("Tracker should have data after recording")
	}
	if tracker.Len() != 2 {
		t.Errorf("Len = %d, want 2", tracker.Len())
	}
	if tracker.Scores()[1] != 1100 {
		t.Errorf("Second score = %d, want 1100", tracker.Scores()[1])
	}
	if tracker.Accuracy()[0] != 80.0 {
		t.Errorf("Accuracy = %f, want 80.0", tracker.Accuracy()[0])
	}
}

// TestSaveLoadRoundTrip tests the JSON stat file cycle
func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")

	fixed := time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)
	tracker := NewTracker(func() time.Time { return fixed })
	tracker.Record(sampleSummary(900))
	tracker.Record(sampleSummary(1250))

	if err := tracker.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded := NewTracker(nil)
	if err := loaded.Load(path); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Len() != 2 {
		t.Fatalf("Loaded %d sessions, want 2", loaded.Len())
	}
	if loaded.Scores()[1] != 1250 {
		t.Errorf("Loaded score = %d, want 1250", loaded.Scores()[1])
	}
	if loaded.SlowestTimes()[0] != 3.1 {
		t.Errorf("Loaded slowest = %f, want 3.1", loaded.SlowestTimes()[0])
	}
	if loaded.LastTimestamp() != "2025-03-14 15:09:26" {
		t.Errorf("Loaded timestamp = %q, want fixed stamp", loaded.LastTimestamp())
	}
}

// TestSaveUsesExpectedKeys tests the on-disk format
func TestSaveUsesExpectedKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")

	tracker := NewTracker(nil)
	tracker.Record(sampleSummary(500))
	if err := tracker.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("Saved file is not valid JSON: %v", err)
	}

	keys := []string{
		"score_history", "accuracy_history", "correct_clicks_history",
		"wrong_clicks_history", "avg_time_history", "fastest_time_history",
		"slowest_time_history", "timestamp",
	}
	for _, key := range keys {
		if _, ok := decoded[key]; !ok {
			t.Errorf("Saved file is missing key %q", key)
		}
	}
}

// TestLoadRejectsMissingKeys tests the strict format check
func TestLoadRejectsMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.json")
	partial := `{"score_history": [100], "timestamp": "2025-01-01 00:00:00"}`
	if err := os.WriteFile(path, []byte(partial), 0644); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	tracker := NewTracker(nil)
	tracker.Record(sampleSummary(700))

	if err := tracker.Load(path); err == nil {
		t.Fatal("Load should fail on missing keys")
	}
	if tracker.Len() != 1 || tracker.Scores()[0] != 700 {
		t.Error("Failed load should leave the tracker unchanged")
	}
}

// TestLoadRejectsMalformedJSON tests the bad-file edge case
func TestLoadRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	tracker := NewTracker(nil)
	if err := tracker.Load(path); err == nil {
		t.Fatal("Load should fail on malformed JSON")
	}
}

// TestLoadMissingFile tests the I/O error path
func TestLoadMissingFile(t *testing.T) {
	tracker := NewTracker(nil)
	if err := tracker.Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("Load should fail when the file does not exist")
	}
}

// TestSaveEmptyTracker tests that empty series survive a round trip
func TestSaveEmptyTracker(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")

	tracker := NewTracker(nil)
	if err := tracker.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded := NewTracker(nil)
	if err := loaded.Load(path); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.HasData() {
		t.Error("Loaded empty file should have no data")
	}
}
