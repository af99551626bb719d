package verifier

import (
	"path/filepath"
	"testing"
	"time"
)

func TestReportStore_SaveAndHistoryRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports.db")
	store, err := OpenReportStore(path)
	if err != nil {
		t.Fatalf("OpenReportStore: %v", err)
	}
	defer store.Close()

	r1 := Report{
		Mode:       "dynamic",
		Summary:    Summary{Total: 3, Passed: 2, Failed: 1},
		DurationMS: 10,
		Timestamp:  time.Now(),
	}
	r2 := Report{
		Mode:       "static",
		Summary:    Summary{Total: 5, Passed: 5},
		DurationMS: 5,
		Timestamp:  time.Now(),
	}
	if err := store.Save(r1); err != nil {
		t.Fatalf("Save r1: %v", err)
	}
	if err := store.Save(r2); err != nil {
		t.Fatalf("Save r2: %v", err)
	}

	history, err := store.History(10)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 history rows, got %d", len(history))
	}
	// newest first
	if history[0].Total != 5 || history[0].Passed != 5 {
		t.Errorf("expected the most recent save first, got %+v", history[0])
	}
	if history[1].Total != 3 || history[1].Failed != 1 {
		t.Errorf("expected the older save second, got %+v", history[1])
	}
}

func TestReportStore_HistoryRespectsLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports.db")
	store, err := OpenReportStore(path)
	if err != nil {
		t.Fatalf("OpenReportStore: %v", err)
	}
	defer store.Close()

	for i := 0; i < 5; i++ {
		if err := store.Save(Report{Mode: "static", Summary: Summary{Total: i}, Timestamp: time.Now()}); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	history, err := store.History(2)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected the limit to cap history at 2 rows, got %d", len(history))
	}
}
