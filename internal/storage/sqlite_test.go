package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "nested", "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "runs.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestSaveAndRecent(t *testing.T) {
	store := openTemp(t)

	runs := []RunResult{
		{StageID: "1", Outcome: "defeat", Frames: 900, Leaks: 10},
		{StageID: "1", Outcome: "victory", Frames: 4000, BaseHP: 7, Funds: 40, Kills: 29, Leaks: 3},
		{StageID: "2", Outcome: "victory", Frames: 3000, BaseHP: 8},
	}
	for _, r := range runs {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	got, err := store.RecentResults("1", 10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 runs for stage 1, got %d", len(got))
	}
	if got[0].Outcome != "victory" || got[0].Kills != 29 {
		t.Errorf("newest run first, got %+v", got[0])
	}

	all, err := store.RecentResults("", 10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 runs overall, got %d", len(all))
	}

	limited, _ := store.RecentResults("", 1)
	if len(limited) != 1 {
		t.Errorf("limit not applied, got %d", len(limited))
	}
}

func TestBestResult(t *testing.T) {
	store := openTemp(t)

	if _, err := store.BestResult("1"); !errors.Is(err, ErrNoResults) {
		t.Fatalf("expected ErrNoResults, got %v", err)
	}

	for _, r := range []RunResult{
		{StageID: "1", Outcome: "victory", Frames: 5000, BaseHP: 6},
		{StageID: "1", Outcome: "victory", Frames: 4500, BaseHP: 9},
		{StageID: "1", Outcome: "victory", Frames: 4200, BaseHP: 9},
		{StageID: "1", Outcome: "defeat", Frames: 100, BaseHP: 10},
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	best, err := store.BestResult("1")
	if err != nil {
		t.Fatalf("BestResult() failed: %v", err)
	}
	if best.BaseHP != 9 || best.Frames != 4200 {
		t.Errorf("unexpected best run %+v", best)
	}
}
