package workspace_test

import (
	"testing"
	"time"

	"github.com/KaramelBytes/gapmap-cli/internal/workspace"
)

func TestLoadEmptyWorkspace(t *testing.T) {
	w, err := workspace.Load(t.TempDir())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(w.Entries) != 0 {
		t.Fatalf("fresh workspace should have no entries")
	}
}

func TestRecordSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	w, err := workspace.Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	e := w.Record(workspace.Entry{
		Dataset:  "flags.csv",
		Plot:     "plot.png",
		Records:  42,
		Fields:   6,
		Suffixes: []string{"ds1", "ds2"},
	})
	if e.ID == "" {
		t.Fatalf("entry id not assigned")
	}
	if e.CreatedAt.IsZero() {
		t.Fatalf("timestamp not assigned")
	}
	if err := w.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := workspace.Load(dir)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(got.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got.Entries))
	}
	if got.Entries[0].ID != e.ID || got.Entries[0].Records != 42 {
		t.Fatalf("entry did not round-trip: %+v", got.Entries[0])
	}
}

func TestRecentOrdersNewestFirst(t *testing.T) {
	w, err := workspace.Load(t.TempDir())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	w.Entries = []workspace.Entry{
		{ID: "old", CreatedAt: time.Now().Add(-time.Hour)},
		{ID: "new", CreatedAt: time.Now()},
	}
	recent := w.Recent()
	if recent[0].ID != "new" || recent[1].ID != "old" {
		t.Fatalf("unexpected order: %v", recent)
	}
	// Recent must not reorder the manifest itself.
	if w.Entries[0].ID != "old" {
		t.Fatalf("Recent mutated the manifest")
	}
}
