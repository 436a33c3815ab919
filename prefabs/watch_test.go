package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		path string
		kind ChangeKind
		ok   bool
	}{
		{"tuning.yaml", ChangeSpec, true},
		{"other.YML", ChangeSpec, true},
		{"scripts/announcer.tengo", ChangeScript, true},
		{"notes.txt", 0, false},
		{"tuning.yaml.swp", 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			kind, ok := classify(tc.path)
			if ok != tc.ok || kind != tc.kind {
				t.Fatalf("classify(%q) = %v, %v", tc.path, kind, ok)
			}
		})
	}
}

func TestWatcherReportsEdits(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "scripts"), 0o755); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(NewSource(dir))
	if err != nil {
		t.Fatalf("watcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, TuningFile), []byte("speed:\n  initial: 0.2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case c := <-w.Events:
		if c.Kind != ChangeSpec || filepath.Base(c.Path) != TuningFile {
			t.Fatalf("unexpected change %+v", c)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no change reported for tuning edit")
	}

	if err := os.WriteFile(filepath.Join(dir, "scripts", "announcer.tengo"), []byte("x := 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case c := <-w.Events:
			if c.Kind == ChangeScript {
				return
			}
		case <-deadline:
			t.Fatal("no change reported for script edit")
		}
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(NewSource(t.TempDir()))
	if err != nil {
		t.Fatalf("watcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
	if got := w.Poll(); len(got) != 0 {
		t.Fatalf("expected no changes after close, got %v", got)
	}
}
