package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestOperationString(t *testing.T) {
	tests := []struct {
		op   Operation
		want string
	}{
		{OpWrite, "write"},
		{OpCreate, "create"},
		{OpRemove, "remove"},
		{OpRename, "rename"},
		{Operation(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.op, got, tt.want)
		}
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "richcursor.toml")
	other := filepath.Join(dir, "other.toml")
	if err := os.WriteFile(watched, []byte("a = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := New(WithDebounce(20 * time.Millisecond))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer w.Close()

	events := make(chan Event, 16)
	w.OnChange(func(e Event) { events <- e })
	if err := w.Watch(watched); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	if err := os.WriteFile(other, []byte("b = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(watched, []byte("a = 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case e := <-events:
		if e.Path != watched {
			t.Errorf("event for %s, want %s", e.Path, watched)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event for the watched file")
	}

	select {
	case e := <-events:
		if e.Path != watched {
			t.Errorf("unexpected event for %s", e.Path)
		}
	case <-time.After(100 * time.Millisecond):
	}
}

func TestWatcherUnwatchAndClose(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.toml")

	w, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := w.Watch(path); err != nil {
		t.Fatalf("Watch of a missing file in an existing directory failed: %v", err)
	}
	if got := w.WatchedFiles(); len(got) != 1 {
		t.Errorf("WatchedFiles() = %v", got)
	}
	if err := w.Unwatch(path); err != nil {
		t.Fatalf("Unwatch failed: %v", err)
	}
	if got := w.WatchedFiles(); len(got) != 0 {
		t.Errorf("WatchedFiles() = %v after Unwatch", got)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}
	if err := w.Watch(path); err != ErrWatcherClosed {
		t.Errorf("Watch after Close = %v, want ErrWatcherClosed", err)
	}
}
