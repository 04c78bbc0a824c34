package backend

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherEmitsInitialLoadAndStops(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.json")
	data := `[{"value":"apple","label":"Apple"},{"value":"banana"}]`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	w := NewWatcher(path, 10*time.Millisecond, 0)

	select {
	case evt := <-w.Events():
		if evt.Err != nil {
			t.Fatalf("unexpected error: %v", evt.Err)
		}
		if len(evt.Options) != 2 {
			t.Fatalf("expected 2 options, got %d", len(evt.Options))
		}
	case <-time.After(time.Second):
		t.Fatalf("timeout waiting for initial event")
	}

	w.Stop()
	w.Wait()
	for range w.Events() {
		// drain until the channel closes
	}
}

func TestWatcherReportsLoadErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.json")
	w := NewWatcher(path, 10*time.Millisecond, 0)
	defer func() {
		w.Stop()
		w.Wait()
	}()

	select {
	case evt := <-w.Events():
		if evt.Err == nil {
			t.Fatalf("expected load error for missing file")
		}
	case <-time.After(time.Second):
		t.Fatalf("timeout waiting for error event")
	}
}

func TestLoadGateSpacesConsecutiveWaits(t *testing.T) {
	g := newLoadGate(30 * time.Millisecond)
	g.wait() // first wait passes immediately
	start := time.Now()
	g.wait()
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Fatalf("expected gate to enforce spacing, waited only %s", elapsed)
	}
}

func TestLoadGateDisabledByZeroGap(t *testing.T) {
	g := newLoadGate(0)
	g.wait()
	g.wait()
	if !g.last.IsZero() {
		t.Fatalf("expected disabled gate to stay untouched")
	}
}
