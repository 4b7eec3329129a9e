package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestRunReportsChangedSource(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "main.pd")
	if err := os.WriteFile(src, []byte("output(1)\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := New(".pd", dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	changed := make(chan string, 4)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(path string) { changed <- path })
	}()

	// Non-source files are ignored.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(src, []byte("output(2)\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	want, _ := filepath.Abs(src)
	select {
	case got := <-changed:
		if got != want {
			t.Errorf("changed path = %q, want %q", got, want)
		}
	case <-ctx.Done():
		t.Fatalf("no change reported for %s", src)
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("Run returned %v", err)
	}
}

func TestNewRejectsMissingPath(t *testing.T) {
	if _, err := New(".pd", filepath.Join(t.TempDir(), "missing.pd")); err == nil {
		t.Errorf("expected error for a missing path")
	}
}

func TestRelevant(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "only.pd")
	if err := os.WriteFile(target, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := New(".pd", target)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.Close()

	if !w.relevant(target) {
		t.Errorf("explicit target not relevant")
	}
	if w.relevant(filepath.Join(dir, "other.pd")) {
		t.Errorf("sibling of an explicit file should not be relevant")
	}
}
