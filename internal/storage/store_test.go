package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

const sampleGPX = `<?xml version="1.0" encoding="UTF-8"?><gpx version="1.1"><trk><name>ride</name></trk></gpx>`

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "nested", "db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// fixedClock returns a clock that advances one minute per call
func fixedClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		now := current
		current = current.Add(time.Minute)
		return now
	}
}

func TestOpen_CreatesTable(t *testing.T) {
	store := openTestStore(t)

	files, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(files) != 0 {
		t.Errorf("Expected empty store, got %d files", len(files))
	}
}

func TestOpen_ReopensExistingDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db")
	ctx := context.Background()

	first, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if _, err := first.Save(ctx, "ride", []byte(sampleGPX)); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	first.Close()

	second, err := Open(path)
	if err != nil {
		t.Fatalf("second Open() error = %v", err)
	}
	defer second.Close()

	files, err := second.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(files) != 1 || files[0].Name != "ride" {
		t.Errorf("Expected the saved file after reopening, got %+v", files)
	}
}

func TestStore_ListNewestFirst(t *testing.T) {
	store := openTestStore(t)
	store.now = fixedClock(time.Date(2025, 3, 1, 7, 0, 0, 0, time.UTC))
	ctx := context.Background()

	for _, name := range []string{"first", "second", "third"} {
		if _, err := store.Save(ctx, name, []byte(sampleGPX)); err != nil {
			t.Fatalf("Save(%s) error = %v", name, err)
		}
	}

	files, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	var names []string
	for _, f := range files {
		names = append(names, f.Name)
	}
	if diff := cmp.Diff([]string{"third", "second", "first"}, names); diff != "" {
		t.Errorf("List() order mismatch (-want +got):\n%s", diff)
	}
	if !files[2].CreatedAt.Equal(time.Date(2025, 3, 1, 7, 0, 0, 0, time.UTC)) {
		t.Errorf("Unexpected created_at: %v", files[2].CreatedAt)
	}
}

func TestStore_GetAndNotFound(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	saved, err := store.Save(ctx, "Evening ride", []byte(sampleGPX))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	file, err := store.Get(ctx, saved.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if file.Name != "Evening ride" || string(file.Data) != sampleGPX {
		t.Errorf("Unexpected file: %s %q", file.Name, file.Data)
	}

	if _, err := store.Get(ctx, saved.ID+100); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestStore_Delete(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	saved, err := store.Save(ctx, "ride", []byte(sampleGPX))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if err := store.Delete(ctx, saved.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := store.Delete(ctx, saved.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound on second delete, got %v", err)
	}
}

func TestStore_Export(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "exports")

	saved, err := store.Save(ctx, "Ride: 2025/03/01", []byte(sampleGPX))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	first, err := store.Export(ctx, saved.ID, dir)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if filepath.Base(first) != "Ride_ 2025_03_01.gpx" {
		t.Errorf("Unexpected export name: %s", filepath.Base(first))
	}
	data, err := os.ReadFile(first)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	if string(data) != sampleGPX {
		t.Errorf("Exported data mismatch: %q", data)
	}

	second, err := store.Export(ctx, saved.ID, dir)
	if err != nil {
		t.Fatalf("second Export() error = %v", err)
	}
	if second == first {
		t.Errorf("Second export overwrote %s", first)
	}

	if _, err := store.Export(ctx, saved.ID+1, dir); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}
