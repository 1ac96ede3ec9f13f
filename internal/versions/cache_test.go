package versions

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadCache_Missing(t *testing.T) {
	cache, err := LoadCache(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache != nil {
		t.Error("expected nil cache for missing file")
	}
}

func TestSaveAndLoadCache(t *testing.T) {
	tmp := t.TempDir()
	now := time.Now().Truncate(time.Second)

	if err := SaveCache(tmp, &Cache{Package: "pkg", LatestVersion: "1.2.0", CheckedAt: now}); err != nil {
		t.Fatalf("SaveCache failed: %v", err)
	}

	loaded, err := LoadCache(tmp)
	if err != nil {
		t.Fatalf("LoadCache failed: %v", err)
	}
	if loaded.LatestVersion != "1.2.0" || loaded.Package != "pkg" {
		t.Errorf("loaded = %+v", loaded)
	}
	if !loaded.CheckedAt.Equal(now) {
		t.Errorf("CheckedAt = %v, want %v", loaded.CheckedAt, now)
	}
}

func TestLoadCache_Corrupted(t *testing.T) {
	tmp := t.TempDir()
	os.WriteFile(filepath.Join(tmp, cacheFileName), []byte("not valid json{{{"), 0644)

	if _, err := LoadCache(tmp); err == nil {
		t.Error("expected error for corrupted cache")
	}
}

func TestIsCacheStale(t *testing.T) {
	if !IsCacheStale(nil, time.Hour) {
		t.Error("nil cache should be stale")
	}
	if IsCacheStale(&Cache{CheckedAt: time.Now()}, time.Hour) {
		t.Error("fresh cache should not be stale")
	}
	if !IsCacheStale(&Cache{CheckedAt: time.Now().Add(-2 * time.Hour)}, time.Hour) {
		t.Error("old cache should be stale")
	}
}
