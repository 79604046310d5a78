package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/puzzlesearch/pkg/config"
)

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".cache", appName)
	if dir != expected {
		t.Errorf("cacheDir() = %q, want %q", dir, expected)
	}
}

func TestCacheDirXDG(t *testing.T) {
	customCache := filepath.Join(t.TempDir(), "custom-cache")
	t.Setenv("XDG_CACHE_HOME", customCache)

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	expected := filepath.Join(customCache, appName)
	if dir != expected {
		t.Errorf("cacheDir() with XDG_CACHE_HOME = %q, want %q", dir, expected)
	}
}

func TestResolveCacheDirPrefersConfig(t *testing.T) {
	dir, err := resolveCacheDir(config.CacheConfig{Dir: "/srv/puzzlesearch"})
	if err != nil {
		t.Fatal(err)
	}
	if dir != "/srv/puzzlesearch" {
		t.Errorf("resolveCacheDir() = %q, want %q", dir, "/srv/puzzlesearch")
	}
}
