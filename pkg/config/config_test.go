package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/puzzlesearch/pkg/errors"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
[search]
max_expansions = 1000
timeout = "45s"
reject_unsolvable = true

[cache]
backend = "redis"
redis_addr = "cache:6379"
redis_db = 2

[store]
backend = "mongo"
mongo_uri = "mongodb://db:27017"

[server]
addr = ":9090"
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if cfg.Search.MaxExpansions != 1000 {
		t.Errorf("Search.MaxExpansions = %d, want 1000", cfg.Search.MaxExpansions)
	}
	if cfg.Search.Timeout != 45*time.Second {
		t.Errorf("Search.Timeout = %v, want 45s", cfg.Search.Timeout)
	}
	if !cfg.Search.RejectUnsolvable {
		t.Error("Search.RejectUnsolvable = false, want true")
	}
	if cfg.Search.CheckEvery != Default().Search.CheckEvery {
		t.Errorf("Search.CheckEvery = %d, want default %d", cfg.Search.CheckEvery, Default().Search.CheckEvery)
	}
	if cfg.Cache.Backend != CacheRedis || cfg.Cache.RedisAddr != "cache:6379" || cfg.Cache.RedisDB != 2 {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
	if cfg.Store.Backend != StoreMongo || cfg.Store.Database != "puzzlesearch" {
		t.Errorf("Store = %+v", cfg.Store)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("Server.Addr = %q, want %q", cfg.Server.Addr, ":9090")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", "[search\nmax_expansions = 1"},
		{"unknown key", "[search]\nmax_expansion = 1"},
		{"unknown section", "[metrics]\nenabled = true"},
		{"negative cap", "[search]\nmax_expansions = -1"},
		{"bad cache backend", "[cache]\nbackend = \"memcached\""},
		{"bad store backend", "[store]\nbackend = \"postgres\""},
		{"redis without addr", "[cache]\nbackend = \"redis\"\nredis_addr = \"\""},
		{"zero body limit", "[server]\nmax_body_bytes = 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidConfig)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(default, missing) = %v, want defaults", err)
	}
	if cfg != Default() {
		t.Error("Load with no file should return defaults")
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("Load(explicit missing path) should fail")
	}

	path := filepath.Join(dir, "puzzlesearch", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("[server]\naddr = \":7070\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load(default) = %v", err)
	}
	if cfg.Server.Addr != ":7070" {
		t.Errorf("Server.Addr = %q, want %q", cfg.Server.Addr, ":7070")
	}
}
