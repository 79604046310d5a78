// Package config loads puzzlesearch settings from a TOML file.
//
// Every field has a default, so an absent file is not an error when loading
// from the default location. Unknown keys are rejected to catch typos.
//
//	[search]
//	max_expansions = 2000000
//	timeout = "30s"
//
//	[cache]
//	backend = "redis"
//	redis_addr = "localhost:6379"
//
//	[store]
//	backend = "mongo"
//	mongo_uri = "mongodb://localhost:27017"
//
//	[server]
//	addr = ":8080"
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/puzzlesearch/pkg/errors"
)

// Backend names.
const (
	CacheFile  = "file"
	CacheRedis = "redis"
	CacheNone  = "none"

	StoreMemory = "memory"
	StoreMongo  = "mongo"
)

// Config is the full configuration.
type Config struct {
	Search SearchConfig `toml:"search"`
	Cache  CacheConfig  `toml:"cache"`
	Store  StoreConfig  `toml:"store"`
	Server ServerConfig `toml:"server"`
}

// SearchConfig bounds individual searches.
type SearchConfig struct {
	// MaxExpansions caps each search. Zero means unlimited.
	MaxExpansions int `toml:"max_expansions"`

	// CheckEvery is the interval, in expansions, between cancellation checks.
	CheckEvery int `toml:"check_every"`

	// Timeout bounds a single search. Zero means no timeout.
	Timeout time.Duration `toml:"timeout"`

	// RejectUnsolvable refuses sliding-tile boards with the wrong parity
	// instead of searching them.
	RejectUnsolvable bool `toml:"reject_unsolvable"`
}

// CacheConfig selects and configures the solution cache.
type CacheConfig struct {
	Backend       string `toml:"backend"`
	Dir           string `toml:"dir"`
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
	KeyPrefix     string `toml:"key_prefix"`
}

// StoreConfig selects where run records are kept.
type StoreConfig struct {
	Backend    string `toml:"backend"`
	MongoURI   string `toml:"mongo_uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr         string        `toml:"addr"`
	ReadTimeout  time.Duration `toml:"read_timeout"`
	WriteTimeout time.Duration `toml:"write_timeout"`
	MaxBodyBytes int64         `toml:"max_body_bytes"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Search: SearchConfig{
			MaxExpansions: 5_000_000,
			CheckEvery:    1024,
			Timeout:       time.Minute,
		},
		Cache: CacheConfig{
			Backend:   CacheFile,
			RedisAddr: "localhost:6379",
			KeyPrefix: "puzzlesearch:",
		},
		Store: StoreConfig{
			Backend:    StoreMemory,
			MongoURI:   "mongodb://localhost:27017",
			Database:   "puzzlesearch",
			Collection: "runs",
		},
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 2 * time.Minute,
			MaxBodyBytes: 1 << 16,
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/puzzlesearch/config.toml, falling back
// to ~/.config.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "puzzlesearch", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "puzzlesearch", "config.toml"), nil
}

// Load reads path on top of the defaults. With an empty path the default
// location is tried and silently skipped when it does not exist.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && !explicit {
		return Default(), nil
	}
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	return Parse(data)
}

// Parse decodes TOML on top of the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges and backend names.
func (c Config) Validate() error {
	if c.Search.MaxExpansions < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "search.max_expansions must not be negative")
	}
	if c.Search.CheckEvery < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "search.check_every must not be negative")
	}
	if c.Search.Timeout < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "search.timeout must not be negative")
	}
	switch c.Cache.Backend {
	case CacheFile, CacheNone:
	case CacheRedis:
		if c.Cache.RedisAddr == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "cache.redis_addr is required for the redis backend")
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "cache.backend %q is not one of file, redis, none", c.Cache.Backend)
	}
	switch c.Store.Backend {
	case StoreMemory:
	case StoreMongo:
		if c.Store.MongoURI == "" || c.Store.Database == "" || c.Store.Collection == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "store.mongo_uri, store.database and store.collection are required for the mongo backend")
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "store.backend %q is not one of memory, mongo", c.Store.Backend)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "server.max_body_bytes must be positive")
	}
	return nil
}
