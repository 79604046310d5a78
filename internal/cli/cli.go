// Package cli implements the puzzlesearch command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/puzzlesearch/pkg/buildinfo"
	"github.com/matzehuels/puzzlesearch/pkg/cache"
	"github.com/matzehuels/puzzlesearch/pkg/config"
	"github.com/matzehuels/puzzlesearch/pkg/solver"
	"github.com/matzehuels/puzzlesearch/pkg/store"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "puzzlesearch"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Puzzlesearch solves sliding-tile and superqueens puzzles with A*",
		Long:         `Puzzlesearch runs a best-first A* search over puzzle state spaces. It finds optimal solutions to the 15-puzzle and least-conflicted superqueens placements, exports the explored search tree, and serves both solvers over HTTP.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/puzzlesearch/config.toml)")

	root.AddCommand(c.fifteenCommand())
	root.AddCommand(c.superqueensCommand())
	root.AddCommand(c.treeCommand())
	root.AddCommand(c.replayCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.runsCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads --config, or the default location when it is unset.
func (c *CLI) loadConfig() (config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return config.Config{}, err
	}
	c.Logger.Debug("config loaded", "path", c.configPath, "cache", cfg.Cache.Backend, "store", cfg.Store.Backend)
	return cfg, nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner builds a solver runner from cfg. The returned close function
// releases the cache and store.
func (c *CLI) newRunner(ctx context.Context, cfg config.Config, noCache bool) (*solver.Runner, func(), error) {
	ch, keyer, err := newCache(ctx, cfg.Cache, noCache)
	if err != nil {
		return nil, nil, err
	}
	st, err := newStore(ctx, cfg.Store)
	if err != nil {
		ch.Close()
		return nil, nil, err
	}
	closeFn := func() {
		ch.Close()
		_ = st.Close(context.WithoutCancel(ctx))
	}
	return solver.NewRunner(ch, keyer, st, c.Logger), closeFn, nil
}

func newCache(ctx context.Context, cfg config.CacheConfig, noCache bool) (cache.Cache, cache.Keyer, error) {
	keyer := cache.NewDefaultKeyer()
	if cfg.KeyPrefix != "" {
		keyer = cache.NewScopedKeyer(keyer, cfg.KeyPrefix)
	}
	if noCache || cfg.Backend == config.CacheNone {
		return cache.NewNullCache(), keyer, nil
	}

	if cfg.Backend == config.CacheRedis {
		rc, err := cache.NewRedisCache(ctx, cache.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, nil, err
		}
		return rc, keyer, nil
	}

	dir, err := resolveCacheDir(cfg)
	if err != nil {
		return cache.NewNullCache(), keyer, nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return nil, nil, err
	}
	return fc, keyer, nil
}

func newStore(ctx context.Context, cfg config.StoreConfig) (store.Store, error) {
	if cfg.Backend != config.StoreMongo {
		return store.NewMemoryStore(), nil
	}
	return store.NewMongoStore(ctx, store.MongoOptions{
		URI:        cfg.MongoURI,
		Database:   cfg.Database,
		Collection: cfg.Collection,
	})
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/puzzlesearch/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// resolveCacheDir prefers cache.dir from the config file.
func resolveCacheDir(cfg config.CacheConfig) (string, error) {
	if cfg.Dir != "" {
		return cfg.Dir, nil
	}
	return cacheDir()
}
