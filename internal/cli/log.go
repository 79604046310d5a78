package cli

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/puzzlesearch/pkg/observability"
	"github.com/matzehuels/puzzlesearch/pkg/search"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Solved in 31 moves (1.234s)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// heartbeat returns a search progress callback that logs at most once per
// interval. The search calls it from a single goroutine.
func heartbeat(l *log.Logger, interval time.Duration) func(search.Progress) {
	var last time.Time
	return func(p search.Progress) {
		now := time.Now()
		if now.Sub(last) < interval {
			return
		}
		last = now
		l.Info("searching",
			"expanded", p.Expanded,
			"frontier", p.Frontier,
			"closed", p.Closed,
			"best_f", p.BestF)
	}
}

// =============================================================================
// Observability hooks
// =============================================================================

// logHooks reports observability events through the CLI logger. serve
// registers it so each search and request leaves a debug trail.
type logHooks struct {
	logger *log.Logger

	mu     sync.Mutex
	hits   int
	misses int
}

var (
	_ observability.SearchHooks = (*logHooks)(nil)
	_ observability.CacheHooks  = (*logHooks)(nil)
	_ observability.HTTPHooks   = (*logHooks)(nil)
)

func (h *logHooks) OnSearchStart(_ context.Context, puzzle, runID string) {
	h.logger.Debug("search start", "puzzle", puzzle, "run", runID)
}

func (h *logHooks) OnSearchProgress(_ context.Context, puzzle, runID string, expanded, frontier int) {
	h.logger.Debug("search progress", "run", runID, "expanded", expanded, "frontier", frontier)
}

func (h *logHooks) OnSearchComplete(_ context.Context, puzzle, runID string, stats observability.SearchStats, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("search incomplete", "puzzle", puzzle, "run", runID, "expanded", stats.Expanded, "duration", d, "err", err)
		return
	}
	h.logger.Debug("search complete", "puzzle", puzzle, "run", runID, "found", stats.Found, "cost", stats.Cost, "expanded", stats.Expanded, "duration", d)
}

func (h *logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.mu.Lock()
	h.hits++
	hits, misses := h.hits, h.misses
	h.mu.Unlock()
	h.logger.Debug("cache hit", "type", keyType, "hits", hits, "misses", misses)
}

func (h *logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.mu.Lock()
	h.misses++
	h.mu.Unlock()
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *logHooks) OnRequest(_ context.Context, method, route string) {}

func (h *logHooks) OnResponse(_ context.Context, method, route string, status int, d time.Duration) {
	level := log.InfoLevel
	if status >= 500 {
		level = log.ErrorLevel
	}
	h.logger.Log(level, "http", "method", method, "route", route, "status", status, "duration", d.Round(time.Microsecond))
}

// register installs h as the search, cache and HTTP hooks.
func (h *logHooks) register() {
	observability.SetSearchHooks(h)
	observability.SetCacheHooks(h)
	observability.SetHTTPHooks(h)
}
