// Package cache provides pluggable storage for solved puzzles and rendered
// search trees.
//
// Three backends implement [Cache]:
//   - [FileCache]: sharded JSON files under a directory, used by the CLI
//   - [RedisCache]: a shared Redis instance, used by the API server
//   - [NullCache]: stores nothing, for --no-cache and tests
//
// Keys come from a [Keyer] so callers never build key strings by hand. Inputs
// are canonicalised by the caller before hashing: the same board always maps
// to the same key regardless of whitespace in the original text.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the stored value and whether it was found. A miss is not
	// an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// Default time-to-live values per entry type.
const (
	TTLSolution = 30 * 24 * time.Hour
	TTLTree     = 7 * 24 * time.Hour
)

// Keyer generates cache keys.
type Keyer interface {
	// SolutionKey identifies a solved search for a canonical puzzle input.
	SolutionKey(puzzle, input string) string

	// TreeKey identifies a rendered search tree.
	TreeKey(puzzle, input string, opts TreeKeyOpts) string
}

// TreeKeyOpts holds the options that change a rendered tree.
type TreeKeyOpts struct {
	MaxNodes      int    `json:"max_nodes"`
	MaxExpansions int    `json:"max_expansions"`
	Detailed      bool   `json:"detailed"`
	Format        string `json:"format"`
}

// DefaultKeyer hashes inputs with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// SolutionKey returns "solution:<puzzle>:<hash>".
func (k *DefaultKeyer) SolutionKey(puzzle, input string) string {
	return hashKey("solution:"+puzzle, input)
}

// TreeKey returns "tree:<puzzle>:<hash>".
func (k *DefaultKeyer) TreeKey(puzzle, input string, opts TreeKeyOpts) string {
	return hashKey("tree:"+puzzle, input, opts)
}

var _ Keyer = (*DefaultKeyer)(nil)
