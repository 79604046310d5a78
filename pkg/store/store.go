// Package store keeps a record of every solver run.
//
// [MemoryStore] serves the CLI and tests; [MongoStore] backs the API server so
// runs survive restarts and can be listed across instances.
package store

import (
	"context"
	"time"

	"github.com/matzehuels/puzzlesearch/pkg/puzzle"
)

// Status is the terminal state of a run.
type Status string

const (
	StatusSolved     Status = "solved"
	StatusNoSolution Status = "no_solution"
	StatusLimit      Status = "limit_exceeded"
	StatusCanceled   Status = "canceled"
	StatusFailed     Status = "failed"
)

// Run is one solver invocation and its outcome.
type Run struct {
	ID              string        `json:"id" bson:"_id"`
	Status          Status        `json:"status" bson:"status"`
	Error           string        `json:"error,omitempty" bson:"error,omitempty"`
	Cached          bool          `json:"cached" bson:"cached"`
	CreatedAt       time.Time     `json:"created_at" bson:"created_at"`
	Duration        time.Duration `json:"duration_ns" bson:"duration_ns"`
	puzzle.Solution `bson:",inline"`
}

// ListOptions filters List.
type ListOptions struct {
	Puzzle string // empty matches every puzzle
	Limit  int    // zero means DefaultListLimit
}

// DefaultListLimit bounds List when no limit is given.
const DefaultListLimit = 50

func (o ListOptions) limit() int {
	if o.Limit <= 0 {
		return DefaultListLimit
	}
	return o.Limit
}

// Store persists runs.
type Store interface {
	// Save inserts or replaces a run by ID.
	Save(ctx context.Context, run *Run) error

	// Get returns the run with id or an ErrCodeRunNotFound error.
	Get(ctx context.Context, id string) (*Run, error)

	// List returns runs newest first.
	List(ctx context.Context, opts ListOptions) ([]*Run, error)

	// Close releases the store.
	Close(ctx context.Context) error
}
