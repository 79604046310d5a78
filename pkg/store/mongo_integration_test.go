//go:build integration

package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/puzzlesearch/pkg/errors"
	"github.com/matzehuels/puzzlesearch/pkg/puzzle"
)

func TestMongoStore_Integration(t *testing.T) {
	uri := os.Getenv("PUZZLESEARCH_MONGO_URI")
	if uri == "" {
		t.Skip("PUZZLESEARCH_MONGO_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	s, err := NewMongoStore(ctx, MongoOptions{
		URI:        uri,
		Database:   "puzzlesearch_test",
		Collection: "runs_" + uuid.NewString()[:8],
	})
	if err != nil {
		t.Fatalf("NewMongoStore: %v", err)
	}
	defer func() {
		_ = s.coll.Drop(ctx)
		_ = s.Close(ctx)
	}()

	run := newRun(uuid.Must(uuid.NewV7()).String(), puzzle.Fifteen, time.Now().UTC().Truncate(time.Millisecond))
	run.Moves = []string{"right", "down"}
	if err := s.Save(ctx, run); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Get(ctx, run.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Puzzle != puzzle.Fifteen || got.Cost != 2 || len(got.Moves) != 2 {
		t.Errorf("Get = %+v", got)
	}
	if !got.CreatedAt.Equal(run.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, run.CreatedAt)
	}

	runs, err := s.List(ctx, ListOptions{Puzzle: puzzle.Fifteen})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(runs) != 1 || runs[0].ID != run.ID {
		t.Errorf("List = %v, want [%s]", runs, run.ID)
	}

	if _, err := s.Get(ctx, "missing"); !errors.Is(err, errors.ErrCodeRunNotFound) {
		t.Errorf("Get(missing) error = %v, want %v", err, errors.ErrCodeRunNotFound)
	}
}
