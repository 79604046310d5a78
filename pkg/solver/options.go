package solver

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/puzzlesearch/pkg/errors"
	"github.com/matzehuels/puzzlesearch/pkg/puzzle"
	"github.com/matzehuels/puzzlesearch/pkg/puzzle/fifteen"
	"github.com/matzehuels/puzzlesearch/pkg/puzzle/superqueens"
	"github.com/matzehuels/puzzlesearch/pkg/search"
)

// Options describes one solve request. It doubles as the API request body.
type Options struct {
	Puzzle string `json:"puzzle"`

	// Board is the sliding-tile board text.
	Board string `json:"board,omitempty"`

	// N is the superqueens board size; Placed optionally fixes the first rows.
	N      int                  `json:"n,omitempty"`
	Placed []superqueens.Square `json:"placed,omitempty"`

	MaxExpansions    int           `json:"max_expansions,omitempty"`
	Timeout          time.Duration `json:"-"`
	RejectUnsolvable bool          `json:"reject_unsolvable,omitempty"`
	Refresh          bool          `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	CheckEvery int                   `json:"-"`
	Logger     *log.Logger           `json:"-"`
	Progress   func(search.Progress) `json:"-"`

	validated bool
}

// ValidateAndSetDefaults checks the request and fills in defaults.
// Calling it more than once has no further effect.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	switch o.Puzzle {
	case puzzle.Fifteen:
		if strings.TrimSpace(o.Board) == "" {
			return errors.New(errors.ErrCodeInvalidBoard, "board is required for %s", o.Puzzle)
		}
	case puzzle.Superqueens:
		if err := errors.ValidateBoardSize(o.N); err != nil {
			return err
		}
	case "":
		return errors.New(errors.ErrCodeInvalidPuzzle, "puzzle is required")
	default:
		return errors.New(errors.ErrCodeInvalidPuzzle, "unknown puzzle %q (must be one of: %s, %s)", o.Puzzle, puzzle.Fifteen, puzzle.Superqueens)
	}
	if o.MaxExpansions < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "max_expansions must not be negative")
	}
	if o.CheckEvery <= 0 {
		o.CheckEvery = search.DefaultCheckEvery
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

func (o *Options) searchOptions(progress func(search.Progress)) []search.Option {
	return []search.Option{
		search.WithMaxExpansions(o.MaxExpansions),
		search.WithCheckEvery(o.CheckEvery),
		search.WithProgress(progress),
	}
}

// canonicalBoard renders a parsed board as comma-separated cells.
func canonicalBoard(b fifteen.Board) string {
	cells := b.Cells()
	parts := make([]string, len(cells))
	for i, v := range cells {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// canonicalPlacement renders "n=8" or "n=8;0:3,1:5".
func canonicalPlacement(n int, placed []superqueens.Square) string {
	s := fmt.Sprintf("n=%d", n)
	if len(placed) == 0 {
		return s
	}
	parts := make([]string, len(placed))
	for i, sq := range placed {
		parts[i] = fmt.Sprintf("%d:%d", sq.Row, sq.Col)
	}
	return s + ";" + strings.Join(parts, ",")
}
