package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/puzzlesearch/pkg/errors"
	"github.com/matzehuels/puzzlesearch/pkg/puzzle"
	"github.com/matzehuels/puzzlesearch/pkg/solver"
)

// problemFlags select a puzzle instance for commands that work with either
// puzzle (tree, replay).
type problemFlags struct {
	puzzle string
	n      int
	place  string
}

func (f *problemFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.puzzle, "puzzle", "p", puzzle.Fifteen, "puzzle type: fifteen or superqueens")
	cmd.Flags().IntVarP(&f.n, "n", "n", 8, "superqueens board size")
	cmd.Flags().StringVar(&f.place, "place", "", "superqueens: comma-separated columns for the first rows")
	_ = cmd.RegisterFlagCompletionFunc("puzzle", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{puzzle.Fifteen, puzzle.Superqueens}, cobra.ShellCompDirectiveNoFileComp
	})
}

// options builds solver options. Sliding-tile boards come from args or stdin.
func (f *problemFlags) options(cmd *cobra.Command, args []string) (solver.Options, error) {
	switch f.puzzle {
	case puzzle.Fifteen:
		text, err := readBoard(args, cmd.InOrStdin())
		if err != nil {
			return solver.Options{}, err
		}
		return solver.Options{Puzzle: puzzle.Fifteen, Board: text}, nil
	case puzzle.Superqueens:
		if len(args) > 0 {
			return solver.Options{}, errors.New(errors.ErrCodeInvalidInput, "superqueens takes no board file; use --n and --place")
		}
		placed, err := parsePlacement(f.place)
		if err != nil {
			return solver.Options{}, err
		}
		return solver.Options{Puzzle: puzzle.Superqueens, N: f.n, Placed: placed}, nil
	}
	return solver.Options{}, errors.New(errors.ErrCodeInvalidPuzzle, "unknown puzzle %q (must be one of: %s, %s)", f.puzzle, puzzle.Fifteen, puzzle.Superqueens)
}
