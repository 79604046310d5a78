// Package puzzle groups the state spaces solved by puzzlesearch.
//
// Each subpackage implements [search.Node] for one puzzle:
//
//   - fifteen: the 4×4 sliding-tile puzzle, unit move cost, Manhattan heuristic
//   - superqueens: row-by-row queen placement where each placement costs the
//     number of new diagonal and knight-offset attacks it introduces
//
// Root nodes are only built from raw input (board text, board size). Children
// are built internally by Children and are never constructed by callers.
//
// [search.Node]: github.com/matzehuels/puzzlesearch/pkg/search.Node
package puzzle

// Names of the supported puzzles, as used by the CLI, the cache keys and the API.
const (
	Fifteen     = "fifteen"
	Superqueens = "superqueens"
)

// Valid reports whether name is a supported puzzle.
func Valid(name string) bool {
	return name == Fifteen || name == Superqueens
}
