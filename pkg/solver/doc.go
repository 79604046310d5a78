// Package solver runs puzzle searches end to end for the CLI and the API.
//
// A [Runner] validates [Options], canonicalises the puzzle input, consults the
// solution cache, runs A* with the configured bounds, records the run in a
// [store.Store] and emits observability hooks. Both entry points go through
// it so that caching and limits behave the same everywhere.
//
// # Usage
//
//	runner := solver.NewRunner(cache, nil, store.NewMemoryStore(), logger)
//	res, err := runner.Solve(ctx, solver.Options{
//	    Puzzle: puzzle.Fifteen,
//	    Board:  "1 2 3 4\n5 6 7 8\n9 10 0 11\n13 14 15 12",
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Solution.Moves) // [right down]
//
// # Caching
//
// Completed searches are cached under the puzzle name and the canonical input,
// so "1 2 3 4 ..." typed with different spacing hits the same entry. Searches
// stopped by the expansion cap or cancellation are never cached.
//
// # Errors
//
// Failures carry [errors.Code] values: INVALID_* for bad input,
// LIMIT_EXCEEDED and CANCELED for stopped searches (the partial [Result] is
// returned alongside), UNSOLVABLE when RejectUnsolvable refuses a board.
//
// [store.Store]: github.com/matzehuels/puzzlesearch/pkg/store.Store
// [errors.Code]: github.com/matzehuels/puzzlesearch/pkg/errors.Code
package solver
