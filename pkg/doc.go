// Package pkg provides the core libraries for puzzlesearch.
//
// # Overview
//
// Puzzlesearch solves puzzles by best-first A* search. A generic engine
// explores any state space whose states can list their successors, price the
// step that produced them, and estimate their distance to a goal. Two puzzles
// plug into it: the 15-puzzle and n-superqueens. The pkg directory is
// organized into three areas:
//
//  1. Search - the generic engine and the puzzles that use it
//  2. Orchestration - the solver runner that validates, caches and records
//  3. Infrastructure - caching, run storage, configuration, HTTP, rendering
//
// # Architecture
//
// The typical data flow:
//
//	board text / board size
//	         ↓
//	    [puzzle/fifteen], [puzzle/superqueens] (parse, build the root state)
//	         ↓
//	    [search] (A* over the state space)
//	         ↓
//	    [solver] (cache lookup, run record, hooks)
//	         ↓
//	    CLI output / JSON response / DOT or SVG tree
//
// # Quick Start
//
// Solve a sliding-tile board directly:
//
//	board, _ := fifteen.Parse("1 2 3 4\n5 6 7 8\n9 10 0 11\n13 14 15 12")
//	res, _ := fifteen.Solve(ctx, board)
//	fmt.Println(res.Cost, fifteen.Moves(res.Path)) // 2 [right down]
//
// Or go through the runner to get caching and run records:
//
//	runner := solver.NewRunner(cache.NewNullCache(), nil, store.NewMemoryStore(), logger)
//	res, err := runner.Solve(ctx, solver.Options{Puzzle: puzzle.Superqueens, N: 10})
//
// # Main Packages
//
// ## Search
//
// [search] - Generic A* over any type implementing search.Node. Ties on f
// are broken by insertion order, so results are deterministic. A search.Stepper
// expands one node per call and exposes the explored tree.
//
// [puzzle/fifteen] - The 4×4 sliding-tile puzzle with the Manhattan-distance
// heuristic and a parity check for unsolvable boards.
//
// [puzzle/superqueens] - Placement of n queens that also move like knights,
// minimising attacking pairs.
//
// ## Orchestration
//
// [solver] - Validates requests, keys the cache by canonical input, runs the
// search, records runs and emits [observability] hooks. Used by both the CLI
// and the API so they behave the same.
//
// ## Infrastructure
//
// [cache] - Solution cache: FileCache for the CLI, RedisCache for shared
// deployments, NullCache to disable caching.
//
// [store] - Run records: MemoryStore, or MongoStore to keep history across
// restarts.
//
// [render/treeviz] - Search trees as Graphviz DOT and SVG.
//
// [api] - chi-based JSON API over the solver.
//
// [config] - TOML configuration with defaults and validation.
//
// [errors] - Structured error codes shared by every package.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/search/...             # Specific package
//	go test -run Example ./pkg/...       # Examples only
//	go test -tags integration ./pkg/...  # Include Redis and MongoDB tests
//
// Integration tests read PUZZLESEARCH_REDIS_ADDR and PUZZLESEARCH_MONGO_URI
// and skip when they are unset.
//
// [search]: https://pkg.go.dev/github.com/matzehuels/puzzlesearch/pkg/search
// [puzzle/fifteen]: https://pkg.go.dev/github.com/matzehuels/puzzlesearch/pkg/puzzle/fifteen
// [puzzle/superqueens]: https://pkg.go.dev/github.com/matzehuels/puzzlesearch/pkg/puzzle/superqueens
// [solver]: https://pkg.go.dev/github.com/matzehuels/puzzlesearch/pkg/solver
// [observability]: https://pkg.go.dev/github.com/matzehuels/puzzlesearch/pkg/observability
// [cache]: https://pkg.go.dev/github.com/matzehuels/puzzlesearch/pkg/cache
// [store]: https://pkg.go.dev/github.com/matzehuels/puzzlesearch/pkg/store
// [render/treeviz]: https://pkg.go.dev/github.com/matzehuels/puzzlesearch/pkg/render/treeviz
// [api]: https://pkg.go.dev/github.com/matzehuels/puzzlesearch/pkg/api
// [config]: https://pkg.go.dev/github.com/matzehuels/puzzlesearch/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/puzzlesearch/pkg/errors
package pkg
