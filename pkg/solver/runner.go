package solver

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/puzzlesearch/pkg/cache"
	"github.com/matzehuels/puzzlesearch/pkg/errors"
	"github.com/matzehuels/puzzlesearch/pkg/observability"
	"github.com/matzehuels/puzzlesearch/pkg/puzzle"
	"github.com/matzehuels/puzzlesearch/pkg/puzzle/fifteen"
	"github.com/matzehuels/puzzlesearch/pkg/puzzle/superqueens"
	"github.com/matzehuels/puzzlesearch/pkg/render/treeviz"
	"github.com/matzehuels/puzzlesearch/pkg/search"
	"github.com/matzehuels/puzzlesearch/pkg/store"
)

// Runner executes solve requests with caching and run recording.
//
// The Runner holds no per-request state; one instance may serve many
// goroutines as long as its Cache and Store are safe for concurrent use.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Store  store.Store
	Logger *log.Logger
}

// NewRunner creates a runner. Nil arguments fall back to a NullCache, the
// DefaultKeyer, a MemoryStore and log.Default().
func NewRunner(c cache.Cache, keyer cache.Keyer, st store.Store, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if st == nil {
		st = store.NewMemoryStore()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Store: st, Logger: logger}
}

// Result is the outcome of Solve.
type Result struct {
	RunID    string          `json:"run_id"`
	Solution puzzle.Solution `json:"solution"`
	Cached   bool            `json:"cached"`
	Duration time.Duration   `json:"duration_ns"`
}

// problem is a validated request bound to its puzzle implementation.
type problem struct {
	input string
	run   func(ctx context.Context, so []search.Option) (attempt, error)
}

// attempt is what one search produced, complete or not.
type attempt struct {
	solution puzzle.Solution
	tree     func() treeviz.Tree
}

type stringNode[N any, K comparable] interface {
	search.Node[N, K]
	fmt.Stringer
}

func runSearch[N stringNode[N, K], K comparable](ctx context.Context, name, input string, root N, so []search.Option) (attempt, search.Result[N], error) {
	stepper := search.NewStepper[N, K](root, so...)
	res, err := stepper.Run(ctx)

	sol := puzzle.Solution{
		Puzzle:    name,
		Input:     input,
		Found:     res.Found,
		Cost:      res.Cost,
		Expanded:  res.Expanded,
		Generated: res.Generated,
	}
	for _, n := range res.Path {
		sol.States = append(sol.States, n.String())
	}
	tree := func() treeviz.Tree {
		return treeviz.FromEntries(stepper.Tree(), stepper.PathIDs(stepper.GoalID()))
	}
	return attempt{solution: sol, tree: tree}, res, err
}

func (r *Runner) prepare(opts *Options) (*problem, error) {
	switch opts.Puzzle {
	case puzzle.Fifteen:
		board, err := fifteen.Parse(opts.Board)
		if err != nil {
			return nil, err
		}
		if opts.RejectUnsolvable && !board.Solvable() {
			return nil, errors.New(errors.ErrCodeUnsolvable, "board cannot reach the goal (odd permutation parity)")
		}
		root, err := fifteen.New(board)
		if err != nil {
			return nil, err
		}
		input := canonicalBoard(board)
		return &problem{
			input: input,
			run: func(ctx context.Context, so []search.Option) (attempt, error) {
				att, res, err := runSearch[*fifteen.Node, fifteen.Key](ctx, opts.Puzzle, input, root, so)
				for _, d := range fifteen.Moves(res.Path) {
					att.solution.Moves = append(att.solution.Moves, d.String())
				}
				return att, err
			},
		}, nil

	case puzzle.Superqueens:
		root, err := superqueens.New(opts.N, opts.Placed...)
		if err != nil {
			return nil, err
		}
		input := canonicalPlacement(opts.N, opts.Placed)
		return &problem{
			input: input,
			run: func(ctx context.Context, so []search.Option) (attempt, error) {
				att, res, err := runSearch[*superqueens.Node, string](ctx, opts.Puzzle, input, root, so)
				if res.Found {
					goal := res.Path[len(res.Path)-1]
					att.solution.Queens = goal.Queens()
					att.solution.Conflicts = goal.Conflicts()
				}
				return att, err
			},
		}, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidPuzzle, "unknown puzzle %q", opts.Puzzle)
}

// Solve runs one request. For LIMIT_EXCEEDED and CANCELED errors the partial
// Result is returned together with the error.
func (r *Runner) Solve(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	p, err := r.prepare(&opts)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	res := &Result{RunID: uuid.Must(uuid.NewV7()).String()}
	logger := opts.Logger.With("run", res.RunID, "puzzle", opts.Puzzle)
	key := r.Keyer.SolutionKey(opts.Puzzle, p.input)

	if !opts.Refresh {
		if sol, ok := r.cachedSolution(ctx, key); ok {
			res.Solution = sol
			res.Cached = true
			res.Duration = time.Since(start)
			r.record(ctx, res, nil, logger)
			logger.Info("solution from cache", "cost", sol.Cost, "found", sol.Found)
			return res, nil
		}
	}

	searchCtx := ctx
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		searchCtx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	hooks := observability.Search()
	hooks.OnSearchStart(ctx, opts.Puzzle, res.RunID)
	progress := func(pr search.Progress) {
		hooks.OnSearchProgress(ctx, opts.Puzzle, res.RunID, pr.Expanded, pr.Frontier)
		if opts.Progress != nil {
			opts.Progress(pr)
		}
	}

	logger.Debug("search started", "input", p.input, "max_expansions", opts.MaxExpansions)
	att, err := p.run(searchCtx, opts.searchOptions(progress))
	err = classify(err)
	res.Solution = att.solution
	res.Duration = time.Since(start)

	hooks.OnSearchComplete(ctx, opts.Puzzle, res.RunID, observability.SearchStats{
		Expanded:  res.Solution.Expanded,
		Generated: res.Solution.Generated,
		Cost:      res.Solution.Cost,
		Found:     res.Solution.Found,
	}, res.Duration, err)

	if err == nil {
		r.cacheSolution(ctx, key, res.Solution)
	}
	r.record(ctx, res, err, logger)

	if err != nil {
		logger.Warn("search stopped", "expanded", res.Solution.Expanded, "duration", res.Duration, "err", errors.UserMessage(err))
		return res, err
	}
	logger.Info("search finished",
		"found", res.Solution.Found,
		"cost", res.Solution.Cost,
		"expanded", res.Solution.Expanded,
		"duration", res.Duration.Round(time.Millisecond))
	return res, nil
}

func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

func (r *Runner) cachedSolution(ctx context.Context, key string) (puzzle.Solution, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, "solution")
		return puzzle.Solution{}, false
	}
	var sol puzzle.Solution
	if err := json.Unmarshal(data, &sol); err != nil {
		observability.Cache().OnCacheMiss(ctx, "solution")
		return puzzle.Solution{}, false
	}
	observability.Cache().OnCacheHit(ctx, "solution")
	return sol, true
}

func (r *Runner) cacheSolution(ctx context.Context, key string, sol puzzle.Solution) {
	data, err := json.Marshal(sol)
	if err != nil {
		return
	}
	if err := r.Cache.Set(ctx, key, data, cache.TTLSolution); err != nil {
		r.Logger.Warn("cache write failed", "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, "solution", len(data))
}

// record saves the run. Store failures are logged, never returned: the
// search result is still valid without its archive entry.
func (r *Runner) record(ctx context.Context, res *Result, runErr error, logger *log.Logger) {
	run := &store.Run{
		ID:        res.RunID,
		Status:    status(res.Solution, runErr),
		Cached:    res.Cached,
		CreatedAt: time.Now().UTC(),
		Duration:  res.Duration,
		Solution:  res.Solution,
	}
	if runErr != nil {
		run.Error = errors.UserMessage(runErr)
	}

	saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := r.Store.Save(saveCtx, run); err != nil {
		logger.Warn("run not recorded", "err", err)
	}
}

func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case stderrors.Is(err, search.ErrExpansionLimit):
		return errors.Wrap(errors.ErrCodeLimitExceeded, err, "search stopped before finishing")
	case stderrors.Is(err, context.Canceled), stderrors.Is(err, context.DeadlineExceeded):
		return errors.Wrap(errors.ErrCodeCanceled, err, "search canceled")
	default:
		return errors.Wrap(errors.ErrCodeInternal, err, "search failed")
	}
}

func status(sol puzzle.Solution, err error) store.Status {
	switch errors.GetCode(err) {
	case "":
		if err != nil {
			return store.StatusFailed
		}
		if sol.Found {
			return store.StatusSolved
		}
		return store.StatusNoSolution
	case errors.ErrCodeLimitExceeded:
		return store.StatusLimit
	case errors.ErrCodeCanceled:
		return store.StatusCanceled
	default:
		return store.StatusFailed
	}
}
