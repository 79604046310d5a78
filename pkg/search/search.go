package search

import "context"

// Result contains the outcome of a search.
//
// A search that exhausts its frontier returns Found == false and a nil Path;
// that is a regular outcome, not an error.
type Result[N any] struct {
	Path      []N // root first, goal last
	Cost      int // g of the goal
	Expanded  int
	Generated int
	Found     bool
}

// Search runs A* from root until a goal is popped or the frontier is empty.
//
// ctx is checked every Options.CheckEvery expansions; cancellation and the
// expansion cap return the partial Result together with ctx.Err() or
// ErrExpansionLimit.
func Search[N Node[N, K], K comparable](ctx context.Context, root N, options ...Option) (Result[N], error) {
	return NewStepper[N, K](root, options...).Run(ctx)
}

// Run steps the search until it terminates.
func (s *Stepper[N, K]) Run(ctx context.Context) (Result[N], error) {
	report := func() {
		if s.opts.Progress != nil {
			s.opts.Progress(s.Progress())
		}
	}

	for i := 0; ; i++ {
		if i%s.opts.CheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				report()
				return s.Result(), err
			}
			if i > 0 {
				report()
			}
		}

		snap, err := s.Step()
		if err != nil {
			report()
			return s.Result(), err
		}
		if snap.Done {
			report()
			return s.Result(), nil
		}
	}
}
