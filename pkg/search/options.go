package search

import "errors"

// DefaultCheckEvery is how many expansions pass between context checks and
// progress reports.
const DefaultCheckEvery = 1024

// ErrExpansionLimit is returned when the search stops because it reached the
// configured expansion cap before finding a goal or exhausting the frontier.
var ErrExpansionLimit = errors.New("expansion limit reached")

// Progress is a point-in-time summary of a running search.
type Progress struct {
	Expanded  int // nodes taken off the frontier and expanded
	Generated int // children produced by expansions, including discarded ones
	Frontier  int // nodes waiting in the frontier
	Closed    int // distinct keys already expanded
	BestF     int // lowest f in the frontier, -1 when empty
}

// Options defines parameters for the search.
type Options struct {
	// MaxExpansions stops the search with ErrExpansionLimit once this many
	// nodes have been expanded. Zero means unlimited.
	MaxExpansions int

	// CheckEvery sets how many expansions pass between context checks and
	// Progress calls.
	CheckEvery int

	// Progress, when set, is called every CheckEvery expansions and once when
	// the search returns.
	Progress func(Progress)
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithMaxExpansions caps the number of expansions.
func WithMaxExpansions(n int) Option {
	return func(o *Options) { o.MaxExpansions = n }
}

// WithCheckEvery sets the context-check and progress interval.
func WithCheckEvery(n int) Option {
	return func(o *Options) { o.CheckEvery = n }
}

// WithProgress registers a progress callback.
func WithProgress(fn func(Progress)) Option {
	return func(o *Options) { o.Progress = fn }
}

func buildOptions(options []Option) Options {
	opts := Options{CheckEvery: DefaultCheckEvery}
	for _, option := range options {
		option(&opts)
	}
	if opts.CheckEvery <= 0 {
		opts.CheckEvery = DefaultCheckEvery
	}
	if opts.MaxExpansions < 0 {
		opts.MaxExpansions = 0
	}
	return opts
}
