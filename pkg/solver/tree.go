package solver

import (
	"context"
	stderrors "errors"

	"github.com/matzehuels/puzzlesearch/pkg/cache"
	"github.com/matzehuels/puzzlesearch/pkg/errors"
	"github.com/matzehuels/puzzlesearch/pkg/render/treeviz"
	"github.com/matzehuels/puzzlesearch/pkg/search"
)

// Tree output formats.
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
)

// DefaultTreeExpansions caps tree searches when Options.MaxExpansions is zero.
const DefaultTreeExpansions = 500

// TreeOptions configures search-tree export.
type TreeOptions struct {
	Format   string
	MaxNodes int
	Detailed bool
}

// TreeResult is a rendered search tree.
type TreeResult struct {
	Data     []byte
	Complete bool // false when the search was stopped by the cap
	Cached   bool
}

// Tree runs the search and renders the tree it explored. A search stopped by
// the expansion cap still renders what it reached; only complete trees are
// cached.
func (r *Runner) Tree(ctx context.Context, opts Options, topts TreeOptions) (*TreeResult, error) {
	r.applyLogger(&opts)
	if opts.MaxExpansions == 0 {
		opts.MaxExpansions = DefaultTreeExpansions
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if topts.Format == "" {
		topts.Format = FormatSVG
	}
	if topts.Format != FormatDOT && topts.Format != FormatSVG {
		return nil, errors.New(errors.ErrCodeInvalidInput, "invalid format %q (must be one of: dot, svg)", topts.Format)
	}
	p, err := r.prepare(&opts)
	if err != nil {
		return nil, err
	}

	key := r.Keyer.TreeKey(opts.Puzzle, p.input, cache.TreeKeyOpts{
		MaxNodes:      topts.MaxNodes,
		MaxExpansions: opts.MaxExpansions,
		Detailed:      topts.Detailed,
		Format:        topts.Format,
	})
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			return &TreeResult{Data: data, Complete: true, Cached: true}, nil
		}
	}

	att, err := p.run(ctx, opts.searchOptions(opts.Progress))
	complete := err == nil
	if err != nil && !stderrors.Is(err, search.ErrExpansionLimit) {
		return nil, classify(err)
	}

	dot := treeviz.ToDOT(att.tree(), treeviz.Options{Detailed: topts.Detailed, MaxNodes: topts.MaxNodes})
	data := []byte(dot)
	if topts.Format == FormatSVG {
		data, err = treeviz.RenderSVG(ctx, dot)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "render tree")
		}
	}

	if complete {
		_ = r.Cache.Set(ctx, key, data, cache.TTLTree)
	}
	opts.Logger.Info("rendered search tree",
		"puzzle", opts.Puzzle,
		"expanded", att.solution.Expanded,
		"complete", complete,
		"bytes", len(data))
	return &TreeResult{Data: data, Complete: complete}, nil
}
