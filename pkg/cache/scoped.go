package cache

// ScopedKeyer prefixes every key of an inner Keyer. The API server uses it to
// keep its entries apart from other tenants of a shared Redis.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "puzzlesearch:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// A nil inner keyer falls back to DefaultKeyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// SolutionKey generates a prefixed solution key.
func (k *ScopedKeyer) SolutionKey(puzzle, input string) string {
	return k.prefix + k.inner.SolutionKey(puzzle, input)
}

// TreeKey generates a prefixed tree key.
func (k *ScopedKeyer) TreeKey(puzzle, input string, opts TreeKeyOpts) string {
	return k.prefix + k.inner.TreeKey(puzzle, input, opts)
}
