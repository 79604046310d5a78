package search

// Node is a vertex of a state space as seen by the engine.
//
// N is the concrete node type (Children returns values of it) and K is the
// canonical key type used for deduplication. Implementations must be immutable
// after construction: Children builds fresh nodes and never touches the
// receiver.
type Node[N any, K comparable] interface {
	// Children returns the successors reachable by one move. Each child
	// carries its own accumulated cost, which must not be lower than the
	// receiver's. An empty slice means there are no legal moves.
	Children() []N

	// IsGoal reports whether the node's state satisfies the goal test.
	IsGoal() bool

	// Heuristic returns the estimated remaining cost to a goal. It is a pure
	// function of the state and must never be negative.
	Heuristic() int

	// Cost returns g, the accumulated path cost from the root.
	Cost() int

	// Key returns the canonical, path-independent identity of the state.
	Key() K
}

// Entry is one node of the search tree arena.
type Entry[N any] struct {
	ID       int // arena index, also the insertion order
	Parent   int // arena index of the parent, -1 for the root
	G        int
	H        int
	Node     N
	Expanded bool
}

// F returns the ordering priority g + h.
func (e Entry[N]) F() int { return e.G + e.H }
