package search

import (
	"container/heap"
	"fmt"
	"slices"
)

// Snapshot exposes the per-iteration state of the search.
type Snapshot[N any] struct {
	Current   N   // node popped in this step; zero value when CurrentID is -1
	CurrentID int // arena index of Current, -1 when nothing was popped
	Done      bool
	Found     bool
	Progress  Progress
	StepIndex int
}

// Stepper drives the search one expansion at a time.
//
// A Stepper is not safe for concurrent use.
type Stepper[N Node[N, K], K comparable] struct {
	opts Options

	arena    []Entry[N]
	frontier frontier
	open     map[K]struct{}
	closed   map[K]struct{}

	steps     int
	expanded  int
	generated int
	done      bool
	found     bool
	goal      int
}

// NewStepper creates a stepper whose frontier holds only root.
func NewStepper[N Node[N, K], K comparable](root N, options ...Option) *Stepper[N, K] {
	s := &Stepper[N, K]{
		opts:   buildOptions(options),
		open:   make(map[K]struct{}),
		closed: make(map[K]struct{}),
		goal:   -1,
	}
	heap.Init(&s.frontier)
	s.push(root, -1)
	return s
}

func (s *Stepper[N, K]) push(n N, parent int) {
	h := n.Heuristic()
	if h < 0 {
		panic(fmt.Sprintf("search: negative heuristic %d", h))
	}
	id := len(s.arena)
	g := n.Cost()
	s.arena = append(s.arena, Entry[N]{ID: id, Parent: parent, G: g, H: h, Node: n})
	heap.Push(&s.frontier, frontierItem{id: id, f: g + h})
	s.open[n.Key()] = struct{}{}
}

// Step pops the best frontier node and, unless it is a goal, expands it.
//
// Once the search is done further calls return the final snapshot. When the
// expansion cap is reached Step returns ErrExpansionLimit and leaves the
// frontier untouched.
func (s *Stepper[N, K]) Step() (Snapshot[N], error) {
	if s.done {
		return s.snapshot(-1), nil
	}
	if s.frontier.Len() == 0 {
		s.done = true
		return s.snapshot(-1), nil
	}

	s.steps++
	item := heap.Pop(&s.frontier).(frontierItem)
	current := s.arena[item.id]
	key := current.Node.Key()
	if _, ok := s.closed[key]; ok {
		panic(fmt.Sprintf("search: key %v popped after it was closed", key))
	}

	if current.Node.IsGoal() {
		s.done, s.found, s.goal = true, true, item.id
		return s.snapshot(item.id), nil
	}

	if s.opts.MaxExpansions > 0 && s.expanded >= s.opts.MaxExpansions {
		heap.Push(&s.frontier, item)
		s.steps--
		return s.snapshot(-1), ErrExpansionLimit
	}

	delete(s.open, key)
	s.closed[key] = struct{}{}
	s.arena[item.id].Expanded = true
	s.expanded++

	for _, child := range current.Node.Children() {
		s.generated++
		if child.Cost() < current.G {
			panic(fmt.Sprintf("search: child cost %d below parent cost %d", child.Cost(), current.G))
		}
		childKey := child.Key()
		if _, ok := s.closed[childKey]; ok {
			continue
		}
		if _, ok := s.open[childKey]; ok {
			continue
		}
		s.push(child, item.id)
	}

	return s.snapshot(item.id), nil
}

func (s *Stepper[N, K]) snapshot(id int) Snapshot[N] {
	snap := Snapshot[N]{
		CurrentID: id,
		Done:      s.done,
		Found:     s.found,
		Progress:  s.Progress(),
		StepIndex: s.steps,
	}
	if id >= 0 {
		snap.Current = s.arena[id].Node
	}
	return snap
}

// Progress returns the current counters.
func (s *Stepper[N, K]) Progress() Progress {
	p := Progress{
		Expanded:  s.expanded,
		Generated: s.generated,
		Frontier:  s.frontier.Len(),
		Closed:    len(s.closed),
		BestF:     -1,
	}
	if top, ok := s.frontier.peek(); ok {
		p.BestF = top.f
	}
	return p
}

// Done reports whether the search has terminated, with or without a goal.
func (s *Stepper[N, K]) Done() bool { return s.done }

// GoalID returns the arena index of the goal, or -1 if none was found.
func (s *Stepper[N, K]) GoalID() int { return s.goal }

// PathIDs returns the arena indices from the root to id, root first.
func (s *Stepper[N, K]) PathIDs(id int) []int {
	if id < 0 || id >= len(s.arena) {
		return nil
	}
	var ids []int
	for cur := id; cur >= 0; cur = s.arena[cur].Parent {
		ids = append(ids, cur)
	}
	slices.Reverse(ids)
	return ids
}

// Path returns the nodes from the root to id, root first.
func (s *Stepper[N, K]) Path(id int) []N {
	ids := s.PathIDs(id)
	if ids == nil {
		return nil
	}
	path := make([]N, len(ids))
	for i, idx := range ids {
		path[i] = s.arena[idx].Node
	}
	return path
}

// Tree returns a copy of the search tree arena in insertion order.
func (s *Stepper[N, K]) Tree() []Entry[N] {
	return slices.Clone(s.arena)
}

// Result summarises the search so far. Path and Cost are only set once a goal
// has been found.
func (s *Stepper[N, K]) Result() Result[N] {
	res := Result[N]{
		Expanded:  s.expanded,
		Generated: s.generated,
		Found:     s.found,
	}
	if s.found {
		res.Path = s.Path(s.goal)
		res.Cost = s.arena[s.goal].G
	}
	return res
}
