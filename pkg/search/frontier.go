package search

// frontierItem references an arena entry waiting to be expanded.
type frontierItem struct {
	id int // arena index; lower ids were inserted first
	f  int
}

// frontier is a container/heap min-heap ordered by f, then insertion order.
// Items are never re-prioritised, so no heap index bookkeeping is needed.
type frontier []frontierItem

func (q frontier) Len() int { return len(q) }

func (q frontier) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].id < q[j].id
}

func (q frontier) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *frontier) Push(x any) {
	*q = append(*q, x.(frontierItem))
}

func (q *frontier) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// peek returns the minimum item without removing it.
func (q frontier) peek() (frontierItem, bool) {
	if len(q) == 0 {
		return frontierItem{}, false
	}
	return q[0], true
}
