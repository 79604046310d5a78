// Package search provides a generic best-first (A*) search engine over
// abstract state spaces.
//
// The engine knows nothing about the puzzle it solves. A state space is
// described by a [Node] implementation: each node reports its successors,
// whether it is a goal, its heuristic estimate, its accumulated path cost and a
// comparable canonical key. Two nodes with equal keys are the same vertex of
// the search space no matter how they were reached.
//
// # Entry Points
//
//   - [Search]: run the algorithm to completion and get a [Result].
//   - [Stepper]: advance the search one expansion at a time, for interactive
//     viewers and search-tree export.
//
// # Frontier Discipline
//
// The frontier is a binary heap ordered by f = g + h, with ties broken by
// insertion order. A key that has been expanded ("closed") is never expanded
// again, and a key already waiting in the frontier ("open") is never replaced,
// even by a cheaper duplicate. With a consistent heuristic and non-negative
// step costs the first path popped for a goal is optimal.
//
// # Search Tree
//
// Expanded nodes live in an arena indexed by insertion order. Every entry
// stores the index of the entry it was generated from, so the solution path is
// rebuilt by walking indices back to the root.
//
// # Example
//
//	root, _ := fifteen.FromText("1 2 3 4\n5 6 7 8\n9 10 11 12\n13 14 0 15")
//	res, err := search.Search[*fifteen.Node, fifteen.Key](ctx, root)
//	if err != nil {
//	    return err
//	}
//	if !res.Found {
//	    fmt.Println("no solution")
//	}
package search
