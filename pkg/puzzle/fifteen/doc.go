// Package fifteen implements the 4×4 sliding-tile puzzle as a search state space.
//
// A [Board] holds the values 0–15 exactly once; 0 is the empty cell. The goal
// is 1–15 in row-major order with the empty cell in the bottom-right corner.
//
// # Moves
//
// A move slides the empty cell one step up, down, left or right. [Node.Children]
// emits the legal moves in exactly that order, and every move costs 1.
//
// # Heuristic
//
// [Board.Manhattan] sums, over all tiles, the distance between a tile's cell
// and its goal cell. It never overestimates and changes by exactly one per move,
// so A* with it returns optimal solutions even without re-opening closed states.
//
// # Solvability
//
// Half of all boards cannot reach the goal. [Board.Solvable] decides this from
// permutation parity; searching an unsolvable board explores the whole reachable
// half of the state space, so callers should cap expansions.
//
// # Text Format
//
// [Parse] reads four lines of four whitespace-separated values, 0 for the
// empty cell:
//
//	1 2 3 4
//	5 6 7 8
//	9 10 0 11
//	13 14 15 12
//
// [Board.String] right-aligns every value in a three-character cell and leaves
// the empty cell blank, so its output is meant for display rather than input.
package fifteen
