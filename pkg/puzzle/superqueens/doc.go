// Package superqueens places n "superqueens" on an n×n board.
//
// A superqueen attacks like a queen and also like a knight. Placements fill
// the board one row at a time, top to bottom, and never reuse a column, so row
// and column attacks cannot occur. The cost of placing a queen is the number of
// earlier queens it attacks diagonally or by a knight move; a complete
// placement with the lowest total cost is the answer.
//
// For n ≥ 10 conflict-free placements exist and the optimal cost is zero. For
// smaller boards the search returns the least-conflicted arrangement.
//
// The heuristic is zero, so A* behaves as uniform-cost search here.
package superqueens
