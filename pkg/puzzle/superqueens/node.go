package superqueens

import (
	"context"
	"strings"

	"github.com/kelindar/bitmap"

	"github.com/matzehuels/puzzlesearch/pkg/errors"
	"github.com/matzehuels/puzzlesearch/pkg/search"
)

// Square is a board position. Row 0 is the top row, column 0 the left column.
type Square struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// knightOffsets are the knight moves that reach an earlier row.
var knightOffsets = [...]Square{{-1, -2}, {-1, 2}, {-2, -1}, {-2, 1}}

// Node is a partial placement: one queen per row for rows 0..k-1.
type Node struct {
	n      int
	queens []Square
	cols   bitmap.Bitmap
	g      int
}

var _ search.Node[*Node, string] = (*Node)(nil)

// New creates a root placement on an n×n board. placed, when given, must fill
// rows 0, 1, ... in order with distinct in-range columns. The root's cost is
// always zero.
func New(n int, placed ...Square) (*Node, error) {
	if err := errors.ValidateBoardSize(n); err != nil {
		return nil, err
	}
	if len(placed) > n {
		return nil, errors.New(errors.ErrCodeInvalidPlacement, "%d queens do not fit on a %d×%d board", len(placed), n, n)
	}

	node := &Node{n: n, queens: make([]Square, 0, len(placed))}
	for i, sq := range placed {
		if sq.Row != i {
			return nil, errors.New(errors.ErrCodeInvalidPlacement, "queen %d is on row %d, want row %d", i+1, sq.Row, i)
		}
		if sq.Col < 0 || sq.Col >= n {
			return nil, errors.New(errors.ErrCodeInvalidPlacement, "queen %d column %d out of range 0-%d", i+1, sq.Col, n-1)
		}
		if node.cols.Contains(uint32(sq.Col)) {
			return nil, errors.New(errors.ErrCodeInvalidPlacement, "column %d holds more than one queen", sq.Col)
		}
		node.cols.Set(uint32(sq.Col))
		node.queens = append(node.queens, sq)
	}
	return node, nil
}

// Children places a queen on the next row in every free column, left to right.
// Each child costs the number of earlier queens the new one attacks.
func (n *Node) Children() []*Node {
	if len(n.queens) >= n.n {
		return nil
	}
	row := len(n.queens)
	children := make([]*Node, 0, n.n-n.cols.Count())
	for col := 0; col < n.n; col++ {
		if n.cols.Contains(uint32(col)) {
			continue
		}
		children = append(children, n.place(Square{Row: row, Col: col}))
	}
	return children
}

func (n *Node) place(sq Square) *Node {
	child := &Node{
		n:      n.n,
		queens: make([]Square, len(n.queens), len(n.queens)+1),
		cols:   n.cols.Clone(nil),
		g:      n.g + n.attacks(sq),
	}
	copy(child.queens, n.queens)
	child.queens = append(child.queens, sq)
	child.cols.Set(uint32(sq.Col))
	return child
}

// attacks counts the placed queens that sq attacks along a diagonal or by a
// knight move. Queens only sit on earlier rows, so only upward lines are
// scanned.
func (n *Node) attacks(sq Square) int {
	count := 0
	for d := 1; d <= sq.Row; d++ {
		col := n.queens[sq.Row-d].Col
		if col == sq.Col-d || col == sq.Col+d {
			count++
		}
	}
	for _, off := range knightOffsets {
		r, c := sq.Row+off.Row, sq.Col+off.Col
		if r >= 0 && c >= 0 && c < n.n && n.queens[r].Col == c {
			count++
		}
	}
	return count
}

// IsGoal reports whether all n queens are placed with no shared row or column.
// Diagonal and knight attacks are allowed; the search minimises them through
// the path cost.
func (n *Node) IsGoal() bool {
	if len(n.queens) != n.n {
		return false
	}
	var rows, cols bitmap.Bitmap
	for _, q := range n.queens {
		if rows.Contains(uint32(q.Row)) || cols.Contains(uint32(q.Col)) {
			return false
		}
		rows.Set(uint32(q.Row))
		cols.Set(uint32(q.Col))
	}
	return true
}

// Heuristic is zero, so the search orders purely by conflict cost.
func (n *Node) Heuristic() int { return 0 }

func (n *Node) Cost() int { return n.g }

// Key encodes the placed columns row by row.
func (n *Node) Key() string {
	b := make([]byte, len(n.queens))
	for i, q := range n.queens {
		b[i] = byte(q.Col)
	}
	return string(b)
}

// Size returns the board side length.
func (n *Node) Size() int { return n.n }

// Queens returns a copy of the placed queens, in row order.
func (n *Node) Queens() []Square {
	out := make([]Square, len(n.queens))
	copy(out, n.queens)
	return out
}

// Conflicts counts every attacking pair among the placed queens.
func (n *Node) Conflicts() int {
	total := 0
	for i, a := range n.queens {
		for _, b := range n.queens[i+1:] {
			if Attacks(a, b) {
				total++
			}
		}
	}
	return total
}

// Attacks reports whether two queens on different rows and columns attack each
// other diagonally or by a knight move.
func Attacks(a, b Square) bool {
	dr, dc := abs(a.Row-b.Row), abs(a.Col-b.Col)
	if dr == 0 || dc == 0 {
		return false
	}
	return dr == dc || (dr == 1 && dc == 2) || (dr == 2 && dc == 1)
}

// String draws the board with " Q " for queens and " . " for empty squares.
func (n *Node) String() string {
	var sb strings.Builder
	for r := 0; r < n.n; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < n.n; c++ {
			if r < len(n.queens) && n.queens[r].Col == c {
				sb.WriteString(" Q ")
			} else {
				sb.WriteString(" . ")
			}
		}
	}
	return sb.String()
}

// Solve places n queens with the fewest attacking pairs.
func Solve(ctx context.Context, n int, opts ...search.Option) (search.Result[*Node], error) {
	root, err := New(n)
	if err != nil {
		return search.Result[*Node]{}, err
	}
	return search.Search[*Node, string](ctx, root, opts...)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
