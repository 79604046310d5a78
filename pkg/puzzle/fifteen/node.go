package fifteen

import (
	"context"

	"github.com/matzehuels/puzzlesearch/pkg/errors"
	"github.com/matzehuels/puzzlesearch/pkg/search"
)

// Node is a sliding-tile search state. Every move costs 1.
type Node struct {
	board Board
	g     int
	h     int
	moved Direction
}

var _ search.Node[*Node, Key] = (*Node)(nil)

// New creates a root node from a board.
func New(b Board) (*Node, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &Node{board: b, h: b.Manhattan()}, nil
}

// FromText parses board text and creates a root node.
func FromText(text string) (*Node, error) {
	b, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return New(b)
}

func newChild(parent *Node, b Board, d Direction) *Node {
	return &Node{board: b, g: parent.g + 1, h: b.Manhattan(), moved: d}
}

// Children slides the blank up, down, left and right, in that order,
// skipping moves that leave the board.
func (n *Node) Children() []*Node {
	children := make([]*Node, 0, len(directions))
	for _, d := range directions {
		if next, ok := n.board.Move(d); ok {
			children = append(children, newChild(n, next, d))
		}
	}
	return children
}

func (n *Node) IsGoal() bool   { return n.board.IsGoal() }
func (n *Node) Heuristic() int { return n.h }
func (n *Node) Cost() int      { return n.g }
func (n *Node) Key() Key       { return n.board.Key() }

// Board returns a copy of the node's board.
func (n *Node) Board() Board { return n.board }

// Moved returns the blank move that produced this node, None for a root.
func (n *Node) Moved() Direction { return n.moved }

func (n *Node) String() string { return n.board.String() }

// Solve runs A* from b.
func Solve(ctx context.Context, b Board, opts ...search.Option) (search.Result[*Node], error) {
	root, err := New(b)
	if err != nil {
		return search.Result[*Node]{}, err
	}
	return search.Search[*Node, Key](ctx, root, opts...)
}

// Moves returns the blank moves along a root-first path.
func Moves(path []*Node) []Direction {
	if len(path) < 2 {
		return nil
	}
	moves := make([]Direction, 0, len(path)-1)
	for _, n := range path[1:] {
		moves = append(moves, n.moved)
	}
	return moves
}

// Replay applies moves to start and returns the resulting board.
func Replay(start Board, moves []Direction) (Board, error) {
	b := start
	for i, d := range moves {
		next, ok := b.Move(d)
		if !ok {
			return b, errors.New(errors.ErrCodeInvalidInput, "move %d (%s) leaves the board", i+1, d)
		}
		b = next
	}
	return b, nil
}
