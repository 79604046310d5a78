package fifteen

import (
	"strconv"
	"strings"

	"github.com/matzehuels/puzzlesearch/pkg/errors"
)

const (
	// Size is the side length of the board.
	Size = 4

	// Cells is the number of cells on the board.
	Cells = Size * Size

	// Blank is the value of the empty cell.
	Blank = 0
)

// Board is a 4×4 grid holding each of the values 0–15 exactly once.
type Board [Size][Size]uint8

// Key is the flattened row-major board, the canonical identity of a state.
type Key [Cells]uint8

// Direction names the way the blank moves.
type Direction uint8

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

// directions is the order in which children are generated.
var directions = [...]Direction{Up, Down, Left, Right}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

func (d Direction) delta() (dr, dc int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	default:
		return 0, 0
	}
}

// ParseDirection parses the names produced by Direction.String.
func ParseDirection(s string) (Direction, error) {
	for _, d := range directions {
		if d.String() == strings.ToLower(strings.TrimSpace(s)) {
			return d, nil
		}
	}
	return None, errors.New(errors.ErrCodeInvalidInput, "unknown direction %q", s)
}

// Goal returns the solved board: 1–15 in row-major order, blank last.
func Goal() Board {
	var b Board
	for i := 0; i < Cells-1; i++ {
		b[i/Size][i%Size] = uint8(i + 1)
	}
	return b
}

// Parse reads a board from whitespace-separated text, one row per line.
// Blank lines are ignored.
//
// Example:
//
//	b, err := fifteen.Parse("1 2 3 4\n5 6 7 8\n9 10 0 11\n13 14 15 12")
func Parse(text string) (Board, error) {
	if err := errors.ValidateBoardText(text); err != nil {
		return Board{}, err
	}

	var cells []int
	rows := 0
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != Size {
			return Board{}, errors.New(errors.ErrCodeInvalidBoard, "row %d has %d values, want %d", rows+1, len(fields), Size)
		}
		for _, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return Board{}, errors.Wrap(errors.ErrCodeInvalidBoard, err, "row %d: invalid value %q", rows+1, f)
			}
			cells = append(cells, v)
		}
		rows++
	}
	if rows != Size {
		return Board{}, errors.New(errors.ErrCodeInvalidBoard, "board has %d rows, want %d", rows, Size)
	}
	return FromCells(cells)
}

// FromCells builds a board from 16 row-major values.
func FromCells(cells []int) (Board, error) {
	if len(cells) != Cells {
		return Board{}, errors.New(errors.ErrCodeInvalidBoard, "board has %d cells, want %d", len(cells), Cells)
	}
	var b Board
	for i, v := range cells {
		if v < 0 || v >= Cells {
			return Board{}, errors.New(errors.ErrCodeInvalidBoard, "value %d out of range 0-%d", v, Cells-1)
		}
		b[i/Size][i%Size] = uint8(v)
	}
	if err := b.Validate(); err != nil {
		return Board{}, err
	}
	return b, nil
}

// Validate checks that every value 0–15 appears exactly once.
func (b Board) Validate() error {
	var seen [Cells]bool
	blanks := 0
	for _, row := range b {
		for _, v := range row {
			if int(v) >= Cells {
				return errors.New(errors.ErrCodeInvalidBoard, "value %d out of range 0-%d", v, Cells-1)
			}
			if v == Blank {
				blanks++
			}
			if seen[v] {
				if v == Blank {
					return errors.New(errors.ErrCodeInvalidBoard, "board has %d empty cells, want exactly one", blanks)
				}
				return errors.New(errors.ErrCodeInvalidBoard, "value %d appears more than once", v)
			}
			seen[v] = true
		}
	}
	return nil
}

// Key returns the canonical identity of the board.
func (b Board) Key() Key {
	var k Key
	for i := 0; i < Cells; i++ {
		k[i] = b[i/Size][i%Size]
	}
	return k
}

// Cells returns the board as 16 row-major values.
func (b Board) Cells() []int {
	out := make([]int, 0, Cells)
	for _, row := range b {
		for _, v := range row {
			out = append(out, int(v))
		}
	}
	return out
}

// BlankAt returns the position of the empty cell.
func (b Board) BlankAt() (row, col int) {
	for i, r := range b {
		for j, v := range r {
			if v == Blank {
				return i, j
			}
		}
	}
	return -1, -1
}

// IsGoal reports whether the board is solved.
func (b Board) IsGoal() bool {
	return b == Goal()
}

// Manhattan returns the sum, over all tiles except the blank, of the distance
// between the tile's cell and its goal cell.
func (b Board) Manhattan() int {
	h := 0
	for i, row := range b {
		for j, v := range row {
			if v == Blank {
				continue
			}
			// Tile v belongs at index v-1, so the goal board scores zero.
			target := int(v) - 1
			h += abs(i-target/Size) + abs(j-target%Size)
		}
	}
	return h
}

// Move slides the blank one cell in direction d. It reports false when the
// blank would leave the board.
func (b Board) Move(d Direction) (Board, bool) {
	row, col := b.BlankAt()
	dr, dc := d.delta()
	r, c := row+dr, col+dc
	if d == None || r < 0 || r >= Size || c < 0 || c >= Size {
		return b, false
	}
	next := b
	next[row][col], next[r][c] = next[r][c], next[row][col]
	return next, true
}

// Solvable reports whether the goal is reachable from b. On an even-width
// board that holds when inversions plus the blank's row counted from the
// bottom (starting at 1) is odd.
func (b Board) Solvable() bool {
	k := b.Key()
	inversions := 0
	for i := 0; i < Cells; i++ {
		if k[i] == Blank {
			continue
		}
		for j := i + 1; j < Cells; j++ {
			if k[j] != Blank && k[j] < k[i] {
				inversions++
			}
		}
	}
	row, _ := b.BlankAt()
	return (inversions+Size-row)%2 == 1
}

// String renders the board with right-aligned cells and the blank left empty.
func (b Board) String() string {
	var sb strings.Builder
	for _, row := range b {
		for _, v := range row {
			sb.WriteByte(' ')
			switch {
			case v == Blank:
				sb.WriteString("  ")
			case v < 10:
				sb.WriteByte(' ')
				sb.WriteString(strconv.Itoa(int(v)))
			default:
				sb.WriteString(strconv.Itoa(int(v)))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
