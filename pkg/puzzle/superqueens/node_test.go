package superqueens

import (
	"context"
	"testing"

	"github.com/matzehuels/puzzlesearch/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		placed  []Square
		wantErr bool
	}{
		{"empty board", 4, nil, false},
		{"partial", 4, []Square{{0, 1}, {1, 3}}, false},
		{"full", 3, []Square{{0, 0}, {1, 2}, {2, 1}}, false},

		{"zero size", 0, nil, true},
		{"too large", errors.MaxBoardSize + 1, nil, true},
		{"too many queens", 2, []Square{{0, 0}, {1, 1}, {2, 0}}, true},
		{"row skipped", 4, []Square{{0, 0}, {2, 1}}, true},
		{"column out of range", 4, []Square{{0, 4}}, true},
		{"negative column", 4, []Square{{0, -1}}, true},
		{"shared column", 4, []Square{{0, 2}, {1, 2}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := New(tt.n, tt.placed...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrCodeInvalidPlacement) {
					t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidPlacement)
				}
				return
			}
			if node.Cost() != 0 {
				t.Errorf("root Cost() = %d, want 0", node.Cost())
			}
			if len(node.Queens()) != len(tt.placed) {
				t.Errorf("len(Queens()) = %d, want %d", len(node.Queens()), len(tt.placed))
			}
		})
	}
}

func TestChildren(t *testing.T) {
	root, err := New(4, Square{0, 0})
	if err != nil {
		t.Fatal(err)
	}

	children := root.Children()
	if len(children) != 3 {
		t.Fatalf("len(Children()) = %d, want 3", len(children))
	}

	// (1,1) is diagonal to (0,0), (1,2) a knight move away, (1,3) safe.
	wantCols := []int{1, 2, 3}
	wantCost := []int{1, 1, 0}
	for i, c := range children {
		q := c.Queens()
		last := q[len(q)-1]
		if last.Row != 1 || last.Col != wantCols[i] {
			t.Errorf("child %d placed %v, want (1,%d)", i, last, wantCols[i])
		}
		if c.Cost() != wantCost[i] {
			t.Errorf("child %d Cost() = %d, want %d", i, c.Cost(), wantCost[i])
		}
	}
	if len(root.Queens()) != 1 {
		t.Error("Children mutated the parent")
	}
}

func TestChildrenOfCompletePlacement(t *testing.T) {
	node, err := New(2, Square{0, 0}, Square{1, 1})
	if err != nil {
		t.Fatal(err)
	}
	if got := node.Children(); len(got) != 0 {
		t.Errorf("len(Children()) = %d, want 0", len(got))
	}
}

func TestAttacksScansWholeDiagonal(t *testing.T) {
	root, err := New(5, Square{0, 0}, Square{1, 3})
	if err != nil {
		t.Fatal(err)
	}
	// (2,2) attacks (0,0) on the long diagonal and (1,3) on the short one.
	for _, c := range root.Children() {
		q := c.Queens()
		if last := q[len(q)-1]; last.Col == 2 {
			if got := c.Cost() - root.Cost(); got != 2 {
				t.Errorf("placing (2,2) cost %d, want 2", got)
			}
			return
		}
	}
	t.Fatal("no child placed on column 2")
}

func TestIsGoal(t *testing.T) {
	full, _ := New(3, Square{0, 0}, Square{1, 1}, Square{2, 2})
	if !full.IsGoal() {
		t.Error("complete placement with conflicts should be a goal")
	}
	partial, _ := New(3, Square{0, 0})
	if partial.IsGoal() {
		t.Error("partial placement should not be a goal")
	}
}

func TestKey(t *testing.T) {
	a, _ := New(4, Square{0, 1}, Square{1, 3})
	b, _ := New(4, Square{0, 3}, Square{1, 1})
	c, _ := New(4, Square{0, 1}, Square{1, 3})
	if a.Key() == b.Key() {
		t.Error("different placements share a key")
	}
	if a.Key() != c.Key() {
		t.Error("equal placements have different keys")
	}
}

func TestString(t *testing.T) {
	node, _ := New(3, Square{0, 1})
	want := " .  Q  . \n .  .  . \n .  .  . "
	if got := node.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

// bruteForce returns the lowest total conflict count over all permutations.
func bruteForce(n int) int {
	best := -1
	cols := make([]int, n)
	used := make([]bool, n)
	var rec func(row int)
	rec = func(row int) {
		if row == n {
			total := 0
			for i := 0; i < n; i++ {
				for j := i + 1; j < n; j++ {
					if Attacks(Square{i, cols[i]}, Square{j, cols[j]}) {
						total++
					}
				}
			}
			if best < 0 || total < best {
				best = total
			}
			return
		}
		for c := 0; c < n; c++ {
			if used[c] {
				continue
			}
			used[c] = true
			cols[row] = c
			rec(row + 1)
			used[c] = false
		}
	}
	rec(0)
	return best
}

func TestSolveOptimal(t *testing.T) {
	for n := 1; n <= 6; n++ {
		res, err := Solve(context.Background(), n)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		if !res.Found {
			t.Fatalf("n=%d: no solution", n)
		}
		if want := bruteForce(n); res.Cost != want {
			t.Errorf("n=%d: Cost = %d, want %d", n, res.Cost, want)
		}
		goal := res.Path[len(res.Path)-1]
		if got := goal.Conflicts(); got != res.Cost {
			t.Errorf("n=%d: Conflicts() = %d, want path cost %d", n, got, res.Cost)
		}
		if len(res.Path) != n+1 {
			t.Errorf("n=%d: len(Path) = %d, want %d", n, len(res.Path), n+1)
		}
	}
}

func TestSolveSingleQueen(t *testing.T) {
	res, err := Solve(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if res.Cost != 0 {
		t.Errorf("Cost = %d, want 0", res.Cost)
	}
	if got := res.Path[1].Queens(); len(got) != 1 || got[0] != (Square{0, 0}) {
		t.Errorf("placement = %v, want [{0 0}]", got)
	}
}
