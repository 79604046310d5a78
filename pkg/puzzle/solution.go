package puzzle

import "github.com/matzehuels/puzzlesearch/pkg/puzzle/superqueens"

// Solution is the serialisable outcome of one search. It is what the solver
// caches, what the API returns and what run records embed.
type Solution struct {
	Puzzle    string `json:"puzzle" bson:"puzzle"`
	Input     string `json:"input" bson:"input"`
	Found     bool   `json:"found" bson:"found"`
	Cost      int    `json:"cost" bson:"cost"`
	Expanded  int    `json:"expanded" bson:"expanded"`
	Generated int    `json:"generated" bson:"generated"`

	// Moves lists the blank moves of a sliding-tile solution.
	Moves []string `json:"moves,omitempty" bson:"moves,omitempty"`

	// Queens is the final placement of a superqueens solution.
	Queens []superqueens.Square `json:"queens,omitempty" bson:"queens,omitempty"`

	// Conflicts counts every attacking pair in the final placement, fixed
	// queens included. Cost only covers the queens the search placed.
	Conflicts int `json:"conflicts,omitempty" bson:"conflicts,omitempty"`

	// States renders every state on the solution path, root first.
	States []string `json:"states,omitempty" bson:"states,omitempty"`
}

// Steps returns the number of transitions on the solution path.
func (s Solution) Steps() int {
	if len(s.States) == 0 {
		return 0
	}
	return len(s.States) - 1
}
