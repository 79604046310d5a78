// Package treeviz draws explored search trees as Graphviz diagrams.
//
// # Usage
//
// Collect the tree from a finished [search.Stepper], then render:
//
//	tree := treeviz.FromEntries(stepper.Tree(), stepper.PathIDs(stepper.GoalID()))
//	dot := treeviz.ToDOT(tree, treeviz.Options{Detailed: true, MaxNodes: 500})
//	svg, err := treeviz.RenderSVG(ctx, dot)
//
// # Styling
//
// Nodes on the solution path are filled green and joined by bold edges.
// Expanded nodes are white; nodes still waiting in the frontier are grey with
// a dashed outline. Labels print the rendered state in a monospace font and,
// with Detailed set, the g, h and f values beneath it.
//
// # Size
//
// Search trees grow quickly. MaxNodes keeps the first nodes in generation
// order plus the whole solution path, so the picture stays connected.
//
// [search.Stepper]: github.com/matzehuels/puzzlesearch/pkg/search.Stepper
package treeviz
