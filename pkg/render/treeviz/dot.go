package treeviz

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/puzzlesearch/pkg/search"
)

// Node is one vertex of a drawn search tree.
type Node struct {
	ID       int
	Parent   int // -1 for the root
	Label    string
	G, H     int
	Expanded bool
}

// Tree is a search tree plus the solution path through it.
type Tree struct {
	Nodes []Node
	Path  []int // node IDs, root first; empty when no goal was found
}

// FromEntries converts search arena entries. path holds arena indices, as
// returned by Stepper.PathIDs.
func FromEntries[N fmt.Stringer](entries []search.Entry[N], path []int) Tree {
	t := Tree{Nodes: make([]Node, len(entries)), Path: path}
	for i, e := range entries {
		t.Nodes[i] = Node{
			ID:       e.ID,
			Parent:   e.Parent,
			Label:    e.Node.String(),
			G:        e.G,
			H:        e.H,
			Expanded: e.Expanded,
		}
	}
	return t
}

// Options configures tree rendering.
type Options struct {
	// Detailed adds g, h and f below each state.
	Detailed bool

	// MaxNodes limits how many nodes are drawn. Zero draws every node.
	MaxNodes int
}

// ToDOT converts a tree to Graphviz DOT source.
func ToDOT(t Tree, opts Options) string {
	onPath := make(map[int]bool, len(t.Path))
	for _, id := range t.Path {
		onPath[id] = true
	}
	keep := func(id int) bool {
		return opts.MaxNodes <= 0 || id < opts.MaxNodes || onPath[id]
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontname=\"Courier\", fontsize=14];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.25;\n")
	buf.WriteString("\n")

	for _, n := range t.Nodes {
		if !keep(n.ID) {
			continue
		}
		attrs := fmtAttrs(n, fmtLabel(n, opts.Detailed), onPath[n.ID])
		fmt.Fprintf(&buf, "  \"%d\" [%s];\n", n.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, n := range t.Nodes {
		if n.Parent < 0 || !keep(n.ID) || !keep(n.Parent) {
			continue
		}
		if onPath[n.ID] && onPath[n.Parent] {
			fmt.Fprintf(&buf, "  \"%d\" -> \"%d\" [penwidth=3, color=\"#2e7d32\"];\n", n.Parent, n.ID)
		} else {
			fmt.Fprintf(&buf, "  \"%d\" -> \"%d\";\n", n.Parent, n.ID)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n Node, detailed bool) string {
	label := strings.TrimRight(n.Label, "\n")
	if !detailed {
		return label
	}
	return fmt.Sprintf("%s\ng=%d h=%d f=%d", label, n.G, n.H, n.G+n.H)
}

func fmtAttrs(n Node, label string, onPath bool) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	switch {
	case onPath:
		attrs = append(attrs, "fillcolor=\"#c8e6c9\"", "color=\"#2e7d32\"")
	case !n.Expanded:
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey")
	}
	return attrs
}

// RenderSVG renders DOT source to SVG in-process.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root element so the drawing starts at the
// origin and carries explicit pixel dimensions.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
