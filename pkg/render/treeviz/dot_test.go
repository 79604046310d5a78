package treeviz

import (
	"context"
	"strings"
	"testing"
)

// sampleTree is root 0 with children 1 and 2; 2 has child 3, the goal.
func sampleTree() Tree {
	return Tree{
		Nodes: []Node{
			{ID: 0, Parent: -1, Label: "root", G: 0, H: 2, Expanded: true},
			{ID: 1, Parent: 0, Label: "left", G: 1, H: 3},
			{ID: 2, Parent: 0, Label: "right", G: 1, H: 1, Expanded: true},
			{ID: 3, Parent: 2, Label: "goal", G: 2, H: 0},
		},
		Path: []int{0, 2, 3},
	}
}

func TestToDOT_Basic(t *testing.T) {
	dot := ToDOT(sampleTree(), Options{})

	if !strings.HasPrefix(dot, "digraph G {") {
		t.Error("ToDOT() output missing digraph declaration")
	}
	for _, want := range []string{`"0" [label="root"`, `"1" [label="left"`, `"0" -> "1";`} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() output missing %s", want)
		}
	}
	if strings.Contains(dot, "g=") {
		t.Error("ToDOT() without Detailed should not print costs")
	}
}

func TestToDOT_Path(t *testing.T) {
	dot := ToDOT(sampleTree(), Options{})

	if !strings.Contains(dot, `"0" -> "2" [penwidth=3`) {
		t.Error("path edge 0 -> 2 not highlighted")
	}
	if !strings.Contains(dot, `"2" -> "3" [penwidth=3`) {
		t.Error("path edge 2 -> 3 not highlighted")
	}
	if strings.Contains(dot, `"0" -> "1" [penwidth=3`) {
		t.Error("off-path edge 0 -> 1 highlighted")
	}
}

func TestToDOT_Detailed(t *testing.T) {
	dot := ToDOT(sampleTree(), Options{Detailed: true})
	if !strings.Contains(dot, `right\ng=1 h=1 f=2`) {
		t.Errorf("ToDOT() detailed output missing costs:\n%s", dot)
	}
}

func TestToDOT_MaxNodes(t *testing.T) {
	tree := sampleTree()
	tree.Path = nil
	dot := ToDOT(tree, Options{MaxNodes: 2})

	if strings.Contains(dot, `"2" [`) || strings.Contains(dot, `"3" [`) {
		t.Error("nodes past MaxNodes were drawn")
	}
	if strings.Contains(dot, `-> "3"`) {
		t.Error("edge to a dropped node was drawn")
	}

	// Path nodes survive truncation.
	dot = ToDOT(sampleTree(), Options{MaxNodes: 1})
	if !strings.Contains(dot, `"3" [`) {
		t.Error("path node dropped by MaxNodes")
	}
	if strings.Contains(dot, `"1" [`) {
		t.Error("off-path node 1 kept despite MaxNodes")
	}
}

func TestFmtAttrs(t *testing.T) {
	tests := []struct {
		name   string
		node   Node
		onPath bool
		want   string
		count  int
	}{
		{"path", Node{Expanded: true}, true, "#c8e6c9", 3},
		{"expanded", Node{Expanded: true}, false, "label=", 1},
		{"frontier", Node{}, false, "dashed", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := fmtAttrs(tt.node, "x", tt.onPath)
			if len(attrs) != tt.count {
				t.Errorf("fmtAttrs() returned %d attrs, want %d: %v", len(attrs), tt.count, attrs)
			}
			if !strings.Contains(strings.Join(attrs, " "), tt.want) {
				t.Errorf("fmtAttrs() = %v, want it to contain %q", attrs, tt.want)
			}
		})
	}
}

func TestNormalizeViewBox(t *testing.T) {
	tests := []struct {
		name string
		svg  string
		want string
	}{
		{
			name: "with viewBox",
			svg:  `<svg viewBox="10 20 800 600" xmlns="http://www.w3.org/2000/svg">content</svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 800.00 600.00" width="800" height="600">content</svg>`,
		},
		{
			name: "no viewBox",
			svg:  `<svg xmlns="http://www.w3.org/2000/svg">content</svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg">content</svg>`,
		},
		{
			name: "zero dimensions",
			svg:  `<svg viewBox="0 0 0 0">content</svg>`,
			want: `<svg viewBox="0 0 0 0">content</svg>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeViewBox([]byte(tt.svg)); string(got) != tt.want {
				t.Errorf("normalizeViewBox() = %q, want %q", string(got), tt.want)
			}
		})
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(context.Background(), ToDOT(sampleTree(), Options{Detailed: true}))
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("RenderSVG() output missing <svg> tag")
	}
}

func TestRenderSVG_InvalidDOT(t *testing.T) {
	if _, err := RenderSVG(context.Background(), `not valid DOT {{{`); err == nil {
		t.Error("RenderSVG() should return error for invalid DOT")
	}
}
