// Package diagram builds the scope-classification decision tree and renders
// it either graphically (a styled terminal tree) or as a plain text summary.
//
// Which renderer is used is decided once at startup from a Capability; a
// graphical render that fails falls back to text for that call only.
package diagram

import (
	"errors"
	"fmt"
)

// Shape is the node outline, using Graphviz shape names.
type Shape string

// Node shapes used by the decision tree.
const (
	ShapeBox     Shape = "box"
	ShapeEllipse Shape = "ellipse"
	ShapeNote    Shape = "note"
)

// Node is one step of the decision flow.
type Node struct {
	ID    string
	Label string
	Shape Shape
	// Fill is the background colour; empty means unfilled.
	Fill string
	// FontColor is the label colour; empty means the terminal default.
	FontColor string
	// Border is the outline colour; empty means the terminal default.
	Border string
}

// Edge connects two nodes; Label is the answer that leads along it.
type Edge struct {
	From  string
	To    string
	Label string
}

// Graph is a directed diagram laid out top to bottom.
type Graph struct {
	RankDir string
	Nodes   []Node
	Edges   []Edge
}

// Graph validation errors.
var (
	ErrEmptyGraph    = errors.New("graph has no nodes")
	ErrDuplicateNode = errors.New("duplicate node id")
	ErrUnknownNode   = errors.New("edge references unknown node")
	ErrNotATree      = errors.New("graph is not a single-rooted tree")
)

// DecisionTree returns the fixed seven-node flow operators follow to classify
// a fuel record: ownership decides the scope, then vehicle type or fuel payer
// decides which factor applies.
func DecisionTree() Graph {
	return Graph{
		RankDir: "TB",
		Nodes: []Node{
			{ID: "A", Label: "Owned by Massy Energy?", Shape: ShapeBox, Fill: "#002664", FontColor: "#FFFFFF"},
			{ID: "B", Label: "YES: Scope 1 (Direct)", Shape: ShapeEllipse, Border: "#008000"},
			{ID: "C", Label: "NO: Scope 3 (Indirect)", Shape: ShapeEllipse, Border: "#808080"},
			{ID: "D", Label: "What type of vehicle is it?", Shape: ShapeBox},
			{ID: "E", Label: "Who pays for the fuel?", Shape: ShapeBox},
			{ID: "F", Label: "Selection: Diesel/Gasoline", Shape: ShapeNote, Fill: "#D9232D", FontColor: "#FFFFFF"},
			{ID: "G", Label: "Selection: Client/Supplier", Shape: ShapeNote},
		},
		Edges: []Edge{
			{From: "A", To: "B", Label: "Yes"},
			{From: "A", To: "C", Label: "No"},
			{From: "B", To: "D"},
			{From: "C", To: "E"},
			{From: "D", To: "F"},
			{From: "E", To: "G"},
		},
	}
}

// Node returns the node with id.
func (g Graph) Node(id string) (Node, bool) {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// Children returns the edges leaving id, in declaration order.
func (g Graph) Children(id string) []Edge {
	var out []Edge
	for _, e := range g.Edges {
		if e.From == id {
			out = append(out, e)
		}
	}
	return out
}

// Root returns the id of the only node without a parent.
func (g Graph) Root() (string, error) {
	if err := g.Validate(); err != nil {
		return "", err
	}
	hasParent := make(map[string]bool, len(g.Nodes))
	for _, e := range g.Edges {
		hasParent[e.To] = true
	}
	for _, n := range g.Nodes {
		if !hasParent[n.ID] {
			return n.ID, nil
		}
	}
	return "", ErrNotATree
}

// Validate checks that g is a tree: unique ids, edges between known nodes,
// exactly one root, one parent per node and every node reachable.
func (g Graph) Validate() error {
	if len(g.Nodes) == 0 {
		return ErrEmptyGraph
	}

	ids := make(map[string]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		if ids[n.ID] {
			return fmt.Errorf("%w: %q", ErrDuplicateNode, n.ID)
		}
		ids[n.ID] = true
	}

	parents := make(map[string]string, len(g.Edges))
	for _, e := range g.Edges {
		if !ids[e.From] || !ids[e.To] {
			return fmt.Errorf("%w: %s -> %s", ErrUnknownNode, e.From, e.To)
		}
		if p, ok := parents[e.To]; ok {
			return fmt.Errorf("%w: %q has parents %q and %q", ErrNotATree, e.To, p, e.From)
		}
		parents[e.To] = e.From
	}

	if len(g.Edges) != len(g.Nodes)-1 {
		return fmt.Errorf("%w: %d nodes but %d edges", ErrNotATree, len(g.Nodes), len(g.Edges))
	}

	// With n-1 edges and at most one parent each, the graph is a tree iff
	// every node reaches the root without looping.
	for _, n := range g.Nodes {
		seen := map[string]bool{}
		for cur := n.ID; ; {
			if seen[cur] {
				return fmt.Errorf("%w: cycle through %q", ErrNotATree, cur)
			}
			seen[cur] = true
			p, ok := parents[cur]
			if !ok {
				break
			}
			cur = p
		}
	}
	return nil
}
