package diagram

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
)

// drawTree renders g as a lipgloss tree rooted at its single root node.
func drawTree(g Graph) (string, error) {
	root, err := g.Root()
	if err != nil {
		return "", err
	}
	t, err := buildSubtree(g, root, "")
	if err != nil {
		return "", err
	}
	return t.
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8")).MarginRight(1)).
		String(), nil
}

func buildSubtree(g Graph, id, answer string) (*tree.Tree, error) {
	n, ok := g.Node(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}

	t := tree.Root(nodeLabel(n, answer))
	for _, e := range g.Children(id) {
		child, err := buildSubtree(g, e.To, e.Label)
		if err != nil {
			return nil, err
		}
		t.Child(child)
	}
	return t, nil
}

// nodeStyles returns the style of a node's delimiters (frame) and of its
// text (body). Border colours the frame only; FontColor colours the body.
func nodeStyles(n Node) (frame, body lipgloss.Style) {
	frame = lipgloss.NewStyle()
	body = lipgloss.NewStyle()
	if n.Fill != "" {
		frame = frame.Background(lipgloss.Color(n.Fill))
		body = body.Background(lipgloss.Color(n.Fill))
	}
	if n.FontColor != "" {
		frame = frame.Foreground(lipgloss.Color(n.FontColor))
		body = body.Foreground(lipgloss.Color(n.FontColor))
	}
	if n.Border != "" {
		frame = frame.Foreground(lipgloss.Color(n.Border))
	}
	if n.Shape == ShapeBox {
		frame = frame.Bold(true)
		body = body.Bold(true)
	}
	return frame, body
}

// nodeLabel styles a node by shape: boxes are bracketed questions, ellipses
// are rounded outcomes and notes are factor selections.
func nodeLabel(n Node, answer string) string {
	var open, closing string
	switch n.Shape {
	case ShapeBox:
		open, closing = "[ ", " ]"
	case ShapeEllipse:
		open, closing = "( ", " )"
	case ShapeNote:
		open = "≡ "
	}

	frame, body := nodeStyles(n)
	label := frame.PaddingLeft(1).Render(open) + body.Render(n.Label) + frame.PaddingRight(1).Render(closing)
	if answer != "" {
		label = lipgloss.NewStyle().Italic(true).Render(answer+" →") + " " + label
	}
	return label
}
