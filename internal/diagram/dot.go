package diagram

import "github.com/emicklei/dot"

// DOT returns g as Graphviz source, for rendering outside the terminal.
func DOT(g Graph) string {
	d := dot.NewGraph(dot.Directed)
	if g.RankDir != "" {
		d.Attr("rankdir", g.RankDir)
	}

	nodes := make(map[string]dot.Node, len(g.Nodes))
	for _, n := range g.Nodes {
		dn := d.Node(n.ID).Label(n.Label).Attr("shape", string(n.Shape))
		if n.Fill != "" {
			dn.Attr("style", "filled")
			dn.Attr("fillcolor", n.Fill)
		}
		if n.FontColor != "" {
			dn.Attr("fontcolor", n.FontColor)
		}
		if n.Border != "" {
			dn.Attr("color", n.Border)
		}
		nodes[n.ID] = dn
	}

	for _, e := range g.Edges {
		from, okFrom := nodes[e.From]
		to, okTo := nodes[e.To]
		if !okFrom || !okTo {
			continue
		}
		de := d.Edge(from, to)
		if e.Label != "" {
			de.Label(e.Label)
		}
	}
	return d.String()
}
