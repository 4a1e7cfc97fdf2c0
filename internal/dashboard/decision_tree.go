package dashboard

import "github.com/ecotracks/ecotracks/internal/diagram"

// RenderDecisionTree shows the classification flow. The diagram itself is
// rendered once per pass by the shell and handed in through State.
func RenderDecisionTree(s State) View {
	blocks := []Block{
		Heading{Text: "Logic decision tree (UX)", Level: 2},
		Paragraph{Text: "Logic flow diagram for the operator."},
	}
	blocks = append(blocks, diagramBlocks(s.Diagram)...)
	blocks = append(blocks, Badges{Labels: []string{"Error prevention", "Automatic calculation", "Audit"}})

	return View{Page: DecisionTree, Title: DecisionTree.String(), Blocks: blocks}
}

func diagramBlocks(r diagram.Result) []Block {
	if r.Outcome == diagram.Ok {
		return []Block{Diagram{Text: r.Diagram}}
	}

	var out []Block
	if r.Notice != "" {
		out = append(out, Notice{Level: NoticeWarning, Text: r.Notice})
	}
	if r.Summary != "" {
		out = append(out, Notice{Level: NoticeInfo, Text: r.Summary})
	}
	if r.Flow != "" {
		out = append(out, Code{Text: r.Flow})
	}
	return out
}
