package dashboard

// Renderer builds the view of one page.
type Renderer func(State) View

// Route returns the renderer for p. Pages outside the enum route to the
// control panel.
func Route(p Page) Renderer {
	switch p {
	case FactorManager:
		return RenderFactorManager
	case DecisionTree:
		return RenderDecisionTree
	case ISOReports:
		return RenderISOReports
	default:
		return RenderControlPanel
	}
}

// Render routes s.Nav.Page and renders it.
func Render(s State) View {
	return Route(s.Nav.Page)(s)
}
