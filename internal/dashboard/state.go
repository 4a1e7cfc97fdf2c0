package dashboard

import "github.com/ecotracks/ecotracks/internal/diagram"

// NavigationState is the user's position in the dashboard. It is a value:
// every transition returns a new state.
type NavigationState struct {
	Page   Page
	Filter string
	Tab    int
}

// NewNavigationState starts on page with no filter and the first tab.
func NewNavigationState(page Page) NavigationState {
	if !page.Valid() {
		page = ControlPanel
	}
	return NavigationState{Page: page}
}

// WithPage selects page and resets the tab. The factor filter is kept.
func (n NavigationState) WithPage(page Page) NavigationState {
	if !page.Valid() || page == n.Page {
		return n
	}
	n.Page = page
	n.Tab = 0
	return n
}

// NextPage moves down the sidebar, wrapping at the end.
func (n NavigationState) NextPage() NavigationState {
	count := len(Pages())
	return n.WithPage(Page((int(n.Page) + 1) % count))
}

// PrevPage moves up the sidebar, wrapping at the start.
func (n NavigationState) PrevPage() NavigationState {
	count := len(Pages())
	return n.WithPage(Page((int(n.Page) + count - 1) % count))
}

// WithFilter sets the factor filter.
func (n NavigationState) WithFilter(filter string) NavigationState {
	n.Filter = filter
	return n
}

// WithTab selects tab i, clamped to the tabs of the current page.
func (n NavigationState) WithTab(i int) NavigationState {
	n.Tab = clampTab(n.Page, i)
	return n
}

// NextTab cycles forward through the current page's tabs.
func (n NavigationState) NextTab() NavigationState {
	count := len(n.Page.TabLabels())
	if count == 0 {
		return n
	}
	n.Tab = (n.ActiveTab() + 1) % count
	return n
}

// PrevTab cycles backward through the current page's tabs.
func (n NavigationState) PrevTab() NavigationState {
	count := len(n.Page.TabLabels())
	if count == 0 {
		return n
	}
	n.Tab = (n.ActiveTab() + count - 1) % count
	return n
}

// ActiveTab returns Tab clamped to the current page.
func (n NavigationState) ActiveTab() int {
	return clampTab(n.Page, n.Tab)
}

func clampTab(p Page, i int) int {
	count := len(p.TabLabels())
	switch {
	case count == 0, i < 0:
		return 0
	case i >= count:
		return count - 1
	default:
		return i
	}
}

// State is everything a renderer reads for one pass.
type State struct {
	Nav NavigationState
	// Diagram is the decision-tree render result for this pass.
	Diagram diagram.Result
}
