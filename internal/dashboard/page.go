// Package dashboard turns the fixed inventory tables into declarative views.
//
// Each page has a pure renderer from State to View; the terminal shell owns
// the NavigationState and decides how the resulting blocks are drawn.
package dashboard

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Page is one of the four dashboard views.
type Page int

// Pages in sidebar order.
const (
	ControlPanel Page = iota
	FactorManager
	DecisionTree
	ISOReports
)

// ErrUnknownPage is returned by ParsePage for labels outside the four pages.
var ErrUnknownPage = errors.New("unknown page")

// Pages returns all pages in sidebar order.
func Pages() []Page {
	return []Page{ControlPanel, FactorManager, DecisionTree, ISOReports}
}

// String returns the navigation label.
func (p Page) String() string {
	switch p {
	case ControlPanel:
		return "Control Panel"
	case FactorManager:
		return "Factor Manager"
	case DecisionTree:
		return "Decision Tree"
	case ISOReports:
		return "ISO Reports"
	default:
		return fmt.Sprintf("Page(%d)", int(p))
	}
}

// ID returns the kebab-case identifier used by the CLI and config.
func (p Page) ID() string {
	return strings.ReplaceAll(strings.ToLower(p.String()), " ", "-")
}

// Valid reports whether p is one of the four pages.
func (p Page) Valid() bool {
	return p >= ControlPanel && p <= ISOReports
}

// ParsePage maps a label, an ID or a 1-based sidebar position to a Page.
// Matching ignores case, surrounding space and the choice of space, dash or
// underscore as separator.
func ParsePage(s string) (Page, error) {
	key := normalizePageKey(s)
	if n, err := strconv.Atoi(key); err == nil {
		if n >= 1 && n <= len(Pages()) {
			return Page(n - 1), nil
		}
		return 0, fmt.Errorf("%w: %q", ErrUnknownPage, s)
	}
	for _, p := range Pages() {
		if key == p.ID() {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPage, s)
}

func normalizePageKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Join(strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '-' || r == '_'
	}), "-")
}

// TabLabels returns the tab titles shown on p; pages without tabs return nil.
func (p Page) TabLabels() []string {
	switch p {
	case ControlPanel:
		return []string{"By Region (detail)", "General (consolidated)"}
	case ISOReports:
		return []string{"Scope 1", "Scope 2", "Scope 3"}
	default:
		return nil
	}
}
