package tui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/ecotracks/ecotracks/internal/dashboard"
	"github.com/ecotracks/ecotracks/internal/diagram"
)

// Run starts the interactive dashboard and blocks until the user quits or
// ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = TerminalSize()
	}

	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running dashboard: %w", err)
	}
	return nil
}

// PrintOptions configures a one-shot render.
type PrintOptions struct {
	Nav      dashboard.NavigationState
	Renderer diagram.Renderer
	Width    int
	Mode     OutputMode
}

// PrintView renders one page to w, with a title line. Plain mode strips all
// styling.
func PrintView(w io.Writer, opts PrintOptions) error {
	s := dashboard.State{Nav: opts.Nav}
	if opts.Nav.Page == dashboard.DecisionTree {
		r := opts.Renderer
		if r == nil {
			r = diagram.Textual{}
		}
		s.Diagram = r.Render(diagram.DecisionTree())
	}
	v := dashboard.Render(s)

	out := TitleStyle.Render(v.Title) + "\n\n" + RenderView(v, opts.Width) + "\n"
	if opts.Mode == OutputModePlain {
		out = ansi.Strip(out)
	}
	_, err := io.WriteString(w, out)
	return err
}
