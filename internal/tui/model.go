package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/ecotracks/ecotracks/internal/dashboard"
	"github.com/ecotracks/ecotracks/internal/diagram"
	"github.com/ecotracks/ecotracks/internal/report"
)

// ViewState is the lifecycle state of the program.
type ViewState int

const (
	// ViewStateBrowse is normal navigation.
	ViewStateBrowse ViewState = iota
	// ViewStateQuitting is set once quit was requested.
	ViewStateQuitting
)

// Fixed header and sidebar texts.
const (
	AppTitle    = "ECOTRACKS"
	AppSubtitle = "Enterprise Carbon Mgmt."
	ProjectLine = "Project: Contract CW11333073 (Massy-Ecopetrol) | ✔ AUDITED SYSTEM"
	UserBadge   = "User: Admin HSE"
	Copyright   = "© Massy Energy Colombia"

	headerLines = 4
	footerLines = 2
)

// Options configures a dashboard Model.
type Options struct {
	Page      dashboard.Page
	Renderer  diagram.Renderer
	Logo      string
	ReportDir string
	Version   string
	Logger    zerolog.Logger
	Width     int
	Height    int
}

// reportWrittenMsg reports the outcome of a download.
type reportWrittenMsg struct {
	path string
	err  error
}

// Model is the interactive dashboard.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type Model struct {
	state     ViewState
	nav       dashboard.NavigationState
	renderer  diagram.Renderer
	graph     diagram.Graph
	logo      string
	reportDir string
	version   string
	logger    zerolog.Logger

	textInput  textinput.Model
	showFilter bool
	viewport   viewport.Model

	width  int
	height int

	// view is the last rendered page.
	view      dashboard.View
	status    string
	statusErr bool
}

// NewModel builds the model and renders the starting page.
func NewModel(opts Options) Model {
	if opts.Renderer == nil {
		opts.Renderer = diagram.Textual{}
	}
	if opts.Logo == "" {
		opts.Logo = BrandLogo()
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = defaultWidth, defaultHeight
	}

	m := Model{
		state:     ViewStateBrowse,
		nav:       dashboard.NewNavigationState(opts.Page),
		renderer:  opts.Renderer,
		graph:     diagram.DecisionTree(),
		logo:      opts.Logo,
		reportDir: opts.ReportDir,
		version:   opts.Version,
		logger:    opts.Logger,
		textInput: newFilterInput(),
		width:     opts.Width,
		height:    opts.Height,
	}
	m.viewport = viewport.New(m.mainWidth(), m.mainHeight())
	m.refresh()
	return m
}

func newFilterInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "e.g. Diesel, Gasolina"
	ti.CharLimit = filterInputCharLimit
	ti.Width = filterInputWidth
	return ti
}

// Status returns the last status line and whether it is an error.
func (m Model) Status() (string, bool) { return m.status, m.statusErr }

// Init initializes the model (Bubble Tea interface).
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state (Bubble Tea interface).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = m.mainWidth()
		m.viewport.Height = m.mainHeight()
		m.refresh()
		return m, nil
	case reportWrittenMsg:
		return m.handleReportWritten(msg), nil
	}

	if m.state == ViewStateQuitting {
		return m, nil
	}
	if m.showFilter {
		return m.handleFilterInput(msg)
	}
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(keyMsg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case keyQuit, keyCtrlC:
		m.state = ViewStateQuitting
		return m, tea.Quit
	case keyUp, keyK:
		m.setNav(m.nav.PrevPage())
	case keyDown, keyJ:
		m.setNav(m.nav.NextPage())
	case "1", "2", "3", "4":
		if p, err := dashboard.ParsePage(key); err == nil {
			m.setNav(m.nav.WithPage(p))
		}
	case keyTab:
		m.setNav(m.nav.NextTab())
	case keyShiftTab:
		m.setNav(m.nav.PrevTab())
	case keySlash:
		if m.nav.Page == dashboard.FactorManager {
			m.showFilter = true
			m.textInput.Focus()
			m.refresh()
			return m, textinput.Blink
		}
	case keyEsc:
		if m.nav.Filter != "" {
			m.textInput.SetValue("")
			m.setNav(m.nav.WithFilter(""))
		}
	case keyDownload:
		if m.nav.Page == dashboard.ISOReports {
			return m, m.downloadReport()
		}
	case keyPgDown:
		m.viewport.LineDown(max(m.viewport.Height/2, 1))
	case keyPgUp:
		m.viewport.LineUp(max(m.viewport.Height/2, 1))
	}
	return m, nil
}

func (m Model) handleFilterInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyEnter, keyEsc:
			m.showFilter = false
			m.textInput.Blur()
			m.refresh()
			return m, nil
		case keyCtrlC:
			m.state = ViewStateQuitting
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	// Always re-render: the input's cursor is part of the page.
	m.nav = m.nav.WithFilter(m.textInput.Value())
	m.refresh()
	return m, cmd
}

func (m Model) downloadReport() tea.Cmd {
	dir := m.reportDir
	return func() tea.Msg {
		path, err := report.WritePlaceholder(dir)
		return reportWrittenMsg{path: path, err: err}
	}
}

func (m Model) handleReportWritten(msg reportWrittenMsg) Model {
	if msg.err != nil {
		m.logger.Error().Err(msg.err).Msg("report download failed")
		m.status = "Download failed: " + msg.err.Error()
		m.statusErr = true
		return m
	}
	m.logger.Info().Str("path", msg.path).Msg("report downloaded")
	m.status = "Saved " + msg.path
	m.statusErr = false
	return m
}

// setNav applies a navigation change and re-renders when it changed.
func (m *Model) setNav(next dashboard.NavigationState) {
	if next == m.nav {
		return
	}
	pageChanged := next.Page != m.nav.Page
	m.nav = next
	if pageChanged {
		m.status = ""
		m.logger.Debug().Str("page", next.Page.ID()).Msg("page selected")
	}
	m.refresh()
	if pageChanged {
		m.viewport.GotoTop()
	}
}

// refresh renders the current page into the viewport.
func (m *Model) refresh() {
	s := dashboard.State{Nav: m.nav}
	if m.nav.Page == dashboard.DecisionTree {
		s.Diagram = m.renderer.Render(m.graph)
	}
	m.view = dashboard.Render(s)

	ctx := renderContext{width: m.mainWidth()}
	if m.showFilter {
		ctx.filterView = m.textInput.View()
	}
	m.viewport.SetContent(renderBlocks(m.view.Blocks, ctx))
}

func (m Model) mainWidth() int {
	return max(m.width-sidebarWidth-borderPadding, minChartWidth)
}

func (m Model) mainHeight() int {
	return max(m.height-headerLines-footerLines, minHeight)
}

// View renders the current view (Bubble Tea interface).
func (m Model) View() string {
	if m.state == ViewStateQuitting {
		return ""
	}
	main := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.viewport.View(),
		m.renderFooter(),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), " ", main)
}

func (m Model) renderSidebar() string {
	inner := sidebarWidth - SidebarStyle.GetHorizontalFrameSize()
	divider := strings.Repeat("─", inner)

	var sb strings.Builder
	sb.WriteString(m.logo)
	sb.WriteString("\n\n")
	sb.WriteString(lipgloss.NewStyle().Bold(true).Render(AppTitle))
	sb.WriteString("\n")
	sb.WriteString(AppSubtitle)
	sb.WriteString("\n" + divider + "\n")
	sb.WriteString("Navigation\n")
	for i, p := range dashboard.Pages() {
		item := fmt.Sprintf(" %d %s ", i+1, p)
		if p == m.nav.Page {
			sb.WriteString(NavActiveStyle.Render("▸" + item))
		} else {
			sb.WriteString(NavItemStyle.Render(" " + item))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(divider + "\n")
	sb.WriteString("Configuration v" + m.version + "\n")
	sb.WriteString(Copyright)

	return SidebarStyle.
		Width(sidebarWidth).
		Height(max(m.height-SidebarStyle.GetVerticalFrameSize(), minHeight)).
		Render(sb.String())
}

func (m Model) renderHeader() string {
	title := TitleStyle.Render(m.view.Title)
	badge := UserBadgeStyle.Render(UserBadge)
	gap := max(m.mainWidth()-lipgloss.Width(title)-lipgloss.Width(badge), 1)
	top := lipgloss.JoinHorizontal(lipgloss.Center, title, strings.Repeat(" ", gap), badge)

	return lipgloss.JoinVertical(lipgloss.Left,
		top,
		ProjectLine,
		SubtleStyle.Render(strings.Repeat("─", m.mainWidth())),
	)
}

func (m Model) renderFooter() string {
	help := []string{"↑/↓ pages", "1-4 jump"}
	if len(m.nav.Page.TabLabels()) > 0 {
		help = append(help, "tab switch tab")
	}
	switch m.nav.Page {
	case dashboard.FactorManager:
		if m.showFilter {
			help = append(help, "enter/esc done")
		} else {
			help = append(help, "/ filter", "esc clear")
		}
	case dashboard.ISOReports:
		help = append(help, "d download")
	case dashboard.ControlPanel, dashboard.DecisionTree:
	}
	help = append(help, "pgup/pgdn scroll", "q quit")

	line := SubtleStyle.Render(strings.Join(help, " • "))
	text, isErr := m.Status()
	if text == "" {
		return line
	}
	status := SuccessStyle.Render(text)
	if isErr {
		status = CriticalStyle.Render(text)
	}
	return status + "\n" + line
}
