package tui

import "github.com/charmbracelet/lipgloss"

// Brand colours. Dark variants keep the navy readable on dark terminals.
//
//nolint:gochecknoglobals // Read-only palette.
var (
	colorBrandBlue = lipgloss.AdaptiveColor{Light: "#002664", Dark: "#5B8DEF"}
	colorBrandRed  = lipgloss.Color("#D9232D")
	colorOrange    = lipgloss.Color("#FF8C00")
	colorGreen     = lipgloss.Color("42")
	colorSubtle    = lipgloss.Color("241")
	colorLabel     = lipgloss.Color("245")
	colorInfo      = lipgloss.Color("39")
	colorWarning   = lipgloss.Color("214")
	colorWhite     = lipgloss.Color("#FFFFFF")
	colorNavy      = lipgloss.Color("#002664")
)

// Shared styles.
//
//nolint:gochecknoglobals // Styles are package-level by convention.
var (
	HeaderStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorBrandBlue)
	SubheaderStyle = lipgloss.NewStyle().Bold(true)
	TitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorBrandBlue).MarginBottom(0)
	LabelStyle     = lipgloss.NewStyle().Foreground(colorLabel)
	ValueStyle     = lipgloss.NewStyle().Bold(true)
	InfoStyle      = lipgloss.NewStyle().Foreground(colorInfo)
	SubtleStyle    = lipgloss.NewStyle().Foreground(colorSubtle)
	SuccessStyle   = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	WarningStyle   = lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
	CriticalStyle  = lipgloss.NewStyle().Foreground(colorBrandRed).Bold(true)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBrandBlue).
			Padding(0, 1)

	CodeStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorSubtle).
			Padding(0, 1)

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorWhite).
				Background(colorNavy).
				Padding(0, 1)

	MetricStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(colorBrandBlue).
			PaddingLeft(1)

	BannerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorOrange).
			Padding(0, 1)

	TabActiveStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorWhite).Background(colorNavy).Padding(0, 1)
	TabInactiveStyle = lipgloss.NewStyle().Foreground(colorLabel).Padding(0, 1)

	ButtonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite).
			Background(colorBrandRed).
			Padding(0, 2)

	SidebarStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(colorNavy).
			Padding(1, 1)

	NavItemStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	NavActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(colorNavy).Background(colorWhite)

	UserBadgeStyle = lipgloss.NewStyle().
			Foreground(colorInfo).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorInfo).
			Padding(0, 1)

	LogoStyle = lipgloss.NewStyle().Background(colorWhite).Padding(0, 1)
)

// Layout.
const (
	defaultWidth  = 120
	defaultHeight = 36
	sidebarWidth  = 30
	borderPadding = 2
	minHeight     = 5

	minChartWidth = 10
	maxChartWidth = 50

	// LogoWidth is the widest logo the sidebar fits.
	LogoWidth = sidebarWidth - 4

	filterInputCharLimit = 64
	filterInputWidth     = 32
)
