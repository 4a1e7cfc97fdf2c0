package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/ecotracks/ecotracks/internal/dashboard"
	"github.com/ecotracks/ecotracks/internal/greenops"
)

// renderContext carries what block rendering needs beyond the block.
type renderContext struct {
	width int
	// filterView replaces the FilterInput block when the program owns a
	// live text input.
	filterView string
}

// RenderView draws v at the given width for one-shot output.
func RenderView(v dashboard.View, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	return renderBlocks(v.Blocks, renderContext{width: width})
}

func renderBlocks(blocks []dashboard.Block, ctx renderContext) string {
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if s := renderBlock(b, ctx); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n\n")
}

//nolint:cyclop // One case per block type.
func renderBlock(b dashboard.Block, ctx renderContext) string {
	switch blk := b.(type) {
	case dashboard.Heading:
		if blk.Level <= 2 {
			return HeaderStyle.Render(blk.Text)
		}
		return SubheaderStyle.Render(blk.Text)
	case dashboard.Paragraph:
		if blk.Subtle {
			return SubtleStyle.Render(blk.Text)
		}
		return blk.Text
	case dashboard.Metrics:
		return renderMetrics(blk, ctx.width)
	case dashboard.Banner:
		return renderBanner(blk, ctx.width)
	case dashboard.Tabs:
		return renderTabs(blk, ctx)
	case dashboard.Table:
		return renderTable(blk)
	case dashboard.BarChart:
		return renderBarChart(blk, ctx.width)
	case dashboard.ShareChart:
		return renderShareChart(blk, ctx.width)
	case dashboard.Progress:
		return renderProgress(blk, ctx.width)
	case dashboard.Notice:
		return renderNotice(blk)
	case dashboard.Code:
		return CodeStyle.Render(blk.Text)
	case dashboard.Diagram:
		return BoxStyle.Render(blk.Text)
	case dashboard.Badges:
		return renderBadges(blk)
	case dashboard.FilterInput:
		return renderFilterInput(blk, ctx)
	case dashboard.Button:
		return ButtonStyle.Render("⬇ "+blk.Label) + " " +
			SubtleStyle.Render("press "+blk.Key+" to save "+blk.FileName)
	default:
		return ""
	}
}

func renderMetrics(m dashboard.Metrics, width int) string {
	if len(m.Items) == 0 {
		return ""
	}
	cardWidth := max(width/len(m.Items)-borderPadding, minChartWidth+borderPadding)

	cards := make([]string, len(m.Items))
	for i, item := range m.Items {
		delta := SubtleStyle.Render(item.Delta)
		if item.Warn {
			delta = WarningStyle.Render("⚠ " + item.Delta)
		}
		cards[i] = MetricStyle.Width(cardWidth).Render(
			LabelStyle.Render(item.Label) + "\n" + ValueStyle.Render(item.Value) + "\n" + delta,
		)
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	if lipgloss.Width(row) > width {
		return lipgloss.JoinVertical(lipgloss.Left, cards...)
	}
	return row
}

func renderBanner(b dashboard.Banner, width int) string {
	if len(b.Items) == 0 {
		return ""
	}
	inner := width - BannerStyle.GetHorizontalFrameSize()
	colWidth := max(inner/len(b.Items), minChartWidth)

	cols := make([]string, len(b.Items))
	for i, item := range b.Items {
		value := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(item.Color)).Render(item.Value)
		cols[i] = lipgloss.NewStyle().Width(colWidth).Align(lipgloss.Center).Render(value + "\n" + item.Label)
	}
	return BannerStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, cols...))
}

func renderTabs(t dashboard.Tabs, ctx renderContext) string {
	labels := make([]string, len(t.Labels))
	for i, l := range t.Labels {
		if i == t.Active {
			labels[i] = TabActiveStyle.Render(l)
		} else {
			labels[i] = TabInactiveStyle.Render(l)
		}
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, labels...)
	rule := SubtleStyle.Render(strings.Repeat("─", max(lipgloss.Width(header), 1)))

	body := renderBlocks(t.Content, ctx)
	if body == "" {
		return header + "\n" + rule
	}
	return header + "\n" + rule + "\n" + body
}

func renderTable(t dashboard.Table) string {
	widths := make([]int, len(t.Columns))
	for i, c := range t.Columns {
		widths[i] = lipgloss.Width(c)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}

	columns := make([]table.Column, len(t.Columns))
	for i, c := range t.Columns {
		columns[i] = table.Column{Title: c, Width: widths[i]}
	}
	rows := make([]table.Row, len(t.Rows))
	for i, r := range t.Rows {
		rows[i] = table.Row(r)
	}

	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = lipgloss.NewStyle()
	headerHeight := lipgloss.Height(s.Header.Render("x"))

	tbl := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithStyles(s),
		table.WithHeight(headerHeight+max(len(rows), 1)),
	)

	var sb strings.Builder
	if t.Title != "" {
		sb.WriteString(SubheaderStyle.Render(t.Title))
		sb.WriteString("\n")
	}
	sb.WriteString(strings.TrimRight(tbl.View(), "\n "))
	if len(t.Rows) == 0 && t.Empty != "" {
		sb.WriteString("\n")
		sb.WriteString(SubtleStyle.Render(t.Empty))
	}
	return sb.String()
}

// chartWidth is the bar length available next to labels of labelWidth.
func chartWidth(width, labelWidth int) int {
	const valueColumn = 12
	return max(minChartWidth, min(maxChartWidth, width-labelWidth-valueColumn))
}

func colorBlock(color string, n int, glyph string) string {
	if n <= 0 {
		return ""
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(strings.Repeat(glyph, n))
}

func seriesValue(s dashboard.Series, i int) float64 {
	if i < len(s.Values) {
		return s.Values[i]
	}
	return 0
}

func renderBarChart(c dashboard.BarChart, width int) string {
	labelWidth := 0
	for _, cat := range c.Categories {
		labelWidth = max(labelWidth, lipgloss.Width(cat))
	}

	// Stacked bars scale to the largest sum, grouped bars to the largest value.
	peak := 0.0
	for i := range c.Categories {
		sum := 0.0
		for _, s := range c.Series {
			v := seriesValue(s, i)
			sum += v
			peak = math.Max(peak, v)
		}
		if c.Stacked {
			peak = math.Max(peak, sum)
		}
	}
	barWidth := chartWidth(width, labelWidth)
	scale := 0.0
	if peak > 0 {
		scale = float64(barWidth) / peak
	}

	var lines []string
	if c.Title != "" {
		lines = append(lines, SubheaderStyle.Render(c.Title))
	}
	for i, cat := range c.Categories {
		label := LabelStyle.Width(labelWidth).Render(cat)
		if c.Stacked {
			var bar strings.Builder
			cum, drawn := 0.0, 0
			for _, s := range c.Series {
				cum += seriesValue(s, i)
				end := int(math.Round(cum * scale))
				bar.WriteString(colorBlock(barColor(c, s, i), end-drawn, "█"))
				drawn = max(drawn, end)
			}
			lines = append(lines, label+" "+bar.String()+" "+greenops.FormatFloat(cum, 2))
			continue
		}
		for j, s := range c.Series {
			v := seriesValue(s, i)
			prefix := label
			if j > 0 {
				prefix = strings.Repeat(" ", labelWidth)
			}
			n := int(math.Round(v * scale))
			lines = append(lines, prefix+" "+colorBlock(barColor(c, s, i), n, "█")+" "+greenops.FormatFloat(v, 2))
		}
	}

	if len(c.Series) > 1 {
		legend := make([]string, len(c.Series))
		for i, s := range c.Series {
			legend[i] = colorBlock(s.Color, 1, "■") + " " + s.Name
		}
		lines = append(lines, strings.Join(legend, "   "))
	}
	return strings.Join(lines, "\n")
}

// barColor is the colour of series s in category i.
func barColor(c dashboard.BarChart, s dashboard.Series, i int) string {
	if i < len(c.CategoryColors) && c.CategoryColors[i] != "" {
		return c.CategoryColors[i]
	}
	return s.Color
}

func renderShareChart(c dashboard.ShareChart, width int) string {
	sum := 0.0
	labelWidth := 0
	for _, s := range c.Slices {
		sum += s.Value
		labelWidth = max(labelWidth, lipgloss.Width(s.Label))
	}
	if sum <= 0 {
		return ""
	}
	barWidth := chartWidth(width, 0)

	var strip strings.Builder
	cum, drawn := 0.0, 0
	for _, s := range c.Slices {
		cum += s.Value
		end := int(math.Round(cum / sum * float64(barWidth)))
		strip.WriteString(colorBlock(s.Color, end-drawn, "█"))
		drawn = max(drawn, end)
	}

	var lines []string
	if c.Title != "" {
		lines = append(lines, SubheaderStyle.Render(c.Title))
	}
	lines = append(lines, strip.String())
	for _, s := range c.Slices {
		lines = append(lines, colorBlock(s.Color, 1, "■")+" "+
			lipgloss.NewStyle().Width(labelWidth).Render(s.Label)+"  "+
			ValueStyle.Render(greenops.FormatFloat(s.Value/sum*100, 1)+"%"))
	}
	return strings.Join(lines, "\n")
}

func renderProgress(p dashboard.Progress, width int) string {
	const full = 100
	pct := max(0, min(p.Percent, full))
	barWidth := chartWidth(width, 0)
	filled := int(math.Round(float64(pct) / full * float64(barWidth)))

	bar := colorBlock(string(colorBrandRed), filled, "█") +
		SubtleStyle.Render(strings.Repeat("░", barWidth-filled))

	out := p.Label + "\n" + bar + " " + ValueStyle.Render(greenops.FormatNumber(int64(pct))+"%")
	if p.Caption != "" {
		out += "\n" + SubtleStyle.Render(p.Caption)
	}
	return out
}

func renderNotice(n dashboard.Notice) string {
	var icon string
	var style lipgloss.Style
	var border lipgloss.TerminalColor
	switch n.Level {
	case dashboard.NoticeSuccess:
		icon, style, border = "✔", SuccessStyle, colorGreen
	case dashboard.NoticeWarning:
		icon, style, border = "⚠", WarningStyle, colorWarning
	case dashboard.NoticeCritical:
		icon, style, border = "●", CriticalStyle, colorBrandRed
	default:
		icon, style, border = "ℹ", InfoStyle, colorInfo
	}
	return lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(border).
		PaddingLeft(1).
		Render(style.Render(icon + " " + n.Text))
}

func renderBadges(b dashboard.Badges) string {
	badges := make([]string, len(b.Labels))
	for i, l := range b.Labels {
		badges[i] = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGreen).
			Padding(0, 1).
			MarginRight(1).
			Render(SuccessStyle.Render("✔ " + l))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, badges...)
}

func renderFilterInput(f dashboard.FilterInput, ctx renderContext) string {
	prompt := LabelStyle.Render(f.Prompt + ": ")
	if ctx.filterView != "" {
		return prompt + ctx.filterView
	}
	if f.Value == "" {
		return prompt + SubtleStyle.Render(f.Placeholder)
	}
	return prompt + ValueStyle.Render(f.Value)
}
