package dashboard

import (
	"fmt"

	"github.com/ecotracks/ecotracks/internal/greenops"
	"github.com/ecotracks/ecotracks/internal/inventory"
	"github.com/ecotracks/ecotracks/internal/report"
)

// DownloadKey triggers the report download on the ISO Reports page.
const DownloadKey = "d"

// RenderISOReports shows the per-scope report for the active tab and the
// download button.
func RenderISOReports(s State) View {
	reports := inventory.ScopeReports()
	active := s.Nav.ActiveTab()

	var content []Block
	if active < len(reports) {
		content = scopeReportBlocks(reports[active])
	}

	return View{
		Page:  ISOReports,
		Title: ISOReports.String(),
		Blocks: []Block{
			Heading{Text: fmt.Sprintf("Scope performance report | %d", inventory.ReportYear), Level: 2},
			Tabs{Labels: ISOReports.TabLabels(), Active: active, Content: content},
			Button{Label: "Download PDF report", Key: DownloadKey, FileName: report.FileName},
		},
	}
}

func scopeReportBlocks(e inventory.ScopeReportEntry) []Block {
	blocks := []Block{
		Metrics{Items: []Metric{{
			Label: "Total " + e.Scope.String(),
			Value: greenops.FormatTonnes(e.Total),
			Delta: e.ShareLabel,
		}}},
	}
	if e.Note != "" {
		blocks = append(blocks, Notice{Level: NoticeInfo, Text: e.Note})
	}

	switch e.Chart {
	case inventory.ChartBar:
		names := make([]string, len(e.Sources))
		colors := make([]string, len(e.Sources))
		values := make([]float64, len(e.Sources))
		for i, src := range e.Sources {
			names[i] = src.Name
			colors[i] = sourceColor(i)
			values[i] = src.Value
		}
		blocks = append(blocks, BarChart{
			Title:          e.Scope.String() + " by source",
			Unit:           "tCO2e",
			Categories:     names,
			CategoryColors: colors,
			Series:         []Series{{Name: "tCO2e", Color: sourceColor(0), Values: values}},
		})
	case inventory.ChartShare:
		slices := make([]Slice, len(e.Sources))
		for i, src := range e.Sources {
			slices[i] = Slice{Label: src.Name, Value: src.Value, Color: sourceColor(i)}
		}
		blocks = append(blocks, ShareChart{Title: e.Scope.String() + " by source", Slices: slices})
	case inventory.ChartNone:
	}

	if e.GridShare > 0 {
		blocks = append(blocks, Progress{Label: fmt.Sprintf("%d%% grid energy", e.GridShare), Percent: e.GridShare})
	}
	return blocks
}
