package dashboard

import (
	"github.com/ecotracks/ecotracks/internal/greenops"
	"github.com/ecotracks/ecotracks/internal/inventory"
)

const (
	tabRegional = 0
	tabGeneral  = 1
)

// RenderControlPanel shows the headline KPIs and the regional or
// consolidated tab.
func RenderControlPanel(s State) View {
	kpis := inventory.ControlPanelKPIs()
	metrics := make([]Metric, len(kpis))
	for i, k := range kpis {
		metrics[i] = Metric{Label: k.Label, Value: k.Value, Delta: k.Delta, Warn: k.Warn}
	}

	active := s.Nav.ActiveTab()
	var content []Block
	if active == tabGeneral {
		content = generalTab()
	} else {
		content = regionalTab()
	}

	return View{
		Page:  ControlPanel,
		Title: ControlPanel.String(),
		Blocks: []Block{
			Metrics{Items: metrics},
			Heading{Text: "Scorecard and indicators", Level: 2},
			Paragraph{Text: "Consolidated view based on the proposed indicators."},
			Tabs{Labels: ControlPanel.TabLabels(), Active: active, Content: content},
		},
	}
}

func regionalTab() []Block {
	regions := inventory.Regions()
	sorted := inventory.SortedByTotal(regions)

	codes := make([]string, len(sorted))
	for i, r := range sorted {
		codes[i] = r.Code
	}

	scopeColors := []string{ColorScope1, ColorScope2, ColorScope3}
	series := make([]Series, 0, len(scopeColors))
	for i, s := range greenops.Scopes() {
		values := make([]float64, len(sorted))
		for j, r := range sorted {
			values[j] = r.Scopes().Get(s)
		}
		series = append(series, Series{
			Name:   s.String() + " (" + s.Description() + ")",
			Color:  scopeColors[i],
			Values: values,
		})
	}

	rows := make([][]string, len(regions))
	for i, r := range regions {
		rows[i] = []string{r.Code, greenops.FormatFloat(r.Total, 2), greenops.FormatNumber(r.TreeEquivalent())}
	}

	blocks := []Block{
		Heading{Text: "Footprint distribution by operating zone", Level: 3},
		BarChart{
			Title:      "Total emissions by region (tCO2e)",
			Unit:       "tCO2e",
			Categories: codes,
			Series:     series,
			Stacked: true,
		},
	}

	if top, ok := inventory.TopContributor(regions); ok {
		blocks = append(blocks,
			Heading{Text: "Top contributor", Level: 3},
			Notice{Level: NoticeCritical, Text: top.Code},
			Paragraph{Text: "Emission: " + greenops.FormatTonnes(top.Total), Subtle: true},
		)
	}

	return append(blocks, Table{
		Title:   "Detail (tCO2e)",
		Columns: []string{"Region", "Total", "Trees"},
		Rows:    rows,
	})
}

func generalTab() []Block {
	g := inventory.General()
	pct := g.ScopePercentageSequence()

	slices := make([]Slice, 0, len(pct))
	colors := []string{ColorScope1, ColorScope2, ColorScope3}
	for i, s := range greenops.Scopes() {
		slices = append(slices, Slice{Label: s.String(), Value: float64(pct[i]), Color: colors[i]})
	}

	return []Block{
		Banner{Items: []BannerItem{
			{Value: greenops.FormatTonnes(g.TotalFootprint), Label: "Total carbon footprint", Color: ColorOrange},
			{Value: greenops.FormatTonnes(g.ReductionTarget), Label: "Contract target (-5%)", Color: ColorBrandBlue},
			{Value: greenops.FormatNumber(g.TreeEquivalentTotal) + " trees", Label: "Trees required (factor ~40)", Color: ColorGreen},
		}},
		Heading{Text: "Share by scope (%)", Level: 3},
		ShareChart{Slices: slices},
		Heading{Text: "Performance indicators", Level: 3},
		Progress{
			Label:   "Scope 1 weight (critical)",
			Percent: g.ScopePercentages[greenops.Scope1],
			Caption: "Most of the footprint comes from direct sources (fuel).",
		},
		Progress{
			Label:   "Progress vs baseline",
			Percent: inventory.BaselineProgress,
			Caption: "Reduction is being actively managed.",
		},
	}
}
