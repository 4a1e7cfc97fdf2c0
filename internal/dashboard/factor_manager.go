package dashboard

import (
	"fmt"
	"strconv"

	"github.com/ecotracks/ecotracks/internal/inventory"
)

// FactorColumns are the factor table headers.
//
//nolint:gochecknoglobals // Read-only header row.
var FactorColumns = []string{"ID", "Type", "Name", "Factor", "Unit", "Source"}

// RenderFactorManager shows the emission factors whose name matches the
// current filter.
func RenderFactorManager(s State) View {
	factors := inventory.FilterFactors(inventory.Factors(), s.Nav.Filter)

	table := Table{Columns: FactorColumns, Rows: FactorRows(factors)}
	if len(factors) == 0 {
		table.Empty = fmt.Sprintf("No factors match %q.", s.Nav.Filter)
	}

	return View{
		Page:  FactorManager,
		Title: FactorManager.String(),
		Blocks: []Block{
			Paragraph{Text: "Central management of emission coefficients."},
			FilterInput{
				Prompt:      "Search factor",
				Placeholder: "e.g. Diesel, Gasolina",
				Value:       s.Nav.Filter,
			},
			table,
			Notice{Level: NoticeWarning, Text: "Security note: changes require authorization."},
		},
	}
}

// FactorRows formats factors as table rows in FactorColumns order.
func FactorRows(factors []inventory.EmissionFactor) [][]string {
	rows := make([][]string, len(factors))
	for i, f := range factors {
		rows[i] = []string{
			f.ID,
			f.Category,
			f.Name,
			strconv.FormatFloat(f.Factor, 'f', -1, 64),
			f.Unit,
			f.Source,
		}
	}
	return rows
}
