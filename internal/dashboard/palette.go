package dashboard

// Brand and chart colours.
const (
	ColorBrandBlue = "#002664"
	ColorBrandRed  = "#D9232D"
	ColorSlate     = "#94a3b8"
	ColorOrange    = "#FF8C00"
	ColorGreen     = "#008000"

	ColorScope1 = ColorBrandRed
	ColorScope2 = ColorBrandBlue
	ColorScope3 = ColorSlate
)

// sourcePalette colours per-source bars and slices in order.
//
//nolint:gochecknoglobals // Read-only palette.
var sourcePalette = []string{"#D9232D", "#ff6b6b", "#ffbaba", "#94a3b8"}

func sourceColor(i int) string {
	return sourcePalette[i%len(sourcePalette)]
}
