package cli

import (
	"github.com/spf13/cobra"

	"github.com/ecotracks/ecotracks/internal/dashboard"
	"github.com/ecotracks/ecotracks/internal/tui"
)

// NewViewCmd creates the command that prints one dashboard page.
func NewViewCmd() *cobra.Command {
	var (
		filter string
		tab    int
		plain  bool
		width  int
	)

	cmd := &cobra.Command{
		Use:   "view <page>",
		Short: "Print one dashboard page",
		Long: `Renders a single page to stdout without starting the interactive dashboard.

Pages: control-panel, factor-manager, decision-tree, iso-reports (or 1-4).`,
		Example: `  # Consolidated tab of the control panel
  ecotracks view control-panel --tab 2

  # Factors matching "gasolina", no colour
  ecotracks view factor-manager --filter gasolina --plain`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := dashboard.ParsePage(args[0])
			if err != nil {
				return err
			}

			mode := tui.DetectOutputMode(plain)
			if mode == tui.OutputModeInteractive {
				mode = tui.OutputModeStyled
			}
			if width <= 0 {
				width, _ = tui.TerminalSize()
			}

			nav := dashboard.NewNavigationState(page).WithFilter(filter).WithTab(tab - 1)
			return tui.PrintView(cmd.OutOrStdout(), tui.PrintOptions{
				Nav:      nav,
				Renderer: diagramRenderer(cmd, mode != tui.OutputModePlain),
				Width:    width,
				Mode:     mode,
			})
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "factor name filter (factor-manager)")
	cmd.Flags().IntVar(&tab, "tab", 1, "tab number, starting at 1")
	cmd.Flags().BoolVar(&plain, "plain", false, "disable colours and styling")
	cmd.Flags().IntVar(&width, "width", 0, "output width (default terminal width)")
	return cmd
}
