package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ecotracks/ecotracks/internal/config"
	"github.com/ecotracks/ecotracks/internal/dashboard"
	"github.com/ecotracks/ecotracks/internal/diagram"
	"github.com/ecotracks/ecotracks/internal/logging"
	"github.com/ecotracks/ecotracks/internal/tui"
	"github.com/ecotracks/ecotracks/pkg/version"
)

// NewDashboardCmd creates the command that opens the interactive dashboard.
func NewDashboardCmd() *cobra.Command {
	var page string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive dashboard",
		Long: `Opens the full-screen dashboard.

Keys: up/down or k/j and 1-4 select pages, tab/shift+tab switch tabs,
/ filters factors, esc clears the filter, d downloads the report on
ISO Reports, q quits.

When stdout is not a terminal the selected page is printed once instead.`,
		Example: `  # Start on the decision tree
  ecotracks dashboard --page decision-tree`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDashboard(cmd, page)
		},
	}

	cmd.Flags().StringVar(&page, "page", "", "starting page (default from config dashboard.default_page)")
	return cmd
}

func runDashboard(cmd *cobra.Command, pageFlag string) error {
	ctx := cmd.Context()
	cfg := config.GetGlobalConfig()

	page, err := startPage(pageFlag, cfg.Dashboard.DefaultPage)
	if err != nil {
		return err
	}

	mode := tui.DetectOutputMode(false)
	if mode != tui.OutputModeInteractive || !isTerminal(os.Stdin) {
		width, _ := tui.TerminalSize()
		return tui.PrintView(cmd.OutOrStdout(), tui.PrintOptions{
			Nav:      dashboard.NewNavigationState(page),
			Renderer: diagramRenderer(cmd, mode != tui.OutputModePlain),
			Width:    width,
			Mode:     mode,
		})
	}

	l := logging.ComponentLogger(*logging.FromContext(ctx), "tui")
	return tui.Run(ctx, tui.Options{
		Page:      page,
		Renderer:  diagramRenderer(cmd, true),
		Logo:      tui.Logo(cfg.Dashboard.LogoPath, tui.LogoWidth, l),
		ReportDir: cfg.Dashboard.ReportDir,
		Version:   version.GetVersion(),
		Logger:    l,
	})
}

// startPage picks the flag page, else the configured default. A bad flag is
// an error; a bad config value falls back to the control panel.
func startPage(flagValue, configured string) (dashboard.Page, error) {
	if flagValue != "" {
		return dashboard.ParsePage(flagValue)
	}
	if configured == "" {
		return dashboard.ControlPanel, nil
	}
	page, err := dashboard.ParsePage(configured)
	if err != nil {
		logger.Warn().Err(err).Msg("invalid dashboard.default_page, using control panel")
		return dashboard.ControlPanel, nil
	}
	return page, nil
}

// diagramRenderer resolves the diagram capability for this run.
func diagramRenderer(cmd *cobra.Command, styledOutput bool) diagram.Renderer {
	mode := config.GetGlobalConfig().Dashboard.DiagramMode
	capability := diagram.DetectCapability(mode, styledOutput)

	l := logging.ComponentLogger(*logging.FromContext(cmd.Context()), "diagram")
	l.Debug().
		Str("mode", mode).
		Str("capability", capability.String()).
		Msg("diagram capability resolved")
	return diagram.NewRenderer(capability, l)
}
