package cli

import (
	"github.com/spf13/cobra"

	"github.com/ecotracks/ecotracks/internal/config"
	"github.com/ecotracks/ecotracks/internal/report"
)

// newReportCmd creates the report command group.
func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "report", Short: "Scope report commands"}
	cmd.AddCommand(NewReportDownloadCmd())
	return cmd
}

// NewReportDownloadCmd creates the command that saves the scope report.
func NewReportDownloadCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "download",
		Short: "Save the scope report as " + report.FileName,
		Example: `  ecotracks report download --dir ./out`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dir == "" {
				dir = config.GetGlobalConfig().Dashboard.ReportDir
			}
			path, err := report.WritePlaceholder(dir)
			if err != nil {
				return err
			}
			logger.Info().Ctx(cmd.Context()).Str("path", path).Msg("report downloaded")
			cmd.Printf("Report saved to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "output directory (default from config dashboard.report_dir)")
	return cmd
}
