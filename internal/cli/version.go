package cli

import (
	"github.com/spf13/cobra"

	"github.com/ecotracks/ecotracks/pkg/version"
)

// NewVersionCmd creates the command that prints build information.
func NewVersionCmd(ver string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if v, err := version.Semver(); err != nil {
				logger.Debug().Ctx(cmd.Context()).Err(err).Str("version", ver).Msg("version is not semver")
			} else if v.Prerelease() != "" {
				logger.Debug().Ctx(cmd.Context()).Str("prerelease", v.Prerelease()).Msg("prerelease build")
			}
			cmd.Println(version.String())
			return nil
		},
	}
}
