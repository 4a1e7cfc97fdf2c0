// Command ecotracks is the carbon emissions dashboard.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ecotracks/ecotracks/internal/cli"
	"github.com/ecotracks/ecotracks/internal/dashboard"
	"github.com/ecotracks/ecotracks/pkg/version"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(extractExitCode(run()))
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCmd(version.GetVersion())
	if err := root.ExecuteContext(ctx); err != nil {
		return fmt.Errorf("ecotracks: %w", err)
	}
	return nil
}

// extractExitCode maps a command error to the process exit code. Bad
// arguments exit with 2.
func extractExitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, dashboard.ErrUnknownPage),
		errors.Is(err, cli.ErrUnsupportedFormat),
		errors.Is(err, cli.ErrUnsupportedSort),
		errors.Is(err, cli.ErrUnsupportedDiagramFormat):
		return exitUsage
	default:
		return exitError
	}
}
