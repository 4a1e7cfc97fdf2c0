package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ecotracks/ecotracks/internal/config"
	"github.com/ecotracks/ecotracks/internal/logging"
)

// LogSetup is the logger built for one command invocation.
type LogSetup struct {
	logging.LogPathResult

	// Debug is set by --debug.
	Debug bool
}

// setupLogging configures logging from the config and --debug, and stores
// the logger and a trace ID in the command context.
func setupLogging(cmd *cobra.Command) LogSetup {
	loggingCfg := config.GetLoggingConfig()

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = logging.FormatConsole
		loggingCfg.File = ""
	}

	if loggingCfg.File != "" {
		if err := config.EnsureLogDir(); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not create log directory: %v\n", err)
		}
	}

	lc := loggingCfg.ToLoggingConfig()
	lc.Output = logOutputFor(cmd, lc.Output, debug)
	lc.Caller = debug

	result := logging.NewLoggerWithPath(lc)
	logger = logging.ComponentLogger(result.Logger, "cli")

	if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	} else if result.UsingFile && runsDashboard(cmd) {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	}

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = logger.With().Str("trace_id", traceID).Logger().WithContext(ctx)
	cmd.SetContext(ctx)

	logger.Debug().Ctx(ctx).Str("command", cmd.Name()).Msg("command started")

	return LogSetup{LogPathResult: result, Debug: debug}
}

// logOutputFor keeps stderr free while the full-screen dashboard runs: its
// logs go to the configured file or nowhere.
func logOutputFor(cmd *cobra.Command, output string, debug bool) string {
	if output == logging.OutputFile || debug {
		return output
	}
	if runsDashboard(cmd) {
		return logging.OutputDiscard
	}
	return output
}

func runsDashboard(cmd *cobra.Command) bool {
	return cmd == cmd.Root() || cmd.Name() == "dashboard"
}

// cleanupLogging closes the log file handle.
func cleanupLogging(_ *cobra.Command, logResult *LogSetup) error {
	if logResult != nil {
		return logResult.Close()
	}
	return nil
}
