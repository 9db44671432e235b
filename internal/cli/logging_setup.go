package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/ghgfocus/internal/config"
	"github.com/rshade/ghgfocus/internal/logging"
)

// Environment overrides for log level and format.
const (
	envLogLevel  = "GHGFOCUS_LOG_LEVEL"
	envLogFormat = "GHGFOCUS_LOG_FORMAT"
)

// loggingResult aliases logging.Result for the root command's bookkeeping.
type loggingResult = logging.Result

// setupLogging configures logging based on config file, environment, and CLI flags.
func setupLogging(cmd *cobra.Command) loggingResult {
	loggingCfg := config.GetLoggingConfig()

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = "console"
		loggingCfg.File = ""
	}

	if envLevel := os.Getenv(envLogLevel); envLevel != "" && !debug {
		loggingCfg.Level = envLevel
	}
	if envFormat := os.Getenv(envLogFormat); envFormat != "" {
		loggingCfg.Format = envFormat
	}

	// Ensure log directory exists after all overrides have been applied.
	if loggingCfg.File != "" {
		if err := config.EnsureLogDir(); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not create log directory: %v\n", err)
		}
	}

	result := logging.NewLogger(loggingCfg.ToLoggingConfig())
	logger = logging.ComponentLogger(result.Logger, "cli")

	if result.UsingFile {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	} else if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = logger.WithContext(ctx)
	cmd.SetContext(ctx)

	logger.Info().Ctx(ctx).Str("command", cmd.Name()).Str("trace_id", traceID).Msg("command started")

	return result
}

// cleanupLogging closes log file handles opened during setup.
func cleanupLogging(_ *cobra.Command, logResult *loggingResult) error {
	if logResult != nil {
		return logResult.Close()
	}
	return nil
}
