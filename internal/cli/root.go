// Package cli wires the ghgfocus command tree.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/ghgfocus/internal/config"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the ghgfocus CLI.
// It wires up logging, tracing, configuration loading, and the report,
// scenario, and config subcommand groups.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *loggingResult

	cmd := &cobra.Command{
		Use:     "ghgfocus",
		Short:   "GHG emissions reporting CLI",
		Long:    "ghgfocus: recompute and report greenhouse-gas emissions under selectable GWP scenarios",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadGlobalConfig(cmd); err != nil {
				return err
			}
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file path (default ~/.ghgfocus/config.yaml)")
	cmd.AddCommand(newReportCmd(), newScenarioCmd(), newConfigCmd())

	return cmd
}

// loadGlobalConfig loads the config file into the global config, honoring
// the --config flag when set.
func loadGlobalConfig(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		defaultPath, err := config.DefaultConfigPath()
		if err != nil {
			// No home directory: run with the zero config.
			config.SetGlobalConfig(&config.Config{})
			return nil
		}
		path = defaultPath
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	config.SetGlobalConfig(cfg)
	return nil
}

const rootCmdExample = `  # Recompute and summarize emissions under the AR6 scenario
  ghgfocus report summary --input emissions_data.csv --scenario AR6

  # Yearly totals for one region as JSON
  ghgfocus report detail --input emissions_data.csv --filter region=Asia --output json

  # Largest emitters in 2021 under AR4 coefficients
  ghgfocus report top --input emissions_data.csv --scenario AR4 --filter year=2021 --top 5

  # Explore interactively: cycle scenarios, toggle filters
  ghgfocus report summary --input emissions_data.csv --interactive

  # List available coefficient scenarios
  ghgfocus scenario list

  # Write a starter configuration file
  ghgfocus config init`

// newReportCmd creates the report command group.
func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "report", Short: "Emission report commands"}
	cmd.AddCommand(NewReportSummaryCmd(), NewReportDetailCmd(), NewReportTopCmd())
	return cmd
}

// newScenarioCmd creates the scenario command group.
func newScenarioCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "scenario", Short: "Coefficient scenario commands"}
	cmd.AddCommand(NewScenarioListCmd())
	return cmd
}

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigValidateCmd())
	return cmd
}
