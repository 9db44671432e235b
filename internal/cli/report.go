package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/ghgfocus/internal/config"
	"github.com/rshade/ghgfocus/internal/engine"
	"github.com/rshade/ghgfocus/internal/engine/cache"
	"github.com/rshade/ghgfocus/internal/gwp"
	"github.com/rshade/ghgfocus/internal/ingest"
	"github.com/rshade/ghgfocus/internal/logging"
	"github.com/rshade/ghgfocus/internal/schema"
	"github.com/rshade/ghgfocus/internal/tui"
)

// defaultTopN is the group count shown by "report top" without --top.
const defaultTopN = 10

// ReportParams holds the parameters for the report command group.
// Exported for testing.
type ReportParams struct {
	Input       string
	Scenario    string
	Filters     []string
	Output      string
	ByRegion    bool
	Top         int
	Interactive bool
}

// ValidateReportFlags checks that the report flags are consistent.
// Exported for testing.
func ValidateReportFlags(params *ReportParams) error {
	if params.Input == "" {
		return errors.New("--input is required")
	}
	switch params.Output {
	case "", config.OutputFormatTable, config.OutputFormatJSON, config.OutputFormatNDJSON:
	default:
		return fmt.Errorf("invalid output format %q (supported: table, json, ndjson)", params.Output)
	}
	if params.Interactive && params.Output != "" && params.Output != config.OutputFormatTable {
		return errors.New("--interactive cannot be combined with --output json/ndjson")
	}
	if params.Top < 0 {
		return fmt.Errorf("--top must be >= 0, got %d", params.Top)
	}
	return nil
}

// reportRun is the shared pipeline state behind every report subcommand.
type reportRun struct {
	dataset  *ingest.Dataset
	roles    schema.RoleMap
	registry *gwp.Registry
	scenario gwp.Scenario
	store    *cache.Store
	result   *engine.Result
}

// runReportPipeline loads the dataset, resolves the schema, applies filters,
// and recomputes under the selected scenario. Every subcommand starts here.
func runReportPipeline(cmd *cobra.Command, params ReportParams) (*reportRun, error) {
	ctx := cmd.Context()

	if err := ValidateReportFlags(&params); err != nil {
		return nil, err
	}

	cfg := config.GetGlobalConfig()
	registry, err := cfg.BuildRegistry()
	if err != nil {
		return nil, err
	}

	scenario := registry.Default()
	if params.Scenario != "" {
		scenario, err = registry.Lookup(params.Scenario)
		if err != nil {
			return nil, err
		}
	}

	dataset, err := ingest.LoadCSVWithContext(ctx, params.Input)
	if err != nil {
		return nil, err
	}

	roles := schema.ResolveWithContext(ctx, dataset.Columns, schema.DefaultCandidates())
	if err := roles.Validate(); err != nil {
		return nil, err
	}

	dataset, err = ApplyFilters(ctx, dataset, roles, params.Filters)
	if err != nil {
		return nil, err
	}

	store := cache.NewStore(cfg.Cache.Enabled, time.Duration(cfg.Cache.TTLSeconds)*time.Second)

	run := &reportRun{
		dataset:  dataset,
		roles:    roles,
		registry: registry,
		scenario: scenario,
		store:    store,
	}
	run.result, err = run.recompute(ctx, scenario)
	if err != nil {
		return nil, err
	}
	return run, nil
}

// recompute runs the engine for a scenario, consulting the memoization
// store first. Cache misses of any kind fall through to a fresh
// recomputation; the engine is deterministic so the answer is the same.
func (r *reportRun) recompute(ctx context.Context, scenario gwp.Scenario) (*engine.Result, error) {
	key := cache.BuildKey(r.dataset.Fingerprint(), r.roles, scenario)
	if cached, err := r.store.Get(key); err == nil {
		logging.FromContext(ctx).Debug().
			Ctx(ctx).
			Str("component", "cli").
			Str("scenario", scenario.Name).
			Msg("recompute cache hit")
		return cached, nil
	}

	result, err := engine.Recompute(ctx, r.dataset, r.roles, scenario)
	if err != nil {
		return nil, err
	}
	// Best effort: a disabled store just declines.
	_ = r.store.Set(key, result)
	return result, nil
}

// printWarnings surfaces missing-value warnings on stderr so they stay
// visible next to table output.
func printWarnings(cmd *cobra.Command, result *engine.Result) {
	for _, w := range result.Warnings {
		cmd.PrintErrf("Warning: %s\n", w)
	}
}

// NewReportSummaryCmd creates the "summary" subcommand: headline KPIs plus
// yearly aggregate totals. With --interactive it launches the TUI instead.
func NewReportSummaryCmd() *cobra.Command {
	var params ReportParams

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Headline KPI figures and yearly totals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			run, err := runReportPipeline(cmd, params)
			if err != nil {
				return err
			}

			if params.Interactive {
				return runInteractive(cmd, run)
			}

			groupBy := engine.GroupByYear
			if params.ByRegion {
				groupBy = engine.GroupByYearRegion
			}
			aggregates := engine.Aggregate(run.result, groupBy)
			summary := engine.BuildSummary(run.result)

			switch outputFormat(params) {
			case config.OutputFormatJSON, config.OutputFormatNDJSON:
				return engine.RenderJSON(cmd.OutOrStdout(), struct {
					Summary    engine.Summary        `json:"summary"`
					Aggregates []engine.AggregateRow `json:"aggregates"`
				}{summary, aggregates})
			default:
				printWarnings(cmd, run.result)
				if err := engine.RenderSummary(cmd.OutOrStdout(), summary); err != nil {
					return err
				}
				cmd.Println()
				return engine.RenderAggregates(
					cmd.OutOrStdout(), aggregates, resolvedGases(run), groupBy)
			}
		},
	}

	addCommonReportFlags(cmd, &params)
	cmd.Flags().BoolVar(&params.ByRegion, "by-region", false, "group totals by year and region")
	cmd.Flags().BoolVar(&params.Interactive, "interactive", false, "launch interactive TUI mode")
	return cmd
}

// NewReportDetailCmd creates the "detail" subcommand: the row-level derived
// records, including rows flagged for missing values.
func NewReportDetailCmd() *cobra.Command {
	var params ReportParams

	cmd := &cobra.Command{
		Use:   "detail",
		Short: "Row-level derived records",
		RunE: func(cmd *cobra.Command, _ []string) error {
			run, err := runReportPipeline(cmd, params)
			if err != nil {
				return err
			}

			switch outputFormat(params) {
			case config.OutputFormatJSON:
				return engine.RenderJSON(cmd.OutOrStdout(), run.result)
			case config.OutputFormatNDJSON:
				return engine.RenderNDJSON(cmd.OutOrStdout(), run.result)
			default:
				return engine.RenderDetail(cmd.OutOrStdout(), run.result)
			}
		},
	}

	addCommonReportFlags(cmd, &params)
	return cmd
}

// NewReportTopCmd creates the "top" subcommand: the largest emitting regions
// by total CO2e, descending.
func NewReportTopCmd() *cobra.Command {
	var params ReportParams

	cmd := &cobra.Command{
		Use:   "top",
		Short: "Largest emitters by total CO2e",
		RunE: func(cmd *cobra.Command, _ []string) error {
			run, err := runReportPipeline(cmd, params)
			if err != nil {
				return err
			}

			top := engine.TopN(engine.Aggregate(run.result, engine.GroupByRegion), params.Top)

			switch outputFormat(params) {
			case config.OutputFormatJSON, config.OutputFormatNDJSON:
				return engine.RenderJSON(cmd.OutOrStdout(), top)
			default:
				printWarnings(cmd, run.result)
				return engine.RenderAggregates(
					cmd.OutOrStdout(), top, resolvedGases(run), engine.GroupByRegion)
			}
		},
	}

	addCommonReportFlags(cmd, &params)
	cmd.Flags().IntVar(&params.Top, "top", defaultTopN, "number of groups to show")
	return cmd
}

// addCommonReportFlags registers the flags shared by every report subcommand.
func addCommonReportFlags(cmd *cobra.Command, params *ReportParams) {
	cmd.Flags().StringVar(&params.Input, "input", "", "path to the emissions dataset (CSV)")
	cmd.Flags().StringVar(&params.Scenario, "scenario", "",
		"GWP coefficient scenario (default "+gwp.DefaultScenarioName+")")
	cmd.Flags().StringArrayVar(&params.Filters, "filter", nil,
		"filter expression key=value, keys: region, year (repeatable)")
	cmd.Flags().StringVar(&params.Output, "output", "", "output format (table, json, ndjson)")
}

// outputFormat resolves the effective output format for a command run.
func outputFormat(params ReportParams) string {
	if params.Output != "" {
		return params.Output
	}
	return config.GetDefaultOutputFormat()
}

// resolvedGases returns the gas identifiers that resolved against the
// dataset, in canonical order, for table column headers.
func resolvedGases(run *reportRun) []gwp.Gas {
	var gases []gwp.Gas
	for _, role := range run.roles.ResolvedGasRoles() {
		gas, _ := role.Gas()
		gases = append(gases, gas)
	}
	return gases
}

// runInteractive launches the bubbletea report explorer.
func runInteractive(cmd *cobra.Command, run *reportRun) error {
	if !isTerminal(os.Stdout) {
		return errors.New("--interactive requires a terminal")
	}

	model := tui.NewReportModel(cmd.Context(), tui.ReportConfig{
		Scenarios: run.registry.Scenarios(),
		Initial:   run.scenario.Name,
		Roles:     run.roles,
		Recompute: func(ctx context.Context, scenario gwp.Scenario) (*engine.Result, error) {
			return run.recompute(ctx, scenario)
		},
	})

	program := tea.NewProgram(model, tea.WithContext(cmd.Context()))
	_, err := program.Run()
	return err
}
