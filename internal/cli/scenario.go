package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/ghgfocus/internal/config"
	"github.com/rshade/ghgfocus/internal/engine"
	"github.com/rshade/ghgfocus/internal/gwp"
)

// NewScenarioListCmd creates the "list" subcommand showing every available
// coefficient scenario, builtin and configured.
func NewScenarioListCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available GWP coefficient scenarios",
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry, err := config.GetGlobalConfig().BuildRegistry()
			if err != nil {
				return err
			}

			scenarios := registry.Scenarios()
			if output == config.OutputFormatJSON {
				return engine.RenderJSON(cmd.OutOrStdout(), scenarios)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCH4\tN2O\tDEFAULT\tDESCRIPTION")
			for _, s := range scenarios {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					s.Name,
					factorCell(s, gwp.GasCH4),
					factorCell(s, gwp.GasN2O),
					defaultMarker(s),
					s.Description)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&output, "output", "", "output format (table, json)")
	return cmd
}

func factorCell(s gwp.Scenario, gas gwp.Gas) string {
	factor, ok := s.Factor(gas)
	if !ok {
		return "-"
	}
	return gwp.FormatQuantity(factor)
}

func defaultMarker(s gwp.Scenario) string {
	if s.Name == gwp.DefaultScenarioName {
		return "*"
	}
	return ""
}
