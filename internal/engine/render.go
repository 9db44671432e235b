package engine

import (
	"fmt"
	"io"
	"text/tabwriter"

	json "github.com/goccy/go-json"

	"github.com/rshade/ghgfocus/internal/gwp"
	"github.com/rshade/ghgfocus/internal/schema"
)

// tabwriterPadding is the minimum padding between columns in rendered tables.
const tabwriterPadding = 2

// missingCell is the display marker for missing or undefined values.
const missingCell = "n/a"

// RenderSummary writes the KPI figures in the dashboard's metric layout.
func RenderSummary(w io.Writer, s Summary) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)
	fmt.Fprintf(tw, "Scenario\t%s\n", s.Scenario)
	fmt.Fprintf(tw, "Total Emissions (CO2e)\t%s\n", gwp.FormatQuantity(s.Total))
	fmt.Fprintf(tw, "Scope 1 & 2 (CO2e)\t%s\n", gwp.FormatQuantity(s.Scope12))
	fmt.Fprintf(tw, "Projected Year-End (CO2e)\t%s\t(-10%%)\n", gwp.FormatQuantity(s.Projected))
	fmt.Fprintf(tw, "Carbon Intensity\t%s\n", formatIntensityCell(s.Intensity))
	if s.Excluded > 0 {
		fmt.Fprintf(tw, "Rows excluded\t%d of %d\n", s.Excluded, s.Rows)
	}
	return tw.Flush()
}

// RenderAggregates writes grouped totals as a table. The gas columns follow
// the scenario's gas order so every render of the same result lines up.
func RenderAggregates(w io.Writer, rows []AggregateRow, gases []gwp.Gas, groupBy GroupBy) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)

	header := ""
	switch groupBy {
	case GroupByYear:
		header = "YEAR"
	case GroupByRegion:
		header = "REGION"
	case GroupByYearRegion:
		header = "YEAR\tREGION"
	}
	fmt.Fprint(tw, header)
	for _, gas := range gases {
		fmt.Fprintf(tw, "\t%s", gas)
	}
	fmt.Fprint(tw, "\tTOTAL\tINTENSITY\n")

	for _, row := range rows {
		switch groupBy {
		case GroupByYear:
			fmt.Fprintf(tw, "%d", row.Year)
		case GroupByRegion:
			fmt.Fprintf(tw, "%s", row.Region)
		case GroupByYearRegion:
			fmt.Fprintf(tw, "%d\t%s", row.Year, row.Region)
		}
		for _, gas := range gases {
			fmt.Fprintf(tw, "\t%s", gwp.FormatQuantity(row.Gases[gas]))
		}
		fmt.Fprintf(tw, "\t%s\t%s\n", gwp.FormatQuantity(row.Total), formatIntensityCell(row.Intensity))
	}
	return tw.Flush()
}

// RenderDetail writes the row-level derived records, keeping missing markers
// visible instead of dropping flagged rows.
func RenderDetail(w io.Writer, result *Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)
	gases := result.Scenario.Gases()

	fmt.Fprint(tw, "ROW\tYEAR\tREGION")
	for _, gas := range gases {
		if hasGasColumn(result, gas) {
			fmt.Fprintf(tw, "\t%s", gas)
		}
	}
	fmt.Fprint(tw, "\tTOTAL\tINTENSITY\tFLAGS\n")

	for _, row := range result.Rows {
		fmt.Fprintf(tw, "%d\t%d\t%s", row.Index, row.Year, row.Region)
		for _, gas := range gases {
			if !hasGasColumn(result, gas) {
				continue
			}
			fmt.Fprintf(tw, "\t%s", formatValueCell(row.Gases[gas]))
		}
		flags := ""
		if row.Excluded {
			flags = "excluded"
		}
		fmt.Fprintf(tw, "\t%s\t%s\t%s\n",
			formatValueCell(row.Total), formatIntensityCell(row.Intensity), flags)
	}

	if err := tw.Flush(); err != nil {
		return err
	}
	for _, warning := range result.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warning)
	}
	return nil
}

// RenderJSON writes v as indented JSON.
func RenderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// RenderNDJSON writes one JSON object per line for each derived record.
func RenderNDJSON(w io.Writer, result *Result) error {
	enc := json.NewEncoder(w)
	for _, row := range result.Rows {
		if err := enc.Encode(row); err != nil {
			return err
		}
	}
	return nil
}

// hasGasColumn reports whether any derived row carries the gas, i.e. the
// role resolved against the dataset.
func hasGasColumn(result *Result, gas gwp.Gas) bool {
	for _, row := range result.Rows {
		if _, ok := row.Gases[gas]; ok {
			return true
		}
	}
	return false
}

func formatValueCell(v schema.Value) string {
	if v.Missing {
		return missingCell
	}
	return gwp.FormatQuantity(v.Float64)
}

func formatIntensityCell(i Intensity) string {
	if !i.Defined {
		return missingCell
	}
	return gwp.FormatIntensity(i.Value)
}
