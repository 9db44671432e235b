package engine

import "github.com/rshade/ghgfocus/internal/gwp"

// projectionFactor scales the grand total into a projected year-end figure,
// matching the -10% projection the source dashboard displays.
const projectionFactor = 0.90

// Summary holds the headline KPI figures for a recomputation: the numbers
// the report header and the TUI metric panel display.
type Summary struct {
	// Scenario is the name of the coefficient scenario in effect.
	Scenario string `json:"scenario"`
	// Total is the grand CO2e total across all included rows.
	Total float64 `json:"total"`
	// Scope12 is the Scope 1 + Scope 2 subtotal, zero when neither resolved.
	Scope12 float64 `json:"scope12"`
	// Projected is the projected year-end total (Total x 0.90).
	Projected float64 `json:"projected"`
	// Intensity is summed total over summed usage across included rows.
	Intensity Intensity `json:"intensity"`
	// Rows is the number of row-level records.
	Rows int `json:"rows"`
	// Excluded is the number of rows left out of aggregates.
	Excluded int `json:"excluded"`
}

// BuildSummary derives the KPI summary from a recomputation result.
func BuildSummary(result *Result) Summary {
	s := Summary{
		Scenario: result.Scenario.Name,
		Rows:     len(result.Rows),
	}

	usage := 0.0
	for _, row := range result.Rows {
		if row.Excluded {
			s.Excluded++
			continue
		}
		if !row.Total.Missing {
			s.Total += row.Total.Float64
		}
		for _, gas := range []gwp.Gas{gwp.GasScope1, gwp.GasScope2} {
			if v, ok := row.Gases[gas]; ok && !v.Missing {
				s.Scope12 += v.Float64
			}
		}
		if !row.Usage.Missing {
			usage += row.Usage.Float64
		}
	}

	s.Projected = s.Total * projectionFactor
	if usage != 0 {
		s.Intensity = IntensityOf(s.Total / usage)
	}
	return s
}
