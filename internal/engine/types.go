// Package engine recomputes CO2-equivalent emissions from raw gas quantities.
//
// The engine is a stateless pure pipeline: given an immutable dataset, a
// resolved role map, and a coefficient scenario, Recompute derives per-row
// and aggregated CO2e figures. Identical inputs always produce identical
// output; the only user-facing "state" (selected scenario and filters) lives
// in the caller and is passed in on every invocation.
package engine

import (
	"fmt"

	"github.com/rshade/ghgfocus/internal/gwp"
	"github.com/rshade/ghgfocus/internal/schema"
)

// Intensity is an emissions-per-usage ratio that may be undefined. It is
// undefined when the usage column is unresolved, the usage value is missing,
// or the usage value is zero; it is never silently substituted.
type Intensity struct {
	Value   float64 `json:"value"`
	Defined bool    `json:"defined"`
}

// UndefinedIntensity returns the undefined marker.
func UndefinedIntensity() Intensity {
	return Intensity{}
}

// IntensityOf wraps a defined intensity value.
func IntensityOf(v float64) Intensity {
	return Intensity{Value: v, Defined: true}
}

// DerivedRecord is the engine output for one input row: per-gas CO2e values,
// their total, and an optional intensity ratio. Rows with missing required
// numeric values keep their missing markers and are excluded from aggregates
// but retained here.
type DerivedRecord struct {
	// Index is the zero-based input row position, the stable secondary sort key.
	Index int `json:"index"`
	// Year is the parsed reporting year; meaningless when Excluded is set
	// because of an unparseable year cell.
	Year int `json:"year"`
	// Region is the raw region cell, empty when the role is unresolved.
	Region string `json:"region,omitempty"`
	// Gases holds the per-gas CO2-equivalent values (raw quantity x coefficient).
	Gases map[gwp.Gas]schema.Value `json:"gases"`
	// Total is the sum of per-gas CO2e values, or the missing marker when any
	// resolved gas value is missing on this row.
	Total schema.Value `json:"total"`
	// Usage is the coerced usage denominator, missing when unresolved or blank.
	Usage schema.Value `json:"usage"`
	// Intensity is Total divided by Usage when both are present and usage is
	// non-zero; undefined otherwise.
	Intensity Intensity `json:"intensity"`
	// Excluded marks rows left out of aggregation because a required numeric
	// field (year or a resolved gas quantity) was missing or non-parseable.
	Excluded bool `json:"excluded"`
}

// MissingValueWarning flags a row whose required numeric field did not parse.
// The row stays in row-level output but is excluded from aggregate totals.
// This is a visible condition, not an error: recomputation continues.
type MissingValueWarning struct {
	// RowIndex is the zero-based input row position.
	RowIndex int `json:"row_index"`
	// Role is the semantic role of the offending column.
	Role schema.Role `json:"role"`
	// Column is the actual column name.
	Column string `json:"column"`
	// Raw is the cell content that failed to parse.
	Raw string `json:"raw"`
}

// String renders the warning for diagnostic display.
func (w MissingValueWarning) String() string {
	return fmt.Sprintf("row %d: %s column %q has non-numeric value %q; row excluded from aggregates",
		w.RowIndex, w.Role, w.Column, w.Raw)
}

// Result is the full output of one recomputation: the resolved roles for
// diagnostic display, the scenario that produced the numbers, the row-level
// derived records, and any missing-value warnings.
type Result struct {
	Roles    schema.RoleMap        `json:"-"`
	Scenario gwp.Scenario          `json:"scenario"`
	Rows     []DerivedRecord       `json:"rows"`
	Warnings []MissingValueWarning `json:"warnings,omitempty"`
}

// IncludedRows returns the rows that participate in aggregation.
func (r *Result) IncludedRows() []DerivedRecord {
	var out []DerivedRecord
	for _, row := range r.Rows {
		if !row.Excluded {
			out = append(out, row)
		}
	}
	return out
}
