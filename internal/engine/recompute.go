package engine

import (
	"context"
	"time"

	"github.com/rshade/ghgfocus/internal/gwp"
	"github.com/rshade/ghgfocus/internal/ingest"
	"github.com/rshade/ghgfocus/internal/logging"
	"github.com/rshade/ghgfocus/internal/schema"
)

// Recompute derives per-row CO2-equivalent values for every record.
//
// For each record, each resolved gas role is coerced to a number and
// multiplied by the scenario coefficient; the per-row total is the exact sum
// across gases. Gas roles that never resolved against the data simply do not
// contribute (a dataset with no N2O column is valid under any scenario).
// A gas role that IS resolved but has no coefficient in the scenario is a
// configuration error: Recompute fails up front with *gwp.CoefficientError
// before touching any row.
//
// Rows with a missing year or a missing resolved gas value are retained with
// missing markers, flagged via MissingValueWarnings, and excluded from
// aggregation. Intensity is computed only when usage is resolved, present,
// and non-zero.
func Recompute(
	ctx context.Context,
	ds *ingest.Dataset,
	roles schema.RoleMap,
	scenario gwp.Scenario,
) (*Result, error) {
	log := logging.FromContext(ctx)
	start := time.Now()

	if err := roles.Validate(); err != nil {
		return nil, err
	}

	gasColumns, err := resolveGasColumns(roles, scenario)
	if err != nil {
		log.Error().
			Ctx(ctx).
			Str("component", "engine").
			Str("operation", "recompute").
			Str("scenario", scenario.Name).
			Err(err).
			Msg("coefficient table does not cover resolved gas columns")
		return nil, err
	}

	yearColumn, _ := roles.Column(schema.RoleYear)
	regionColumn, hasRegion := roles.Column(schema.RoleRegion)
	usageColumn, hasUsage := roles.Column(schema.RoleUsage)

	result := &Result{
		Roles:    roles,
		Scenario: scenario,
		Rows:     make([]DerivedRecord, 0, ds.Len()),
	}

	for i, rec := range ds.Records {
		row := DerivedRecord{
			Index: i,
			Gases: make(map[gwp.Gas]schema.Value, len(gasColumns)),
			Usage: schema.MissingValue(),
		}
		if hasRegion {
			row.Region = rec[regionColumn]
		}

		year, yearOK := schema.ParseYear(rec[yearColumn])
		if yearOK {
			row.Year = year
		} else {
			row.Excluded = true
			result.Warnings = append(result.Warnings, MissingValueWarning{
				RowIndex: i, Role: schema.RoleYear, Column: yearColumn, Raw: rec[yearColumn],
			})
		}

		total := 0.0
		totalOK := true
		for _, gc := range gasColumns {
			raw := schema.ParseNumber(rec[gc.column])
			if raw.Missing {
				row.Gases[gc.gas] = schema.MissingValue()
				row.Excluded = true
				totalOK = false
				result.Warnings = append(result.Warnings, MissingValueWarning{
					RowIndex: i, Role: gc.role, Column: gc.column, Raw: rec[gc.column],
				})
				continue
			}
			co2e := raw.Float64 * gc.factor
			row.Gases[gc.gas] = schema.NumberOf(co2e)
			total += co2e
		}
		if totalOK {
			row.Total = schema.NumberOf(total)
		} else {
			row.Total = schema.MissingValue()
		}

		if hasUsage {
			row.Usage = schema.ParseNumber(rec[usageColumn])
		}
		if !row.Total.Missing && !row.Usage.Missing && row.Usage.Float64 != 0 {
			row.Intensity = IntensityOf(row.Total.Float64 / row.Usage.Float64)
		}

		result.Rows = append(result.Rows, row)
	}

	log.Debug().
		Ctx(ctx).
		Str("component", "engine").
		Str("operation", "recompute").
		Str("scenario", scenario.Name).
		Int("row_count", len(result.Rows)).
		Int("warning_count", len(result.Warnings)).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("recomputation complete")

	return result, nil
}

// gasColumn binds a resolved gas role to its column and scenario coefficient.
type gasColumn struct {
	role   schema.Role
	gas    gwp.Gas
	column string
	factor float64
}

// resolveGasColumns checks, once up front, that every resolved gas role has a
// coefficient in the scenario, and returns the bindings in canonical role
// order so row arithmetic is deterministic.
func resolveGasColumns(roles schema.RoleMap, scenario gwp.Scenario) ([]gasColumn, error) {
	var out []gasColumn
	for _, role := range roles.ResolvedGasRoles() {
		gas, _ := role.Gas()
		column, _ := roles.Column(role)
		factor, ok := scenario.Factor(gas)
		if !ok {
			return nil, &gwp.CoefficientError{Gas: gas, Scenario: scenario.Name}
		}
		out = append(out, gasColumn{role: role, gas: gas, column: column, factor: factor})
	}
	return out, nil
}
