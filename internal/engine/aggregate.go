package engine

import (
	"sort"

	"github.com/rshade/ghgfocus/internal/gwp"
)

// GroupBy selects the aggregation key.
type GroupBy int

const (
	// GroupByYear groups derived records by reporting year.
	GroupByYear GroupBy = iota
	// GroupByYearRegion groups by year and region.
	GroupByYearRegion
	// GroupByRegion groups by region alone, for largest-emitter rankings.
	GroupByRegion
)

// String returns the human-readable label for a GroupBy.
func (g GroupBy) String() string {
	switch g {
	case GroupByYear:
		return "year"
	case GroupByYearRegion:
		return "year+region"
	case GroupByRegion:
		return "region"
	default:
		return "unknown"
	}
}

// AggregateRow is a grouping of derived records: summed per-gas values,
// summed total, and intensity recomputed from the sums. Intensity is
// summed-total over summed-usage, never the average of per-row intensities;
// averaging ratios over unequal denominators skews the result.
type AggregateRow struct {
	// Year is the group's year, or 0 when grouping by region alone.
	Year int `json:"year,omitempty"`
	// Region is the group's region, or "" when grouping by year alone.
	Region string `json:"region,omitempty"`
	// Gases holds the summed per-gas CO2e values across group members.
	Gases map[gwp.Gas]float64 `json:"gases"`
	// Total is the summed CO2e total across group members.
	Total float64 `json:"total"`
	// Usage is the summed usage across members with a present usage value.
	Usage float64 `json:"usage"`
	// Intensity is Total / Usage, undefined when the summed usage is zero or
	// no member carried a usage value.
	Intensity Intensity `json:"intensity"`
	// Members is the number of derived records in the group.
	Members int `json:"members"`

	// firstIndex is the smallest input row index in the group, the stable
	// tie-break for rankings.
	firstIndex int
}

// aggregateKey identifies one group.
type aggregateKey struct {
	year   int
	region string
}

// Aggregate groups the included (non-excluded) rows of a recomputation by
// the chosen key. Per-gas values, totals, and usage are summed first; each
// group's intensity is then derived from the sums. Output order is
// deterministic: ascending year, then region.
func Aggregate(result *Result, groupBy GroupBy) []AggregateRow {
	groups := make(map[aggregateKey]*AggregateRow)

	for _, row := range result.IncludedRows() {
		key := aggregateKey{}
		switch groupBy {
		case GroupByYear:
			key.year = row.Year
		case GroupByYearRegion:
			key.year = row.Year
			key.region = row.Region
		case GroupByRegion:
			key.region = row.Region
		}

		agg, ok := groups[key]
		if !ok {
			agg = &AggregateRow{
				Year:       key.year,
				Region:     key.region,
				Gases:      make(map[gwp.Gas]float64),
				firstIndex: row.Index,
			}
			groups[key] = agg
		}

		for gas, v := range row.Gases {
			if !v.Missing {
				agg.Gases[gas] += v.Float64
			}
		}
		if !row.Total.Missing {
			agg.Total += row.Total.Float64
		}
		if !row.Usage.Missing {
			agg.Usage += row.Usage.Float64
		}
		agg.Members++
		if row.Index < agg.firstIndex {
			agg.firstIndex = row.Index
		}
	}

	out := make([]AggregateRow, 0, len(groups))
	for _, agg := range groups {
		if agg.Usage != 0 {
			agg.Intensity = IntensityOf(agg.Total / agg.Usage)
		}
		out = append(out, *agg)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Region < out[j].Region
	})
	return out
}

// TopN returns the n largest groups by total, descending. Ties fall back to
// first-seen input row order so equal totals rank deterministically. The
// input slice is not modified.
func TopN(rows []AggregateRow, n int) []AggregateRow {
	sorted := make([]AggregateRow, len(rows))
	copy(sorted, rows)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Total != sorted[j].Total {
			return sorted[i].Total > sorted[j].Total
		}
		return sorted[i].firstIndex < sorted[j].firstIndex
	})

	if n >= 0 && n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}
