package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/ghgfocus/internal/gwp"
	"github.com/rshade/ghgfocus/internal/ingest"
)

func recomputeFixture(t *testing.T, rows []map[string]string) *Result {
	t.Helper()
	ds := ingest.FromRows([]string{"Year", "Region", "CO2", "Usage"}, rows)
	roles := resolveDataset(t, ds)
	result, err := Recompute(context.Background(), ds, roles, scenarioByName(t, "AR6"))
	require.NoError(t, err)
	return result
}

func TestAggregateByYear(t *testing.T) {
	result := recomputeFixture(t, []map[string]string{
		{"Year": "2021", "Region": "Asia", "CO2": "100", "Usage": "10"},
		{"Year": "2021", "Region": "Europe", "CO2": "200", "Usage": "40"},
		{"Year": "2020", "Region": "Asia", "CO2": "50", "Usage": "5"},
	})

	aggs := Aggregate(result, GroupByYear)
	require.Len(t, aggs, 2)

	assert.Equal(t, 2020, aggs[0].Year, "groups come back in ascending year order")
	assert.InDelta(t, 50.0, aggs[0].Total, 0)

	assert.Equal(t, 2021, aggs[1].Year)
	assert.InDelta(t, 300.0, aggs[1].Total, 0)
	assert.InDelta(t, 300.0, aggs[1].Gases[gwp.GasCO2], 0)
	assert.Equal(t, 2, aggs[1].Members)
}

func TestAggregateIntensityIsRatioOfSums(t *testing.T) {
	// Two rows with unequal usage: 100/10 = 10 and 200/40 = 5.
	// Mean of per-row intensities would be 7.5; the correct group intensity
	// is sum(total)/sum(usage) = 300/50 = 6.
	result := recomputeFixture(t, []map[string]string{
		{"Year": "2021", "Region": "Asia", "CO2": "100", "Usage": "10"},
		{"Year": "2021", "Region": "Europe", "CO2": "200", "Usage": "40"},
	})

	aggs := Aggregate(result, GroupByYear)
	require.Len(t, aggs, 1)
	require.True(t, aggs[0].Intensity.Defined)
	assert.InDelta(t, 6.0, aggs[0].Intensity.Value, 0)
	meanOfRatios := (10.0 + 5.0) / 2
	assert.NotEqual(t, meanOfRatios, aggs[0].Intensity.Value, "must not be the mean of per-row ratios")
}

func TestAggregateByYearRegion(t *testing.T) {
	result := recomputeFixture(t, []map[string]string{
		{"Year": "2021", "Region": "Asia", "CO2": "100", "Usage": "10"},
		{"Year": "2021", "Region": "Europe", "CO2": "200", "Usage": "40"},
		{"Year": "2021", "Region": "Asia", "CO2": "30", "Usage": "2"},
	})

	aggs := Aggregate(result, GroupByYearRegion)
	require.Len(t, aggs, 2)

	assert.Equal(t, "Asia", aggs[0].Region, "regions sort within a year")
	assert.InDelta(t, 130.0, aggs[0].Total, 0)
	assert.Equal(t, "Europe", aggs[1].Region)
}

func TestAggregateExcludesFlaggedRows(t *testing.T) {
	result := recomputeFixture(t, []map[string]string{
		{"Year": "2021", "Region": "Asia", "CO2": "100", "Usage": "10"},
		{"Year": "2021", "Region": "Asia", "CO2": "broken", "Usage": "10"},
	})

	aggs := Aggregate(result, GroupByYear)
	require.Len(t, aggs, 1)
	assert.InDelta(t, 100.0, aggs[0].Total, 0, "flagged row contributes nothing")
	assert.Equal(t, 1, aggs[0].Members)
}

func TestAggregateZeroUsageGroup(t *testing.T) {
	result := recomputeFixture(t, []map[string]string{
		{"Year": "2021", "Region": "Asia", "CO2": "100", "Usage": "0"},
	})

	aggs := Aggregate(result, GroupByYear)
	require.Len(t, aggs, 1)
	assert.False(t, aggs[0].Intensity.Defined, "zero summed usage leaves intensity undefined")
}

func TestTopN(t *testing.T) {
	result := recomputeFixture(t, []map[string]string{
		{"Year": "2021", "Region": "Asia", "CO2": "300", "Usage": "1"},
		{"Year": "2021", "Region": "Europe", "CO2": "500", "Usage": "1"},
		{"Year": "2021", "Region": "Africa", "CO2": "100", "Usage": "1"},
	})
	aggs := Aggregate(result, GroupByRegion)

	t.Run("orders by total descending", func(t *testing.T) {
		top := TopN(aggs, 2)
		require.Len(t, top, 2)
		assert.Equal(t, "Europe", top[0].Region)
		assert.Equal(t, "Asia", top[1].Region)
	})

	t.Run("n beyond length returns everything", func(t *testing.T) {
		assert.Len(t, TopN(aggs, 10), 3)
	})

	t.Run("does not modify the input", func(t *testing.T) {
		before := make([]AggregateRow, len(aggs))
		copy(before, aggs)
		_ = TopN(aggs, 1)
		assert.Equal(t, before, aggs)
	})
}

func TestTopNTiesBreakByInputOrder(t *testing.T) {
	result := recomputeFixture(t, []map[string]string{
		{"Year": "2021", "Region": "Beta", "CO2": "100", "Usage": "1"},
		{"Year": "2021", "Region": "Alpha", "CO2": "100", "Usage": "1"},
	})
	aggs := Aggregate(result, GroupByRegion)

	top := TopN(aggs, 2)
	require.Len(t, top, 2)
	assert.Equal(t, "Beta", top[0].Region, "equal totals rank by first-seen input row")
	assert.Equal(t, "Alpha", top[1].Region)
}
