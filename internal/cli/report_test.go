package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/ghgfocus/internal/cli"
	"github.com/rshade/ghgfocus/internal/config"
)

// dashboardCSV mirrors the column naming of the source spreadsheets,
// including the quantities behind the published AR4 and AR6 totals.
const dashboardCSV = `Year,Region,CO2 (kt),CH4 (kt),N2O (kt),Energy Usage
2021,Europe,2000000,15000,300,800000
2021,Asia,3000000,23095,506,1200000
2022,Europe,1500000,12000,250,700000
`

// referenceCSV is a single-row dataset whose totals are known exactly.
const referenceCSV = `Year,Region,CO2 (kt),CH4 (kt),N2O (kt)
2021,Global,5000000,38095,806
`

// runCommand executes the root command with isolated config and quiet logging.
func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("GHGFOCUS_LOG_LEVEL", "error")
	t.Cleanup(func() { config.SetGlobalConfig(&config.Config{}) })

	if !slices.Contains(args, "--config") {
		configPath := filepath.Join(t.TempDir(), "config.yaml")
		args = append([]string{"--config", configPath}, args...)
	}

	var out, errOut bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

// writeCSV writes a dataset fixture into a temp dir and returns its path.
func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "emissions.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReportSummary(t *testing.T) {
	t.Run("recomputes the reference total under AR6", func(t *testing.T) {
		input := writeCSV(t, referenceCSV)

		out, _, err := runCommand(t, "report", "summary", "--input", input)

		require.NoError(t, err)
		assert.Contains(t, out, "AR6")
		assert.Contains(t, out, "Total Emissions (CO2e)")
		assert.Contains(t, out, "6,282,888.5")
	})

	t.Run("recomputes the reference total under AR4", func(t *testing.T) {
		input := writeCSV(t, referenceCSV)

		out, _, err := runCommand(t, "report", "summary", "--input", input, "--scenario", "AR4")

		require.NoError(t, err)
		assert.Contains(t, out, "AR4")
		assert.Contains(t, out, "6,192,563")
	})

	t.Run("groups by year and region with --by-region", func(t *testing.T) {
		input := writeCSV(t, dashboardCSV)

		out, _, err := runCommand(t, "report", "summary", "--input", input, "--by-region")

		require.NoError(t, err)
		assert.Contains(t, out, "YEAR")
		assert.Contains(t, out, "REGION")
		assert.Contains(t, out, "Europe")
		assert.Contains(t, out, "Asia")
	})

	t.Run("emits summary and aggregates as json", func(t *testing.T) {
		input := writeCSV(t, dashboardCSV)

		out, _, err := runCommand(t, "report", "summary", "--input", input, "--output", "json")

		require.NoError(t, err)
		assert.Contains(t, out, `"summary"`)
		assert.Contains(t, out, `"aggregates"`)
	})

	t.Run("rejects an unknown scenario", func(t *testing.T) {
		input := writeCSV(t, referenceCSV)

		_, _, err := runCommand(t, "report", "summary", "--input", input, "--scenario", "AR99")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "AR99")
	})

	t.Run("requires --input", func(t *testing.T) {
		_, _, err := runCommand(t, "report", "summary")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "--input")
	})

	t.Run("rejects unresolvable headers", func(t *testing.T) {
		input := writeCSV(t, "Alpha,Beta\n1,2\n")

		_, _, err := runCommand(t, "report", "summary", "--input", input)

		require.Error(t, err)
	})
}

func TestReportDetail(t *testing.T) {
	t.Run("renders a row-level table", func(t *testing.T) {
		input := writeCSV(t, dashboardCSV)

		out, _, err := runCommand(t, "report", "detail", "--input", input)

		require.NoError(t, err)
		assert.Contains(t, out, "ROW")
		assert.Contains(t, out, "YEAR")
		assert.Contains(t, out, "Europe")
	})

	t.Run("emits one ndjson line per row", func(t *testing.T) {
		input := writeCSV(t, dashboardCSV)

		out, _, err := runCommand(t, "report", "detail", "--input", input, "--output", "ndjson")

		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(out), "\n")
		assert.Len(t, lines, 3)
		for _, line := range lines {
			assert.True(t, strings.HasPrefix(line, "{"), "expected JSON object, got %q", line)
		}
	})

	t.Run("keeps rows with missing values visible", func(t *testing.T) {
		input := writeCSV(t, "Year,Region,CO2 (kt)\n2021,Europe,100\n2021,Asia,oops\n")

		out, _, err := runCommand(t, "report", "detail", "--input", input)

		require.NoError(t, err)
		assert.Contains(t, out, "excluded")
		assert.Contains(t, out, "warning:")
	})
}

func TestReportTop(t *testing.T) {
	t.Run("orders regions by descending total", func(t *testing.T) {
		input := writeCSV(t, dashboardCSV)

		out, _, err := runCommand(t, "report", "top", "--input", input)

		require.NoError(t, err)
		europeAt := strings.Index(out, "Europe")
		asiaAt := strings.Index(out, "Asia")
		require.GreaterOrEqual(t, europeAt, 0)
		require.GreaterOrEqual(t, asiaAt, 0)
		assert.Less(t, europeAt, asiaAt, "Europe's two years outweigh Asia's one")
	})

	t.Run("caps the group count at --top", func(t *testing.T) {
		input := writeCSV(t, dashboardCSV)

		out, _, err := runCommand(t, "report", "top", "--input", input, "--top", "1")

		require.NoError(t, err)
		assert.Contains(t, out, "Europe")
		assert.NotContains(t, out, "Asia")
	})
}

func TestReportFilters(t *testing.T) {
	t.Run("filters by region before recomputing", func(t *testing.T) {
		input := writeCSV(t, dashboardCSV)

		out, _, err := runCommand(t, "report", "detail", "--input", input,
			"--filter", "region=Asia")

		require.NoError(t, err)
		assert.Contains(t, out, "Asia")
		assert.NotContains(t, out, "Europe")
	})

	t.Run("filters by year", func(t *testing.T) {
		input := writeCSV(t, dashboardCSV)

		out, _, err := runCommand(t, "report", "detail", "--input", input,
			"--filter", "year=2022")

		require.NoError(t, err)
		assert.Contains(t, out, "2022")
		assert.NotContains(t, out, "2021")
	})

	t.Run("rejects a malformed filter expression", func(t *testing.T) {
		input := writeCSV(t, dashboardCSV)

		_, _, err := runCommand(t, "report", "detail", "--input", input,
			"--filter", "planet=Mars")

		require.Error(t, err)
	})
}

func TestValidateReportFlags(t *testing.T) {
	tests := []struct {
		name    string
		params  cli.ReportParams
		wantErr string
	}{
		{
			name:   "valid table request",
			params: cli.ReportParams{Input: "data.csv", Output: "table"},
		},
		{
			name:   "empty output falls back to config default",
			params: cli.ReportParams{Input: "data.csv"},
		},
		{
			name:    "missing input",
			params:  cli.ReportParams{},
			wantErr: "--input is required",
		},
		{
			name:    "unsupported output format",
			params:  cli.ReportParams{Input: "data.csv", Output: "xml"},
			wantErr: "invalid output format",
		},
		{
			name:    "interactive with json output",
			params:  cli.ReportParams{Input: "data.csv", Output: "json", Interactive: true},
			wantErr: "--interactive",
		},
		{
			name:    "negative top",
			params:  cli.ReportParams{Input: "data.csv", Top: -1},
			wantErr: "--top",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cli.ValidateReportFlags(&tt.params)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
