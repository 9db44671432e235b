package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/ghgfocus/internal/engine"
	"github.com/rshade/ghgfocus/internal/gwp"
)

// maxBarWidth caps the yearly bar chart independent of terminal width.
const maxBarWidth = 40

// View renders the current view (Bubble Tea interface).
func (m *ReportModel) View() string {
	switch m.state {
	case ReportStateQuitting:
		return ""
	case ReportStateError:
		return ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n\n" +
			SubtleStyle.Render("Press q to quit.")
	case ReportStateViewing, ReportStateRecomputing:
		// Handled below.
	}

	if m.result == nil || m.loading {
		return m.spinner.View() + SubtleStyle.Render(" Recomputing...")
	}

	result := m.visibleResult()
	summary := engine.BuildSummary(result)

	sections := []string{
		m.renderHeader(),
		m.renderKPIPanel(summary),
		m.renderYearChart(result),
		m.renderStatusBar(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader renders the title line with active scenario and focus.
func (m *ReportModel) renderHeader() string {
	region := m.Region()
	if region == allRegions {
		region = "all regions"
	}
	year := "all years"
	if m.Year() != allYears {
		year = fmt.Sprintf("%d", m.Year())
	}
	return HeaderStyle.Render("GHG EMISSIONS REPORT") + "  " +
		SubtleStyle.Render(fmt.Sprintf("scenario %s | %s | %s", m.Scenario().Name, region, year))
}

// renderKPIPanel renders the headline figures box.
func (m *ReportModel) renderKPIPanel(summary engine.Summary) string {
	var content strings.Builder

	content.WriteString(LabelStyle.Render("Total CO2e:       "))
	content.WriteString(ValueStyle.Render(gwp.FormatQuantity(summary.Total)))
	content.WriteString("\n")
	content.WriteString(LabelStyle.Render("Scope 1+2:        "))
	content.WriteString(ValueStyle.Render(gwp.FormatQuantity(summary.Scope12)))
	content.WriteString("\n")
	content.WriteString(LabelStyle.Render("Projected (-10%): "))
	content.WriteString(ValueStyle.Render(gwp.FormatQuantity(summary.Projected)))
	content.WriteString("\n")
	content.WriteString(LabelStyle.Render("Intensity:        "))
	if summary.Intensity.Defined {
		content.WriteString(ValueStyle.Render(gwp.FormatIntensity(summary.Intensity.Value)))
	} else {
		content.WriteString(SubtleStyle.Render("n/a"))
	}
	if summary.Excluded > 0 {
		content.WriteString("\n")
		content.WriteString(ErrorStyle.Render(
			fmt.Sprintf("%d of %d rows excluded (missing values)", summary.Excluded, summary.Rows)))
	}

	return BoxStyle.Width(m.width - borderPadding).Render(content.String())
}

// renderYearChart renders a horizontal bar per year, scaled to the largest
// yearly total.
func (m *ReportModel) renderYearChart(result *engine.Result) string {
	rows := engine.Aggregate(result, engine.GroupByYear)
	if len(rows) == 0 {
		return SubtleStyle.Render("No aggregable rows.")
	}

	maxTotal := 0.0
	for _, row := range rows {
		if row.Total > maxTotal {
			maxTotal = row.Total
		}
	}

	width := maxBarWidth
	if avail := m.width - borderPadding - 28; avail < width {
		width = avail
	}
	if width < 1 {
		width = 1
	}

	var content strings.Builder
	content.WriteString(HeaderStyle.Render("TOTAL CO2e BY YEAR"))
	content.WriteString("\n")
	for _, row := range rows {
		bar := 0
		if maxTotal > 0 {
			bar = int(row.Total / maxTotal * float64(width))
		}
		content.WriteString(LabelStyle.Render(fmt.Sprintf("%5d ", row.Year)))
		content.WriteString(BarStyle.Render(strings.Repeat("█", bar)))
		content.WriteString(ValueStyle.Render(" " + gwp.FormatQuantity(row.Total)))
		content.WriteString("\n")
	}
	return content.String()
}

// renderStatusBar displays the key bindings.
func (m *ReportModel) renderStatusBar() string {
	return SubtleStyle.Render("Press 's' to cycle scenario, 'r' region, 'y' year, 'q' to quit")
}
