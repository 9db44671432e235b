package tui

import (
	"context"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/ghgfocus/internal/engine"
	"github.com/rshade/ghgfocus/internal/gwp"
	"github.com/rshade/ghgfocus/internal/schema"
)

// ReportState represents the current state of the report TUI.
type ReportState int

const (
	// ReportStateViewing indicates the report is displayed and accepting input.
	ReportStateViewing ReportState = iota
	// ReportStateRecomputing indicates a scenario recomputation is in flight.
	ReportStateRecomputing
	// ReportStateQuitting indicates the application is exiting.
	ReportStateQuitting
	// ReportStateError indicates an error occurred.
	ReportStateError
)

// recomputeMsg is sent when a scenario recomputation completes.
type recomputeMsg struct {
	result *engine.Result
	err    error
}

// Default dimensions before the first WindowSizeMsg arrives.
const (
	reportDefaultWidth  = 80
	reportDefaultHeight = 24
)

// allRegions is the region filter position meaning no filter.
const allRegions = ""

// allYears is the year filter position meaning no filter.
const allYears = 0

// ReportConfig carries everything the report explorer needs from the caller.
type ReportConfig struct {
	// Scenarios are the selectable coefficient scenarios, in display order.
	Scenarios []gwp.Scenario
	// Initial names the scenario selected at startup.
	Initial string
	// Roles is the resolved column mapping for the loaded dataset.
	Roles schema.RoleMap
	// Recompute re-derives the report under a scenario. It is expected to
	// be memoized by the caller so cycling back to a scenario is cheap.
	Recompute func(context.Context, gwp.Scenario) (*engine.Result, error)
}

// ReportModel is the Bubble Tea model for interactive report exploration.
// Pressing 's' cycles the coefficient scenario and 'r' cycles the region
// focus without reloading the dataset.
type ReportModel struct {
	ctx context.Context
	cfg ReportConfig

	scenarioIdx int
	regionIdx   int
	regions     []string
	yearIdx     int
	years       []int

	result  *engine.Result
	state   ReportState
	loading bool
	spinner spinner.Model
	err     error

	width  int
	height int
}

// NewReportModel creates a ReportModel positioned on the initial scenario.
func NewReportModel(ctx context.Context, cfg ReportConfig) *ReportModel {
	m := &ReportModel{
		ctx:     ctx,
		cfg:     cfg,
		state:   ReportStateViewing,
		regions: []string{allRegions},
		years:   []int{allYears},
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(SubtleStyle)),
		width:   reportDefaultWidth,
		height:  reportDefaultHeight,
	}
	for i, s := range cfg.Scenarios {
		if strings.EqualFold(s.Name, cfg.Initial) {
			m.scenarioIdx = i
			break
		}
	}
	return m
}

// Scenario returns the currently selected scenario.
func (m *ReportModel) Scenario() gwp.Scenario {
	if len(m.cfg.Scenarios) == 0 {
		return gwp.Scenario{}
	}
	return m.cfg.Scenarios[m.scenarioIdx]
}

// Region returns the currently focused region, or empty for all regions.
func (m *ReportModel) Region() string {
	return m.regions[m.regionIdx]
}

// Year returns the currently focused year, or zero for all years.
func (m *ReportModel) Year() int {
	return m.years[m.yearIdx]
}

// Init triggers the initial recomputation.
func (m *ReportModel) Init() tea.Cmd {
	return m.triggerRecompute()
}

// Update handles messages and updates the model state.
func (m *ReportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case recomputeMsg:
		return m.handleRecomputeComplete(msg)

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

// handleKeyMsg processes keyboard input.
//
//nolint:exhaustive // Only handling relevant key types for report navigation.
func (m *ReportModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.state = ReportStateQuitting
		return m, tea.Quit

	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "q":
			m.state = ReportStateQuitting
			return m, tea.Quit
		case "s":
			return m.cycleScenario()
		case "r":
			m.cycleRegion()
			return m, nil
		case "y":
			m.cycleYear()
			return m, nil
		}
	}

	return m, nil
}

// cycleScenario advances to the next scenario and recomputes under it.
func (m *ReportModel) cycleScenario() (tea.Model, tea.Cmd) {
	if len(m.cfg.Scenarios) < 2 || m.loading {
		return m, nil
	}
	m.scenarioIdx = (m.scenarioIdx + 1) % len(m.cfg.Scenarios)
	return m, m.triggerRecompute()
}

// cycleRegion advances the region focus. The region list is derived from
// the data, so cycling is a pure display change.
func (m *ReportModel) cycleRegion() {
	m.regionIdx = (m.regionIdx + 1) % len(m.regions)
}

// cycleYear advances the year focus the same way.
func (m *ReportModel) cycleYear() {
	m.yearIdx = (m.yearIdx + 1) % len(m.years)
}

// triggerRecompute creates a command to recompute under the selected scenario.
func (m *ReportModel) triggerRecompute() tea.Cmd {
	m.loading = true
	m.state = ReportStateRecomputing

	ctx := m.ctx
	scenario := m.Scenario()
	recompute := m.cfg.Recompute

	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		result, err := recompute(ctx, scenario)
		return recomputeMsg{result: result, err: err}
	})
}

// handleRecomputeComplete processes the result of a recomputation.
func (m *ReportModel) handleRecomputeComplete(msg recomputeMsg) (tea.Model, tea.Cmd) {
	m.loading = false

	if msg.err != nil {
		m.err = msg.err
		m.state = ReportStateError
		return m, nil
	}

	m.result = msg.result
	m.state = ReportStateViewing
	m.rebuildFocusLists()
	return m, nil
}

// rebuildFocusLists derives the region and year cycle lists from the current
// result, keeping the focused values stable across scenario switches when
// possible.
func (m *ReportModel) rebuildFocusLists() {
	focusedRegion := m.Region()
	focusedYear := m.Year()

	regionSet := make(map[string]struct{})
	yearSet := make(map[int]struct{})
	for _, row := range m.result.IncludedRows() {
		if row.Region != "" {
			regionSet[row.Region] = struct{}{}
		}
		yearSet[row.Year] = struct{}{}
	}

	names := make([]string, 0, len(regionSet))
	for name := range regionSet {
		names = append(names, name)
	}
	sort.Strings(names)
	m.regions = append([]string{allRegions}, names...)

	years := make([]int, 0, len(yearSet))
	for year := range yearSet {
		years = append(years, year)
	}
	sort.Ints(years)
	m.years = append([]int{allYears}, years...)

	m.regionIdx = 0
	for i, name := range m.regions {
		if name == focusedRegion {
			m.regionIdx = i
			break
		}
	}
	m.yearIdx = 0
	for i, year := range m.years {
		if year == focusedYear {
			m.yearIdx = i
			break
		}
	}
}

// visibleResult returns the result narrowed to the focused region and year.
// With no focus it returns the full result unchanged.
func (m *ReportModel) visibleResult() *engine.Result {
	region := m.Region()
	year := m.Year()
	if (region == allRegions && year == allYears) || m.result == nil {
		return m.result
	}

	rows := make([]engine.DerivedRecord, 0, len(m.result.Rows))
	for _, row := range m.result.Rows {
		if region != allRegions && row.Region != region {
			continue
		}
		if year != allYears && row.Year != year {
			continue
		}
		rows = append(rows, row)
	}
	return &engine.Result{
		Roles:    m.result.Roles,
		Scenario: m.result.Scenario,
		Rows:     rows,
		Warnings: m.result.Warnings,
	}
}
