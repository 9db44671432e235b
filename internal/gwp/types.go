// Package gwp defines global-warming-potential coefficient scenarios.
//
// A Scenario maps gas identifiers to GWP-100 multipliers that convert a raw
// gas quantity into CO2-equivalent. Scenarios are fixed, named coefficient
// tables (IPCC assessment report editions); selecting one is a pure lookup
// and switching scenarios re-derives every downstream number reproducibly.
package gwp

import "sort"

// Gas identifies a greenhouse gas or gas-like quantity column.
type Gas string

// Known gas identifiers. Scope categories are already expressed in CO2e and
// are treated as additional gas-like quantities with a unit coefficient.
const (
	GasCO2    Gas = "CO2"
	GasCH4    Gas = "CH4"
	GasN2O    Gas = "N2O"
	GasScope1 Gas = "Scope1"
	GasScope2 Gas = "Scope2"
	GasScope3 Gas = "Scope3"
)

// Scenario is a named, immutable coefficient table. Factors must be positive.
type Scenario struct {
	// Name identifies the scenario (e.g., "AR6").
	Name string `json:"name" yaml:"name"`
	// Description is a short human-readable summary for listings.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	// Factors maps gas identifiers to their GWP-100 multipliers.
	Factors map[Gas]float64 `json:"factors" yaml:"factors"`
}

// Factor returns the coefficient for gas and whether the scenario defines one.
func (s Scenario) Factor(gas Gas) (float64, bool) {
	f, ok := s.Factors[gas]
	return f, ok
}

// Gases returns the scenario's gas set in deterministic (sorted) order.
func (s Scenario) Gases() []Gas {
	gases := make([]Gas, 0, len(s.Factors))
	for g := range s.Factors {
		gases = append(gases, g)
	}
	sort.Slice(gases, func(i, j int) bool { return gases[i] < gases[j] })
	return gases
}

// Validate checks that the scenario is well-formed: a non-empty name and a
// non-empty factor table with strictly positive coefficients.
func (s Scenario) Validate() error {
	if s.Name == "" {
		return ErrScenarioNameRequired
	}
	if len(s.Factors) == 0 {
		return &ScenarioInvalidError{Scenario: s.Name, Reason: "factor table is empty"}
	}
	for gas, f := range s.Factors {
		if f <= 0 {
			return &ScenarioInvalidError{
				Scenario: s.Name,
				Reason:   "coefficient for " + string(gas) + " must be positive",
			}
		}
	}
	return nil
}
