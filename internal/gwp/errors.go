package gwp

import (
	"errors"
	"fmt"
)

// ErrScenarioNameRequired is returned when a scenario has no name.
var ErrScenarioNameRequired = errors.New("scenario name is required")

// CoefficientError reports that the active scenario lacks a coefficient for a
// gas that is present in the data. This is a configuration error, detected
// once up front, never a per-row condition.
type CoefficientError struct {
	// Gas is the offending gas identifier.
	Gas Gas
	// Scenario is the name of the active scenario.
	Scenario string
}

// Error implements the error interface.
func (e *CoefficientError) Error() string {
	return fmt.Sprintf("scenario %q has no coefficient for gas %q", e.Scenario, e.Gas)
}

// ScenarioNotFoundError reports a lookup of an unknown scenario name.
type ScenarioNotFoundError struct {
	// Name is the requested scenario name.
	Name string
	// Available lists the scenario names the registry knows, sorted.
	Available []string
}

// Error implements the error interface.
func (e *ScenarioNotFoundError) Error() string {
	return fmt.Sprintf("unknown scenario %q (available: %v)", e.Name, e.Available)
}

// ScenarioInvalidError reports a malformed scenario definition, typically
// from a user config file.
type ScenarioInvalidError struct {
	// Scenario is the scenario name.
	Scenario string
	// Reason describes what is wrong with the definition.
	Reason string
}

// Error implements the error interface.
func (e *ScenarioInvalidError) Error() string {
	return fmt.Sprintf("invalid scenario %q: %s", e.Scenario, e.Reason)
}
