package config

import (
	"fmt"

	"github.com/rshade/ghgfocus/internal/gwp"
)

// ScenarioConfig is one user-defined coefficient scenario in the config
// file. Adding a scenario here is the supported way to extend the scenario
// table; no code change is involved.
//
// Example:
//
//	scenarios:
//	  - name: AR6-biogenic
//	    description: AR6 with biogenic methane
//	    factors:
//	      CO2: 1
//	      CH4: 27.2
//	      N2O: 273
type ScenarioConfig struct {
	Name        string             `yaml:"name"                  json:"name"`
	Description string             `yaml:"description,omitempty" json:"description,omitempty"`
	Factors     map[string]float64 `yaml:"factors"               json:"factors"`
}

// Validate checks the scenario definition via the gwp validation rules.
func (sc ScenarioConfig) Validate() error {
	return sc.toScenario().Validate()
}

// toScenario converts the YAML shape to a gwp.Scenario.
func (sc ScenarioConfig) toScenario() gwp.Scenario {
	factors := make(map[gwp.Gas]float64, len(sc.Factors))
	for gas, f := range sc.Factors {
		factors[gwp.Gas(gas)] = f
	}
	return gwp.Scenario{Name: sc.Name, Description: sc.Description, Factors: factors}
}

// BuildRegistry returns the scenario registry for this configuration: the
// builtin IPCC presets plus any config-defined scenarios layered on top.
func (c *Config) BuildRegistry() (*gwp.Registry, error) {
	registry := gwp.NewRegistry()
	for _, sc := range c.Scenarios {
		if err := registry.Register(sc.toScenario()); err != nil {
			return nil, fmt.Errorf("loading scenario %q from config: %w", sc.Name, err)
		}
	}
	return registry, nil
}
