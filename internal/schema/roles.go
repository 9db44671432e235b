// Package schema resolves loosely-named dataset columns to semantic roles.
//
// Input tables arrive with arbitrary header spellings ("Year", "FY",
// "CO2_kt", "Scope 1 Emissions"). The resolver matches each role's alias
// list against the actual headers, case-insensitively, preferring an exact
// match and falling back to substring containment. Resolution is a pure
// function: same headers and candidates in, same RoleMap out.
package schema

import "github.com/rshade/ghgfocus/internal/gwp"

// Role is a semantic column role in the input table.
type Role string

// Column roles. Year is always required; gas-quantity roles feed the
// recalculation engine; Region and Usage are optional features.
const (
	RoleYear   Role = "Year"
	RoleRegion Role = "Region"
	RoleUsage  Role = "Usage"
	RoleCO2    Role = "CO2"
	RoleCH4    Role = "CH4"
	RoleN2O    Role = "N2O"
	RoleScope1 Role = "Scope1"
	RoleScope2 Role = "Scope2"
	RoleScope3 Role = "Scope3"
)

// roleOrder fixes the iteration order for resolution and reporting.
// Map iteration order would make resolution nondeterministic.
//
//nolint:gochecknoglobals // Static ordering table.
var roleOrder = []Role{
	RoleYear, RoleRegion, RoleUsage,
	RoleCO2, RoleCH4, RoleN2O,
	RoleScope1, RoleScope2, RoleScope3,
}

// gasRoles lists the roles that carry raw gas-like quantities.
//
//nolint:gochecknoglobals // Static ordering table.
var gasRoles = []Role{RoleCO2, RoleCH4, RoleN2O, RoleScope1, RoleScope2, RoleScope3}

// GasRoles returns the gas-quantity roles in their canonical order.
func GasRoles() []Role {
	out := make([]Role, len(gasRoles))
	copy(out, gasRoles)
	return out
}

// Gas maps a gas-quantity role to its gwp.Gas identifier.
// Returns false for non-gas roles (Year, Region, Usage).
func (r Role) Gas() (gwp.Gas, bool) {
	switch r {
	case RoleCO2, RoleCH4, RoleN2O, RoleScope1, RoleScope2, RoleScope3:
		return gwp.Gas(r), true
	default:
		return "", false
	}
}

// GasRole maps a gwp.Gas identifier back to its column role.
func GasRole(gas gwp.Gas) Role {
	return Role(gas)
}

// Candidates maps each role to its ordered alias list. Alias order is a
// priority order: the first alias that matches any column wins the role.
type Candidates map[Role][]string

// DefaultCandidates returns the alias table used when the caller does not
// supply a remapping. Exact-token aliases come before looser substrings so
// that, for example, "co2e" does not claim the CH4 column via "Total CO2e".
func DefaultCandidates() Candidates {
	return Candidates{
		RoleYear:   {"year", "fy", "period"},
		RoleRegion: {"region", "country", "area", "location"},
		RoleUsage:  {"usage", "activity", "energy use", "output"},
		RoleCO2:    {"co2_kt", "co2 (kt)", "co2"},
		RoleCH4:    {"ch4_kt", "ch4 (kt)", "ch4", "methane"},
		RoleN2O:    {"n2o_kt", "n2o (kt)", "n2o", "nitrous"},
		RoleScope1: {"scope1", "scope 1", "scope_1"},
		RoleScope2: {"scope2", "scope 2", "scope_2"},
		RoleScope3: {"scope3", "scope 3", "scope_3"},
	}
}
