package schema

import (
	"context"
	"strings"

	"github.com/rshade/ghgfocus/internal/logging"
)

// RoleMap is the result of resolving column names to roles. It is built once
// per loaded table and never mutated.
type RoleMap struct {
	columns  []string
	resolved map[Role]string
}

// Column returns the column name resolved for role, and whether the role
// resolved at all.
func (m RoleMap) Column(role Role) (string, bool) {
	name, ok := m.resolved[role]
	return name, ok
}

// Columns returns the raw column names the resolver saw, in input order.
func (m RoleMap) Columns() []string {
	out := make([]string, len(m.columns))
	copy(out, m.columns)
	return out
}

// Resolved returns a copy of the role-to-column mapping, for diagnostic
// display.
func (m RoleMap) Resolved() map[Role]string {
	out := make(map[Role]string, len(m.resolved))
	for r, c := range m.resolved {
		out[r] = c
	}
	return out
}

// ResolvedGasRoles returns the gas-quantity roles that resolved to a column,
// in canonical role order.
func (m RoleMap) ResolvedGasRoles() []Role {
	var out []Role
	for _, r := range gasRoles {
		if _, ok := m.resolved[r]; ok {
			out = append(out, r)
		}
	}
	return out
}

// Validate checks the required-role invariant: Year must resolve, and at
// least one gas-quantity role must resolve. On failure it returns a
// *SchemaError naming every missing requirement alongside the raw columns,
// and the caller must halt before any computation.
func (m RoleMap) Validate() error {
	var missing []Role
	if _, ok := m.resolved[RoleYear]; !ok {
		missing = append(missing, RoleYear)
	}
	if len(m.ResolvedGasRoles()) == 0 {
		missing = append(missing, gasRoles...)
	}
	if len(missing) > 0 {
		return &SchemaError{Missing: missing, Columns: m.Columns()}
	}
	return nil
}

// Resolve maps column names to roles using the candidate alias table.
//
// For each role the alias list is tried in priority order; the first alias
// that matches any column wins the role. Within one alias an exact
// case-insensitive match is preferred over substring containment, and ties
// fall to the earliest column. Roles with no matching alias are simply left
// unresolved; Validate decides which absences are fatal.
func Resolve(columns []string, candidates Candidates) RoleMap {
	return ResolveWithContext(context.Background(), columns, candidates)
}

// ResolveWithContext is Resolve with a context for logging.
func ResolveWithContext(ctx context.Context, columns []string, candidates Candidates) RoleMap {
	log := logging.FromContext(ctx)

	lowered := make([]string, len(columns))
	for i, c := range columns {
		lowered[i] = strings.ToLower(strings.TrimSpace(c))
	}

	m := RoleMap{
		columns:  append([]string(nil), columns...),
		resolved: make(map[Role]string),
	}

	for _, role := range roleOrder {
		aliases := candidates[role]
		for _, alias := range aliases {
			if idx := matchAlias(lowered, strings.ToLower(alias)); idx >= 0 {
				m.resolved[role] = columns[idx]
				break
			}
		}
	}

	log.Debug().
		Ctx(ctx).
		Str("component", "schema").
		Str("operation", "resolve").
		Int("column_count", len(columns)).
		Int("resolved_count", len(m.resolved)).
		Msg("resolved column roles")

	return m
}

// matchAlias returns the index of the column matching alias, or -1.
// Exact matches beat substring matches; both passes take the first hit.
func matchAlias(lowered []string, alias string) int {
	for i, col := range lowered {
		if col == alias {
			return i
		}
	}
	for i, col := range lowered {
		if strings.Contains(col, alias) {
			return i
		}
	}
	return -1
}
