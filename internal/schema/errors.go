package schema

import (
	"fmt"
	"strings"
)

// SchemaError reports required roles that could not be resolved against the
// input columns. It carries the raw column names seen so the user can rename
// or remap their data.
type SchemaError struct {
	// Missing lists the required roles with no matching column.
	Missing []Role
	// Columns are the raw column names the resolver saw.
	Columns []string
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	missing := make([]string, len(e.Missing))
	for i, r := range e.Missing {
		missing[i] = string(r)
	}
	return fmt.Sprintf("could not resolve required roles [%s] from columns [%s]",
		strings.Join(missing, ", "), strings.Join(e.Columns, ", "))
}

// MissingRole reports whether role is among the unresolved required roles.
func (e *SchemaError) MissingRole(role Role) bool {
	for _, r := range e.Missing {
		if r == role {
			return true
		}
	}
	return false
}
