package engine

import (
	"fmt"
	"strings"

	"github.com/rshade/ghgfocus/internal/ingest"
	"github.com/rshade/ghgfocus/internal/schema"
)

// Filter narrows the dataset before recomputation. A zero Filter matches
// every record. Region matching is exact but case-insensitive; year matching
// is set membership.
type Filter struct {
	Regions []string
	Years   []int
}

// IsZero reports whether the filter matches everything.
func (f Filter) IsZero() bool {
	return len(f.Regions) == 0 && len(f.Years) == 0
}

// filterKeyParts is the number of parts in a "key=value" filter expression.
const filterKeyParts = 2

// ValidateFilter checks a single "key=value" filter expression. Supported
// keys are "region" and "year"; year values must be comma-separated integers.
func ValidateFilter(expr string) error {
	parts := strings.SplitN(expr, "=", filterKeyParts)
	if len(parts) != filterKeyParts || parts[0] == "" || parts[1] == "" {
		return fmt.Errorf("invalid filter %q: expected key=value", expr)
	}
	key := strings.ToLower(strings.TrimSpace(parts[0]))
	switch key {
	case "region":
		return nil
	case "year":
		for _, y := range strings.Split(parts[1], ",") {
			if _, ok := schema.ParseYear(y); !ok {
				return fmt.Errorf("invalid filter %q: year %q is not an integer", expr, y)
			}
		}
		return nil
	default:
		return fmt.Errorf("invalid filter %q: unknown key %q (supported: region, year)", expr, key)
	}
}

// ParseFilters folds a slice of validated "key=value" expressions into a
// Filter. Repeated keys accumulate (two region filters match either region).
func ParseFilters(exprs []string) (Filter, error) {
	var f Filter
	for _, expr := range exprs {
		if expr == "" {
			continue
		}
		if err := ValidateFilter(expr); err != nil {
			return Filter{}, err
		}
		parts := strings.SplitN(expr, "=", filterKeyParts)
		key := strings.ToLower(strings.TrimSpace(parts[0]))
		switch key {
		case "region":
			f.Regions = append(f.Regions, strings.TrimSpace(parts[1]))
		case "year":
			for _, y := range strings.Split(parts[1], ",") {
				year, _ := schema.ParseYear(y)
				f.Years = append(f.Years, year)
			}
		}
	}
	return f, nil
}

// Apply returns a dataset containing only the records matching the filter.
// Region filtering requires a resolved Region role; with the role unresolved
// the region criterion is disabled rather than failing. The input dataset is
// never modified.
func (f Filter) Apply(ds *ingest.Dataset, roles schema.RoleMap) *ingest.Dataset {
	if f.IsZero() {
		return ds
	}

	regionColumn, hasRegion := roles.Column(schema.RoleRegion)
	yearColumn, _ := roles.Column(schema.RoleYear)

	filtered := &ingest.Dataset{Columns: ds.Columns}
	for _, rec := range ds.Records {
		if len(f.Regions) > 0 && hasRegion && !f.matchRegion(rec[regionColumn]) {
			continue
		}
		if len(f.Years) > 0 && !f.matchYear(rec[yearColumn]) {
			continue
		}
		filtered.Records = append(filtered.Records, rec)
	}
	return filtered
}

func (f Filter) matchRegion(raw string) bool {
	for _, r := range f.Regions {
		if strings.EqualFold(strings.TrimSpace(raw), r) {
			return true
		}
	}
	return false
}

func (f Filter) matchYear(raw string) bool {
	year, ok := schema.ParseYear(raw)
	if !ok {
		// Unparseable years are kept so the row surfaces as a
		// missing-value warning instead of vanishing silently.
		return true
	}
	for _, y := range f.Years {
		if y == year {
			return true
		}
	}
	return false
}
