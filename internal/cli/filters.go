package cli

import (
	"context"

	"github.com/rshade/ghgfocus/internal/engine"
	"github.com/rshade/ghgfocus/internal/ingest"
	"github.com/rshade/ghgfocus/internal/logging"
	"github.com/rshade/ghgfocus/internal/schema"
)

// ApplyFilters validates and applies a slice of filter expressions to a
// loaded dataset.
//
// The function performs two passes:
//  1. Validation: all filters are validated upfront. If any filter is
//     invalid, an error is returned immediately without applying any.
//  2. Application: the combined filter narrows the dataset.
//
// An empty filter slice returns the original dataset unchanged.
// A warning is logged if the filtered result is empty.
//
// Filter syntax follows engine.ValidateFilter rules: "key=value" with the
// keys "region" and "year".
func ApplyFilters(
	ctx context.Context,
	ds *ingest.Dataset,
	roles schema.RoleMap,
	filters []string,
) (*ingest.Dataset, error) {
	log := logging.FromContext(ctx)

	if len(filters) == 0 {
		return ds, nil
	}

	filter, err := engine.ParseFilters(filters)
	if err != nil {
		log.Warn().Ctx(ctx).
			Str("component", "cli").
			Str("operation", "apply_filters").
			Err(err).
			Msg("invalid filter expression")
		return nil, err
	}

	result := filter.Apply(ds, roles)
	log.Debug().Ctx(ctx).
		Str("component", "cli").
		Str("operation", "apply_filters").
		Int("before", ds.Len()).
		Int("after", result.Len()).
		Msg("applied filters")

	if result.Len() == 0 && ds.Len() > 0 {
		log.Warn().Ctx(ctx).
			Str("component", "cli").
			Str("operation", "apply_filters").
			Int("original_count", ds.Len()).
			Msg("no records match filter criteria")
	}

	return result, nil
}
