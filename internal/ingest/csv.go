package ingest

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"

	"github.com/rshade/ghgfocus/internal/logging"
)

// ErrEmptyDataset is returned when the input contains no header row.
var ErrEmptyDataset = errors.New("dataset has no header row")

// ParseCSV parses a delimited dataset from raw bytes. The first row is the
// header; subsequent rows become RawRecords keyed by header name.
func ParseCSV(data []byte) (*Dataset, error) {
	return ParseCSVWithContext(context.Background(), data)
}

// ParseCSVWithContext parses CSV bytes using the logger carried in ctx.
//
// Short rows leave the trailing cells empty rather than failing the whole
// load; ragged real-world exports are common and per-cell absence is handled
// downstream by the missing-value coercion.
func ParseCSVWithContext(ctx context.Context, data []byte) (*Dataset, error) {
	log := logging.FromContext(ctx)
	log.Debug().
		Ctx(ctx).
		Str("component", "ingest").
		Str("operation", "parse_csv").
		Int("data_size_bytes", len(data)).
		Msg("parsing dataset from bytes")

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		log.Error().
			Ctx(ctx).
			Str("component", "ingest").
			Str("operation", "parse_csv").
			Err(err).
			Msg("failed to parse CSV")
		return nil, fmt.Errorf("parsing CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyDataset
	}

	columns := rows[0]
	records := make([]RawRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(RawRecord, len(columns))
		for i, col := range columns {
			if i < len(row) {
				rec[col] = row[i]
			} else {
				rec[col] = ""
			}
		}
		records = append(records, rec)
	}

	log.Debug().
		Ctx(ctx).
		Str("component", "ingest").
		Int("column_count", len(columns)).
		Int("record_count", len(records)).
		Msg("dataset parsed successfully")

	return &Dataset{Columns: columns, Records: records}, nil
}

// LoadCSV loads and parses a delimited dataset file from path.
func LoadCSV(path string) (*Dataset, error) {
	return LoadCSVWithContext(context.Background(), path)
}

// LoadCSVWithContext loads and parses the dataset file at path using the
// logger carried in ctx.
func LoadCSVWithContext(ctx context.Context, path string) (*Dataset, error) {
	log := logging.FromContext(ctx)
	log.Debug().
		Ctx(ctx).
		Str("component", "ingest").
		Str("operation", "load_csv").
		Str("path", path).
		Msg("loading dataset file")

	data, err := os.ReadFile(path) //nolint:gosec // Path is user-supplied by design.
	if err != nil {
		log.Error().
			Ctx(ctx).
			Str("component", "ingest").
			Str("path", path).
			Err(err).
			Msg("failed to read dataset file")
		return nil, fmt.Errorf("reading dataset file %s: %w", path, err)
	}

	return ParseCSVWithContext(ctx, data)
}
