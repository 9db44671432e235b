// Package ingest loads tabular emission datasets into memory.
//
// A Dataset is parsed once from its source (a delimited file or an in-memory
// row set) and is immutable for the rest of the session; a fresh Dataset is
// loaded whenever the input source changes.
package ingest

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

// RawRecord is one row of the input table: an arbitrary mapping from column
// name to the raw cell string. Values stay strings until the schema resolver
// coerces the columns it selected.
type RawRecord map[string]string

// Dataset is an immutable, ordered table of raw records.
type Dataset struct {
	// Columns are the header names in input order.
	Columns []string
	// Records are the rows in input order.
	Records []RawRecord

	fingerprint string
}

// Fingerprint returns a stable content hash of the dataset, used as the
// dataset-identity component of recompute cache keys.
func (d *Dataset) Fingerprint() string {
	if d.fingerprint == "" {
		d.fingerprint = fingerprint(d.Columns, d.Records)
	}
	return d.fingerprint
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.Records)
}

// FromRows builds a Dataset from in-memory rows, for callers that already
// hold tabular data. Column order follows the columns argument; rows missing
// a column get an empty cell.
func FromRows(columns []string, rows []map[string]string) *Dataset {
	records := make([]RawRecord, len(rows))
	for i, row := range rows {
		rec := make(RawRecord, len(columns))
		for _, col := range columns {
			rec[col] = row[col]
		}
		records[i] = rec
	}
	return &Dataset{
		Columns: append([]string(nil), columns...),
		Records: records,
	}
}

// fingerprint hashes the header plus every cell in row and column order.
func fingerprint(columns []string, records []RawRecord) string {
	h := sha256.New()
	_, _ = h.Write([]byte(strings.Join(columns, "\x1f")))
	for _, rec := range records {
		keys := make([]string, 0, len(rec))
		for k := range rec {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			_, _ = h.Write([]byte{0x1e})
			_, _ = h.Write([]byte(k))
			_, _ = h.Write([]byte{0x1f})
			_, _ = h.Write([]byte(rec[k]))
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}
