// Copyright 2025 The GeoPair Authors
// SPDX-License-Identifier: Apache-2.0

// Package ingest reads sensor detection streams from their source
// formats and hands the core a plain []correlate.Reading.
//
// Error policy is two-tiered: a source that cannot be opened or whose
// structure is corrupt is fatal and aborts the run; an individual
// record with malformed fields is skipped and counted, never fatal.
package ingest

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jcodagnone/geopair/correlate"
)

// Metrics tracks what an adapter read and what it had to drop.
type Metrics struct {
	// Records is the number of readings successfully parsed.
	Records int

	// Skipped is the number of records dropped for per-record issues
	// (wrong field count, unparsable values, NULL columns).
	Skipped int
}

// Merge combines the metrics from another Metrics instance into this one.
func (m *Metrics) Merge(other *Metrics) *Metrics {
	if other == nil {
		return m
	}

	m.Records += other.Records
	m.Skipped += other.Skipped

	return m
}

// ReadFile reads a detection stream, picking the adapter from the file
// extension: .csv, .json, or .duckdb/.db.
func ReadFile(path string) ([]correlate.Reading, Metrics, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ReadCSV(path)
	case ".json":
		return ReadJSON(path)
	case ".duckdb", ".db":
		return ReadDuckDB(path)
	default:
		return nil, Metrics{}, fmt.Errorf("unsupported input format for %q (want .csv, .json, .duckdb or .db)", path)
	}
}
