// Copyright 2025 The GeoPair Authors
// SPDX-License-Identifier: Apache-2.0

package ingest

import (
	"database/sql"
	"errors"
	"fmt"
	"os"

	_ "github.com/duckdb/duckdb-go/v2" // register duckdb driver

	"github.com/jcodagnone/geopair/correlate"
	"github.com/jcodagnone/geopair/spatial"
)

// readingsQuery preserves on-disk insertion order; the matcher's
// determinism depends on input order being stable.
const readingsQuery = `SELECT id, latitude, longitude FROM readings ORDER BY rowid`

// ReadDuckDB reads a detection stream from the readings table of a
// DuckDB database file. Rows with NULL columns are skipped and
// counted; a missing file or table is fatal.
func ReadDuckDB(path string) ([]correlate.Reading, Metrics, error) {
	// sql.Open would silently create an empty database here.
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, Metrics{}, fmt.Errorf("duckdb input not found at %s", path)
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, Metrics{}, fmt.Errorf("opening duckdb input: %w", err)
	}
	defer db.Close()

	return queryReadings(db)
}

func queryReadings(db *sql.DB) ([]correlate.Reading, Metrics, error) {
	rows, err := db.Query(readingsQuery)
	if err != nil {
		return nil, Metrics{}, fmt.Errorf("querying readings table: %w", err)
	}
	defer rows.Close()

	var readings []correlate.Reading

	var metrics Metrics

	for rows.Next() {
		var id sql.NullInt64

		var lat, lng sql.NullFloat64

		if err := rows.Scan(&id, &lat, &lng); err != nil {
			return nil, metrics, fmt.Errorf("scanning readings row: %w", err)
		}

		if !id.Valid || !lat.Valid || !lng.Valid {
			metrics.Skipped++

			continue
		}

		readings = append(readings, correlate.Reading{
			ID:    int(id.Int64),
			Point: spatial.Point{Lat: lat.Float64, Lng: lng.Float64},
		})
		metrics.Records++
	}

	if err := rows.Err(); err != nil {
		return nil, metrics, fmt.Errorf("iterating readings rows: %w", err)
	}

	return readings, metrics, nil
}
