// Copyright 2025 The GeoPair Authors
// SPDX-License-Identifier: Apache-2.0

package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jcodagnone/geopair/correlate"
	"github.com/jcodagnone/geopair/spatial"
)

// ErrBadHeader is returned when a CSV stream does not start with the
// expected id,latitude,longitude header.
var ErrBadHeader = errors.New("csv header must be id,latitude,longitude")

// ReadCSV reads a detection stream from a delimited-text file.
//
// The first line must be the header id,latitude,longitude (matched
// case-insensitively). Data rows are parsed independently; a row with
// the wrong field count or an unparsable field is skipped and counted.
func ReadCSV(path string) ([]correlate.Reading, Metrics, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, Metrics{}, fmt.Errorf("opening csv input: %w", err)
	}
	defer f.Close()

	return parseCSV(f)
}

func parseCSV(r io.Reader) ([]correlate.Reading, Metrics, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // row length is validated per record

	header, err := cr.Read()
	if err != nil {
		return nil, Metrics{}, fmt.Errorf("reading csv header: %w", err)
	}

	if !headerOK(header) {
		return nil, Metrics{}, fmt.Errorf("%w, got %q", ErrBadHeader, strings.Join(header, ","))
	}

	var readings []correlate.Reading

	var metrics Metrics

	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			metrics.Skipped++

			continue
		}

		if err != nil {
			return nil, metrics, fmt.Errorf("reading csv record: %w", err)
		}

		reading, ok := parseRecord(record)
		if !ok {
			metrics.Skipped++

			continue
		}

		readings = append(readings, reading)
		metrics.Records++
	}

	return readings, metrics, nil
}

func headerOK(header []string) bool {
	if len(header) != 3 {
		return false
	}

	want := []string{"id", "latitude", "longitude"}

	for i, h := range header {
		if !strings.EqualFold(strings.TrimSpace(h), want[i]) {
			return false
		}
	}

	return true
}

func parseRecord(record []string) (correlate.Reading, bool) {
	if len(record) != 3 {
		return correlate.Reading{}, false
	}

	id, err := strconv.Atoi(strings.TrimSpace(record[0]))
	if err != nil {
		return correlate.Reading{}, false
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
	if err != nil {
		return correlate.Reading{}, false
	}

	lng, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
	if err != nil {
		return correlate.Reading{}, false
	}

	return correlate.Reading{ID: id, Point: spatial.Point{Lat: lat, Lng: lng}}, true
}
