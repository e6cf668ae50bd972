// Copyright 2025 The GeoPair Authors
// SPDX-License-Identifier: Apache-2.0

package ingest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jcodagnone/geopair/correlate"
	"github.com/jcodagnone/geopair/spatial"
)

// ErrNotASequence is returned when a JSON stream's root element is not
// an array. That is structural corruption, not record noise.
var ErrNotASequence = errors.New("json input root must be an array")

// jsonReading mirrors the on-disk element shape. Pointer fields let us
// tell a missing key from a zero value.
type jsonReading struct {
	ID        *int     `json:"id"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// ReadJSON reads a detection stream from a structured-document file.
//
// The root must be an array. Elements are decoded independently: one
// with missing or mistyped fields is skipped and counted while its
// neighbours survive.
func ReadJSON(path string) ([]correlate.Reading, Metrics, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, Metrics{}, fmt.Errorf("reading json input: %w", err)
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		return nil, Metrics{}, fmt.Errorf("%w: %v", ErrNotASequence, err)
	}

	var readings []correlate.Reading

	var metrics Metrics

	for _, raw := range elements {
		var jr jsonReading
		if err := json.Unmarshal(raw, &jr); err != nil {
			metrics.Skipped++

			continue
		}

		if jr.ID == nil || jr.Latitude == nil || jr.Longitude == nil {
			metrics.Skipped++

			continue
		}

		readings = append(readings, correlate.Reading{
			ID:    *jr.ID,
			Point: spatial.Point{Lat: *jr.Latitude, Lng: *jr.Longitude},
		})
		metrics.Records++
	}

	return readings, metrics, nil
}
