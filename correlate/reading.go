// Copyright 2025 The GeoPair Authors
// SPDX-License-Identifier: Apache-2.0

package correlate

import (
	"github.com/jcodagnone/geopair/spatial"
)

// Reading is a single sensor detection: a sensor-local id and a
// geographic coordinate. Ids are only unique within their own stream.
type Reading struct {
	ID    int           `json:"id"`
	Point spatial.Point `json:"point"`
}

// Normalize validates and canonicalizes a batch of raw readings.
//
// Readings with a latitude outside [-90, 90] or a non-finite
// coordinate are dropped, not repaired; sensor data is expected to be
// noisy and losing individual records is policy, not a fault.
// Longitudes of surviving readings are wrapped into [-180, 180).
// Input order is preserved.
func Normalize(readings []Reading) []Reading {
	cleaned := make([]Reading, 0, len(readings))

	for _, r := range readings {
		if !r.Point.Finite() {
			continue
		}

		if r.Point.Lat < -90 || r.Point.Lat > 90 {
			continue
		}

		r.Point.Lng = spatial.NormalizeLongitude(r.Point.Lng)
		cleaned = append(cleaned, r)
	}

	return cleaned
}
