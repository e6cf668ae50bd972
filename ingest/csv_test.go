// Copyright 2025 The GeoPair Authors
// SPDX-License-Identifier: Apache-2.0

package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV(t *testing.T) {
	input := `id,latitude,longitude
1,51.0,-114.0
2,-33.9,151.2
`

	readings, metrics, err := parseCSV(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, readings, 2)
	assert.Equal(t, 1, readings[0].ID)
	assert.Equal(t, 51.0, readings[0].Point.Lat)
	assert.Equal(t, -114.0, readings[0].Point.Lng)
	assert.Equal(t, Metrics{Records: 2}, metrics)
}

func TestParseCSVHeaderCaseInsensitive(t *testing.T) {
	input := "ID, Latitude ,LONGITUDE\n1,2,3\n"

	readings, _, err := parseCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, readings, 1)
}

func TestParseCSVRejectsBadHeader(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"wrong names", "a,b,c\n1,2,3\n"},
		{"wrong order", "latitude,longitude,id\n1,2,3\n"},
		{"too few columns", "id,latitude\n1,2\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := parseCSV(strings.NewReader(tc.input))
			require.ErrorIs(t, err, ErrBadHeader)
		})
	}
}

func TestParseCSVSkipsMalformedRows(t *testing.T) {
	input := `id,latitude,longitude
1,51.0,-114.0
not-a-number,51.0,-114.0
2,abc,-114.0
3,51.0
4,51.5,-114.5
`

	readings, metrics, err := parseCSV(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, readings, 2)
	assert.Equal(t, 1, readings[0].ID)
	assert.Equal(t, 4, readings[1].ID)
	assert.Equal(t, Metrics{Records: 2, Skipped: 3}, metrics)
}

func TestParseCSVEmptyBody(t *testing.T) {
	readings, metrics, err := parseCSV(strings.NewReader("id,latitude,longitude\n"))
	require.NoError(t, err)
	assert.Empty(t, readings)
	assert.Equal(t, Metrics{}, metrics)
}

func TestParseCSVEmptyFile(t *testing.T) {
	_, _, err := parseCSV(strings.NewReader(""))
	require.Error(t, err)
}

func TestReadCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.csv")
	require.NoError(t, os.WriteFile(path, []byte("id,latitude,longitude\n7,1.5,2.5\n"), 0o600))

	readings, metrics, err := ReadCSV(path)
	require.NoError(t, err)
	require.Len(t, readings, 1)
	assert.Equal(t, 7, readings[0].ID)
	assert.Equal(t, 1, metrics.Records)
}

func TestReadCSVMissingFile(t *testing.T) {
	_, _, err := ReadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
}
