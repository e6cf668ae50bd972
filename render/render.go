// Copyright 2025 The GeoPair Authors
// SPDX-License-Identifier: Apache-2.0

// Package render formats a correlation result for consumers. The core
// has no opinion on output shape; this is the one place that does.
package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jcodagnone/geopair/correlate"
)

// Header is the fixed first line of the match output.
const Header = "id1,id2"

// WriteMatches renders matches as two-column CSV records with the
// fixed header. Matches are written in slice order; the matcher
// already sorted them by id1.
func WriteMatches(w io.Writer, matches []correlate.Match) error {
	if _, err := fmt.Fprintln(w, Header); err != nil {
		return fmt.Errorf("writing match header: %w", err)
	}

	for _, m := range matches {
		if _, err := fmt.Fprintf(w, "%d,%d\n", m.ID1, m.ID2); err != nil {
			return fmt.Errorf("writing match record: %w", err)
		}
	}

	return nil
}

// WriteMatchesTo writes the match list to path, or to stdout when path
// is empty.
func WriteMatchesTo(path string, matches []correlate.Match) error {
	if path == "" {
		return WriteMatches(os.Stdout, matches)
	}

	f, err := os.OpenFile(filepath.Clean(path), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}

	if err := WriteMatches(f, matches); err != nil {
		f.Close()

		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing output file: %w", err)
	}

	return nil
}
