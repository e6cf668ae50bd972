// Copyright 2025 The GeoPair Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"
)

type logWriter struct {
	writer io.Writer
}

func (w *logWriter) Write(bytes []byte) (int, error) {
	return fmt.Fprintf(w.writer, "%s %s", time.Now().Format("2006-01-02 15:04:05"), string(bytes))
}

func init() {
	log.SetFlags(0)
	log.SetOutput(&logWriter{writer: os.Stderr})
}

var rootCmd = &cobra.Command{
	Use:   "geopair",
	Short: "correlate two geospatial anomaly detection streams",
	Long: `
geopair pairs anomaly detections reported by two independent sensors,
matching readings that are close enough on the ground to plausibly be
the same real-world event. One batch pass: read both streams, clean
them, match them, emit the pairs.
`,
}

var Version = "dev"

func Execute(version string) {
	Version = version
	rootCmd.Version = Version

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
