// Copyright 2025 The GeoPair Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/jcodagnone/geopair/correlate"
	"github.com/jcodagnone/geopair/ingest"
	"github.com/jcodagnone/geopair/render"
)

var correlateOptions = struct {
	ThresholdMeters float64
	Output          string
	Strategy        string
}{}

// loadStream reads and cleans one sensor stream, logging what was lost
// along the way.
func loadStream(label, path string) ([]correlate.Reading, ingest.Metrics, error) {
	raw, metrics, err := ingest.ReadFile(path)
	if err != nil {
		return nil, metrics, fmt.Errorf("reading stream %s: %w", label, err)
	}

	cleaned := correlate.Normalize(raw)

	log.Printf("stream %s: %d records read, %d malformed skipped, %d dropped by validation",
		label, metrics.Records, metrics.Skipped, len(raw)-len(cleaned))

	return cleaned, metrics, nil
}

// correlateStreams runs one full correlation over two input files.
// Shared by the correlate and serve commands.
func correlateStreams(pathA, pathB string) (*correlate.Result, error) {
	strategy, err := correlate.StrategyByName(correlateOptions.Strategy)
	if err != nil {
		return nil, err
	}

	a, metricsA, err := loadStream("A", pathA)
	if err != nil {
		return nil, err
	}

	b, metricsB, err := loadStream("B", pathB)
	if err != nil {
		return nil, err
	}

	if g, ok := strategy.(*correlate.GreedyNearestNeighbor); ok && isatty.IsTerminal(os.Stderr.Fd()) {
		bar := progressbar.NewOptions(len(a),
			progressbar.OptionSetDescription("Matching"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
		g.Progress = func(done, _ int) {
			_ = bar.Set(done)
		}
	}

	result := correlate.Run(strategy, a, b, correlateOptions.ThresholdMeters)

	var total ingest.Metrics

	total.Merge(&metricsA).Merge(&metricsB)
	log.Printf("correlated %d + %d cleaned readings (%d total records, %d skipped): %d matches",
		len(a), len(b), total.Records, total.Skipped, len(result.Matches))

	return result, nil
}

var correlateCmd = &cobra.Command{
	Use:   "correlate <streamA> <streamB>",
	Short: "Match detections across two sensor streams",
	Long: `
Reads two detection streams (.csv, .json, .duckdb or .db), validates and
canonicalizes their coordinates, and pairs readings within the distance
threshold using greedy first-come nearest-neighbor assignment. The match
list, sorted by stream-A id, goes to --output or stdout.
`,
	Args: cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		result, err := correlateStreams(args[0], args[1])
		if err != nil {
			return err
		}

		return render.WriteMatchesTo(correlateOptions.Output, result.Matches)
	},
}

func init() {
	for _, c := range []*cobra.Command{correlateCmd, serveCmd} {
		c.Flags().Float64Var(&correlateOptions.ThresholdMeters, "threshold", 100.0,
			"maximum distance in meters for two readings to be considered the same event")
		c.Flags().StringVar(&correlateOptions.Strategy, "strategy", "greedy",
			"matching strategy to use")
	}

	correlateCmd.Flags().StringVarP(&correlateOptions.Output, "output", "o", "",
		"write matches to this file instead of stdout")

	rootCmd.AddCommand(correlateCmd)
}
