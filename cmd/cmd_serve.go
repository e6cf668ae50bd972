// Copyright 2025 The GeoPair Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jcodagnone/geopair/review"
)

var serveListen string

var serveCmd = &cobra.Command{
	Use:   "serve <streamA> <streamB>",
	Short: "Correlate two streams and serve the result for inspection (local only)",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		result, err := correlateStreams(args[0], args[1])
		if err != nil {
			return err
		}

		fmt.Printf("Review server starting on %s\n", serveListen)
		fmt.Println("Local only - not exposed to internet")

		return review.NewServer(result).Run(serveListen)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveListen, "listen", ":8080", "address to serve the review API on")

	rootCmd.AddCommand(serveCmd)
}
