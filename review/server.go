// Copyright 2025 The GeoPair Authors
// SPDX-License-Identifier: Apache-2.0

// Package review serves a finished correlation result over HTTP for
// local inspection. Read-only and in-memory: nothing here mutates the
// result or persists it.
package review

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jcodagnone/geopair/correlate"
)

type Server struct {
	result *correlate.Result
}

func NewServer(result *correlate.Result) *Server {
	return &Server{result: result}
}

// Summary is the shape served by /api/summary.
type Summary struct {
	StreamA         int     `json:"stream_a"`
	StreamB         int     `json:"stream_b"`
	Matches         int     `json:"matches"`
	UnmatchedA      int     `json:"unmatched_a"`
	UnmatchedB      int     `json:"unmatched_b"`
	ThresholdMeters float64 `json:"threshold_meters"`
	Strategy        string  `json:"strategy"`
}

// Register wires the API routes onto a router. Split from Run so tests
// can drive the handlers through httptest.
func (s *Server) Register(r *gin.Engine) {
	r.GET("/api/summary", s.getSummary)
	r.GET("/api/matches", s.getMatches)
	r.GET("/api/unmatched/:stream", s.getUnmatched)
}

// Run serves the result until the process is interrupted.
func (s *Server) Run(addr string) error {
	r := gin.Default()
	s.Register(r)

	if err := r.Run(addr); err != nil {
		return fmt.Errorf("running review server: %w", err)
	}

	return nil
}

func (s *Server) getSummary(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, Summary{
		StreamA:         len(s.result.A),
		StreamB:         len(s.result.B),
		Matches:         len(s.result.Matches),
		UnmatchedA:      len(s.result.UnmatchedA()),
		UnmatchedB:      len(s.result.UnmatchedB()),
		ThresholdMeters: s.result.ThresholdM,
		Strategy:        s.result.Strategy,
	})
}

func (s *Server) getMatches(ctx *gin.Context) {
	matches := s.result.Matches
	if matches == nil {
		matches = []correlate.Match{}
	}

	ctx.JSON(http.StatusOK, matches)
}

func (s *Server) getUnmatched(ctx *gin.Context) {
	var readings []correlate.Reading

	switch ctx.Param("stream") {
	case "a":
		readings = s.result.UnmatchedA()
	case "b":
		readings = s.result.UnmatchedB()
	default:
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "stream must be 'a' or 'b'"})

		return
	}

	ctx.JSON(http.StatusOK, readings)
}
