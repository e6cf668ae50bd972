// Copyright 2025 The GeoPair Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/jcodagnone/geopair/cmd"
)

var Version = "development"

func main() {
	cmd.Execute(Version)
}
