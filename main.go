// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 The Glider Authors
//
// gliderctl - command-line control for the Glider e-paper display.

package main

import (
	"fmt"
	"os"

	"github.com/glider-display/glider/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
