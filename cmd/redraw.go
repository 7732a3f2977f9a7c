// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 The Glider Authors

package cmd

import (
	"fmt"

	"github.com/glider-display/glider/internal/logging"
	"github.com/glider-display/glider/pkg/glider"
	"github.com/spf13/cobra"
)

var redrawCmd = &cobra.Command{
	Use:   "redraw <x0> <y0> <x1> <y1>",
	Short: "Force a redraw of a screen region",
	Long: `Force a redraw of a rectangular region of the display.

The controller flashes the region from black to white before repainting,
which clears any residual ghosting.

Example:
  gliderctl redraw 0 0 1872 1404`,
	Args: cobra.ExactArgs(4),
	RunE: runRedraw,
}

func init() {
	rootCmd.AddCommand(redrawCmd)
}

func runRedraw(cmd *cobra.Command, args []string) error {
	area, err := parseArea(args)
	if err != nil {
		return err
	}

	conn, connInfo, err := OpenConnection()
	if err != nil {
		return err
	}
	defer conn.Close()

	display := glider.NewDisplay(conn, glider.WithLogger(logging.Get()))
	if err := display.Redraw(area); err != nil {
		return fmt.Errorf("redraw on %s: %w", connInfo, err)
	}

	fmt.Printf("Redraw triggered for %s\n", area)
	return nil
}
