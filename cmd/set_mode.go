// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 The Glider Authors

package cmd

import (
	"fmt"

	"github.com/glider-display/glider/internal/logging"
	"github.com/glider-display/glider/pkg/glider"
	"github.com/spf13/cobra"
)

var setModeCmd = &cobra.Command{
	Use:   "set-mode <mode> <x0> <y0> <x1> <y1>",
	Short: "Set the rendering mode for a screen region",
	Long: `Set the rendering mode for a rectangular region of the display.

The region is given as two opposite corners in panel coordinates. Setting
a mode always forces a full redraw of the region; that is firmware
behavior and cannot be suppressed.

Run 'gliderctl modes' for the list of mode names.

Example:
  gliderctl set-mode fast-mono-blue-noise 0 0 1000 1000`,
	Args: cobra.ExactArgs(5),
	RunE: runSetMode,
}

func init() {
	rootCmd.AddCommand(setModeCmd)
}

func runSetMode(cmd *cobra.Command, args []string) error {
	mode, err := glider.ParseMode(args[0])
	if err != nil {
		return err
	}

	area, err := parseArea(args[1:])
	if err != nil {
		return err
	}

	conn, connInfo, err := OpenConnection()
	if err != nil {
		return err
	}
	defer conn.Close()

	display := glider.NewDisplay(conn, glider.WithLogger(logging.Get()))
	if err := display.SetMode(mode, area); err != nil {
		return fmt.Errorf("set-mode on %s: %w", connInfo, err)
	}

	fmt.Printf("Mode %s set for %s\n", mode, area)
	return nil
}
