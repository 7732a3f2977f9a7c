// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 The Glider Authors

package cmd

import (
	"fmt"

	"github.com/glider-display/glider/pkg/glider"
	"github.com/spf13/cobra"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List supported rendering modes",
	Long: `List the rendering modes supported by the display controller.

The code column is the firmware's wire value for the mode. Manual LUT
modes are listed for completeness but require a LUT upload, which this
tool does not support.`,
	Args: cobra.NoArgs,
	RunE: runModes,
}

func init() {
	rootCmd.AddCommand(modesCmd)
}

func runModes(cmd *cobra.Command, args []string) error {
	fmt.Printf("%-4s %-22s %s\n", "CODE", "MODE", "DESCRIPTION")
	for _, mode := range glider.Modes() {
		fmt.Printf("0x%02X %-22s %s\n", mode.Code(), mode, mode.Description())
	}
	return nil
}
