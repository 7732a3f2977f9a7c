// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 The Glider Authors

package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/glider-display/glider/pkg/glider"
	"github.com/spf13/cobra"
)

var frameRedraw bool

var frameCmd = &cobra.Command{
	Use:   "frame <mode> <x0> <y0> <x1> <y1>",
	Short: "Encode a command frame without sending it",
	Long: `Encode a command frame and print its wire bytes without touching any
device.

Useful for checking what goes on the wire when debugging firmware-side
decode problems, or for comparing against a USB capture. Use --redraw to
encode a redraw frame instead; the mode argument is then omitted.

Examples:
  gliderctl frame fast-mono-blue-noise 0 0 1000 1000
  gliderctl frame --redraw 0 0 1000 1000`,
	Args: func(cmd *cobra.Command, args []string) error {
		if frameRedraw {
			return cobra.ExactArgs(4)(cmd, args)
		}
		return cobra.ExactArgs(5)(cmd, args)
	},
	RunE: runFrame,
}

func init() {
	rootCmd.AddCommand(frameCmd)
	frameCmd.Flags().BoolVar(&frameRedraw, "redraw", false, "Encode a redraw frame (no mode argument)")
}

func runFrame(cmd *cobra.Command, args []string) error {
	command := glider.CmdSetMode
	param := int16(0)
	coordArgs := args

	if frameRedraw {
		command = glider.CmdRedraw
	} else {
		mode, err := glider.ParseMode(args[0])
		if err != nil {
			return err
		}
		param = mode.Code()
		coordArgs = args[1:]
	}

	area, err := parseArea(coordArgs)
	if err != nil {
		return err
	}

	frame := glider.EncodeFrame(command, param, area)

	fmt.Printf("Frame (%d bytes): %s\n", len(frame), hex.EncodeToString(frame))
	fmt.Printf("  command:  0x%02X%02X\n", frame[0], frame[1])
	fmt.Printf("  param:    0x%02X%02X\n", frame[2], frame[3])
	fmt.Printf("  padding:  0x%02X\n", frame[4])
	fmt.Printf("  area:     %s (little-endian: %s)\n", area, hex.EncodeToString(frame[5:13]))
	fmt.Printf("  checksum: 0x%s (CRC-16/XMODEM)\n", hex.EncodeToString(frame[13:15]))
	return nil
}
