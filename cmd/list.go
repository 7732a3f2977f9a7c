// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 The Glider Authors

package cmd

import (
	"fmt"

	"github.com/glider-display/glider/pkg/gliderhid"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List attached Glider displays",
	Long: `List Glider display controllers attached over USB.

The path column can be used to target a specific controller when more
than one is attached.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	devices, err := gliderhid.List()
	if err != nil {
		return err
	}

	if len(devices) == 0 {
		fmt.Println("No Glider displays found")
		return nil
	}

	for _, dev := range devices {
		fmt.Printf("%s\n", dev.Path)
		if dev.Product != "" {
			fmt.Printf("  product: %s\n", dev.Product)
		}
		if dev.Manufacturer != "" {
			fmt.Printf("  vendor:  %s\n", dev.Manufacturer)
		}
		if dev.Serial != "" {
			fmt.Printf("  serial:  %s\n", dev.Serial)
		}
	}
	return nil
}
