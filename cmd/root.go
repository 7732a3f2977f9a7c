// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 The Glider Authors

package cmd

import (
	"github.com/glider-display/glider/internal/config"
	"github.com/glider-display/glider/internal/logging"
	"github.com/spf13/cobra"
)

var (
	// Connection flags. With none set, the USB HID device is used.
	portName string
	baudRate int

	wsURL         string
	wsUsername    string
	wsNoSSLVerify bool

	configPath string
	logLevel   string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "gliderctl",
	Short: "Control the Glider e-paper display",
	Long: `gliderctl - command-line control for the Glider e-paper display controller.

Sets rendering modes for screen regions and forces redraws over the
controller's USB command protocol. Pixel data transfer is handled by the
host's display pipeline, not by this tool.

Connection modes:
  USB HID:   default, no flags needed (0483:5750)
  Serial:    --port /dev/ttyACM0 [--baud 115200] (UART debug header)
  WebSocket: --url ws://host/path [--username user] (remote bridge)

For WebSocket authentication, the password is read from the GLIDER_PASSWORD
environment variable, or prompted interactively if not set. The --password
flag is intentionally not provided to avoid leaking credentials in shell
history.`,
	Version:       "1.2.0",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}

		// Flags win over config file values.
		if portName == "" {
			portName = cfg.Connection.Port
		}
		if !cmd.Flags().Changed("baud") && cfg.Connection.Baud != 0 {
			baudRate = cfg.Connection.Baud
		}
		if wsURL == "" {
			wsURL = cfg.Connection.URL
		}
		if wsUsername == "" {
			wsUsername = cfg.Connection.Username
		}
		if logLevel == "" {
			logLevel = cfg.LogLevel
		}

		return logging.Initialize(logLevel)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&portName, "port", "p", "", "Serial port device (UART debug header)")
	rootCmd.PersistentFlags().IntVarP(&baudRate, "baud", "b", 115200, "Baud rate (serial only)")

	rootCmd.PersistentFlags().StringVarP(&wsURL, "url", "u", "", "WebSocket bridge URL (ws:// or wss://)")
	rootCmd.PersistentFlags().StringVar(&wsUsername, "username", "", "Username for HTTP Basic auth")
	rootCmd.PersistentFlags().BoolVar(&wsNoSSLVerify, "no-ssl-verify", false, "Skip TLS certificate verification (wss:// only)")

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: OS config dir, gliderctl/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log verbosity: debug, info, warn, error (default: silent)")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
