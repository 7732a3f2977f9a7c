// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 The Glider Authors

// Package logging provides structured logging for the gliderctl CLI.
//
// It wraps zap with a small global logger that is silent by default, so
// normal CLI runs produce only command output. Verbosity is enabled via
// the --log-level flag or the GLIDER_LOG_LEVEL environment variable.
//
// At debug level the protocol layer logs every outbound frame and inbound
// status word, which is the first thing to look at when the controller
// reports invalid-command or checksum-mismatch statuses.
package logging
