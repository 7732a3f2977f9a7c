// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 The Glider Authors

package glider

// Ack is a flat success/failure result for environments without rich
// error types, such as foreign-function bindings. The numeric values
// mirror the controller's conventional acknowledge byte.
type Ack uint16

const (
	AckFailure Ack = 0x00
	AckSuccess Ack = 0x55
)

func ackOf(err error) Ack {
	if err != nil {
		return AckFailure
	}
	return AckSuccess
}

// SetModeAck is SetMode with a flat result. All failure kinds collapse
// to AckFailure; use SetMode directly when the cause matters.
func SetModeAck(d *Display, mode Mode, area Rect) Ack {
	return ackOf(d.SetMode(mode, area))
}

// RedrawAck is Redraw with a flat result.
func RedrawAck(d *Display, area Rect) Ack {
	return ackOf(d.Redraw(area))
}
