// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 The Glider Authors

package glider

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Display drives a Glider controller over an already-open transport.
//
// Each operation is one synchronous request/response exchange: encode,
// write, timed read, status decode. The Display serializes exchanges with
// an internal mutex, so a single handle is safe for concurrent use; the
// exchanges themselves still happen one at a time.
type Display struct {
	mu        sync.Mutex
	transport Transport
	logger    *zap.Logger
}

// Option configures a Display.
type Option func(*Display)

// WithLogger attaches a logger for frame-level debug output. The default
// is a nop logger.
func WithLogger(logger *zap.Logger) Option {
	return func(d *Display) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// NewDisplay creates a Display on top of the given transport.
func NewDisplay(transport Transport, opts ...Option) *Display {
	if transport == nil {
		panic("glider: transport cannot be nil")
	}
	d := &Display{
		transport: transport,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// SetMode sets the rendering mode for a region of the display. The
// firmware always performs a full redraw of the region as a side effect;
// this layer cannot suppress that.
func (d *Display) SetMode(mode Mode, area Rect) error {
	if !mode.Valid() {
		return fmt.Errorf("glider: invalid mode code %d", int16(mode))
	}
	return d.exchange("set_mode", CmdSetMode, mode.Code(), area, SetModeResponseSize)
}

// Redraw forces a redraw of the region. The controller flashes the area
// from black to white before repainting to clear residual ghosting; that
// behavior lives in firmware, this command only triggers it.
func (d *Display) Redraw(area Rect) error {
	return d.exchange("redraw", CmdRedraw, 0x0000, area, RedrawResponseSize)
}

// exchange runs one request/response pair: Idle -> FrameSent ->
// AwaitingResponse -> terminal outcome. The protocol is stateless across
// calls; there are no sequence numbers and no pipelining.
func (d *Display) exchange(op string, command, param int16, area Rect, responseSize int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	frame := EncodeFrame(command, param, area)
	d.logger.Debug("sending frame",
		zap.String("op", op),
		zap.String("area", area.String()),
		zap.Binary("frame", frame),
	)

	if _, err := d.transport.Write(frame); err != nil {
		return &TransportError{Op: "write", Err: err}
	}

	response := make([]byte, responseSize)
	n, err := d.transport.ReadWithTimeout(response, ResponseTimeout)
	if err != nil {
		return &TransportError{Op: "read", Err: err}
	}
	if n == 0 {
		return ErrTimeout
	}

	status, err := DecodeStatus(response[:n])
	if err != nil {
		return err
	}
	d.logger.Debug("received status",
		zap.String("op", op),
		zap.Uint16("status", uint16(status)),
		zap.Bool("ok", status.OK()),
	)

	return status.Err()
}
