// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 The Glider Authors

// Package glider implements the USB command protocol for the Glider
// bistable display controller.
//
// The package covers frame encoding, CRC validation, response decoding,
// and the request/response exchange for the two supported operations:
// setting the rendering mode of a screen region and forcing a redraw.
// Transport I/O is abstracted behind the Transport interface; see
// pkg/gliderhid for the USB HID implementation.
package glider

import "time"

// Command codes understood by the controller firmware.
const (
	CmdRedraw  int16 = 0x04
	CmdSetMode int16 = 0x05
)

// Frame layout. All offsets from frame start.
//
//	[0:2]   command code   (big-endian)
//	[2:4]   parameter      (big-endian)
//	[4]     padding, 0x00
//	[5:13]  x0 y0 x1 y1    (little-endian, 2 bytes each)
//	[13:15] CRC-16/XMODEM  (big-endian, over bytes 0-12)
const (
	FrameSize      = 15
	checksumOffset = 13
)

// paddingByte sits between the parameter and the coordinates. The firmware
// decodes field alignment incorrectly without it; it must always be sent
// and must always be zero.
const paddingByte = 0x00

// Response buffer sizes. Both are over-sized relative to the 2-byte status
// word; the remaining bytes are reserved and ignored.
const (
	SetModeResponseSize = 32
	RedrawResponseSize  = 16
)

// ResponseTimeout is how long an exchange waits for the controller to
// answer. The firmware contract fixes this at 200 ms; it is not caller
// adjustable.
const ResponseTimeout = 200 * time.Millisecond

// CRC-16/XMODEM configuration
const (
	crcPolynomial = 0x1021
	crcInitial    = 0x0000
)
