// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 The Glider Authors

package glider

import (
	"encoding/binary"
)

// EncodeFrame builds the 15-byte wire frame for one command.
//
// The header fields (command, parameter) are big-endian while the
// coordinates are little-endian. The two sides of the firmware were
// written against different encoders; the mix is required for
// compatibility and must not be normalized.
func EncodeFrame(command, param int16, area Rect) []byte {
	frame := make([]byte, FrameSize)

	binary.BigEndian.PutUint16(frame[0:2], uint16(command))
	binary.BigEndian.PutUint16(frame[2:4], uint16(param))
	frame[4] = paddingByte
	binary.LittleEndian.PutUint16(frame[5:7], uint16(area.X0))
	binary.LittleEndian.PutUint16(frame[7:9], uint16(area.Y0))
	binary.LittleEndian.PutUint16(frame[9:11], uint16(area.X1))
	binary.LittleEndian.PutUint16(frame[11:13], uint16(area.Y1))

	crc := Checksum(frame[:checksumOffset])
	binary.BigEndian.PutUint16(frame[checksumOffset:], crc)

	return frame
}

// Status is the 16-bit status word the controller returns for a command.
// 0x00 and 0x01 are the only defined failure codes; every other value is
// treated as success (the firmware commonly answers 0x55, but that is not
// guaranteed by contract).
type Status uint16

const (
	StatusInvalidCommand   Status = 0x00
	StatusChecksumMismatch Status = 0x01
)

// OK reports whether the status word indicates success.
func (s Status) OK() bool {
	return s != StatusInvalidCommand && s != StatusChecksumMismatch
}

// Err maps a failure status to its sentinel error, or nil for success.
func (s Status) Err() error {
	switch s {
	case StatusInvalidCommand:
		return ErrInvalidCommand
	case StatusChecksumMismatch:
		return ErrChecksumMismatch
	default:
		return nil
	}
}

// DecodeStatus extracts the status word from a response buffer. The status
// is the little-endian uint16 at offset 0; the rest of the buffer is
// reserved and ignored. Fails only when the buffer is shorter than the
// status word, which a correct exchange never produces.
func DecodeStatus(response []byte) (Status, error) {
	if len(response) < 2 {
		return 0, ErrShortResponse
	}
	return Status(binary.LittleEndian.Uint16(response)), nil
}
