// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 The Glider Authors

package glider

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func TestEncodeFrame_Layout(t *testing.T) {
	tests := []struct {
		name    string
		command int16
		param   int16
		area    Rect
		want    []byte
	}{
		{
			// Reference frame verified against a USB capture of the
			// original host tool.
			name:    "set-mode blue noise full region",
			command: CmdSetMode,
			param:   ModeFastMonoBlueNoise.Code(),
			area:    Rect{X0: 0, Y0: 0, X1: 1000, Y1: 1000},
			want: []byte{
				0x00, 0x05, // command, big-endian
				0x00, 0x04, // param, big-endian
				0x00,                   // padding
				0x00, 0x00, 0x00, 0x00, // x0, y0 little-endian
				0xE8, 0x03, 0xE8, 0x03, // x1, y1 little-endian (1000)
				0x52, 0x95, // CRC-16/XMODEM, big-endian
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EncodeFrame(tt.command, tt.param, tt.area)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("EncodeFrame:\n got  % X\n want % X", got, tt.want)
			}
		})
	}
}

func TestEncodeFrame_FieldEncoding(t *testing.T) {
	tests := []struct {
		name    string
		command int16
		param   int16
		area    Rect
	}{
		{"redraw origin", CmdRedraw, 0, Rect{0, 0, 100, 100}},
		{"set-mode grey", CmdSetMode, ModeFastGrey.Code(), Rect{10, 20, 30, 40}},
		{"negative coordinates", CmdRedraw, 0, Rect{-1, -100, 32767, -32768}},
		{"inverted corners pass through", CmdSetMode, ModeAutoNoDither.Code(), Rect{500, 500, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := EncodeFrame(tt.command, tt.param, tt.area)

			if len(frame) != FrameSize {
				t.Fatalf("frame length = %d, want %d", len(frame), FrameSize)
			}

			// Header is big-endian, coordinates little-endian. The mix is
			// part of the firmware contract.
			if got := int16(binary.BigEndian.Uint16(frame[0:2])); got != tt.command {
				t.Errorf("command = 0x%04X, want 0x%04X", got, tt.command)
			}
			if got := int16(binary.BigEndian.Uint16(frame[2:4])); got != tt.param {
				t.Errorf("param = 0x%04X, want 0x%04X", got, tt.param)
			}
			if frame[4] != 0x00 {
				t.Errorf("padding byte = 0x%02X, want 0x00", frame[4])
			}

			coords := []struct {
				name string
				off  int
				want int16
			}{
				{"x0", 5, tt.area.X0},
				{"y0", 7, tt.area.Y0},
				{"x1", 9, tt.area.X1},
				{"y1", 11, tt.area.Y1},
			}
			for _, c := range coords {
				got := int16(binary.LittleEndian.Uint16(frame[c.off : c.off+2]))
				if got != c.want {
					t.Errorf("%s = %d, want %d", c.name, got, c.want)
				}
			}
		})
	}
}

func TestEncodeFrame_ChecksumTrailer(t *testing.T) {
	areas := []Rect{
		{0, 0, 0, 0},
		{0, 0, 1000, 1000},
		{-32768, -32768, 32767, 32767},
		{1, 2, 3, 4},
	}

	for _, area := range areas {
		for _, command := range []int16{CmdRedraw, CmdSetMode} {
			frame := EncodeFrame(command, ModeFastMonoBayer.Code(), area)
			want := Checksum(frame[:13])
			got := binary.BigEndian.Uint16(frame[13:15])
			if got != want {
				t.Errorf("cmd 0x%02X area %s: checksum trailer 0x%04X, want 0x%04X",
					command, area, got, want)
			}
		}
	}
}

func TestEncodeFrame_Idempotent(t *testing.T) {
	area := Rect{X0: 5, Y0: 10, X1: 800, Y1: 600}
	first := EncodeFrame(CmdSetMode, ModeAutoErrorDiffusion.Code(), area)
	second := EncodeFrame(CmdSetMode, ModeAutoErrorDiffusion.Code(), area)
	if !bytes.Equal(first, second) {
		t.Errorf("identical inputs produced different frames:\n % X\n % X", first, second)
	}
}

func TestDecodeStatus(t *testing.T) {
	tests := []struct {
		name       string
		response   []byte
		wantStatus Status
		wantOK     bool
		wantErr    error
	}{
		{
			name:       "invalid command",
			response:   []byte{0x00, 0x00},
			wantStatus: StatusInvalidCommand,
			wantOK:     false,
			wantErr:    ErrInvalidCommand,
		},
		{
			name:       "checksum mismatch",
			response:   []byte{0x01, 0x00},
			wantStatus: StatusChecksumMismatch,
			wantOK:     false,
			wantErr:    ErrChecksumMismatch,
		},
		{
			name:       "conventional success byte",
			response:   []byte{0x55, 0x00},
			wantStatus: 0x0055,
			wantOK:     true,
		},
		{
			name:       "success, high byte set",
			response:   []byte{0x00, 0x55},
			wantStatus: 0x5500,
			wantOK:     true,
		},
		{
			// Only the exact value 0x0001 means checksum mismatch.
			name:       "0x0101 is success",
			response:   []byte{0x01, 0x01},
			wantStatus: 0x0101,
			wantOK:     true,
		},
		{
			name:       "trailing reserved bytes ignored",
			response:   append([]byte{0x55, 0x00}, make([]byte, 30)...),
			wantStatus: 0x0055,
			wantOK:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := DecodeStatus(tt.response)
			if err != nil {
				t.Fatalf("DecodeStatus returned error: %v", err)
			}
			if status != tt.wantStatus {
				t.Errorf("status = 0x%04X, want 0x%04X", uint16(status), uint16(tt.wantStatus))
			}
			if status.OK() != tt.wantOK {
				t.Errorf("OK() = %v, want %v", status.OK(), tt.wantOK)
			}
			if !errors.Is(status.Err(), tt.wantErr) {
				t.Errorf("Err() = %v, want %v", status.Err(), tt.wantErr)
			}
		})
	}
}

func TestDecodeStatus_ShortBuffer(t *testing.T) {
	for _, response := range [][]byte{nil, {}, {0x55}} {
		_, err := DecodeStatus(response)
		if !errors.Is(err, ErrShortResponse) {
			t.Errorf("DecodeStatus(% X) error = %v, want ErrShortResponse", response, err)
		}
	}
}
