// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 The Glider Authors

package glider

import (
	"fmt"
	"sort"
)

// Mode selects the rendering behavior of the display controller for a
// region. The numeric values are the controller firmware's command
// vocabulary and are never renumbered.
type Mode int16

const (
	// ModeManualLUTNoDither is a 1-bit mode with a custom look-up-table
	// (LUT). Uploading manual LUTs is not supported by this API.
	ModeManualLUTNoDither Mode = 0

	// ModeManualLUTErrorDiffusion is a 1-bit mode with a custom
	// look-up-table (LUT), using error diffusion dithering to approximate
	// grey values. Uploading manual LUTs is not supported by this API.
	ModeManualLUTErrorDiffusion Mode = 1

	// ModeFastMonoNoDither is a 1-bit mode. All grey values are converted
	// to either black or white.
	ModeFastMonoNoDither Mode = 2

	// ModeFastMonoBayer is a 1-bit mode with Bayer dithering.
	ModeFastMonoBayer Mode = 3

	// ModeFastMonoBlueNoise is a 1-bit mode with dithering based on a
	// blue noise pattern.
	ModeFastMonoBlueNoise Mode = 4

	// ModeFastGrey is an optimized 4-level grey mode. This mode has a much
	// slower refresh rate compared to all other modes.
	ModeFastGrey Mode = 5

	// ModeAutoNoDither switches between 1-bit and grey rendering depending
	// on update cadence. While the image is changing it updates in 1-bit
	// mode with no dithering; once the image has been still for a while it
	// re-renders in greyscale.
	ModeAutoNoDither Mode = 6

	// ModeAutoErrorDiffusion is like ModeAutoNoDither, but uses error
	// diffusion to approximate grey values during image updates.
	ModeAutoErrorDiffusion Mode = 7
)

// modeNames maps each firmware mode code to its CLI name. This table is
// the authoritative list of valid modes; membership here is what Valid
// checks, not the numeric range.
var modeNames = map[Mode]string{
	ModeManualLUTNoDither:       "manual-lut",
	ModeManualLUTErrorDiffusion: "manual-lut-diffusion",
	ModeFastMonoNoDither:        "fast-mono",
	ModeFastMonoBayer:           "fast-mono-bayer",
	ModeFastMonoBlueNoise:       "fast-mono-blue-noise",
	ModeFastGrey:                "fast-grey",
	ModeAutoNoDither:            "auto",
	ModeAutoErrorDiffusion:      "auto-diffusion",
}

// modeDescriptions holds one-line summaries for CLI help output.
var modeDescriptions = map[Mode]string{
	ModeManualLUTNoDither:       "1-bit, custom LUT (LUT upload not supported)",
	ModeManualLUTErrorDiffusion: "1-bit, custom LUT, error diffusion (LUT upload not supported)",
	ModeFastMonoNoDither:        "1-bit, no dithering",
	ModeFastMonoBayer:           "1-bit, Bayer dithering",
	ModeFastMonoBlueNoise:       "1-bit, blue noise dithering",
	ModeFastGrey:                "4-level greyscale, slower refresh",
	ModeAutoNoDither:            "auto 1-bit/greyscale by update cadence",
	ModeAutoErrorDiffusion:      "auto 1-bit/greyscale, error diffusion",
}

// Valid reports whether m is a mode code the firmware understands.
func (m Mode) Valid() bool {
	_, ok := modeNames[m]
	return ok
}

// Code returns the wire parameter value for the mode.
func (m Mode) Code() int16 {
	return int16(m)
}

// Description returns a one-line summary of the mode's rendering behavior.
func (m Mode) Description() string {
	return modeDescriptions[m]
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("unknown(0x%02X)", int16(m))
}

// ParseMode resolves a CLI mode name to its Mode value.
func ParseMode(name string) (Mode, error) {
	for mode, n := range modeNames {
		if n == name {
			return mode, nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q (see 'gliderctl modes')", name)
}

// Modes returns all supported modes in wire-code order.
func Modes() []Mode {
	modes := make([]Mode, 0, len(modeNames))
	for m := range modeNames {
		modes = append(modes, m)
	}
	sort.Slice(modes, func(i, j int) bool { return modes[i] < modes[j] })
	return modes
}
