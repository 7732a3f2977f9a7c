// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 The Glider Authors

package glider

import "testing"

// The mode codes are the firmware's command vocabulary. They are pinned
// here so a renumbering shows up as a test failure, not a bricked panel.
func TestMode_WireCodes(t *testing.T) {
	tests := []struct {
		mode Mode
		code int16
	}{
		{ModeManualLUTNoDither, 0},
		{ModeManualLUTErrorDiffusion, 1},
		{ModeFastMonoNoDither, 2},
		{ModeFastMonoBayer, 3},
		{ModeFastMonoBlueNoise, 4},
		{ModeFastGrey, 5},
		{ModeAutoNoDither, 6},
		{ModeAutoErrorDiffusion, 7},
	}

	for _, tt := range tests {
		if tt.mode.Code() != tt.code {
			t.Errorf("%s.Code() = %d, want %d", tt.mode, tt.mode.Code(), tt.code)
		}
		if !tt.mode.Valid() {
			t.Errorf("%s should be valid", tt.mode)
		}
	}

	if len(Modes()) != len(tests) {
		t.Errorf("Modes() has %d entries, want %d", len(Modes()), len(tests))
	}
}

func TestMode_Invalid(t *testing.T) {
	for _, m := range []Mode{-1, 8, 255} {
		if m.Valid() {
			t.Errorf("Mode(%d).Valid() = true, want false", int16(m))
		}
	}
}

func TestParseMode(t *testing.T) {
	for _, mode := range Modes() {
		parsed, err := ParseMode(mode.String())
		if err != nil {
			t.Errorf("ParseMode(%q) failed: %v", mode.String(), err)
			continue
		}
		if parsed != mode {
			t.Errorf("ParseMode(%q) = %v, want %v", mode.String(), parsed, mode)
		}
	}

	if _, err := ParseMode("grayscale"); err == nil {
		t.Error("ParseMode should reject unknown names")
	}
}

func TestModes_SortedByCode(t *testing.T) {
	modes := Modes()
	for i := 1; i < len(modes); i++ {
		if modes[i-1] >= modes[i] {
			t.Fatalf("Modes() not in wire-code order: %v", modes)
		}
	}
}
