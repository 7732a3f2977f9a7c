// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 The Glider Authors

package cmd

import (
	"testing"

	"github.com/glider-display/glider/pkg/glider"
)

func TestParseArea(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    glider.Rect
		wantErr bool
	}{
		{
			name: "basic region",
			args: []string{"0", "0", "1000", "1000"},
			want: glider.Rect{X0: 0, Y0: 0, X1: 1000, Y1: 1000},
		},
		{
			name: "negative coordinates accepted",
			args: []string{"-1", "-2", "-3", "-4"},
			want: glider.Rect{X0: -1, Y0: -2, X1: -3, Y1: -4},
		},
		{
			name: "int16 bounds",
			args: []string{"-32768", "32767", "0", "0"},
			want: glider.Rect{X0: -32768, Y0: 32767},
		},
		{
			name:    "overflows int16",
			args:    []string{"0", "0", "40000", "0"},
			wantErr: true,
		},
		{
			name:    "not a number",
			args:    []string{"0", "0", "ten", "0"},
			wantErr: true,
		},
		{
			name:    "wrong arity",
			args:    []string{"0", "0", "10"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseArea(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseArea(%v) should fail", tt.args)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseArea(%v) failed: %v", tt.args, err)
			}
			if got != tt.want {
				t.Errorf("parseArea(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}
