// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 The Glider Authors

package cmd

import (
	"fmt"
	"strconv"

	"github.com/glider-display/glider/pkg/glider"
)

// parseArea converts four coordinate arguments (x0 y0 x1 y1) to a Rect.
// Values must fit in a signed 16-bit integer; the protocol does no bounds
// checking beyond that, matching firmware behavior.
func parseArea(args []string) (glider.Rect, error) {
	if len(args) != 4 {
		return glider.Rect{}, fmt.Errorf("expected 4 coordinates, got %d", len(args))
	}

	coords := make([]int16, 4)
	for i, arg := range args {
		v, err := strconv.ParseInt(arg, 10, 16)
		if err != nil {
			return glider.Rect{}, fmt.Errorf("invalid coordinate %q: must be a signed 16-bit integer", arg)
		}
		coords[i] = int16(v)
	}

	return glider.Rect{X0: coords[0], Y0: coords[1], X1: coords[2], Y1: coords[3]}, nil
}
