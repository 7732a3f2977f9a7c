// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 The Glider Authors

package glider

import "fmt"

// Rect is a rectangular area of the screen, given as two opposite corners.
// The protocol layer performs no validation: corners may be swapped and
// coordinates may exceed the panel bounds. Bounds handling is the
// firmware's business; this layer serializes the four fields as-is.
type Rect struct {
	X0, Y0, X1, Y1 int16
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.X0, r.Y0, r.X1, r.Y1)
}
