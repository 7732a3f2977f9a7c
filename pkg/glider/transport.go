// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 The Glider Authors

package glider

import "time"

// Transport is the duplex byte channel a Display exchanges frames over.
// It is supplied by the host environment; pkg/gliderhid provides the USB
// HID implementation and the gliderctl CLI adds serial and WebSocket
// variants.
//
// ReadWithTimeout follows hidapi semantics: a timeout is reported as
// n == 0 with a nil error, not as an error value. An error return means
// the transport itself failed.
//
// The protocol is a strict request/response pair per call and the
// controller cannot interleave exchanges, so calls on one transport must
// be sequential. Display enforces this with an internal mutex; a raw
// Transport used directly carries the serialization burden itself.
type Transport interface {
	Write(p []byte) (int, error)
	ReadWithTimeout(p []byte, timeout time.Duration) (int, error)
}
