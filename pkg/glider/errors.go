// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 The Glider Authors

package glider

import (
	"errors"
	"fmt"
)

// Failure kinds surfaced by an exchange. Firmware-reported failures
// (ErrInvalidCommand, ErrChecksumMismatch) are distinct from transport
// failures (TransportError) and from the read timeout (ErrTimeout); the
// caller decides retry policy per kind. ErrChecksumMismatch in particular
// should never happen with a correct encoder and is worth surfacing loudly.
var (
	ErrInvalidCommand   = errors.New("glider: firmware rejected the command code")
	ErrChecksumMismatch = errors.New("glider: firmware reported a checksum mismatch")
	ErrTimeout          = errors.New("glider: no response from controller within timeout")
	ErrShortResponse    = errors.New("glider: response shorter than status word")
)

// TransportError wraps a failure of the underlying transport during an
// exchange. Op is "write" or "read".
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("glider: transport %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsTransportError reports whether err is a transport-level failure, as
// opposed to a firmware-reported status or a timeout.
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
