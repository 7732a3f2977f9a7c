// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 The Glider Authors

package glider

// Checksum computes the CRC-16/XMODEM checksum for the given data
// (polynomial 0x1021, initial value 0x0000, no reflection). The firmware
// computes the same checksum over received frames; a disagreement is
// reported as a checksum-mismatch status.
func Checksum(data []byte) uint16 {
	crc := uint16(crcInitial)
	for _, b := range data {
		crc ^= uint16(b) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = (crc << 1) ^ crcPolynomial
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
