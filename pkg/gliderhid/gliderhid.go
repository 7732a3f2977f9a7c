// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 The Glider Authors

// Package gliderhid opens the Glider display controller over USB HID.
//
// It is the device-acquisition collaborator for pkg/glider: it locates the
// controller by its fixed vendor/product identifiers and hands back a
// ready-to-use transport. Failures here are setup errors, not protocol
// errors. The hidapi binding's *hid.Device satisfies glider.Transport
// directly, including the read-timeout convention (n == 0, nil error).
package gliderhid

import (
	"fmt"

	"github.com/glider-display/glider/pkg/glider"
	"github.com/sstallion/go-hid"
)

// USB identifiers of the Glider display controller.
const (
	VendorID  uint16 = 0x0483
	ProductID uint16 = 0x5750
)

var _ glider.Transport = (*hid.Device)(nil)

// Device is an open HID connection to the controller. It satisfies
// glider.Transport; Close releases the handle.
type Device = hid.Device

// Open connects to the first attached Glider controller.
func Open() (*Device, error) {
	if err := hid.Init(); err != nil {
		return nil, fmt.Errorf("hidapi init: %w", err)
	}
	dev, err := hid.OpenFirst(VendorID, ProductID)
	if err != nil {
		return nil, fmt.Errorf("glider display not found (%04x:%04x): %w", VendorID, ProductID, err)
	}
	return dev, nil
}

// OpenPath connects to a controller at a specific HID path, for hosts
// with more than one display attached.
func OpenPath(path string) (*Device, error) {
	if err := hid.Init(); err != nil {
		return nil, fmt.Errorf("hidapi init: %w", err)
	}
	dev, err := hid.OpenPath(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return dev, nil
}

// Info describes one attached controller.
type Info struct {
	Path         string
	Serial       string
	Manufacturer string
	Product      string
}

// List enumerates attached Glider controllers.
func List() ([]Info, error) {
	if err := hid.Init(); err != nil {
		return nil, fmt.Errorf("hidapi init: %w", err)
	}
	var found []Info
	err := hid.Enumerate(VendorID, ProductID, func(info *hid.DeviceInfo) error {
		found = append(found, Info{
			Path:         info.Path,
			Serial:       info.SerialNbr,
			Manufacturer: info.MfrStr,
			Product:      info.ProductStr,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("enumerate: %w", err)
	}
	return found, nil
}
