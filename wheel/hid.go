package wheel

import (
	"errors"
	"fmt"

	hid "github.com/sstallion/go-hid"
)

// USB identifiers of the wheel controller.
const (
	VendorID  uint16 = 0x0483
	ProductID uint16 = 0x5750
)

// The controller exposes several HID interfaces under one VID/PID pair;
// interface 0 is the vendor protocol interface this package speaks.
const vendorInterfaceNumber = 0

// ErrNoDevice is returned when enumeration finds no wheel with a vendor
// protocol interface.
var ErrNoDevice = errors.New("wheel: no device found")

var _ Transport = (*hid.Device)(nil)

// Open enumerates attached wheels and connects to the first one whose
// interface number matches the vendor protocol convention.
func Open(o *Options) (*Device, error) {
	if err := hid.Init(); err != nil {
		return nil, fmt.Errorf("wheel: hid init: %w", err)
	}
	var path string
	err := hid.Enumerate(VendorID, ProductID, func(info *hid.DeviceInfo) error {
		if path == "" && info.InterfaceNbr == vendorInterfaceNumber {
			path = info.Path
		}
		return nil
	})
	if err != nil && path == "" {
		return nil, fmt.Errorf("wheel: enumerate: %w", err)
	}
	if path == "" {
		return nil, ErrNoDevice
	}
	return OpenPath(path, o)
}

// OpenPath connects to a wheel at a known HID path.
func OpenPath(path string, o *Options) (*Device, error) {
	t, err := hid.OpenPath(path)
	if err != nil {
		return nil, fmt.Errorf("wheel: open %s: %w", path, err)
	}
	return New(t, o), nil
}
