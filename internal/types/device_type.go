package types

import "strings"

// DeviceType identifies a modem hardware variant. It is a comparable
// value and is used directly as the firmware index map key. The empty
// variant is a specific value, not a wildcard: {"foo", ""} and
// {"foo", "bar"} are distinct devices.
type DeviceType struct {
	DeviceID string
	Variant  string
}

// NewDeviceType builds a key for a device without a variant.
func NewDeviceType(deviceID string) DeviceType {
	return DeviceType{DeviceID: deviceID}
}

// NewDeviceTypeWithVariant builds a key for a specific hardware variant.
func NewDeviceTypeWithVariant(deviceID string, variant string) DeviceType {
	return DeviceType{DeviceID: deviceID, Variant: variant}
}

// Compare orders device types by device ID first, then variant, using
// plain lexicographic comparison. The ordering is total, so sorted
// iteration over an index is deterministic across parses.
func (d DeviceType) Compare(other DeviceType) int {
	if c := strings.Compare(d.DeviceID, other.DeviceID); c != 0 {
		return c
	}
	return strings.Compare(d.Variant, other.Variant)
}

func (d DeviceType) String() string {
	if d.Variant == "" {
		return d.DeviceID
	}
	return d.DeviceID + ":" + d.Variant
}
