package core

import (
	"fmt"
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"modemfw/internal/types"
)

// DeviceFirmwareCache holds every firmware file known for one device
// type. Files live in an append-only arena in manifest encounter
// order; the three classification indices store arena handles rather
// than copies, so a file classified under several views is still a
// single record. The cache is populated only during parsing and is
// read-only afterward, which makes concurrent lookups safe.
type DeviceFirmwareCache struct {
	files []types.FirmwareFileInfo

	main    map[string]int
	carrier map[string]int
	oem     map[string]int
}

func newDeviceFirmwareCache() *DeviceFirmwareCache {
	return &DeviceFirmwareCache{
		main:    map[string]int{},
		carrier: map[string]int{},
		oem:     map[string]int{},
	}
}

// insert appends the file to the arena and records it under its
// classification key. A second file under the same key in the same
// classification is a manifest authoring error: last-wins on a
// firmware selection table risks flashing the wrong image, so the
// insert fails instead of overwriting.
func (c *DeviceFirmwareCache) insert(file types.FirmwareFileInfo) error {
	index, err := c.indexFor(file.FirmwareType)
	if err != nil {
		return err
	}
	if _, exists := index[file.Tag]; exists {
		return errbuilder.New().
			WithCode(errbuilder.CodeAlreadyExists).
			WithMsg(fmt.Sprintf("duplicate %s firmware for key %q", file.FirmwareType, file.Tag))
	}
	c.files = append(c.files, file)
	index[file.Tag] = len(c.files) - 1
	return nil
}

func (c *DeviceFirmwareCache) indexFor(firmwareType types.FirmwareType) (map[string]int, error) {
	switch firmwareType {
	case types.FirmwareTypeMain:
		return c.main, nil
	case types.FirmwareTypeCarrier:
		return c.carrier, nil
	case types.FirmwareTypeOem:
		return c.oem, nil
	default:
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unknown firmware category: " + string(firmwareType))
	}
}

// MainFirmwareFor returns the main firmware registered under the
// carrier key, or false when the manifest has none. Callers without
// carrier context pass types.GenericCarrierID.
func (c *DeviceFirmwareCache) MainFirmwareFor(carrierKey string) (*types.FirmwareFileInfo, bool) {
	return c.lookup(c.main, carrierKey)
}

// CarrierFirmwareFor returns the carrier firmware bundle for the key.
func (c *DeviceFirmwareCache) CarrierFirmwareFor(carrierKey string) (*types.FirmwareFileInfo, bool) {
	return c.lookup(c.carrier, carrierKey)
}

// OemFirmwareFor returns the OEM firmware registered under the key.
func (c *DeviceFirmwareCache) OemFirmwareFor(oemKey string) (*types.FirmwareFileInfo, bool) {
	return c.lookup(c.oem, oemKey)
}

func (c *DeviceFirmwareCache) lookup(index map[string]int, key string) (*types.FirmwareFileInfo, bool) {
	handle, ok := index[key]
	if !ok {
		return nil, false
	}
	return &c.files[handle], true
}

// AllFiles returns every file for this device in manifest order.
func (c *DeviceFirmwareCache) AllFiles() []types.FirmwareFileInfo {
	out := make([]types.FirmwareFileInfo, len(c.files))
	copy(out, c.files)
	return out
}

// FirmwareIndex maps device types to their firmware caches. It is
// built in one parse pass and carries no mutation API, so any number
// of goroutines may query a completed index concurrently.
type FirmwareIndex struct {
	devices map[types.DeviceType]*DeviceFirmwareCache
}

func newFirmwareIndex() *FirmwareIndex {
	return &FirmwareIndex{devices: map[types.DeviceType]*DeviceFirmwareCache{}}
}

func (i *FirmwareIndex) cacheFor(deviceType types.DeviceType) *DeviceFirmwareCache {
	cache, ok := i.devices[deviceType]
	if !ok {
		cache = newDeviceFirmwareCache()
		i.devices[deviceType] = cache
	}
	return cache
}

// Lookup returns the firmware cache for the device type. A missing
// device is a normal outcome, not an error; manifests legitimately do
// not cover every device.
func (i *FirmwareIndex) Lookup(deviceType types.DeviceType) (*DeviceFirmwareCache, bool) {
	cache, ok := i.devices[deviceType]
	return cache, ok
}

// Devices returns every device type in the index ordered by
// DeviceType.Compare.
func (i *FirmwareIndex) Devices() []types.DeviceType {
	out := make([]types.DeviceType, 0, len(i.devices))
	for deviceType := range i.devices {
		out = append(out, deviceType)
	}
	sort.Slice(out, func(a, b int) bool {
		return out[a].Compare(out[b]) < 0
	})
	return out
}

// Len returns the number of device types in the index.
func (i *FirmwareIndex) Len() int {
	return len(i.devices)
}
