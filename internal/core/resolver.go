package core

import (
	"context"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/rs/zerolog/log"

	"modemfw/internal/types"
)

// Files is the outcome of a firmware resolution for one modem: the
// main, OEM, and carrier firmware that apply, any of which may be nil
// when the manifest has no matching entry.
type Files struct {
	Main    *types.FirmwareFileInfo
	Oem     *types.FirmwareFileInfo
	Carrier *types.FirmwareFileInfo
}

// Resolver answers firmware queries for concrete modems on top of a
// parsed index. The index itself keeps its three classifications
// strictly independent; every fallback rule (variant to variantless
// device, carrier-specific to generic) lives here, on the caller side
// of that boundary.
type Resolver struct {
	index *FirmwareIndex

	// variantOverride replaces the modem-reported variant in tests.
	variantOverride string
	hasOverride     bool
}

func NewResolver(index *FirmwareIndex) *Resolver {
	return &Resolver{index: index}
}

// OverrideVariantForTesting forces every resolution to use the given
// variant instead of the one the caller reports.
func (r *Resolver) OverrideVariantForTesting(variant string) {
	r.variantOverride = variant
	r.hasOverride = true
}

// FindFirmware resolves the firmware set for a modem. carrier may be
// empty when no SIM is inserted; main and OEM firmware then resolve
// through the generic key only and no carrier firmware is returned.
func (r *Resolver) FindFirmware(ctx context.Context, deviceID string, variant string, carrier string) Files {
	assert.NotEmpty(ctx, deviceID, "device id must be set")
	if r.hasOverride {
		variant = r.variantOverride
	}

	cache, ok := r.lookupDevice(deviceID, variant)
	if !ok {
		log.Ctx(ctx).Debug().
			Str("device_id", deviceID).
			Str("variant", variant).
			Msg("no firmware known for device")
		return Files{}
	}

	files := Files{
		Main: r.mainOrGeneric(cache, carrier),
		Oem:  r.oemOrGeneric(cache, carrier),
	}
	if carrier != "" {
		if file, ok := carrierOrGeneric(cache, carrier); ok {
			files.Carrier = file
		}
	}
	return files
}

// IsUsingSameFirmware reports whether two carriers share the same
// carrier firmware file on this device. Flashing is skipped when the
// installed firmware already covers the new carrier.
func (r *Resolver) IsUsingSameFirmware(deviceID string, variant string, carrierA string, carrierB string) bool {
	if carrierA == carrierB {
		return true
	}
	cache, ok := r.lookupDevice(deviceID, variant)
	if !ok {
		return false
	}
	fileA, okA := carrierOrGeneric(cache, carrierA)
	fileB, okB := carrierOrGeneric(cache, carrierB)
	if !okA || !okB {
		return false
	}
	return fileA.Path == fileB.Path
}

// lookupDevice tries the exact variant first, then the variantless
// device entry that covers boards without a variant-specific bundle.
func (r *Resolver) lookupDevice(deviceID string, variant string) (*DeviceFirmwareCache, bool) {
	if variant != "" {
		if cache, ok := r.index.Lookup(types.NewDeviceTypeWithVariant(deviceID, variant)); ok {
			return cache, true
		}
	}
	return r.index.Lookup(types.NewDeviceType(deviceID))
}

func (r *Resolver) mainOrGeneric(cache *DeviceFirmwareCache, carrier string) *types.FirmwareFileInfo {
	if carrier != "" {
		if file, ok := cache.MainFirmwareFor(carrier); ok {
			return file
		}
	}
	file, _ := cache.MainFirmwareFor(types.GenericCarrierID)
	return file
}

func (r *Resolver) oemOrGeneric(cache *DeviceFirmwareCache, carrier string) *types.FirmwareFileInfo {
	if carrier != "" {
		if file, ok := cache.OemFirmwareFor(carrier); ok {
			return file
		}
	}
	file, _ := cache.OemFirmwareFor(types.GenericCarrierID)
	return file
}

func carrierOrGeneric(cache *DeviceFirmwareCache, carrier string) (*types.FirmwareFileInfo, bool) {
	if file, ok := cache.CarrierFirmwareFor(carrier); ok {
		return file, true
	}
	return cache.CarrierFirmwareFor(types.GenericCarrierID)
}
