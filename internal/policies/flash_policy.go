// Package policies holds the flashing decision rules applied on top
// of a resolved firmware set. The rules are pure so the transport
// layer can be simulated in tests.
package policies

import "modemfw/internal/types"

// NeedsUpdate reports whether a resolved main or OEM firmware differs
// from the installed version. Versions are opaque vendor strings and
// compare by equality only.
func NeedsUpdate(file *types.FirmwareFileInfo, installedVersion string) bool {
	return file != nil && file.Version != installedVersion
}

// NeedsCarrierUpdate decides whether the carrier firmware must be
// flashed. Carrier firmware differs from main and OEM firmware: it
// must also be flashed when the installed image was built for another
// carrier, or when nothing carrier-specific is installed at all.
// sameFirmware tells whether the installed carrier image already
// covers the active carrier (e.g. both map to the generic bundle).
func NeedsCarrierUpdate(file *types.FirmwareFileInfo, installedID string, installedVersion string, sameFirmware bool) bool {
	if file == nil {
		return false
	}
	hasCarrierFirmware := installedID != "" && installedVersion != ""
	if !hasCarrierFirmware {
		return true
	}
	if !sameFirmware {
		return true
	}
	return installedVersion != file.Version
}
