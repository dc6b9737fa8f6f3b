package types

// SupportedSchemaVersion is the only manifest schema version this
// engine accepts. Older manifests must be migrated by their authors;
// the parser never degrades to a partial reading of an unknown format.
const SupportedSchemaVersion = "2"

// ManifestFile is the decoded on-disk manifest. It lists every device
// the firmware bundle covers together with the firmware files that
// apply to each device.
type ManifestFile struct {
	SchemaVersion string        `yaml:"schema_version"`
	Devices       []DeviceEntry `yaml:"devices"`
}

// DeviceEntry groups the firmware files for one hardware variant.
type DeviceEntry struct {
	DeviceID string `yaml:"device_id"`

	// Variant distinguishes boards that share a device ID but ship
	// different modems. Empty when the device has a single variant.
	Variant string `yaml:"variant,omitempty"`

	Files []FirmwareEntry `yaml:"files"`
}

// FirmwareEntry is one firmware file descriptor under a device.
type FirmwareEntry struct {
	Path        string              `yaml:"path"`
	Version     string              `yaml:"version"`
	Compression ManifestCompression `yaml:"compression"`
	Category    FirmwareType        `yaml:"category"`

	// CarrierID is the carrier the file applies to, or the OEM
	// identifier for oem entries. Empty means generic.
	CarrierID string `yaml:"carrier_id,omitempty"`
}
