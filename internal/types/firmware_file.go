package types

// FirmwareFileInfo describes one firmware artifact from the manifest.
// Values are created once during parsing and never mutated afterward.
type FirmwareFileInfo struct {
	// Path is the firmware file path relative to the firmware
	// directory root. Path resolution belongs to the caller.
	Path string

	// Version is the vendor-assigned firmware version. Versions are
	// opaque strings compared only for equality.
	Version string

	// Compression is the payload compression kind.
	Compression Compression

	// FirmwareType records which classification index holds this file.
	FirmwareType FirmwareType

	// Tag is the carrier or OEM identifier the file applies to.
	// GenericCarrierID for firmware that is not carrier-specific.
	Tag string
}
