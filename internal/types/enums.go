package types

// FirmwareType classifies a firmware payload. Main, carrier, and OEM
// firmware are indexed independently; AP and dev firmware names are
// carried for the flashing vocabulary but never appear in manifests.
type FirmwareType string

const (
	FirmwareTypeMain    FirmwareType = "main"
	FirmwareTypeCarrier FirmwareType = "carrier"
	FirmwareTypeOem     FirmwareType = "oem"
	FirmwareTypeAp      FirmwareType = "ap"
	FirmwareTypeDev     FirmwareType = "dev"
)

// Compression is the internal compression kind of a firmware payload.
type Compression string

const (
	CompressionNone Compression = "none"
	CompressionXz   Compression = "xz"
)

// ManifestCompression is the compression tag as it appears in manifest
// files. The manifest format defines bzip2 but no deployed helper can
// decompress it, so it maps to an explicit unsupported error rather
// than an internal kind.
type ManifestCompression string

const (
	ManifestCompressionNone  ManifestCompression = "none"
	ManifestCompressionXz    ManifestCompression = "xz"
	ManifestCompressionBzip2 ManifestCompression = "bzip2"
)

// GenericCarrierID is the classification key for firmware that is not
// tied to a specific carrier or OEM.
const GenericCarrierID = ""
