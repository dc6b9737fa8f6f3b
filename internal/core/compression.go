package core

import (
	"github.com/ZanzyTHEbar/errbuilder-go"

	"modemfw/internal/types"
)

// CompressionFromManifest maps a manifest compression tag to the
// internal compression kind. The mapping is total over the tags the
// manifest format defines: every defined tag either maps to a
// supported kind or is rejected explicitly. Unknown tags are a
// malformed entry, never a silent default.
func CompressionFromManifest(tag types.ManifestCompression) (types.Compression, error) {
	switch tag {
	case types.ManifestCompressionNone:
		return types.CompressionNone, nil
	case types.ManifestCompressionXz:
		return types.CompressionXz, nil
	case types.ManifestCompressionBzip2:
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unsupported compression: " + string(tag))
	default:
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unknown compression tag: " + string(tag))
	}
}
