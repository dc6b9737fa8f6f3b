package core

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/require"

	"modemfw/internal/types"
)

func TestCompressionFromManifestSupported(t *testing.T) {
	compression, err := CompressionFromManifest(types.ManifestCompressionNone)
	require.NoError(t, err)
	require.Equal(t, types.CompressionNone, compression)

	compression, err = CompressionFromManifest(types.ManifestCompressionXz)
	require.NoError(t, err)
	require.Equal(t, types.CompressionXz, compression)
}

func TestCompressionFromManifestBzip2Unsupported(t *testing.T) {
	_, err := CompressionFromManifest(types.ManifestCompressionBzip2)
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestCompressionFromManifestUnknownTag(t *testing.T) {
	_, err := CompressionFromManifest("zstd")
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}
