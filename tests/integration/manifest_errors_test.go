package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/require"

	"modemfw/internal/app"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "firmware_manifest.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestValidateRejectsOldSchema(t *testing.T) {
	path := writeManifest(t, `schema_version: "1"
devices:
  - device_id: "usb:cafe"
    files:
      - path: /main.bin
        version: "1.0"
        compression: none
        category: main
`)
	_, err := app.NewService().Validate(t.Context(), app.ValidateRequest{ManifestPath: path})
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
}

func TestValidateRejectsDuplicateKey(t *testing.T) {
	path := writeManifest(t, `schema_version: "2"
devices:
  - device_id: "usb:cafe"
    files:
      - path: /main.bin
        version: "1.0"
        compression: none
        category: main
      - path: /other-main.bin
        version: "2.0"
        compression: none
        category: main
`)
	_, err := app.NewService().Validate(t.Context(), app.ValidateRequest{ManifestPath: path})
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeAlreadyExists, errbuilder.CodeOf(err))
}

func TestValidateRejectsBzip2(t *testing.T) {
	path := writeManifest(t, `schema_version: "2"
devices:
  - device_id: "usb:cafe"
    files:
      - path: /main.bin
        version: "1.0"
        compression: bzip2
        category: main
`)
	_, err := app.NewService().Validate(t.Context(), app.ValidateRequest{ManifestPath: path})
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestValidateAcceptsSampleFixture(t *testing.T) {
	dir, err := os.Getwd()
	require.NoError(t, err)
	path := filepath.Join(dir, "..", "..", "fixtures", "manifest-sample.yaml")

	result, err := app.NewService().Validate(t.Context(), app.ValidateRequest{ManifestPath: path})
	require.NoError(t, err)
	require.Equal(t, 2, result.DeviceCount)
	require.Equal(t, 5, result.FileCount)
}
