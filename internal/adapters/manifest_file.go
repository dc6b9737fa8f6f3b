package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"modemfw/internal/ports"
	"modemfw/internal/types"
)

// ManifestFileAdapter implements ManifestSourcePort over yaml manifest
// files on disk.
type ManifestFileAdapter struct{}

func NewManifestFileAdapter() ManifestFileAdapter {
	return ManifestFileAdapter{}
}

func (a ManifestFileAdapter) LoadManifest(path string) (types.ManifestFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.ManifestFile{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("manifest file not found: " + path).
			WithCause(err)
	}
	var manifest types.ManifestFile
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return types.ManifestFile{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse manifest yaml: " + path).
			WithCause(err)
	}
	log.Debug().
		Str("path", path).
		Str("schema_version", manifest.SchemaVersion).
		Int("devices", len(manifest.Devices)).
		Msg("manifest file decoded")
	return manifest, nil
}

var _ ports.ManifestSourcePort = ManifestFileAdapter{}
