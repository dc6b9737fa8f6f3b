package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"modemfw/internal/adapters"
	"modemfw/internal/core"
	"modemfw/internal/ports"
)

type Service struct {
	Manifest ports.ManifestSourcePort
}

func NewService() Service {
	return Service{
		Manifest: adapters.NewManifestFileAdapter(),
	}
}

// loadIndex parses the manifest at path into a firmware index.
func (s Service) loadIndex(ctx context.Context, path string) (*core.FirmwareIndex, error) {
	manifestPath := strings.TrimSpace(path)
	if manifestPath == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("manifest path is required")
	}
	manifest, err := s.Manifest.LoadManifest(manifestPath)
	if err != nil {
		return nil, err
	}
	return core.ParseManifest(ctx, manifest)
}
