package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"modemfw/internal/core"
)

func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	manifestPath := strings.TrimSpace(req.ManifestPath)
	if manifestPath == "" {
		return ValidateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("manifest path is required")
	}
	manifest, err := s.Manifest.LoadManifest(manifestPath)
	if err != nil {
		return ValidateResult{}, err
	}
	index, err := core.ParseManifest(ctx, manifest)
	if err != nil {
		return ValidateResult{}, err
	}
	fileCount := 0
	for _, deviceType := range index.Devices() {
		cache, _ := index.Lookup(deviceType)
		fileCount += len(cache.AllFiles())
	}
	return ValidateResult{
		SchemaVersion: manifest.SchemaVersion,
		DeviceCount:   index.Len(),
		FileCount:     fileCount,
	}, nil
}
