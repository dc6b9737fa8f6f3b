package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"modemfw/internal/core"
	"modemfw/internal/shared"
)

func (s Service) Resolve(ctx context.Context, req ResolveRequest) (ResolveResult, error) {
	if strings.TrimSpace(req.DeviceID) == "" {
		return ResolveResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("device id is required")
	}
	index, err := s.loadIndex(ctx, req.ManifestPath)
	if err != nil {
		return ResolveResult{}, err
	}
	resolver := core.NewResolver(index)
	files := resolver.FindFirmware(ctx,
		strings.TrimSpace(req.DeviceID),
		strings.TrimSpace(req.Variant),
		shared.NormalizeCarrierID(req.Carrier),
	)
	return ResolveResult{
		Main:    files.Main,
		Oem:     files.Oem,
		Carrier: files.Carrier,
	}, nil
}
