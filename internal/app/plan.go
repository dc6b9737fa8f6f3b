package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"modemfw/internal/core"
	"modemfw/internal/shared"
)

func (s Service) Plan(ctx context.Context, req PlanRequest) (PlanResult, error) {
	if strings.TrimSpace(req.State.DeviceID) == "" {
		return PlanResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("device id is required")
	}
	index, err := s.loadIndex(ctx, req.ManifestPath)
	if err != nil {
		return PlanResult{}, err
	}
	state := req.State
	state.DeviceID = strings.TrimSpace(state.DeviceID)
	state.Carrier = shared.NormalizeCarrierID(state.Carrier)
	resolver := core.NewResolver(index)
	return PlanResult{Configs: resolver.PlanFlash(ctx, state)}, nil
}
