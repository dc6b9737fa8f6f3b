package app

import "context"

func (s Service) Inspect(ctx context.Context, req InspectRequest) (InspectResult, error) {
	index, err := s.loadIndex(ctx, req.ManifestPath)
	if err != nil {
		return InspectResult{}, err
	}
	var summaries []InspectDeviceSummary
	for _, deviceType := range index.Devices() {
		cache, _ := index.Lookup(deviceType)
		summaries = append(summaries, InspectDeviceSummary{
			Device: deviceType,
			Files:  cache.AllFiles(),
		})
	}
	return InspectResult{Devices: summaries}, nil
}
