package app

import (
	"modemfw/internal/core"
	"modemfw/internal/types"
)

type ValidateRequest struct {
	ManifestPath string
}

type ValidateResult struct {
	SchemaVersion string
	DeviceCount   int
	FileCount     int
}

type ResolveRequest struct {
	ManifestPath string
	DeviceID     string
	Variant      string
	Carrier      string
}

type ResolveResult struct {
	Main    *types.FirmwareFileInfo
	Oem     *types.FirmwareFileInfo
	Carrier *types.FirmwareFileInfo
}

type PlanRequest struct {
	ManifestPath string
	State        core.ModemState
}

type PlanResult struct {
	Configs []core.FirmwareConfig
}

type InspectRequest struct {
	ManifestPath string
}

type InspectDeviceSummary struct {
	Device types.DeviceType
	Files  []types.FirmwareFileInfo
}

type InspectResult struct {
	Devices []InspectDeviceSummary
}
