package core

import (
	"context"

	"github.com/rs/zerolog/log"

	"modemfw/internal/policies"
	"modemfw/internal/types"
)

// ModemState is what a modem reports about its installed firmware.
// It is supplied by the transport layer; this package never talks to
// hardware.
type ModemState struct {
	DeviceID string
	Variant  string
	Carrier  string

	MainVersion string
	OemVersion  string

	// Carrier firmware reports both the carrier it was built for and
	// its version. Both empty means no carrier firmware is installed.
	CarrierFirmwareID      string
	CarrierFirmwareVersion string
}

// FirmwareConfig is one firmware image the modem should be flashed
// with.
type FirmwareConfig struct {
	FirmwareType types.FirmwareType
	Path         string
	Version      string
}

// PlanFlash compares the resolved firmware set against what the modem
// reports and returns the images that need flashing, in main, OEM,
// carrier order. An empty plan means the modem is already current.
func (r *Resolver) PlanFlash(ctx context.Context, state ModemState) []FirmwareConfig {
	files := r.FindFirmware(ctx, state.DeviceID, state.Variant, state.Carrier)
	var plan []FirmwareConfig

	if policies.NeedsUpdate(files.Main, state.MainVersion) {
		log.Ctx(ctx).Info().
			Str("version", files.Main.Version).
			Str("installed", state.MainVersion).
			Msg("main firmware update needed")
		plan = append(plan, FirmwareConfig{
			FirmwareType: types.FirmwareTypeMain,
			Path:         files.Main.Path,
			Version:      files.Main.Version,
		})
	}

	if policies.NeedsUpdate(files.Oem, state.OemVersion) {
		log.Ctx(ctx).Info().
			Str("version", files.Oem.Version).
			Str("installed", state.OemVersion).
			Msg("OEM firmware update needed")
		plan = append(plan, FirmwareConfig{
			FirmwareType: types.FirmwareTypeOem,
			Path:         files.Oem.Path,
			Version:      files.Oem.Version,
		})
	}

	if state.Carrier != "" && files.Carrier != nil {
		sameFirmware := r.IsUsingSameFirmware(
			state.DeviceID, state.Variant, state.CarrierFirmwareID, state.Carrier)
		if policies.NeedsCarrierUpdate(files.Carrier, state.CarrierFirmwareID, state.CarrierFirmwareVersion, sameFirmware) {
			log.Ctx(ctx).Info().
				Str("carrier", state.Carrier).
				Str("version", files.Carrier.Version).
				Msg("carrier firmware update needed")
			plan = append(plan, FirmwareConfig{
				FirmwareType: types.FirmwareTypeCarrier,
				Path:         files.Carrier.Path,
				Version:      files.Carrier.Version,
			})
		}
	}

	return plan
}
