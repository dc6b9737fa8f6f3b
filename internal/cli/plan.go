package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"modemfw/internal/app"
	"modemfw/internal/core"
)

type planOptions struct {
	Manifest         string
	DeviceID         string
	Variant          string
	Carrier          string
	MainVersion      string
	OemVersion       string
	CarrierFwID      string
	CarrierFwVersion string
}

func newPlanCommand() *cobra.Command {
	opts := planOptions{}
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show which firmware a modem needs flashed",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlan(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Manifest, "manifest", "", "Manifest file path")
	cmd.Flags().StringVar(&opts.DeviceID, "device-id", "", "Modem device ID")
	cmd.Flags().StringVar(&opts.Variant, "variant", "", "Hardware variant")
	cmd.Flags().StringVar(&opts.Carrier, "carrier", "", "Active carrier ID")
	cmd.Flags().StringVar(&opts.MainVersion, "main-version", "", "Installed main firmware version")
	cmd.Flags().StringVar(&opts.OemVersion, "oem-version", "", "Installed OEM firmware version")
	cmd.Flags().StringVar(&opts.CarrierFwID, "carrier-fw-id", "", "Installed carrier firmware carrier ID")
	cmd.Flags().StringVar(&opts.CarrierFwVersion, "carrier-fw-version", "", "Installed carrier firmware version")

	_ = viper.BindPFlag("manifest", cmd.Flags().Lookup("manifest"))
	_ = viper.BindPFlag("device_id", cmd.Flags().Lookup("device-id"))
	_ = viper.BindPFlag("variant", cmd.Flags().Lookup("variant"))
	_ = viper.BindPFlag("carrier", cmd.Flags().Lookup("carrier"))

	return cmd
}

func runPlan(ctx context.Context, cmd *cobra.Command, opts planOptions) error {
	service := newAppService()
	result, err := service.Plan(ctx, app.PlanRequest{
		ManifestPath: resolveString(cmd, opts.Manifest, "manifest", "manifest"),
		State: core.ModemState{
			DeviceID:               resolveString(cmd, opts.DeviceID, "device_id", "device-id"),
			Variant:                resolveString(cmd, opts.Variant, "variant", "variant"),
			Carrier:                resolveString(cmd, opts.Carrier, "carrier", "carrier"),
			MainVersion:            opts.MainVersion,
			OemVersion:             opts.OemVersion,
			CarrierFirmwareID:      opts.CarrierFwID,
			CarrierFirmwareVersion: opts.CarrierFwVersion,
		},
	})
	if err != nil {
		return err
	}
	if len(result.Configs) == 0 {
		fmt.Println("modem firmware is up to date")
		return nil
	}
	for _, config := range result.Configs {
		fmt.Printf("flash %-8s %s (version %s)\n", config.FirmwareType, config.Path, config.Version)
	}
	return nil
}
