package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"modemfw/internal/app"
	"modemfw/internal/types"
)

type resolveOptions struct {
	Manifest string
	DeviceID string
	Variant  string
	Carrier  string
}

func newResolveCommand() *cobra.Command {
	opts := resolveOptions{}
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve the firmware set for a device and carrier",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runResolve(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Manifest, "manifest", "", "Manifest file path")
	cmd.Flags().StringVar(&opts.DeviceID, "device-id", "", "Modem device ID")
	cmd.Flags().StringVar(&opts.Variant, "variant", "", "Hardware variant")
	cmd.Flags().StringVar(&opts.Carrier, "carrier", "", "Active carrier ID")

	_ = viper.BindPFlag("manifest", cmd.Flags().Lookup("manifest"))
	_ = viper.BindPFlag("device_id", cmd.Flags().Lookup("device-id"))
	_ = viper.BindPFlag("variant", cmd.Flags().Lookup("variant"))
	_ = viper.BindPFlag("carrier", cmd.Flags().Lookup("carrier"))

	return cmd
}

func runResolve(ctx context.Context, cmd *cobra.Command, opts resolveOptions) error {
	service := newAppService()
	result, err := service.Resolve(ctx, app.ResolveRequest{
		ManifestPath: resolveString(cmd, opts.Manifest, "manifest", "manifest"),
		DeviceID:     resolveString(cmd, opts.DeviceID, "device_id", "device-id"),
		Variant:      resolveString(cmd, opts.Variant, "variant", "variant"),
		Carrier:      resolveString(cmd, opts.Carrier, "carrier", "carrier"),
	})
	if err != nil {
		return err
	}
	printFile("main", result.Main)
	printFile("oem", result.Oem)
	printFile("carrier", result.Carrier)
	return nil
}

func printFile(label string, file *types.FirmwareFileInfo) {
	if file == nil {
		fmt.Printf("%s: none\n", label)
		return
	}
	fmt.Printf("%s: %s (version %s, compression %s)\n", label, file.Path, file.Version, file.Compression)
}
