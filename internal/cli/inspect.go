package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"modemfw/internal/app"
)

type inspectOptions struct {
	Manifest string
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "List every device and firmware file in a manifest",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Manifest, "manifest", "", "Manifest file path")
	_ = viper.BindPFlag("manifest", cmd.Flags().Lookup("manifest"))
	return cmd
}

func runInspect(ctx context.Context, cmd *cobra.Command, opts inspectOptions) error {
	service := newAppService()
	result, err := service.Inspect(ctx, app.InspectRequest{
		ManifestPath: resolveString(cmd, opts.Manifest, "manifest", "manifest"),
	})
	if err != nil {
		return err
	}
	for _, device := range result.Devices {
		fmt.Printf("%s:\n", device.Device)
		for _, file := range device.Files {
			tag := file.Tag
			if tag == "" {
				tag = "generic"
			}
			fmt.Printf("  %-8s %-12s %s (version %s)\n", file.FirmwareType, tag, file.Path, file.Version)
		}
	}
	return nil
}
