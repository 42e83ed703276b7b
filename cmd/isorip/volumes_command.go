package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"isorip/internal/disc"
	"isorip/internal/selection"
)

func newVolumesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "volumes",
		Short: "List mounted optical volumes without touching them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			discoverer := disc.NewDiscoverer(ctx.hostRunner(), cfg.Tools.MountTable, cfg.Tools.DeviceMarker, logger)
			catalog, err := discoverer.Discover(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(catalog) == 0 {
				fmt.Fprintln(out, "No mounted optical volumes were found.")
				return nil
			}
			fmt.Fprintln(out, selection.RenderCatalog(catalog))
			return nil
		},
	}
}
