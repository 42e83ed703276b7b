package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	return buildRootCommand(newCommandContext())
}

func buildRootCommand(ctx *commandContext) *cobra.Command {
	var outputFlag string
	var selectFlag string

	rootCmd := &cobra.Command{
		Use:           "isorip",
		Short:         "Image mounted optical discs to ISO files with ddrescue",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRip(cmd, ctx, ripOptions{
				outputDir: outputFlag,
				selection: selectFlag,
				hasSelect: cmd.Flags().Changed("select"),
			})
		},
	}

	rootCmd.PersistentFlags().StringVarP(&ctx.configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().BoolVarP(&ctx.verbose, "verbose", "v", false, "Mirror log output to stderr")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Directory to write images and rescue logs into")
	rootCmd.Flags().StringVar(&selectFlag, "select", "", "Volume numbers to image, comma separated (skips the prompt)")

	rootCmd.AddCommand(newVolumesCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
