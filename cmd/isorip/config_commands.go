package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"isorip/internal/config"
	"isorip/internal/deps"
	"isorip/internal/preflight"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigValidateCommand(ctx))
	configCmd.AddCommand(newConfigInitCommand())

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample configuration file",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
				target = defaultPath
			} else {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve config path: %w", err)
				}
				target = expanded
			}

			dir := filepath.Dir(target)
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create config directory %q: %w", dir, err)
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
				} else if !os.IsNotExist(err) {
					return fmt.Errorf("check config path: %w", err)
				}
			}

			if err := config.CreateSample(target); err != nil {
				return fmt.Errorf("create sample config: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote sample configuration to %s\n", target)
			fmt.Fprintln(out, "Set paths.output_dir to skip the output folder prompt.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:         "validate",
		Short:       "Validate configuration file",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, exists, err := config.Load(strings.TrimSpace(ctx.configFlag))
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := cfg.EnsureDirectories(); err != nil {
				return fmt.Errorf("ensure directories: %w", err)
			}
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			fmt.Fprintf(out, "Config path: %s\n", path)
			if !exists {
				fmt.Fprintln(out, "Config file did not exist; defaults were used")
			}
			if strings.TrimSpace(cfg.Paths.OutputDir) == "" {
				fmt.Fprintln(out, renderStatusLine("Output directory", statusInfo, "asked at run time", colorize))
			} else {
				check := preflight.CheckDirectoryAccess("Output directory", cfg.Paths.OutputDir)
				kind := statusOK
				if !check.Passed {
					kind = statusWarn
				}
				fmt.Fprintln(out, renderStatusLine(check.Name, kind, check.Detail, colorize))
			}

			statuses := deps.CheckBinaries(toolRequirements(cfg.Tools))
			for _, status := range statuses {
				fmt.Fprintln(out, renderToolStatus(status, colorize))
			}
			if missing := deps.Missing(statuses); len(missing) > 0 {
				names := make([]string, 0, len(missing))
				for _, status := range missing {
					names = append(names, status.Command)
				}
				fmt.Fprintf(out, "Missing required tools: %s\n", strings.Join(names, ", "))
			}
			fmt.Fprintln(out, "Configuration valid")
			return nil
		},
	}
}

func toolRequirements(tools config.Tools) []deps.Requirement {
	return []deps.Requirement{
		{Name: "Mount table", Command: tools.MountTable, Description: "Lists mounted volumes"},
		{Name: "Unmount", Command: tools.Unmount, Description: "Detaches a volume before imaging"},
		{Name: "Imager", Command: tools.Imager, Description: "Copies the raw disc to an image"},
		{Name: "Eject", Command: tools.Eject, Description: "Ejects the drive after the run", Optional: true},
	}
}

func renderToolStatus(status deps.Status, colorize bool) string {
	switch {
	case status.Available:
		return renderStatusLine(status.Name, statusOK, status.Path, colorize)
	case status.Optional:
		return renderStatusLine(status.Name, statusInfo, status.Detail+" (optional)", colorize)
	default:
		return renderStatusLine(status.Name, statusWarn, status.Detail, colorize)
	}
}
