package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"isorip/internal/logging"
	"isorip/internal/selection"
	"isorip/internal/workflow"
)

type ripOptions struct {
	outputDir string
	selection string
	hasSelect bool
}

func runRip(cmd *cobra.Command, ctx *commandContext, opts ripOptions) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := ctx.ensureLogger()
	if err != nil {
		return err
	}

	terminal := selection.NewTerminal(cmd.InOrStdin(), cmd.OutOrStdout())
	deps := workflow.Dependencies{
		Runner:      ctx.hostRunner(),
		Prompter:    terminal,
		DirPrompter: terminal,
	}
	if opts.hasSelect {
		deps.Prompter = selection.Fixed(opts.selection)
	}

	driver := workflow.NewDriver(cfg, deps, logger)
	result, err := driver.Run(cmd.Context(), opts.outputDir)
	out := cmd.OutOrStdout()
	if err != nil {
		if result != nil {
			logger.Debug("rip failed", logging.String(logging.FieldRunID, result.RunID), logging.Error(err))
			// Volumes finished before the run stopped still get reported.
			if len(result.Report) > 0 {
				fmt.Fprint(out, renderReport(result.Report, shouldColorize(out)))
			}
		}
		return fmt.Errorf("rip: %w", err)
	}

	fmt.Fprint(out, renderReport(result.Report, shouldColorize(out)))
	return nil
}
