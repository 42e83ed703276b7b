package imaging

import (
	"context"
	"fmt"
	"log/slog"

	"isorip/internal/disc"
	"isorip/internal/logging"
)

// Unmounter detaches a volume before raw imaging.
type Unmounter interface {
	Unmount(ctx context.Context, device string) disc.UnmountResult
}

// Orchestrator unmounts and images each selected volume in order.
type Orchestrator struct {
	unmounter Unmounter
	imager    *Imager
	outputDir string
	logger    *slog.Logger
}

// NewOrchestrator wires an Orchestrator writing into outputDir.
func NewOrchestrator(unmounter Unmounter, imager *Imager, outputDir string, logger *slog.Logger) *Orchestrator {
	return &Orchestrator{
		unmounter: unmounter,
		imager:    imager,
		outputDir: outputDir,
		logger:    logging.NewComponentLogger(logger, "imaging"),
	}
}

// Run processes selections against catalog. Every index must exist in
// catalog; this is checked before any volume is touched. Per-volume failures
// are recorded in the report. Run stops early only when ctx is done, returning
// the outcomes gathered so far.
func (o *Orchestrator) Run(ctx context.Context, catalog disc.Catalog, selections []int) (Report, error) {
	volumes := make([]disc.Volume, 0, len(selections))
	for _, index := range selections {
		volume, ok := catalog.Lookup(index)
		if !ok {
			return nil, fmt.Errorf("selection %d is not in the discovered volumes", index)
		}
		volumes = append(volumes, volume)
	}

	report := make(Report, 0, len(volumes))
	for _, volume := range volumes {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		outcome := o.process(ctx, volume)
		report = append(report, outcome)
		if outcome.Kind == OutcomeInterrupted {
			return report, ctx.Err()
		}
	}
	return report, nil
}

func (o *Orchestrator) process(ctx context.Context, volume disc.Volume) Outcome {
	logger := logging.WithContext(ctx, o.logger).With(
		logging.Int(logging.FieldVolumeIndex, volume.Index),
		logging.String(logging.FieldVolume, volume.Name),
		logging.String(logging.FieldDevice, volume.Device),
	)
	dest := DestinationFor(o.outputDir, volume)
	outcome := Outcome{Volume: volume, ImagePath: dest.Image, LogPath: dest.Log}

	unmount := o.unmounter.Unmount(ctx, volume.Device)
	if !unmount.OK() {
		logging.WarnWithContext(logger, "unmount failed; skipping volume", "unmount_failed",
			logging.String("detail", unmount.Message),
			logging.String(logging.FieldErrorHint, "close any application using the disc and run again"),
		)
		outcome.Kind = OutcomeUnmountFailed
		outcome.Status = unmount.Message
		return outcome
	}

	logger.Info("imaging started", logging.String("image", dest.Image), logging.String("log", dest.Log))
	result, err := o.imager.Image(ctx, volume.Device, dest)
	if err != nil && ctx.Err() != nil {
		logging.WarnWithContext(logger, "imaging interrupted", "imaging_interrupted",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "run again with the same output folder to resume from the rescue log"),
			logging.String(logging.FieldImpact, "image incomplete"),
		)
		outcome.Kind = OutcomeInterrupted
		outcome.ExitCode = result.ExitCode
		outcome.Status = result.Combined()
		return outcome
	}
	if err != nil {
		logging.ErrorWithContext(logger, "imager did not run", "imager_failed", logging.Error(err))
		outcome.Kind = OutcomeImagerFailed
		outcome.Status = err.Error()
		return outcome
	}
	outcome.Kind = OutcomeImaged
	outcome.ExitCode = result.ExitCode
	outcome.Status = result.Combined()
	logger.Info("imaging finished", logging.Int("exit_code", result.ExitCode))
	return outcome
}

var _ Unmounter = (*disc.Unmounter)(nil)
