package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"isorip/internal/command"
	"isorip/internal/config"
	"isorip/internal/disc"
	"isorip/internal/imaging"
	"isorip/internal/logging"
	"isorip/internal/preflight"
	"isorip/internal/selection"
)

// ErrBusy means another run holds the run lock.
var ErrBusy = errors.New("another isorip run is in progress")

// DirectoryPrompter asks the operator for the output directory.
type DirectoryPrompter interface {
	PromptOutputDir(ctx context.Context) (string, error)
}

// Dependencies are the collaborators a Driver talks to. Nil fields get the
// host defaults where one exists.
type Dependencies struct {
	Runner      command.Runner
	Prompter    selection.Prompter
	DirPrompter DirectoryPrompter
	Ejector     disc.Ejector
}

// Result summarizes a run.
type Result struct {
	RunID      string
	State      State
	OutputDir  string
	Catalog    disc.Catalog
	Selections []int
	Report     imaging.Report
	// EjectErr is kept for the log only; eject failures are not shown to the
	// operator.
	EjectErr error
}

// Driver sequences a single run.
type Driver struct {
	cfg    *config.Config
	deps   Dependencies
	logger *slog.Logger
}

// NewDriver constructs a Driver.
func NewDriver(cfg *config.Config, deps Dependencies, logger *slog.Logger) *Driver {
	if deps.Runner == nil {
		deps.Runner = command.Exec{}
	}
	if deps.Ejector == nil {
		deps.Ejector = disc.NewEjector(deps.Runner, cfg.Tools.Eject)
	}
	return &Driver{
		cfg:    cfg,
		deps:   deps,
		logger: logging.NewComponentLogger(logger, "workflow"),
	}
}

// Run executes the workflow. outputDir overrides paths.output_dir; when both
// are empty the DirPrompter is asked. The returned Result is populated up to
// the state the run reached, including on error.
func (d *Driver) Run(ctx context.Context, outputDir string) (*Result, error) {
	result := &Result{RunID: uuid.NewString(), State: StateInit}
	ctx = logging.WithRunID(ctx, result.RunID)
	logger := logging.WithContext(ctx, d.logger)

	abort := func(err error) (*Result, error) {
		logger.Info("run aborted", logging.String("state", result.State.String()), logging.Error(err))
		result.State = StateAborted
		return result, err
	}

	dir, err := d.resolveOutputDir(ctx, outputDir)
	if err != nil {
		return abort(err)
	}
	result.OutputDir = dir

	imagerPath, err := preflight.Require(dir, d.cfg.Tools.Imager)
	if err != nil {
		return abort(err)
	}
	d.advance(logger, result, StatePreconditionsChecked)

	unlock, err := d.acquireLock()
	if err != nil {
		return abort(err)
	}
	defer unlock()

	discoverer := disc.NewDiscoverer(d.deps.Runner, d.cfg.Tools.MountTable, d.cfg.Tools.DeviceMarker, d.logger)
	catalog, err := discoverer.Discover(ctx)
	if err != nil {
		return abort(err)
	}
	result.Catalog = catalog
	d.advance(logger, result, StateDiscovered)

	if d.deps.Prompter == nil {
		return abort(errors.New("no selection source configured"))
	}
	selections, err := d.deps.Prompter.Prompt(ctx, catalog)
	if err != nil {
		return abort(err)
	}
	result.Selections = selections
	d.advance(logger, result, StateSelected)

	orchestrator := imaging.NewOrchestrator(
		disc.NewUnmounter(d.deps.Runner, d.cfg.Tools.Unmount, d.logger),
		imaging.NewImager(d.deps.Runner, imagerPath),
		dir,
		d.logger,
	)
	d.advance(logger, result, StateImaging)
	report, err := orchestrator.Run(ctx, catalog, selections)
	result.Report = report
	if err != nil {
		return abort(err)
	}

	if err := d.deps.Ejector.Eject(ctx); err != nil {
		result.EjectErr = err
		logger.Debug("eject failed", logging.Error(err))
	}
	d.advance(logger, result, StateEjected)

	logger.Info("run finished",
		logging.Int("selected", len(selections)),
		logging.Int("imaged", report.Count(imaging.OutcomeImaged)),
		logging.Int("unmount_failed", report.Count(imaging.OutcomeUnmountFailed)),
		logging.Int("imager_failed", report.Count(imaging.OutcomeImagerFailed)),
	)
	d.advance(logger, result, StateReported)
	return result, nil
}

func (d *Driver) advance(logger *slog.Logger, result *Result, next State) {
	logger.Debug("state transition", logging.String("from", result.State.String()), logging.String("to", next.String()))
	result.State = next
}

func (d *Driver) resolveOutputDir(ctx context.Context, flagValue string) (string, error) {
	dir := strings.TrimSpace(flagValue)
	if dir == "" {
		dir = d.cfg.Paths.OutputDir
	}
	if dir == "" {
		if d.deps.DirPrompter == nil {
			return "", &preflight.Error{
				Kind:   preflight.ErrInvalidOutputDir,
				Result: preflight.Result{Name: "Output directory", Detail: "no output directory given"},
			}
		}
		answer, err := d.deps.DirPrompter.PromptOutputDir(ctx)
		if err != nil {
			return "", err
		}
		dir = answer
	}
	expanded, err := config.ExpandPath(strings.TrimRight(dir, " \t\r\n"))
	if err != nil {
		return "", fmt.Errorf("resolve output directory: %w", err)
	}
	return expanded, nil
}

func (d *Driver) acquireLock() (func(), error) {
	path := d.cfg.LockPath()
	if path == "" {
		return func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}
	lock := flock.New(path)
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock %s: %w", path, err)
	}
	if !locked {
		return nil, fmt.Errorf("%w (lock held at %s)", ErrBusy, path)
	}
	return func() { _ = lock.Unlock() }, nil
}
