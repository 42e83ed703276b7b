package disc

import (
	"context"
	"log/slog"
	"strings"

	"isorip/internal/command"
	"isorip/internal/logging"
)

// UnmountStatus tags the outcome of an unmount attempt.
type UnmountStatus int

const (
	UnmountSucceeded UnmountStatus = iota + 1
	UnmountFailed
)

func (s UnmountStatus) String() string {
	switch s {
	case UnmountSucceeded:
		return "unmounted"
	case UnmountFailed:
		return "unmount_failed"
	default:
		return "unknown"
	}
}

// UnmountResult reports what the unmount tool said.
type UnmountResult struct {
	Status UnmountStatus
	// Message is the tool's stdout on success and its stderr on failure.
	Message string
}

// OK reports whether the volume was detached.
func (r UnmountResult) OK() bool {
	return r.Status == UnmountSucceeded
}

// Unmounter detaches volumes with the platform unmount tool.
type Unmounter struct {
	runner command.Runner
	binary string
	logger *slog.Logger
}

// NewUnmounter constructs an Unmounter invoking "<binary> umount <device>".
func NewUnmounter(runner command.Runner, binary string, logger *slog.Logger) *Unmounter {
	if runner == nil {
		runner = command.Exec{}
	}
	return &Unmounter{
		runner: runner,
		binary: strings.TrimSpace(binary),
		logger: logging.NewComponentLogger(logger, "unmount"),
	}
}

// Unmount detaches device. Any stderr output counts as failure whatever the
// exit code; an empty stderr counts as success.
func (u *Unmounter) Unmount(ctx context.Context, device string) UnmountResult {
	logger := logging.WithContext(ctx, u.logger).With(logging.String(logging.FieldDevice, device))
	result, err := u.runner.Run(ctx, u.binary, "umount", device)
	if err != nil {
		logger.Debug("unmount tool did not run", logging.Error(err))
		return UnmountResult{Status: UnmountFailed, Message: err.Error()}
	}
	if len(result.Stderr) > 0 {
		message := strings.TrimRight(string(result.Stderr), "\r\n")
		logger.Debug("unmount tool reported errors",
			logging.Int("exit_code", result.ExitCode),
			logging.String("stderr", message))
		return UnmountResult{Status: UnmountFailed, Message: message}
	}
	message := strings.TrimSpace(string(result.Stdout))
	logger.Debug("volume unmounted", logging.String("stdout", message))
	return UnmountResult{Status: UnmountSucceeded, Message: message}
}
