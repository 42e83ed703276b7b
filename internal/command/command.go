// Package command runs host utilities and captures what they print.
//
// Every external tool isorip drives (mount-table query, unmount, eject, the
// imaging utility) goes through Runner so callers see one result shape and
// tests can substitute a recording fake.
package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// Result captures the streams and exit status of a finished process.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Combined joins stdout and stderr with the status separator, verbatim.
func (r Result) Combined() string {
	return string(r.Stdout) + Separator + string(r.Stderr)
}

// Separator joins stdout and stderr in Combined.
const Separator = " | "

// Runner executes a binary and waits for it to exit.
//
// A non-zero exit is not an error: it is reported through Result.ExitCode so
// callers can decide what the tool's streams mean. Run returns an error only
// when the process could not be started or waited on.
type Runner interface {
	Run(ctx context.Context, binary string, args ...string) (Result, error)
}

// DefaultWaitDelay bounds how long Exec waits for a child to exit after it
// was interrupted. ddrescue writes its mapfile on SIGINT, so it gets time to
// finish that before being killed.
const DefaultWaitDelay = 30 * time.Second

// Exec runs commands with os/exec. When ctx is done the child receives
// SIGINT, not SIGKILL, and is killed only if it outlives WaitDelay.
type Exec struct {
	// WaitDelay overrides DefaultWaitDelay when positive.
	WaitDelay time.Duration
}

// Run implements Runner. A child that was still running when ctx ended is
// reported with an error wrapping ctx.Err(), alongside whatever it printed.
func (e Exec) Run(ctx context.Context, binary string, args ...string) (Result, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return Result{}, errors.New("command binary required")
	}
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.Cancel = func() error {
		return cmd.Process.Signal(os.Interrupt)
	}
	cmd.WaitDelay = DefaultWaitDelay
	if e.WaitDelay > 0 {
		cmd.WaitDelay = e.WaitDelay
	}

	err := cmd.Run()
	result := Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	if err == nil {
		return result, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		}
		return result, fmt.Errorf("run %s: interrupted: %w", binary, ctxErr)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}
	return result, fmt.Errorf("run %s: %w", binary, err)
}
