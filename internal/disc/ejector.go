package disc

import (
	"context"
	"fmt"
	"strings"

	"isorip/internal/command"
)

// Ejector defines disc eject operations.
type Ejector interface {
	Eject(ctx context.Context) error
}

type commandEjector struct {
	runner command.Runner
	binary string
}

// NewEjector creates an ejector that runs "<binary> eject".
func NewEjector(runner command.Runner, binary string) Ejector {
	if runner == nil {
		runner = command.Exec{}
	}
	return commandEjector{runner: runner, binary: strings.TrimSpace(binary)}
}

func (e commandEjector) Eject(ctx context.Context) error {
	result, err := e.runner.Run(ctx, e.binary, "eject")
	if err != nil {
		return fmt.Errorf("eject: %w", err)
	}
	if result.ExitCode != 0 {
		return fmt.Errorf("eject: %s exited %d: %s", e.binary, result.ExitCode, strings.TrimSpace(string(result.Stderr)))
	}
	return nil
}
