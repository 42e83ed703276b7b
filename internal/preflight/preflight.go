package preflight

import (
	"errors"
	"fmt"

	"isorip/internal/deps"
)

var (
	// ErrInvalidOutputDir marks an output directory that is missing, not a
	// directory, or not writable.
	ErrInvalidOutputDir = errors.New("invalid output directory")
	// ErrImagerMissing marks an imaging tool that is not on the search path.
	ErrImagerMissing = errors.New("imaging tool not found")
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// Error is a failed precondition. It matches its Kind with errors.Is.
type Error struct {
	Kind   error
	Result Result
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrImagerMissing:
		return fmt.Sprintf("%s: %s; install it and come back later", e.Kind, e.Result.Detail)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Result.Detail)
	}
}

func (e *Error) Unwrap() error { return e.Kind }

// Require checks the output directory, then the imager, and returns the
// resolved imager path. The first failure is returned as an *Error.
func Require(outputDir, imager string) (string, error) {
	if result := CheckDirectoryAccess("Output directory", outputDir); !result.Passed {
		return "", &Error{Kind: ErrInvalidOutputDir, Result: result}
	}
	check := CheckImager(imager)
	if !check.Passed {
		return "", &Error{Kind: ErrImagerMissing, Result: check.Result}
	}
	return check.Path, nil
}

// ImagerCheck is an imager Result plus the resolved executable path.
type ImagerCheck struct {
	Result
	Path string
}

// CheckImager looks the imaging tool up on the search path.
func CheckImager(binary string) ImagerCheck {
	status := deps.Check(deps.Requirement{
		Name:        "Imager",
		Command:     binary,
		Description: "Required for bit-for-bit disc imaging",
	})
	if !status.Available {
		return ImagerCheck{Result: Result{Name: status.Name, Detail: status.Detail}}
	}
	return ImagerCheck{
		Result: Result{Name: status.Name, Passed: true, Detail: status.Path},
		Path:   status.Path,
	}
}
