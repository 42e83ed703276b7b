// Package deps reports whether the host utilities isorip shells out to can
// be found on the search path.
package deps

import (
	"fmt"
	"os/exec"
	"strings"
)

// Requirement defines an external tool isorip relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a requirement.
type Status struct {
	Requirement
	// Path is the resolved executable location when Available is set.
	Path      string
	Available bool
	Detail    string
}

// Check resolves a single requirement.
func Check(req Requirement) Status {
	req.Command = strings.TrimSpace(req.Command)
	req.Description = strings.TrimSpace(req.Description)
	status := Status{Requirement: req}
	if req.Command == "" {
		status.Detail = "command not configured"
		return status
	}
	path, err := exec.LookPath(req.Command)
	if err != nil {
		status.Detail = fmt.Sprintf("binary %q not found", req.Command)
		return status
	}
	status.Path = path
	status.Available = true
	return status
}

// CheckBinaries evaluates the provided requirements and reports availability
// in input order.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		results = append(results, Check(req))
	}
	return results
}

// Missing returns the required entries that are unavailable.
func Missing(statuses []Status) []Status {
	var out []Status
	for _, status := range statuses {
		if !status.Available && !status.Optional {
			out = append(out, status)
		}
	}
	return out
}
