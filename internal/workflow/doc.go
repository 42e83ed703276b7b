// Package workflow runs one isorip session from preconditions to report.
//
// The Driver resolves the output directory, checks the imaging tool, takes
// the run lock, discovers volumes, obtains the operator's selection, hands
// the selection to the imaging Orchestrator, and ejects the media. Each step
// runs to completion before the next starts; nothing loops back.
//
// Configuration and input problems abort the run before any volume is
// unmounted. Per-volume problems are recorded in the report and never stop
// the remaining volumes.
package workflow
