// Package imaging drives the external rescue-imaging tool over a selection of
// volumes.
//
// For each selected volume the Orchestrator unmounts the filesystem, runs the
// imager with a fixed 2048-byte block size and verbose output, and records an
// Outcome. Per-volume failures never stop the loop; they are recorded and the
// next volume is processed. The imager's exit code is not interpreted: its
// stdout and stderr are surfaced verbatim for the operator.
package imaging
