// Package disc interfaces with mounted optical volumes and the host tools
// that manage them.
//
// It parses the mount-table query into a numbered Catalog, detaches volumes
// before raw imaging, and ejects the media when a run is done. Parsers live
// here to keep mount-table quirks isolated from the workflow code.
package disc
