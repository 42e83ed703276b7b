// Package config loads, normalizes, and validates isorip configuration data.
//
// It supplies defaults for the host tools isorip drives (mount-table query,
// unmount, eject, and the imaging utility), expands user paths including
// tilde shortcuts, and reads an optional TOML file. Command code should
// obtain settings through Load so that paths arrive absolute and tool names
// arrive trimmed.
package config
