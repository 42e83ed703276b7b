// Package main hosts the isorip CLI entrypoint and command graph.
//
// The root command runs one interactive rip: it lists the mounted optical
// volumes, asks which ones to image, unmounts and images each selection with
// ddrescue, ejects the drive, and prints a per-volume report. The volumes and
// config subcommands are non-destructive helpers.
//
// Keep this package lean: behavior lives in the internal packages and is only
// surfaced here through commands and flags.
package main
