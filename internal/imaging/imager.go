package imaging

import (
	"context"
	"path/filepath"
	"strconv"
	"strings"

	"isorip/internal/command"
	"isorip/internal/disc"
)

const (
	// BlockSize is the sector size passed to the imager.
	BlockSize = 2048
	// ImageExtension is appended to the volume name to form the image file.
	ImageExtension = ".iso"
	// LogSuffix is appended to the image path to form the rescue log path.
	LogSuffix = ".log"
)

// Destination holds the files the imager writes for one volume.
type Destination struct {
	Image string
	Log   string
}

// DestinationFor returns <outputDir>/<name>.iso and its .log companion.
func DestinationFor(outputDir string, volume disc.Volume) Destination {
	image := filepath.Join(outputDir, volume.Name+ImageExtension)
	return Destination{Image: image, Log: image + LogSuffix}
}

// Imager runs the rescue-imaging tool.
type Imager struct {
	runner command.Runner
	binary string
}

// NewImager constructs an Imager for binary.
func NewImager(runner command.Runner, binary string) *Imager {
	if runner == nil {
		runner = command.Exec{}
	}
	return &Imager{runner: runner, binary: strings.TrimSpace(binary)}
}

// Args returns the imager argument list for copying device to dest.
func Args(device string, dest Destination) []string {
	return []string{
		"-b", strconv.Itoa(BlockSize),
		"-v",
		device,
		dest.Image,
		dest.Log,
	}
}

// Image copies device into dest and blocks until the imager exits. Existing
// files at dest are left for the imager to handle.
func (i *Imager) Image(ctx context.Context, device string, dest Destination) (command.Result, error) {
	return i.runner.Run(ctx, i.binary, Args(device, dest)...)
}
