package disc

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/text/unicode/norm"

	"isorip/internal/command"
	"isorip/internal/logging"
)

// mountNameField is the zero-based column holding the mount point in the
// mount-table query output.
const mountNameField = 8

// maxMountTableLine caps a single mount-table line.
const maxMountTableLine = 1 << 20

// Volume is one mounted optical volume offered to the operator.
type Volume struct {
	// Index is 1-based and dense, assigned in mount-table order.
	Index int
	// Device is the raw device path handed to unmount and the imager.
	Device string
	// Name is the last path segment of the mount point. It names the
	// output image.
	Name string
}

// Label returns Name in composed Unicode form for display. Some hosts report
// mount points in decomposed form, which misaligns table columns.
func (v Volume) Label() string {
	return norm.NFC.String(v.Name)
}

// Catalog is the set of volumes found by one discovery pass, ordered by Index.
type Catalog []Volume

// Lookup returns the volume with the given index.
func (c Catalog) Lookup(index int) (Volume, bool) {
	if index < 1 || index > len(c) {
		return Volume{}, false
	}
	return c[index-1], true
}

// Indices returns every valid index in order.
func (c Catalog) Indices() []int {
	out := make([]int, len(c))
	for i, v := range c {
		out[i] = v.Index
	}
	return out
}

// ParseMountTable extracts volumes from mount-table output. A line is kept
// when its first field contains marker and the last segment of its mount
// point is non-empty. Mount points may contain spaces, so everything from
// the ninth field on is treated as the mount point. A line too long to scan
// is an error rather than the silent end of the table.
func ParseMountTable(output, marker string) (Catalog, error) {
	var catalog Catalog
	scanner := bufio.NewScanner(strings.NewReader(output))
	scanner.Buffer(make([]byte, 0, 64*1024), maxMountTableLine)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) <= mountNameField {
			continue
		}
		device := fields[0]
		if marker != "" && !strings.Contains(device, marker) {
			continue
		}
		mountPoint := strings.Join(fields[mountNameField:], " ")
		name := mountPoint[strings.LastIndex(mountPoint, "/")+1:]
		if name == "" {
			continue
		}
		catalog = append(catalog, Volume{
			Index:  len(catalog) + 1,
			Device: device,
			Name:   name,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan mount table: %w", err)
	}
	return catalog, nil
}

// Discoverer queries the host mount table.
type Discoverer struct {
	runner command.Runner
	binary string
	marker string
	logger *slog.Logger
}

// NewDiscoverer constructs a Discoverer running binary with no arguments and
// keeping entries whose device contains marker.
func NewDiscoverer(runner command.Runner, binary, marker string, logger *slog.Logger) *Discoverer {
	if runner == nil {
		runner = command.Exec{}
	}
	return &Discoverer{
		runner: runner,
		binary: strings.TrimSpace(binary),
		marker: marker,
		logger: logging.NewComponentLogger(logger, "discovery"),
	}
}

// Discover runs the mount-table query and parses its output. An empty
// catalog is not an error; failing to run the query is.
func (d *Discoverer) Discover(ctx context.Context) (Catalog, error) {
	if d.binary == "" {
		return nil, errors.New("mount table command required")
	}
	result, err := d.runner.Run(ctx, d.binary)
	if err != nil {
		return nil, fmt.Errorf("query mount table: %w", err)
	}
	logger := logging.WithContext(ctx, d.logger)
	if result.ExitCode != 0 {
		logger.Debug("mount table query exited non-zero",
			logging.Int("exit_code", result.ExitCode),
			logging.String("stderr", strings.TrimSpace(string(result.Stderr))))
	}
	catalog, err := ParseMountTable(string(result.Stdout), d.marker)
	if err != nil {
		return nil, err
	}
	for _, v := range catalog {
		logger.Debug("volume discovered",
			logging.Int(logging.FieldVolumeIndex, v.Index),
			logging.String(logging.FieldDevice, v.Device),
			logging.String(logging.FieldVolume, v.Name))
	}
	logger.Info("mount table scanned", logging.Int("volume_count", len(catalog)))
	return catalog, nil
}
