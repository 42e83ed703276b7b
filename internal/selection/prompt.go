package selection

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"isorip/internal/disc"
)

const (
	selectionPrompt = "Please enter the NUMBER for the volumes you want to rip. Separate multiple selections with a comma (eg 1,2): "
	outputDirPrompt = "Please drag in a folder where you want your output to live: "
)

// Prompter obtains the operator's selection for a catalog.
type Prompter interface {
	Prompt(ctx context.Context, catalog disc.Catalog) ([]int, error)
}

// Fixed is a Prompter that answers with a preset line of input.
type Fixed string

// Prompt implements Prompter.
func (f Fixed) Prompt(_ context.Context, catalog disc.Catalog) ([]int, error) {
	return Parse(string(f), catalog)
}

// Terminal prompts on an interactive line-oriented stream.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminal wraps the provided streams.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

// Prompt lists catalog, reads one line, and parses it.
func (t *Terminal) Prompt(ctx context.Context, catalog disc.Catalog) ([]int, error) {
	if len(catalog) == 0 {
		fmt.Fprintln(t.out, "No mounted optical volumes were found.")
	} else {
		fmt.Fprintln(t.out, "Here are the mounted volumes on the system:")
		fmt.Fprintln(t.out, RenderCatalog(catalog))
	}
	line, err := t.readLine(ctx, selectionPrompt)
	if err != nil {
		return nil, err
	}
	return Parse(line, catalog)
}

// PromptOutputDir asks for the output directory. Trailing whitespace is
// dropped since drag and drop appends a space.
func (t *Terminal) PromptOutputDir(ctx context.Context) (string, error) {
	line, err := t.readLine(ctx, outputDirPrompt)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, " \t\r\n"), nil
}

type lineRead struct {
	line string
	err  error
}

// readLine returns as soon as ctx is done, even while the read is still
// blocked; the pending read is abandoned.
func (t *Terminal) readLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(t.out, prompt)

	done := make(chan lineRead, 1)
	go func() {
		line, err := t.in.ReadString('\n')
		done <- lineRead{line: line, err: err}
	}()

	var read lineRead
	select {
	case <-ctx.Done():
		fmt.Fprintln(t.out)
		return "", ctx.Err()
	case read = <-done:
	}
	if read.err != nil {
		if errors.Is(read.err, io.EOF) && read.line != "" {
			return read.line, nil
		}
		if errors.Is(read.err, io.EOF) {
			return "", errors.New("read operator input: no input")
		}
		return "", fmt.Errorf("read operator input: %w", read.err)
	}
	return read.line, nil
}

// RenderCatalog renders catalog as a table of numbers, names, and devices.
func RenderCatalog(catalog disc.Catalog) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Number", "Name", "Device"})
	for _, v := range catalog {
		tw.AppendRow(table.Row{strconv.Itoa(v.Index), v.Label(), v.Device})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
