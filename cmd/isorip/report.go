package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"isorip/internal/imaging"
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusError
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

const (
	statusLabelWidth = 20
	statusIndent     = "  "
)

// renderReport prints a summary table followed by the raw status text of
// every outcome, in selection order.
func renderReport(report imaging.Report, colorize bool) string {
	var b strings.Builder
	for _, line := range renderSectionHeader("Report", colorize) {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if len(report) == 0 {
		b.WriteString("No volumes were processed.\n")
		return b.String()
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Number", "Name", "Result", "Image"})
	for _, outcome := range report {
		image := outcome.ImagePath
		if outcome.Kind != imaging.OutcomeImaged && outcome.Kind != imaging.OutcomeInterrupted {
			image = "-"
		}
		tw.AppendRow(table.Row{strconv.Itoa(outcome.Volume.Index), outcome.Volume.Label(), outcome.Kind.String(), image})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	b.WriteString(tw.Render())
	b.WriteByte('\n')

	for _, outcome := range report {
		label := fmt.Sprintf("%d %s", outcome.Volume.Index, outcome.Volume.Label())
		b.WriteString(renderStatusLine(label, outcomeStatusKind(outcome.Kind), outcome.Kind.String(), colorize))
		b.WriteByte('\n')
		for _, line := range strings.Split(strings.TrimRight(outcome.Status, "\n"), "\n") {
			b.WriteString(statusIndent + statusIndent + line + "\n")
		}
	}
	return b.String()
}

func outcomeStatusKind(kind imaging.OutcomeKind) statusKind {
	switch kind {
	case imaging.OutcomeImaged:
		return statusOK
	case imaging.OutcomeUnmountFailed, imaging.OutcomeInterrupted:
		return statusWarn
	case imaging.OutcomeImagerFailed:
		return statusError
	default:
		return statusInfo
	}
}

func renderStatusLine(label string, kind statusKind, message string, colorize bool) string {
	statusText := fmt.Sprintf("[%s]", statusKindLabel(kind))
	if message != "" {
		statusText += " " + message
	}
	base := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, label+":", statusText)
	if colorize {
		if color := statusKindColor(kind); color != "" {
			return color + base + ansiReset
		}
	}
	return base
}

func statusKindLabel(kind statusKind) string {
	switch kind {
	case statusOK:
		return "OK"
	case statusWarn:
		return "WARN"
	case statusError:
		return "ERROR"
	default:
		return "INFO"
	}
}

func statusKindColor(kind statusKind) string {
	switch kind {
	case statusOK:
		return ansiGreen
	case statusWarn:
		return ansiYellow
	case statusError:
		return ansiRed
	case statusInfo:
		return ansiBlue
	default:
		return ""
	}
}

func renderSectionHeader(title string, colorize bool) []string {
	line := fmt.Sprintf("== %s ==", strings.TrimSpace(title))
	rule := strings.Repeat("-", len(line))
	if colorize {
		line = ansiBlue + line + ansiReset
		rule = ansiBlue + rule + ansiReset
	}
	return []string{line, rule}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
