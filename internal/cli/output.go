// ABOUTME: Terminal output helpers for the CLI
// ABOUTME: Colors status lines and builds the diagnostics logger
package cli

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/harper/worklog/internal/worklog"
)

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// printResult writes the engine output. Comment status lines are colored on
// terminals; dumps and status lines are printed verbatim.
func printResult(w io.Writer, res worklog.Result, enabled bool) error {
	if res.Action != worklog.ActionComment || res.Record == nil || !enabled || !shouldColorize(w) {
		_, err := io.WriteString(w, res.Output)
		return err
	}

	c := color.New(markerColor(res.Record.Marker))
	c.EnableColor()
	_, err := c.Fprintln(w, strings.TrimSuffix(res.Output, "\n"))
	return err
}

func markerColor(m worklog.Marker) color.Attribute {
	switch m {
	case worklog.Start:
		return color.FgGreen
	case worklog.Finish:
		return color.FgYellow
	default:
		return color.FgCyan
	}
}

// newLogger builds the stderr diagnostics logger. --verbose forces debug.
func newLogger(w io.Writer, level string, verbose bool) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.WarnLevel
	}
	if verbose {
		lvl = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: "worklog",
		Level:  lvl,
	})
}
