// Package logging builds the charmbracelet/log logger shared by the daemon,
// the CLI and the process controller.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

const Prefix = "procctl"

// Options selects level, output format and destination.
type Options struct {
	Level  string // debug, info, warn, error, fatal
	Format string // text, json, logfmt
	Output io.Writer
	// Timestamps adds the time to every record.
	Timestamps bool
}

// New returns a logger for opts. Empty fields fall back to info/text/stderr.
func New(opts Options) (*log.Logger, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		lvl, err := log.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("log level %q: %w", opts.Level, err)
		}
		level = lvl
	}
	formatter, err := parseFormatter(opts.Format)
	if err != nil {
		return nil, err
	}
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	return log.NewWithOptions(out, log.Options{
		Level:           level,
		Prefix:          Prefix,
		Formatter:       formatter,
		ReportTimestamp: opts.Timestamps,
	}), nil
}

func parseFormatter(name string) (log.Formatter, error) {
	switch strings.ToLower(name) {
	case "", "text":
		return log.TextFormatter, nil
	case "json":
		return log.JSONFormatter, nil
	case "logfmt":
		return log.LogfmtFormatter, nil
	default:
		return log.TextFormatter, fmt.Errorf("unknown log format %q", name)
	}
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
