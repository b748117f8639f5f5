// Package pdflayout turns the drawing events of PDF pages into a layout tree
// and renders it as plain text, HTML or XML.
//
// Basic usage:
//
//	var buf bytes.Buffer
//	warnings, err := pdflayout.New(format.Text).Run(ctx, &buf, pages...)
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", pdflayout.FormatWarnings(warnings))
//	}
//
// With options:
//
//	out, _, err := pdflayout.ForFile("report.html").
//	    LayoutMode(convert.LayoutExact).
//	    OutputDir("images").
//	    Workers(4).
//	    Convert(ctx, pages...)
//
// Pages are anything that can draw onto a device.Device; ContentPage adapts
// a parsed content stream. For finer control use the device, contentstream
// and convert packages directly.
package pdflayout

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/tsawler/pdflayout/device"
	"github.com/tsawler/pdflayout/format"
	"github.com/tsawler/pdflayout/internal/logging"
)

// New returns a Pipeline rendering to f with default options.
//
// Example:
//
//	text, _, err := pdflayout.New(format.Text).Convert(ctx, pages...)
func New(f format.Format) *Pipeline {
	p := &Pipeline{format: f, options: defaultOptions()}
	if f == format.Unknown {
		p.err = fmt.Errorf("no output format specified")
	}
	return p
}

// ForFile returns a Pipeline rendering to the format implied by filename's
// extension (.txt, .html or .xml).
func ForFile(filename string) *Pipeline {
	f := format.Detect(filename)
	p := New(f)
	if f == format.Unknown {
		p.err = fmt.Errorf("unsupported output file: %s", filename)
	}
	return p
}

// SetLogger installs l as the logger of every package in the module.
// Logging is silent by default; nil restores silence.
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the module logger
func Logger() *slog.Logger {
	return logging.Logger()
}

// FormatWarnings renders warnings one per line
func FormatWarnings(warnings []device.Warning) string {
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustConvert is a helper that wraps a call to Convert and panics if the
// error is non-nil. It discards warnings and returns just the output.
func MustConvert(out string, _ []device.Warning, err error) string {
	if err != nil {
		panic(err)
	}
	return out
}
