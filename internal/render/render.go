// Package render provides formatted command output for the CLI's three
// rendering modes: full (indented JSON), compact (single-line JSON), and
// quiet (names and identifiers only).
package render

import (
	"encoding/json"
	"fmt"
	"io"
)

// Printer handles formatted output for one command invocation.
type Printer struct {
	out     io.Writer
	compact bool
	quiet   bool
}

// NewPrinter creates a Printer that writes to the given writer.
func NewPrinter(out io.Writer, compact, quiet bool) *Printer {
	return &Printer{out: out, compact: compact, quiet: quiet}
}

// Quiet reports whether quiet mode is active.
func (p *Printer) Quiet() bool {
	return p.quiet
}

// Statusf writes a one-line status message. Status lines are shown in
// every mode.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) Statusf(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Payload writes v as JSON. Quiet mode suppresses the payload entirely;
// compact mode collapses it to a single line.
func (p *Printer) Payload(v any) error {
	if p.quiet {
		return nil
	}

	var data []byte
	var err error
	if p.compact {
		data, err = json.Marshal(v)
	} else {
		data, err = json.MarshalIndent(v, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	_, _ = fmt.Fprintln(p.out, string(data))
	return nil
}

// Names writes one identifier per line, the quiet-mode replacement for a
// full listing payload.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) Names(names []string) {
	for _, name := range names {
		fmt.Fprintln(p.out, name)
	}
}
