// Package cliutil provides utilities for CLI operations.
package cliutil

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// Palette colours text output. The zero value does not colour anything.
type Palette struct {
	ok, bad, path *color.Color
}

// NewPalette returns a palette for success, failure and path text.
// When disabled, every function returns its arguments unchanged.
func NewPalette(enabled bool) Palette {
	if !enabled {
		return Palette{}
	}
	p := Palette{
		ok:   color.New(color.FgHiGreen),
		bad:  color.New(color.FgHiRed),
		path: color.New(color.FgHiYellow),
	}
	for _, c := range []*color.Color{p.ok, p.bad, p.path} {
		c.EnableColor()
	}
	return p
}

// OK renders success text.
func (p Palette) OK(s string) string { return paint(p.ok, s) }

// Bad renders failure text.
func (p Palette) Bad(s string) string { return paint(p.bad, s) }

// Path renders a tree path.
func (p Palette) Path(s string) string { return paint(p.path, s) }

func paint(c *color.Color, s string) string {
	if c == nil {
		return s
	}
	return c.Sprint(s)
}
