// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package drawdump provides a debugging [draw.Processor] that writes
// each command it receives as text, with color swatches on terminals
// that support them, or as YAML documents.
package drawdump

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"rectui.dev/core/colors"
	"rectui.dev/core/draw"
	"rectui.dev/core/math32"
)

// Formats are the output formats of a [Processor].
type Formats int32

const (
	// Text writes one line per command.
	Text Formats = iota

	// YAML writes one YAML document per command.
	YAML
)

// Units are the extra units a text [Processor] writes the rect of
// each command in, next to its float32 rect.
type Units int32

const (
	// Float writes only the float32 rect.
	Float Units = iota

	// Pixels adds the integer pixel bounds a raster backend fills.
	Pixels

	// Fixed adds the bounds in 26.6 fixed point, as glyph
	// rasterizers take them.
	Fixed
)

// Processor is a [draw.Processor] that writes commands to an output.
// Write errors are kept in Err, and once one happens further commands
// are dropped; the core never sees them.
type Processor struct {
	Format Formats

	// Units are the extra rect units of the Text format.
	Units Units

	out   *termenv.Output
	enc   *yaml.Encoder
	frame int
	n     int

	// Err is the first write error, if any.
	Err error
}

// New returns a new [Processor] writing to w in the given format.
func New(w io.Writer, format Formats) *Processor {
	p := &Processor{Format: format, out: termenv.NewOutput(w)}
	if format == YAML {
		p.enc = yaml.NewEncoder(p.out)
		p.enc.SetIndent(2)
	}
	return p
}

// BeginFrame writes a frame header. It is called by the host, not by
// the region tree.
func (p *Processor) BeginFrame() {
	p.frame++
	p.n = 0
	if p.Format == Text {
		p.write(p.out.String(fmt.Sprintf("-- frame %d --", p.frame)).Bold().String() + "\n")
	}
}

// EndFrame flushes the output. It is called by the host.
func (p *Processor) EndFrame() {
	if p.enc != nil && p.Err == nil {
		p.Err = p.enc.Close()
		p.enc = yaml.NewEncoder(p.out)
		p.enc.SetIndent(2)
	}
}

// Count returns the number of commands written in the current frame.
func (p *Processor) Count() int {
	return p.n
}

func (p *Processor) Submit(c draw.Command) {
	if p.Err != nil {
		return
	}
	p.n++
	if p.Format == YAML {
		p.Err = p.enc.Encode(c)
		return
	}
	p.write(fmt.Sprintf("%3d %s%s%s\n", p.n, p.swatch(c), c, p.bounds(c.Rect)))
}

// bounds returns the rect in the extra units, if any.
func (p *Processor) bounds(r math32.Rect) string {
	switch p.Units {
	case Pixels:
		return " px=" + r.ToImage().String()
	case Fixed:
		f := r.ToFixed()
		return fmt.Sprintf(" 26.6=(%d,%d)-(%d,%d)", int32(f.Min.X), int32(f.Min.Y), int32(f.Max.X), int32(f.Max.Y))
	}
	return ""
}

func (p *Processor) write(s string) {
	if p.Err != nil {
		return
	}
	_, p.Err = io.WriteString(p.out, s)
}

// swatch returns a two-cell block in the main color of the command,
// or nothing on terminals without color.
func (p *Processor) swatch(c draw.Command) string {
	if p.out.Profile == termenv.Ascii {
		return ""
	}
	var o colors.Option
	switch c.Kind {
	case draw.Rectangle:
		o = c.Fill
		if !o.Valid {
			o = c.Border
		}
	case draw.Text:
		o = c.TextColor
	}
	if !o.Valid {
		return "   "
	}
	return p.out.String("  ").Background(p.out.Color(colors.AsHex(o.Color))).String() + " "
}
