// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"log/slog"

	"rectui.dev/core/math32"
)

// Sides contains a value for each side of a box, in
// backend-independent units.
type Sides struct {

	// top side value
	Top float32 `json:"top" yaml:"top" toml:"top"`

	// right side value
	Right float32 `json:"right" yaml:"right" toml:"right"`

	// bottom side value
	Bottom float32 `json:"bottom" yaml:"bottom" toml:"bottom"`

	// left side value
	Left float32 `json:"left" yaml:"left" toml:"left"`
}

// NewSides returns new sides set from the given values; see [Sides.Set].
func NewSides(vals ...float32) Sides {
	s := Sides{}
	s.Set(vals...)
	return s
}

// Set sets the values of the sides from the given list of 0 to 4 values,
// following the CSS padding shorthand:
// 1 value sets all sides; 2 values set top/bottom and right/left;
// 3 values set top, right/left and bottom; 4 values set top, right,
// bottom and left. More than 4 values logs a programmer error and
// uses the first 4.
func (s *Sides) Set(vals ...float32) *Sides {
	switch len(vals) {
	case 0:
		*s = Sides{}
	case 1:
		s.Top, s.Right, s.Bottom, s.Left = vals[0], vals[0], vals[0], vals[0]
	case 2:
		s.Top, s.Right, s.Bottom, s.Left = vals[0], vals[1], vals[0], vals[1]
	case 3:
		s.Top, s.Right, s.Bottom, s.Left = vals[0], vals[1], vals[2], vals[1]
	default:
		if len(vals) > 4 {
			slog.Error("programmer error: styles.Sides.Set: expected 0 to 4 values, but got", "numValues", len(vals))
		}
		s.Top, s.Right, s.Bottom, s.Left = vals[0], vals[1], vals[2], vals[3]
	}
	return s
}

// Horizontal returns Left + Right.
func (s Sides) Horizontal() float32 {
	return s.Left + s.Right
}

// Vertical returns Top + Bottom.
func (s Sides) Vertical() float32 {
	return s.Top + s.Bottom
}

// Inset returns the given rectangle shrunk by the sides.
func (s Sides) Inset(r math32.Rect) math32.Rect {
	return r.Inset(s.Left, s.Top, s.Right, s.Bottom)
}
