// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
)

// Option is a color that may be absent. An absent color means that the
// layer using it is not drawn at all, which is different from drawing
// it transparent. The zero value is absent.
type Option struct {
	Color color.RGBA
	Valid bool
}

// Some returns a present [Option] holding c.
func Some(c color.RGBA) Option {
	return Option{Color: c, Valid: true}
}

// None returns an absent [Option].
func None() Option {
	return Option{}
}

// Get returns the color and whether it is present.
func (o Option) Get() (color.RGBA, bool) {
	return o.Color, o.Valid
}

func (o Option) String() string {
	if !o.Valid {
		return "none"
	}
	return AsHex(o.Color)
}

// MarshalText implements [encoding.TextMarshaler], writing
// a hex color or "none".
func (o Option) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler],
// accepting anything [Parse] accepts.
func (o *Option) UnmarshalText(text []byte) error {
	c, ok, err := Parse(string(text))
	if err != nil {
		return err
	}
	*o = Option{Color: c, Valid: ok}
	return nil
}
