// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"maps"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Palette maps color keys to concrete colors. A key that is not in
// the palette resolves to no color.
type Palette map[Key]color.RGBA

// Current is the palette that styles resolve their keys against.
// It is only read and written from the UI thread.
var Current = DefaultPalette()

// Resolve returns the color for the given key as an [Option].
func (p Palette) Resolve(k Key) Option {
	if k == NoKey {
		return None()
	}
	c, ok := p[k]
	if !ok {
		return None()
	}
	return Some(c)
}

// Clone returns a copy of the palette.
func (p Palette) Clone() Palette {
	return maps.Clone(p)
}

// Resolve resolves the key against [Current].
func Resolve(k Key) Option {
	return Current.Resolve(k)
}

// DefaultPalette returns the built-in light palette. Hover and active
// shades are derived from the normal colors with [Shade].
func DefaultPalette() Palette {
	panel := colornames.Whitesmoke
	button := colornames.Gainsboro
	item := colornames.White
	accent := colornames.Cornflowerblue
	return Palette{
		Background:     colornames.White,
		PanelNormal:    panel,
		PanelHover:     Shade(panel, 0.08),
		PanelActive:    Shade(panel, 0.16),
		PanelBorder:    colornames.Silver,
		ButtonNormal:   button,
		ButtonHover:    Blend(button, accent, 0.25),
		ButtonActive:   Blend(button, accent, 0.5),
		ButtonBorder:   colornames.Gray,
		ListItemNormal: item,
		ListItemHover:  Blend(item, accent, 0.2),
		ListItemActive: Blend(item, accent, 0.45),
		ListItemBorder: accent,
		Splitter:       colornames.Lightgray,
		Text:           colornames.Black,
		TextActive:     colornames.Midnightblue,
	}
}

// Shade returns c darkened by the given amount in [0, 1], computed
// in the CIE L*a*b* space so that shades of different hues look
// equally darker. Negative amounts lighten.
func Shade(c color.RGBA, amount float64) color.RGBA {
	cf, _ := colorful.MakeColor(c)
	l, a, b := cf.Lab()
	l = min(max(l-amount, 0), 1)
	return withAlpha(colorful.Lab(l, a, b).Clamped(), c.A)
}

// Blend returns the blend of x and y in the CIE L*a*b* space,
// with t = 0 giving x and t = 1 giving y.
func Blend(x, y color.RGBA, t float64) color.RGBA {
	xf, _ := colorful.MakeColor(x)
	yf, _ := colorful.MakeColor(y)
	return withAlpha(xf.BlendLab(yf, t).Clamped(), x.A)
}

func withAlpha(c colorful.Color, a uint8) color.RGBA {
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, a}
}
