// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"fmt"

	"github.com/go-text/typesetting/font"
)

// Font describes the face that a text command asks the backend for.
// Resolving it to an actual face is the backend's job.
type Font struct {

	// Family is the font family name, e.g. "Segoe UI" or "sans-serif".
	Family string `json:"family" yaml:"family" toml:"family"`

	// Size is the nominal font size before any padding adjustment.
	Size float32 `json:"size" yaml:"size" toml:"size"`

	// Aspect holds the style (slant), weight and stretch of the face.
	Aspect font.Aspect `json:"aspect" yaml:"aspect" toml:"-"`
}

// DefaultFont returns the font used when nothing else is specified.
func DefaultFont() Font {
	return Font{
		Family: "sans-serif",
		Size:   18,
		Aspect: font.Aspect{
			Style:   font.StyleNormal,
			Weight:  font.WeightNormal,
			Stretch: font.StretchNormal,
		},
	}
}

// Bold returns a copy of the font with a bold weight.
func (f Font) Bold() Font {
	f.Aspect.Weight = font.WeightBold
	return f
}

// Italic returns a copy of the font with an italic style.
func (f Font) Italic() Font {
	f.Aspect.Style = font.StyleItalic
	return f
}

func (f Font) String() string {
	s := fmt.Sprintf("%s %gpt w%g", f.Family, f.Size, float32(f.Aspect.Weight))
	if f.Aspect.Style == font.StyleItalic {
		s += " italic"
	}
	return s
}
