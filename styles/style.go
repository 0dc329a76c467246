// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package styles provides the style state of regions: which palette
// keys they paint with in each interaction state, plus padding and font.
package styles

import (
	"rectui.dev/core/colors"
)

// Style holds the color keys a region paints with in its normal, hover
// and active states. A key of [colors.NoKey] means that layer is not drawn.
type Style struct {

	// Normal is the fill color key when neither hovered nor active.
	Normal colors.Key

	// Hover is the fill color key while the pointer is over the region.
	Hover colors.Key

	// Active is the fill color key while the region is pressed or selected.
	Active colors.Key

	// BorderNormal is the border color key when neither hovered nor active.
	BorderNormal colors.Key

	// BorderHover is the border color key while hovered.
	BorderHover colors.Key

	// BorderActive is the border color key while active.
	BorderActive colors.Key

	// Text is the text color key.
	Text colors.Key

	// TextActive is the text color key while active.
	TextActive colors.Key

	// Padding is subtracted from the region rectangle for text.
	Padding Sides

	// Font is the font for text.
	Font Font
}

// Defaults sets the style to the panel colors.
func (s *Style) Defaults() {
	*s = Style{
		Normal:       colors.PanelNormal,
		Hover:        colors.PanelHover,
		Active:       colors.PanelActive,
		BorderNormal: colors.PanelBorder,
		BorderHover:  colors.PanelBorder,
		BorderActive: colors.PanelBorder,
		Text:         colors.Text,
		TextActive:   colors.TextActive,
		Font:         DefaultFont(),
	}
}

// FillKey returns the fill key for the given state. Active wins over hover.
func (s *Style) FillKey(isActive, isHover bool) colors.Key {
	switch {
	case isActive:
		return s.Active
	case isHover:
		return s.Hover
	default:
		return s.Normal
	}
}

// BorderKey returns the border key for the given state.
func (s *Style) BorderKey(isActive, isHover bool) colors.Key {
	switch {
	case isActive:
		return s.BorderActive
	case isHover:
		return s.BorderHover
	default:
		return s.BorderNormal
	}
}

// TextKey returns the text key for the given state.
func (s *Style) TextKey(isActive bool) colors.Key {
	if isActive && s.TextActive != colors.NoKey {
		return s.TextActive
	}
	return s.Text
}

// FillColor resolves the fill color for the given state against [colors.Current].
func (s *Style) FillColor(isActive, isHover bool) colors.Option {
	return colors.Resolve(s.FillKey(isActive, isHover))
}

// BorderColor resolves the border color for the given state against [colors.Current].
func (s *Style) BorderColor(isActive, isHover bool) colors.Option {
	return colors.Resolve(s.BorderKey(isActive, isHover))
}

// TextColor resolves the text color for the given state against [colors.Current].
func (s *Style) TextColor(isActive bool) colors.Option {
	return colors.Resolve(s.TextKey(isActive))
}
