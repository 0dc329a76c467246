// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides the named color keys that regions refer to,
// the palette that resolves them, and color parsing and shading helpers.
package colors

import (
	"fmt"
	"strings"
)

// Key is a symbolic color name that a style refers to instead of a
// concrete color, so that the palette can be swapped without touching
// the regions.
type Key int32

const (
	// NoKey is the zero key; it never resolves to a color.
	NoKey Key = iota

	// Background is the fill of the root and of plain panels.
	Background

	// PanelNormal, PanelHover and PanelActive are for generic rectangular regions.
	PanelNormal
	PanelHover
	PanelActive

	// PanelBorder is the outline of generic rectangular regions.
	PanelBorder

	// ButtonNormal, ButtonHover and ButtonActive are button fills.
	ButtonNormal
	ButtonHover
	ButtonActive

	// ButtonBorder is the outline of buttons.
	ButtonBorder

	// ListItemNormal, ListItemHover and ListItemActive are list item fills.
	// Selected items use the active color.
	ListItemNormal
	ListItemHover
	ListItemActive

	// ListItemBorder is the outline of hovered or active list items.
	ListItemBorder

	// Splitter is the bar between the two panes of a splitter.
	Splitter

	// Text is the default text color.
	Text

	// TextActive is the text color on active and selected regions.
	TextActive

	// KeyN is the number of keys.
	KeyN
)

var keyNames = [...]string{
	NoKey:          "none",
	Background:     "background",
	PanelNormal:    "panel-normal",
	PanelHover:     "panel-hover",
	PanelActive:    "panel-active",
	PanelBorder:    "panel-border",
	ButtonNormal:   "button-normal",
	ButtonHover:    "button-hover",
	ButtonActive:   "button-active",
	ButtonBorder:   "button-border",
	ListItemNormal: "list-item-normal",
	ListItemHover:  "list-item-hover",
	ListItemActive: "list-item-active",
	ListItemBorder: "list-item-border",
	Splitter:       "splitter",
	Text:           "text",
	TextActive:     "text-active",
}

// String returns the kebab-case name of the key.
func (k Key) String() string {
	if k < 0 || k >= KeyN {
		return fmt.Sprintf("Key(%d)", int32(k))
	}
	return keyNames[k]
}

// SetString sets the key from its kebab-case name, ignoring case.
func (k *Key) SetString(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, nm := range keyNames {
		if nm == s {
			*k = Key(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type colors.Key", s)
}

// MarshalText implements [encoding.TextMarshaler].
func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (k *Key) UnmarshalText(text []byte) error {
	return k.SetString(string(text))
}

// KeyValues returns all valid keys, excluding [NoKey].
func KeyValues() []Key {
	ks := make([]Key, 0, KeyN-1)
	for k := NoKey + 1; k < KeyN; k++ {
		ks = append(ks, k)
	}
	return ks
}
