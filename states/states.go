// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package states provides the interaction state flags of regions.
package states

import (
	"strings"
)

// States are interaction states of regions that are relevant for
// choosing which colors they paint with. They are bit flags.
type States int64

const (
	// Disabled regions do not react to input, but do display.
	Disabled States = 1 << iota

	// Selected regions have been marked by a selector such as a list.
	Selected

	// Active regions are currently being pressed.
	Active

	// Hovered indicates that the pointer is over the region.
	Hovered
)

var stateNames = []struct {
	flag States
	name string
}{
	{Disabled, "disabled"},
	{Selected, "selected"},
	{Active, "active"},
	{Hovered, "hovered"},
}

// HasFlag returns whether all of the given flags are set.
func (s States) HasFlag(f States) bool {
	return s&f == f
}

// SetFlag sets the given flags on or off.
func (s *States) SetFlag(on bool, f States) {
	if on {
		*s |= f
	} else {
		*s &^= f
	}
}

// String returns the names of the set flags joined by "|".
func (s States) String() string {
	if s == 0 {
		return "none"
	}
	var nms []string
	for _, sn := range stateNames {
		if s.HasFlag(sn.flag) {
			nms = append(nms, sn.name)
		}
	}
	return strings.Join(nms, "|")
}
